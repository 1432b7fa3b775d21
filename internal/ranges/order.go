package ranges

import (
	"encoding/binary"
	"sort"
)

// SortByNetwork sorts entries in place by the network address interpreted as
// a 32-bit big-endian unsigned integer, ascending. The sort is stable, so
// entries with the same address keep their consolidation order. This runs
// exactly once, before any filtering; filtering only narrows and never
// re-orders.
func SortByNetwork(entries []*ConsolidatedPrefix) {
	sort.SliceStable(entries, func(i, j int) bool {
		return networkValue(entries[i]) < networkValue(entries[j])
	})
}

func networkValue(entry *ConsolidatedPrefix) uint32 {
	addr := entry.Net.Addr()
	if !addr.Is4() {
		return 0
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}
