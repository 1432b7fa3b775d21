package filter

import (
	"net/netip"

	"awsranges/internal/ranges"
)

// Apply narrows the working set with a single keyword term. Terms are
// conjunctive: each call operates on the output of the previous one. A term
// matching nothing yields an empty set, which is valid output.
func Apply(entries []*ranges.ConsolidatedPrefix, term Term) []*ranges.ConsolidatedPrefix {
	kept := make([]*ranges.ConsolidatedPrefix, 0, len(entries))

	for _, entry := range entries {
		if keep(entry, term) {
			kept = append(kept, entry)
		}
	}

	return kept
}

func keep(entry *ranges.ConsolidatedPrefix, term Term) bool {
	switch term.Kind {
	case TermLiteral:
		return hasService(entry, term.Keyword) || entry.Region == term.Keyword
	case TermExclude:
		return !hasService(entry, term.Keyword) && entry.Region != term.Keyword
	case TermExclusiveInclude:
		return (len(entry.Services) == 1 && entry.Services[0] == term.Keyword) || entry.Region == term.Keyword
	default:
		return true
	}
}

func hasService(entry *ranges.ConsolidatedPrefix, service string) bool {
	for _, s := range entry.Services {
		if s == service {
			return true
		}
	}
	return false
}

// MatchAddresses narrows the working set to entries whose network overlaps
// at least one of the supplied addresses. It is applied once, after all
// keyword terms. Matching is a union across addresses, and each matching
// (entry, address) pair emits one copy of the entry, so an entry overlapping
// two addresses appears twice.
func MatchAddresses(entries []*ranges.ConsolidatedPrefix, addresses []netip.Prefix) []*ranges.ConsolidatedPrefix {
	matched := make([]*ranges.ConsolidatedPrefix, 0, len(entries))

	for _, entry := range entries {
		for _, address := range addresses {
			if entry.Net.Masked().Overlaps(address) {
				matched = append(matched, entry)
			}
		}
	}

	return matched
}
