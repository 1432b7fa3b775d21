// Package zone converts zone-transfer records into a declarative DNS
// change-set.
//
// Records obtained via AXFR (or read from a zone file) are merged by owner
// name and type, then emitted as an nsupdate-style batch: every merged
// record set becomes a delete of the existing RRset followed by adds for
// each value, terminated by a single send. SOA records and apex NS records
// are never touched.
package zone

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"awsranges/internal/errors"
	"awsranges/internal/log"
)

var changeTypes = map[uint16]bool{
	dns.TypeA:     true,
	dns.TypeAAAA:  true,
	dns.TypeCNAME: true,
	dns.TypeMX:    true,
	dns.TypeTXT:   true,
	dns.TypePTR:   true,
	dns.TypeSRV:   true,
}

// Change is one merged RRset: every rdata value of a (name, type) pair.
type Change struct {
	Name   string
	Type   uint16
	Values []string
}

// ChangeSet is the ordered list of changes derived from a zone.
type ChangeSet struct {
	Zone    string
	TTL     uint32
	Changes []*Change
}

// Transfer requests a full zone transfer from the given server and returns
// all records of the zone. Single attempt, no retries.
func Transfer(zone, server string) ([]dns.RR, error) {
	log.Debugf("Requesting AXFR of %s from %s", zone, server)

	msg := new(dns.Msg)
	msg.SetAxfr(dns.Fqdn(zone))

	transfer := new(dns.Transfer)
	envelopes, err := transfer.In(msg, server)
	if err != nil {
		return nil, errors.NewZoneError(fmt.Sprintf("zone transfer of %s from %s failed", zone, server), err)
	}

	var records []dns.RR
	for envelope := range envelopes {
		if envelope.Error != nil {
			return nil, errors.NewZoneError(fmt.Sprintf("zone transfer of %s from %s failed", zone, server), envelope.Error)
		}
		records = append(records, envelope.RR...)
	}

	return records, nil
}

// ParseZoneData reads records from zone data in RFC 1035 presentation format.
func ParseZoneData(zone string, data string) ([]dns.RR, error) {
	parser := dns.NewZoneParser(strings.NewReader(data), dns.Fqdn(zone), "")

	var records []dns.RR
	for rr, ok := parser.Next(); ok; rr, ok = parser.Next() {
		records = append(records, rr)
	}
	if err := parser.Err(); err != nil {
		return nil, errors.NewZoneError(fmt.Sprintf("failed to parse zone data for %s", zone), err)
	}

	return records, nil
}

// Build merges zone records into a change-set. Records sharing a (name,
// type) pair collapse into one change carrying all rdata values in source
// order. SOA records, NS records at the zone apex and unsupported record
// types are skipped.
func Build(zone string, records []dns.RR, ttl uint32) *ChangeSet {
	apex := dns.Fqdn(zone)
	cs := &ChangeSet{Zone: apex, TTL: ttl}

	byKey := make(map[string]*Change)
	for _, rr := range records {
		header := rr.Header()

		if header.Rrtype == dns.TypeSOA {
			continue
		}
		if header.Rrtype == dns.TypeNS && header.Name == apex {
			continue
		}
		if !changeTypes[header.Rrtype] {
			log.Debugf("Skipping unsupported record type %s for %s", dns.TypeToString[header.Rrtype], header.Name)
			continue
		}

		key := header.Name + "|" + dns.TypeToString[header.Rrtype]
		value := rdata(rr)

		if change, ok := byKey[key]; ok {
			change.Values = append(change.Values, value)
			continue
		}

		change := &Change{Name: header.Name, Type: header.Rrtype, Values: []string{value}}
		byKey[key] = change
		cs.Changes = append(cs.Changes, change)
	}

	return cs
}

// Render emits the change-set as an nsupdate batch.
func (cs *ChangeSet) Render() []string {
	if len(cs.Changes) == 0 {
		return nil
	}

	var lines []string
	for _, change := range cs.Changes {
		typeName := dns.TypeToString[change.Type]
		lines = append(lines, fmt.Sprintf("update delete %s %s", change.Name, typeName))
		for _, value := range change.Values {
			lines = append(lines, fmt.Sprintf("update add %s %d IN %s %s", change.Name, cs.TTL, typeName, value))
		}
	}
	lines = append(lines, "send")

	return lines
}

// rdata extracts the presentation-format rdata of a record by stripping its
// header from the full record string.
func rdata(rr dns.RR) string {
	return strings.TrimPrefix(rr.String(), rr.Header().String())
}
