package ranges

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"

	"awsranges/internal/errors"
)

// Prefix is a single record of the published document: one (network, service)
// pair. A network may appear in multiple records with different services.
type Prefix struct {
	IPPrefix string `json:"ip_prefix"`
	Region   string `json:"region"`
	Service  string `json:"service"`
}

// Document is the parsed ip-ranges JSON document.
type Document struct {
	SyncToken  string   `json:"syncToken"`
	CreateDate string   `json:"createDate"`
	Prefixes   []Prefix `json:"prefixes"`
}

// ConsolidatedPrefix is one entry per distinct network, carrying the region
// of its first-seen record and every service listed for that network, in
// source order. Services are not deduplicated.
type ConsolidatedPrefix struct {
	Network  string
	Net      netip.Prefix
	Region   string
	Services []string
}

// ParseDocument parses the raw JSON document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewLoadError("failed to parse ranges document", err)
	}
	return &doc, nil
}

// SerialInt returns the document's syncToken as an integer.
func (d *Document) SerialInt() (int64, error) {
	serial, err := strconv.ParseInt(d.SyncToken, 10, 64)
	if err != nil {
		return 0, errors.NewDataError(fmt.Sprintf("document serial %q is not a valid integer", d.SyncToken), err)
	}
	return serial, nil
}

// Consolidate merges the document's records into one ConsolidatedPrefix per
// distinct network, in first-occurrence order. The region is taken from the
// first-seen record of each network; later records are assumed to carry the
// same region and are not re-validated.
func (d *Document) Consolidate() ([]*ConsolidatedPrefix, error) {
	if len(d.Prefixes) == 0 {
		return nil, errors.NewDataError("document has no prefixes", nil)
	}

	byNetwork := make(map[string]*ConsolidatedPrefix, len(d.Prefixes))
	consolidated := make([]*ConsolidatedPrefix, 0, len(d.Prefixes))

	for i, record := range d.Prefixes {
		if record.IPPrefix == "" || record.Region == "" || record.Service == "" {
			return nil, errors.NewDataError(fmt.Sprintf("prefix record %d is missing ip_prefix, region or service", i), nil)
		}

		if entry, ok := byNetwork[record.IPPrefix]; ok {
			entry.Services = append(entry.Services, record.Service)
			continue
		}

		net, err := netip.ParsePrefix(record.IPPrefix)
		if err != nil {
			return nil, errors.NewDataError(fmt.Sprintf("prefix record %d has invalid network %q", i, record.IPPrefix), err)
		}

		entry := &ConsolidatedPrefix{
			Network:  record.IPPrefix,
			Net:      net,
			Region:   record.Region,
			Services: []string{record.Service},
		}
		byNetwork[record.IPPrefix] = entry
		consolidated = append(consolidated, entry)
	}

	return consolidated, nil
}
