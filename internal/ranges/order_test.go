package ranges

import (
	"testing"
)

func consolidatedFrom(t *testing.T, prefixes []Prefix) []*ConsolidatedPrefix {
	t.Helper()
	doc := &Document{Prefixes: prefixes}
	entries, err := doc.Consolidate()
	if err != nil {
		t.Fatalf("Consolidate() error: %v", err)
	}
	return entries
}

func TestSortByNetwork(t *testing.T) {
	entries := consolidatedFrom(t, []Prefix{
		{IPPrefix: "203.0.113.0/24", Region: "us-west-1", Service: "S3"},
		{IPPrefix: "10.0.0.0/8", Region: "GLOBAL", Service: "AMAZON"},
		{IPPrefix: "192.0.2.0/24", Region: "us-east-1", Service: "EC2"},
	})

	SortByNetwork(entries)

	expected := []string{"10.0.0.0/8", "192.0.2.0/24", "203.0.113.0/24"}
	for i, want := range expected {
		if entries[i].Network != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, entries[i].Network)
		}
	}
}

// Addresses above 127.255.255.255 must not compare as negative numbers: the
// sort key is the address as an unsigned 32-bit integer.
func TestSortByNetwork_HighAddresses(t *testing.T) {
	entries := consolidatedFrom(t, []Prefix{
		{IPPrefix: "240.0.0.0/8", Region: "GLOBAL", Service: "AMAZON"},
		{IPPrefix: "1.0.0.0/8", Region: "GLOBAL", Service: "AMAZON"},
		{IPPrefix: "128.0.0.0/8", Region: "GLOBAL", Service: "AMAZON"},
	})

	SortByNetwork(entries)

	expected := []string{"1.0.0.0/8", "128.0.0.0/8", "240.0.0.0/8"}
	for i, want := range expected {
		if entries[i].Network != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, entries[i].Network)
		}
	}
}

func TestSortByNetwork_StableForEqualAddresses(t *testing.T) {
	entries := consolidatedFrom(t, []Prefix{
		{IPPrefix: "10.0.0.0/8", Region: "GLOBAL", Service: "AMAZON"},
		{IPPrefix: "10.0.0.0/16", Region: "us-east-1", Service: "EC2"},
	})

	SortByNetwork(entries)

	if entries[0].Network != "10.0.0.0/8" || entries[1].Network != "10.0.0.0/16" {
		t.Errorf("Expected consolidation order kept for equal addresses, got %s, %s",
			entries[0].Network, entries[1].Network)
	}
}
