package zone

import (
	"reflect"
	"testing"

	"github.com/miekg/dns"
)

func mustRR(t *testing.T, s string) dns.RR {
	t.Helper()
	rr, err := dns.NewRR(s)
	if err != nil {
		t.Fatalf("Failed to parse test record %q: %v", s, err)
	}
	return rr
}

func TestBuild_MergesRecordsByNameAndType(t *testing.T) {
	records := []dns.RR{
		mustRR(t, "www.example.com. 300 IN A 192.0.2.10"),
		mustRR(t, "www.example.com. 300 IN A 192.0.2.11"),
		mustRR(t, "mail.example.com. 300 IN A 192.0.2.20"),
	}

	cs := Build("example.com", records, 300)

	if len(cs.Changes) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(cs.Changes))
	}
	if !reflect.DeepEqual(cs.Changes[0].Values, []string{"192.0.2.10", "192.0.2.11"}) {
		t.Errorf("Expected merged values in source order, got %v", cs.Changes[0].Values)
	}
}

func TestBuild_SkipsSOAAndApexNS(t *testing.T) {
	records := []dns.RR{
		mustRR(t, "example.com. 300 IN SOA ns1.example.com. admin.example.com. 1 7200 900 1209600 300"),
		mustRR(t, "example.com. 300 IN NS ns1.example.com."),
		mustRR(t, "sub.example.com. 300 IN NS ns2.example.com."),
		mustRR(t, "www.example.com. 300 IN A 192.0.2.10"),
	}

	cs := Build("example.com", records, 300)

	if len(cs.Changes) != 1 {
		t.Fatalf("Expected 1 change (SOA, apex NS and delegation NS skipped), got %d", len(cs.Changes))
	}
	if cs.Changes[0].Name != "www.example.com." {
		t.Errorf("Expected www.example.com. change, got %s", cs.Changes[0].Name)
	}
}

func TestBuild_KeepsNameAndTypeSeparate(t *testing.T) {
	records := []dns.RR{
		mustRR(t, "host.example.com. 300 IN A 192.0.2.10"),
		mustRR(t, "host.example.com. 300 IN TXT \"v=spf1 -all\""),
	}

	cs := Build("example.com", records, 300)

	if len(cs.Changes) != 2 {
		t.Fatalf("Expected 2 changes for distinct types, got %d", len(cs.Changes))
	}
}

func TestRender(t *testing.T) {
	records := []dns.RR{
		mustRR(t, "www.example.com. 300 IN A 192.0.2.10"),
		mustRR(t, "www.example.com. 300 IN A 192.0.2.11"),
	}

	lines := Build("example.com", records, 600).Render()

	expected := []string{
		"update delete www.example.com. A",
		"update add www.example.com. 600 IN A 192.0.2.10",
		"update add www.example.com. 600 IN A 192.0.2.11",
		"send",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestRender_EmptyChangeSet(t *testing.T) {
	cs := Build("example.com", nil, 300)
	if lines := cs.Render(); lines != nil {
		t.Errorf("Expected empty change-set to render nothing, got %v", lines)
	}
}

func TestParseZoneData(t *testing.T) {
	data := `www 300 IN A 192.0.2.10
mail 300 IN A 192.0.2.20
`
	records, err := ParseZoneData("example.com", data)
	if err != nil {
		t.Fatalf("ParseZoneData() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Header().Name != "www.example.com." {
		t.Errorf("Expected origin-qualified name, got %s", records[0].Header().Name)
	}
}

func TestParseZoneData_Invalid(t *testing.T) {
	if _, err := ParseZoneData("example.com", "www 300 IN A not-an-ip\n"); err == nil {
		t.Fatal("Expected error for invalid zone data")
	}
}
