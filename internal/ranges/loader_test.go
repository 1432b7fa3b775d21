package ranges

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const testDocJSON = `{
  "syncToken": "1693526400",
  "createDate": "2023-09-01-00-00-00",
  "prefixes": [
    {"ip_prefix": "1.2.3.0/24", "region": "us-east-1", "service": "EC2"},
    {"ip_prefix": "5.6.7.0/24", "region": "us-west-1", "service": "S3"}
  ]
}`

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testDocJSON))
	}))
	defer server.Close()

	doc, err := Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if doc.SyncToken != "1693526400" {
		t.Errorf("Expected syncToken 1693526400, got %s", doc.SyncToken)
	}
	if len(doc.Prefixes) != 2 {
		t.Errorf("Expected 2 prefixes, got %d", len(doc.Prefixes))
	}
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := Fetch(server.URL); err == nil {
		t.Fatal("Expected error for HTTP 500")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ip-ranges.json")

	if err := os.WriteFile(path, []byte(testDocJSON), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(doc.Prefixes) != 2 {
		t.Errorf("Expected 2 prefixes, got %d", len(doc.Prefixes))
	}
}

func TestLoadFile_Gzip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ip-ranges.json.gz")

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte(testDocJSON)); err != nil {
		t.Fatalf("Failed to write gzip data: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close file: %v", err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if doc.SyncToken != "1693526400" {
		t.Errorf("Expected syncToken 1693526400, got %s", doc.SyncToken)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	if _, err := LoadFile("/non/existent/ip-ranges.json"); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.json")

	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
}
