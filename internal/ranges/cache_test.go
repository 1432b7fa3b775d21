package ranges

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testDocJSON))
	}))
	defer server.Close()

	tmpDir := t.TempDir()

	changed, err := Download(server.URL, tmpDir)
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if !changed {
		t.Error("Expected first download to report a change")
	}

	path := filepath.Join(tmpDir, CachedDocumentName)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected downloaded document at %s: %v", path, err)
	}
	if _, err := os.Stat(path + ".md5"); err != nil {
		t.Errorf("Expected checksum sidecar at %s.md5: %v", path, err)
	}

	// Second download of identical content must not rewrite the file.
	changed, err = Download(server.URL, tmpDir)
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if changed {
		t.Error("Expected unchanged document to be skipped")
	}
}

func TestDownload_InvalidDocumentNotWritten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))
	defer server.Close()

	tmpDir := t.TempDir()

	if _, err := Download(server.URL, tmpDir); err == nil {
		t.Fatal("Expected error for invalid document")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, CachedDocumentName)); !os.IsNotExist(err) {
		t.Error("Expected no file to be written for invalid document")
	}
}

func TestDownload_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := Download(server.URL, t.TempDir()); err == nil {
		t.Fatal("Expected error for HTTP 404")
	}
}
