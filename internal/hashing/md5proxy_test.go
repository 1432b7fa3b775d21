package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"strings"
	"testing"
)

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := `{"syncToken": "1693526400", "prefixes": []}`
	reader := strings.NewReader(testData)
	proxy := NewMD5ReaderProxy(reader)

	data, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != testData {
		t.Errorf("Expected data to pass through unchanged")
	}

	expected := md5.Sum([]byte(testData))
	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("GetChecksum() error: %v", err)
	}
	if checksum != hex.EncodeToString(expected[:]) {
		t.Errorf("Expected checksum %s, got %s", hex.EncodeToString(expected[:]), checksum)
	}
}

func TestChecksumReaderProxy_PartialReads(t *testing.T) {
	testData := "hello world"
	proxy := NewMD5ReaderProxy(strings.NewReader(testData))

	buf := make([]byte, 5)
	n, err := proxy.Read(buf)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if n != 5 || string(buf) != "hello" {
		t.Errorf("Expected 'hello', got '%s' (%d bytes)", string(buf[:n]), n)
	}

	if _, err := io.ReadAll(proxy); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := md5.Sum([]byte(testData))
	checksum, _ := proxy.GetChecksum()
	if checksum != hex.EncodeToString(expected[:]) {
		t.Errorf("Checksum mismatch after partial reads")
	}
}
