package ranges

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	apperrors "awsranges/internal/errors"
	"awsranges/internal/hashing"
	"awsranges/internal/log"
	"awsranges/internal/utils"
)

// CachedDocumentName is the file name used for downloaded documents.
const CachedDocumentName = "ip-ranges.json"

// Download fetches the ranges document and writes it to dir. The document's
// MD5 checksum is compared against a .md5 sidecar file, and an unchanged
// document is not rewritten. Returns whether the file on disk was updated.
func Download(url, dir string) (bool, error) {
	outputDir := filepath.Clean(dir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return false, apperrors.NewLoadError("failed to create ranges directory", err)
	}

	log.Infof("Downloading ranges document from URL: %s", url)

	client := &http.Client{}
	resp, err := client.Get(url)
	if err != nil {
		return false, apperrors.NewLoadError(fmt.Sprintf("failed to download ranges document from %s", url), err)
	}
	defer resp.Body.Close()
	bodyProxy := hashing.NewMD5ReaderProxy(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return false, apperrors.NewLoadError(fmt.Sprintf("failed to download ranges document from %s: %s", url, resp.Status), nil)
	}

	content, err := io.ReadAll(bodyProxy)
	if err != nil {
		return false, apperrors.NewLoadError("failed to read ranges document response", err)
	}

	// Validate before writing anything to disk.
	if _, err := ParseDocument(content); err != nil {
		return false, err
	}

	filePath := filepath.Join(outputDir, CachedDocumentName)
	if changed, err := isFileChanged(bodyProxy, filePath); err != nil {
		log.Errorf("Failed to calculate document checksum: %v", err)
	} else if !changed {
		log.Infof("Ranges document is not changed, skipping write to disk")
		return false, nil
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return false, apperrors.NewLoadError(fmt.Sprintf("failed to write ranges document to %s", filePath), err)
	}
	if err := writeChecksum(bodyProxy, filePath); err != nil {
		return false, apperrors.NewLoadError("failed to write document checksum", err)
	}

	log.Infof("Ranges document downloaded to %s", filePath)
	return true, nil
}

func isFileChanged(checksumProxy hashing.ChecksumProvider, filePath string) (bool, error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	md5, err := checksumProxy.GetChecksum()
	if err != nil {
		return false, err
	}

	checksumFilePath := filePath + ".md5"
	checksum, err := readChecksum(checksumFilePath)
	if err != nil {
		log.Debugf("Failed to read checksum file '%s', assuming it's changed: %v", checksumFilePath, err)
		return true, nil
	}
	return string(checksum) != md5, nil
}

func readChecksum(checksumFilePath string) ([]byte, error) {
	checksumFile, err := os.Open(checksumFilePath)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(checksumFile)

	return io.ReadAll(checksumFile)
}

func writeChecksum(checksumProxy hashing.ChecksumProvider, filePath string) error {
	checksum, err := checksumProxy.GetChecksum()
	if err != nil {
		return err
	}
	return os.WriteFile(filePath+".md5", []byte(checksum), 0644)
}
