package ranges

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"awsranges/internal/errors"
	"awsranges/internal/log"
	"awsranges/internal/utils"

	"github.com/klauspost/compress/gzip"
)

// Fetch retrieves and parses the ranges document from a URL. The fetch is a
// single attempt with no retries.
func Fetch(url string) (*Document, error) {
	log.Debugf("Fetching ranges document from URL: %s", url)

	client := &http.Client{}
	resp, err := client.Get(url)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to fetch ranges document from %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to fetch ranges document from %s: %s", url, resp.Status), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewLoadError("failed to read ranges document response", err)
	}

	return ParseDocument(data)
}

// LoadFile reads and parses the ranges document from a local file. Files
// with a .gz suffix are decompressed transparently.
func LoadFile(path string) (*Document, error) {
	log.Debugf("Loading ranges document from file: %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to open ranges document %s", path), err)
	}
	defer utils.CloseOrWarn(file)

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.NewLoadError(fmt.Sprintf("failed to decompress ranges document %s", path), err)
		}
		defer utils.CloseOrWarn(gz)
		reader = gz
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to read ranges document %s", path), err)
	}

	return ParseDocument(data)
}
