package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/meme-scanner/tests/common"
)

// ScannerEnv points the API tests at a running scanner: the shared
// container environment, or SCANNER_TEST_URL in manual mode.
type ScannerEnv struct {
	t          *testing.T
	baseURL    string
	ctx        context.Context
	cancel     context.CancelFunc
	resultsDir string
}

// NewScannerEnv starts (or reuses) the container environment.
func NewScannerEnv(t *testing.T) *ScannerEnv {
	t.Helper()

	container := common.StartScanner(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	datetime := time.Now().Format("20060102-150405")
	resultsDir := filepath.Join(common.FindProjectRoot(), "tests", "logs", datetime+"-"+t.Name())
	os.MkdirAll(resultsDir, 0755)

	baseURL := common.GetTestURL()
	if container != nil {
		baseURL = container.URL()
		t.Cleanup(func() { container.CollectLogs(resultsDir) })
	}
	t.Logf("Scanner environment ready: %s", baseURL)

	return &ScannerEnv{
		t:          t,
		baseURL:    baseURL,
		ctx:        ctx,
		cancel:     cancel,
		resultsDir: resultsDir,
	}
}

// URL returns the scanner base URL.
func (e *ScannerEnv) URL() string {
	return e.baseURL
}

// HTTPPost sends a POST request with JSON body to the scanner.
func (e *ScannerEnv) HTTPPost(path string, body interface{}) (*http.Response, error) {
	return e.HTTPRequest(http.MethodPost, path, body, nil)
}

// HTTPRequest sends a request with custom headers to the scanner.
func (e *ScannerEnv) HTTPRequest(method, path string, body interface{}, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = strings.NewReader(b)
	default:
		bodyBytes, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		bodyReader = strings.NewReader(string(bodyBytes))
	}
	req, err := http.NewRequestWithContext(e.ctx, method, e.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return http.DefaultClient.Do(req)
}

// SaveResult saves test output to the results directory.
func (e *ScannerEnv) SaveResult(name string, data []byte) {
	os.WriteFile(filepath.Join(e.resultsDir, name), data, 0644)
}

// readBody reads and returns the response body.
func readBody(t *testing.T, body io.ReadCloser) []byte {
	t.Helper()
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return data
}

func decodeJSON(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to decode %q: %v", string(data), err)
	}
	return out
}
