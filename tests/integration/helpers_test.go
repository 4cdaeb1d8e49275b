//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
)

type questionJSON struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type listingResponse struct {
	Success         bool           `json:"success"`
	Questions       []questionJSON `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	CurrentCategory *string        `json:"current_category"`
	Categories      []string       `json:"categories"`
	Created         int64          `json:"created"`
	DeletedID       int64          `json:"deleted_id"`
	Error           int            `json:"error"`
	Message         string         `json:"message"`
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// makeRequest sends payload as JSON. The editor token, when configured for the
// target server, is attached to every request.
func makeRequest(t *testing.T, method, url string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := os.Getenv("INTEGRATION_EDITOR_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func decodeListing(t *testing.T, resp *http.Response) listingResponse {
	t.Helper()
	defer resp.Body.Close()

	var out listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func createQuestion(t *testing.T, baseURL string, payload map[string]interface{}) int64 {
	t.Helper()

	resp := makeRequest(t, http.MethodPost, fmt.Sprintf("%s/questions", baseURL), payload)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("create question: unexpected status %d", resp.StatusCode)
	}
	out := decodeListing(t, resp)
	if out.Created == 0 {
		t.Fatal("create question: missing created id")
	}
	return out.Created
}
