//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorEnvelope(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")

	testCases := []struct {
		name    string
		method  string
		path    string
		payload interface{}
		status  int
		message string
	}{
		{"unknown route", http.MethodGet, "/nothing-here", nil, http.StatusNotFound, "resource not found"},
		{"wrong method", http.MethodPut, "/questions", nil, http.StatusMethodNotAllowed, "method not allowed"},
		{"missing question", http.MethodDelete, "/questions/987654321", nil, http.StatusNotFound, "resource not found"},
		{"page past the end", http.MethodGet, "/categories/1/questions?page=99999", nil, http.StatusNotFound, "resource not found"},
		{"create with missing fields", http.MethodPost, "/questions", map[string]interface{}{"question": "incomplete"}, http.StatusUnprocessableEntity, "unprocessable"},
		{"create with bad difficulty", http.MethodPost, "/questions", map[string]interface{}{
			"question": "q", "answer": "a", "category": 1, "difficulty": 9,
		}, http.StatusUnprocessableEntity, "unprocessable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := makeRequest(t, tc.method, fmt.Sprintf("%s%s", baseURL, tc.path), tc.payload)
			out := decodeListing(t, resp)

			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d (%+v)", tc.status, resp.StatusCode, out)
			}
			if out.Success || out.Error != tc.status || out.Message != tc.message {
				t.Fatalf("unexpected envelope: %+v", out)
			}
		})
	}
}
