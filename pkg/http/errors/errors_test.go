package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRespondFromError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", apperr.NotFound("get question"), http.StatusNotFound, MsgNotFound},
		{"unprocessable", apperr.Unprocessable("insert", fmt.Errorf("fk violation")), http.StatusUnprocessableEntity, MsgUnprocessable},
		{"unauthorized", fmt.Errorf("editor token: %w", apperr.ErrUnauthorized), http.StatusUnauthorized, MsgUnauthorized},
		{"forbidden", apperr.ErrForbidden, http.StatusForbidden, MsgForbidden},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, MsgInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := RespondFromError(rec, tc.err)

			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decodeEnvelope(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Error)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestRespondErrorDoesNotLeakCause(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFromError(rec, fmt.Errorf("pq: password authentication failed for user trivia"))
	assert.NotContains(t, rec.Body.String(), "password")
}
