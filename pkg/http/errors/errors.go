package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes a standardized error response to the HTTP response writer.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondFromError maps the apperr taxonomy onto a status and writes the
// envelope. It returns the status written so callers can decide how loudly to log.
func RespondFromError(w http.ResponseWriter, err error) int {
	switch {
	case stderrors.Is(err, apperr.ErrNotFound):
		RespondNotFound(w)
		return http.StatusNotFound
	case stderrors.Is(err, apperr.ErrUnprocessable):
		RespondUnprocessable(w)
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, apperr.ErrUnauthorized):
		RespondUnauthorized(w)
		return http.StatusUnauthorized
	case stderrors.Is(err, apperr.ErrForbidden):
		RespondForbidden(w)
		return http.StatusForbidden
	default:
		RespondInternalError(w)
		return http.StatusInternalServerError
	}
}

// RespondInternalError writes an internal server error response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

// RespondNotFound writes a not found error response
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, MsgNotFound)
}

// RespondUnprocessable writes an unprocessable entity response
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// RespondUnauthorized writes an unauthorized error response
func RespondUnauthorized(w http.ResponseWriter) {
	RespondError(w, http.StatusUnauthorized, MsgUnauthorized)
}

// RespondForbidden writes a forbidden error response
func RespondForbidden(w http.ResponseWriter) {
	RespondError(w, http.StatusForbidden, MsgForbidden)
}

// RespondMethodNotAllowed writes a method not allowed response
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// RespondBadGateway writes an upstream failure response
func RespondBadGateway(w http.ResponseWriter) {
	RespondError(w, http.StatusBadGateway, MsgUpstreamUnavailable)
}
