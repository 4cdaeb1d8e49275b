package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/jsonutil"
)

const httpComponent = "question_http"

// Authorizer gates the mutating endpoints. A nil Authorizer leaves them open.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// HTTPHandlers provides the question REST endpoints.
type HTTPHandlers struct {
	service *Service
	auth    Authorizer
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, auth Authorizer, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		auth:    auth,
		logger:  logger.With().Str("component", httpComponent).Logger(),
	}
}

// postBody is either a search ({"searchTerm": ...}) or a new question.
type postBody struct {
	SearchTerm *string           `json:"searchTerm"`
	Question   *string           `json:"question"`
	Answer     *string           `json:"answer"`
	Category   *jsonutil.FlexInt `json:"category"`
	Difficulty *jsonutil.FlexInt `json:"difficulty"`
}

// List handles GET /questions?page=N
func (h *HTTPHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.respondListing(w, r, ListRequest{Page: ParsePage(r.URL.Query().Get("page"))})
}

// ListByCategory handles GET /categories/{id}/questions?page=N
func (h *HTTPHandlers) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	h.respondListing(w, r, ListRequest{
		CategoryID: &id,
		Page:       ParsePage(r.URL.Query().Get("page")),
	})
}

// Post handles POST /questions, which searches when the body carries a
// searchTerm and creates a question otherwise.
func (h *HTTPHandlers) Post(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger := h.requestLogger(r)
		logger.Debug().Err(err).Msg("undecodable question payload")
		httperrors.RespondUnprocessable(w)
		return
	}

	if body.SearchTerm != nil {
		h.respondListing(w, r, ListRequest{
			SearchTerm: body.SearchTerm,
			Page:       ParsePage(r.URL.Query().Get("page")),
		})
		return
	}

	if !h.authorize(w, r) {
		return
	}

	var difficulty *int32
	if body.Difficulty != nil {
		d := int32(*body.Difficulty)
		if int64(d) != int64(*body.Difficulty) {
			httperrors.RespondUnprocessable(w)
			return
		}
		difficulty = &d
	}

	result, err := h.service.Create(r.Context(), CreateRequest{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   jsonutil.Int64Ptr(body.Category),
		Difficulty: difficulty,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         result.CreatedID,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// Delete handles DELETE /questions/{id}
func (h *HTTPHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if !h.authorize(w, r) {
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted_id":      result.DeletedID,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

func (h *HTTPHandlers) respondListing(w http.ResponseWriter, r *http.Request, req ListRequest) {
	listing, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"current_category": listing.CurrentCategory,
		"categories":       listing.Categories,
	})
}

func (h *HTTPHandlers) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.auth == nil {
		return true
	}
	if err := h.auth.Authorize(r); err != nil {
		logger := h.requestLogger(r)
		logger.Info().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("editor authorization failed")
		if !isAuthError(err) {
			err = apperr.ErrUnauthorized
		}
		httperrors.RespondFromError(w, err)
		return false
	}
	return true
}

func isAuthError(err error) bool {
	return errors.Is(err, apperr.ErrUnauthorized) || errors.Is(err, apperr.ErrForbidden)
}

func (h *HTTPHandlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := httperrors.RespondFromError(w, err)
	logger := h.requestLogger(r)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error().Err(err).Int("status", status).Msg("question request failed")
	case status == http.StatusUnprocessableEntity:
		logger.Warn().Err(err).Int("status", status).Msg("question request unprocessable")
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger := h.requestLogger(r)
		logger.Error().Err(err).Msg("encode response")
	}
}

func (h *HTTPHandlers) requestLogger(r *http.Request) zerolog.Logger {
	return logging.ForRequest(r.Context(), h.logger, httpComponent)
}
