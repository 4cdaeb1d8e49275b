package category

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const httpComponent = "category_http"

// HTTPHandler exposes the category listing.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", httpComponent).Logger(),
	}
}

// List handles GET /categories
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.Available(r.Context())
	if err != nil {
		status := httperrors.RespondFromError(w, err)
		if status >= http.StatusUnprocessableEntity {
			logger := logging.ForRequest(r.Context(), h.logger, httpComponent)
			logger.Warn().Err(err).Int("status", status).Msg("list categories failed")
		}
		return
	}

	writeJSON(w, map[string]interface{}{
		"success":    true,
		"categories": types,
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
