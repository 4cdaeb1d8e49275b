package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/jsonutil"
)

const httpComponent = "quiz_http"

// HTTPHandler exposes the quiz endpoint.
type HTTPHandler struct {
	picker *Picker
	logger zerolog.Logger
}

func NewHTTPHandler(picker *Picker, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		picker: picker,
		logger: logger.With().Str("component", httpComponent).Logger(),
	}
}

type nextRequest struct {
	PreviousQuestions *[]jsonutil.FlexInt `json:"previous_questions"`
	QuizCategory      *selectorBody       `json:"quiz_category"`
}

type selectorBody struct {
	ID   *jsonutil.FlexInt `json:"id"`
	Type string            `json:"type"`
}

// Next handles POST /quizzes. A finished round is answered with an empty object.
func (h *HTTPHandler) Next(w http.ResponseWriter, r *http.Request) {
	var body nextRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger := h.requestLogger(r)
		logger.Debug().Err(err).Msg("undecodable quiz payload")
		httperrors.RespondUnprocessable(w)
		return
	}
	if body.PreviousQuestions == nil && body.QuizCategory == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	req := Request{}
	if body.PreviousQuestions != nil {
		req.PreviousQuestions = make([]int64, 0, len(*body.PreviousQuestions))
		for _, id := range *body.PreviousQuestions {
			req.PreviousQuestions = append(req.PreviousQuestions, int64(id))
		}
	}
	if body.QuizCategory != nil {
		sel := category.Selector{Type: body.QuizCategory.Type}
		if id := jsonutil.Int64Ptr(body.QuizCategory.ID); id != nil {
			sel.ID = *id
		}
		req.Category = &sel
	}

	result, err := h.picker.Next(r.Context(), req)
	if err != nil {
		status := httperrors.RespondFromError(w, err)
		logger := h.requestLogger(r)
		logger.Warn().Err(err).Int("status", status).Msg("quiz pick failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Complete() {
		_, _ = w.Write([]byte("{}\n"))
		return
	}
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": result.Question,
	}); err != nil {
		logger := h.requestLogger(r)
		logger.Error().Err(err).Msg("encode response")
	}
}

func (h *HTTPHandler) requestLogger(r *http.Request) zerolog.Logger {
	return logging.ForRequest(r.Context(), h.logger, httpComponent)
}
