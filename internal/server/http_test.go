package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/memstore"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func testConfig() *config.App {
	return &config.App{
		HTTPAddr: "127.0.0.1:0",
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         3600,
		},
	}
}

func newTestHandler(t *testing.T, deps ...Pinger) (http.Handler, *prometheus.Registry) {
	t.Helper()
	store := memstore.New()
	store.AddCategory(1, "Science")
	store.AddCategory(2, "Art")
	store.AddQuestion("What is H2O?", "Water", 1, 1)
	store.AddQuestion("Who painted the Mona Lisa?", "Leonardo da Vinci", 2, 2)

	logger := zerolog.Nop()
	questionRepo := repository.NewQuestionRepository(store)
	categorySvc := category.NewService(repository.NewCategoryRepository(store), nil, logger)
	questionSvc := question.NewService(questionRepo, categorySvc, logger)
	picker := quiz.NewPicker(questionRepo, categorySvc, quiz.Options{}, logger)

	reg := prometheus.NewRegistry()
	h := NewRouter(testConfig(), logger, deps, Handlers{
		Categories: category.NewHTTPHandler(categorySvc, logger),
		Questions:  question.NewHTTPHandlers(questionSvc, nil, logger),
		Quiz:       quiz.NewHTTPHandler(picker, logger),
	}, reg)
	return h, reg
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Ping(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		h, _ := newTestHandler(t, pingerFunc(func(context.Context) error { return nil }))

		rec := serve(h, http.MethodGet, "/ping", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"pong":true}`, rec.Body.String())
	})

	t.Run("dependency down", func(t *testing.T) {
		h, _ := newTestHandler(t,
			pingerFunc(func(context.Context) error { return nil }),
			pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
		)

		rec := serve(h, http.MethodGet, "/ping", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

func TestRouter_RoutesDomainEndpoints(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"categories":["Science","Art"]}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/categories/2/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		TotalQuestions  int     `json:"total_questions"`
		CurrentCategory *string `json:"current_category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.TotalQuestions)
	require.NotNil(t, listing.CurrentCategory)
	assert.Equal(t, "Art", *listing.CurrentCategory)

	rec = serve(h, http.MethodPost, "/quizzes", `{"previous_questions":[1],"quiz_category":{"id":1,"type":"Science"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", rec.Body.String())

	rec = serve(h, http.MethodDelete, "/questions/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":404,"message":"resource not found"}`, rec.Body.String())

	rec = serve(h, http.MethodPut, "/questions", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":405,"message":"method not allowed"}`, rec.Body.String())

	rec = serve(h, http.MethodDelete, "/questions/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_CORSPreflightRejectsUnlistedHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-not-allowed")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RequestID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
}

func TestRouter_RecordsRequestMetrics(t *testing.T) {
	h, reg := newTestHandler(t)

	serve(h, http.MethodGet, "/categories", "")
	serve(h, http.MethodGet, "/categories", "")
	serve(h, http.MethodGet, "/questions?page=9", "")

	assert.Equal(t, 2.0, requestCount(t, reg, "/categories", "200"))
	assert.Equal(t, 1.0, requestCount(t, reg, "/questions", "404"))
}

func requestCount(t *testing.T, reg *prometheus.Registry, route, status string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "trivia_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["route"] == route && labels["status"] == status {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig()
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	assert.Equal(t, cfg.HTTPAddr, srv.Addr)
	assert.Equal(t, cfg.ReadTimeout, srv.ReadTimeout)
	assert.Equal(t, cfg.WriteTimeout, srv.WriteTimeout)
}
