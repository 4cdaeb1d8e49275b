package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers bundles the domain endpoints mounted on the router.
type Handlers struct {
	Categories *category.HTTPHandler
	Questions  *question.HTTPHandlers
	Quiz       *quiz.HTTPHandler
}

// NewRouter wires the API routes plus health, ping and metrics.
func NewRouter(cfg *config.App, logger zerolog.Logger, deps []Pinger, h Handlers, registerer prometheus.Registerer) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.RespondNotFound(w)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.RespondMethodNotAllowed(w)
	})

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), deps); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondBadGateway(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/categories", h.Categories.List).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id:[0-9]+}/questions", h.Questions.ListByCategory).Methods(http.MethodGet)
	r.HandleFunc("/questions", h.Questions.List).Methods(http.MethodGet)
	r.HandleFunc("/questions", h.Questions.Post).Methods(http.MethodPost)
	r.HandleFunc("/questions/{id:[0-9]+}", h.Questions.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/quizzes", h.Quiz.Next).Methods(http.MethodPost)

	metrics := newHTTPMetrics(registerer)
	r.Use(requestLogger(logger), metrics.middleware)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	return corsMiddleware.Handler(r)
}

// NewHTTPServer wraps the router in an http.Server with the configured timeouts.
func NewHTTPServer(cfg *config.App, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func pingDependencies(ctx context.Context, deps []Pinger) error {
	for _, dep := range deps {
		if err := dep.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
