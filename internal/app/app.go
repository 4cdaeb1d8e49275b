package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/auth"
	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	"github.com/gokatarajesh/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// New bootstraps logger, Postgres, the optional Redis cache and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("%s pool_max_conns=%d", cfg.Postgres.ConnString(), cfg.Postgres.MaxConns)
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	deps := []server.Pinger{pool}

	var redisClient *redis.Client
	var categoryCache category.ListCache
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		categoryCache = category.NewCache(redisClient, cfg.Redis.CategoryCacheTTL)
		deps = append(deps, redisPinger{client: redisClient})
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; category cache disabled")
	}

	q := queries.New(pool)
	questionRepo := repository.NewQuestionRepository(q)
	categoryRepo := repository.NewCategoryRepository(q)

	categorySvc := category.NewService(categoryRepo, categoryCache, logger)
	questionSvc := question.NewService(questionRepo, categorySvc, logger)
	picker := quiz.NewPicker(questionRepo, categorySvc, quiz.Options{RoundLength: cfg.Quiz.RoundLength}, logger)

	var editorAuth question.Authorizer
	if cfg.Editor.Enabled() {
		tokens := jwt.NewManager(jwt.TokenConfig{
			Secret: []byte(cfg.Editor.JWTSecret),
			TTL:    cfg.Editor.TokenTTL,
			Issuer: cfg.Name,
		})
		editorAuth = auth.NewEditorAuthorizer(tokens)
		logger.Info().Msg("editor token required for question create/delete")
	} else {
		logger.Warn().Msg("EDITOR_JWT_SECRET not set; question create/delete are open")
	}

	router := server.NewRouter(cfg, logger, deps, server.Handlers{
		Categories: category.NewHTTPHandler(categorySvc, logger),
		Questions:  question.NewHTTPHandlers(questionSvc, editorAuth, logger),
		Quiz:       quiz.NewHTTPHandler(picker, logger),
	}, prometheus.DefaultRegisterer)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   server.NewHTTPServer(cfg, router),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}
