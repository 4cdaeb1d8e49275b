package category

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

// Service answers category listings and resolves quiz selectors.
type Service struct {
	repo   *repository.CategoryRepository
	cache  ListCache
	logger zerolog.Logger
}

// NewService builds a category service. A nil cache disables caching.
func NewService(repo *repository.CategoryRepository, cache ListCache, logger zerolog.Logger) *Service {
	if cache == nil {
		cache = nopCache{}
	}
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger.With().Str("component", "category_service").Logger(),
	}
}

// List returns every category ordered by id.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn().Err(err).Msg("category cache read failed")
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unprocessable("list categories", err)
	}
	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toDomain(row))
	}

	if len(categories) > 0 {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// Types returns the category type names ordered by category id.
func (s *Service) Types(ctx context.Context) ([]string, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	return types, nil
}

// Available is Types, except that an empty store is reported as not found.
func (s *Service) Available(ctx context.Context) ([]string, error) {
	types, err := s.Types(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, apperr.NotFound("list categories")
	}
	return types, nil
}

// Lookup returns the category with the given id, or nil when it does not exist.
func (s *Service) Lookup(ctx context.Context, id int64) (*Category, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, apperr.Unprocessable("get category", err)
	}
	c := toDomain(row)
	return &c, nil
}

// Resolve maps a selector onto a stored category, trying the type name first
// and then the id. It returns nil when neither matches.
func (s *Service) Resolve(ctx context.Context, sel Selector) (*Category, error) {
	if sel.Type != "" {
		row, err := s.repo.GetByType(ctx, sel.Type)
		switch {
		case err == nil:
			c := toDomain(row)
			return &c, nil
		case !errors.Is(err, repository.ErrNotFound):
			return nil, apperr.Unprocessable("resolve category type", err)
		}
	}
	if sel.ID > 0 {
		return s.Lookup(ctx, sel.ID)
	}
	return nil, nil
}

func toDomain(row queries.Category) Category {
	return Category{ID: row.ID, Type: row.Type}
}
