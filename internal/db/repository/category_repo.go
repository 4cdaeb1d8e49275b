package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]queries.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (queries.Category, error)
	GetCategoryByType(ctx context.Context, categoryType string) (queries.Category, error)
}

// CategoryRepository wraps the read-only category queries.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]queries.Category, error) {
	return r.store.ListCategories(ctx)
}

// GetByID returns ErrNotFound for unknown ids.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (queries.Category, error) {
	c, err := r.store.GetCategoryByID(ctx, id)
	if err != nil {
		return queries.Category{}, translate(err)
	}
	return c, nil
}

// GetByType returns ErrNotFound for unknown type names.
func (r *CategoryRepository) GetByType(ctx context.Context, categoryType string) (queries.Category, error) {
	c, err := r.store.GetCategoryByType(ctx, categoryType)
	if err != nil {
		return queries.Category{}, translate(err)
	}
	return c, nil
}
