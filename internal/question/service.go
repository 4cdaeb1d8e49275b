package question

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

// categoryCatalog is the slice of the category service listings depend on.
type categoryCatalog interface {
	Types(ctx context.Context) ([]string, error)
	Lookup(ctx context.Context, id int64) (*category.Category, error)
}

// Service implements question listing, search, creation and deletion.
type Service struct {
	repo       *repository.QuestionRepository
	categories categoryCatalog
	logger     zerolog.Logger
}

func NewService(repo *repository.QuestionRepository, categories categoryCatalog, logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// List resolves the request into the matching questions and returns the
// requested page. Searches are ordered by difficulty, plain listings by id.
func (s *Service) List(ctx context.Context, req ListRequest) (Listing, error) {
	var (
		rows []queries.Question
		err  error
	)
	if req.SearchTerm != nil {
		rows, err = s.repo.Search(ctx, *req.SearchTerm, req.CategoryID)
	} else {
		rows, err = s.repo.List(ctx, req.CategoryID)
	}
	if err != nil {
		return Listing{}, apperr.Unprocessable("list questions", err)
	}

	matched := toDomainAll(rows)
	page, err := Paginate(matched, req.Page)
	if err != nil {
		return Listing{}, err
	}

	types, err := s.categories.Types(ctx)
	if err != nil {
		return Listing{}, err
	}

	var current *string
	if req.CategoryID != nil {
		c, err := s.categories.Lookup(ctx, *req.CategoryID)
		if err != nil {
			return Listing{}, err
		}
		if c != nil {
			current = &c.Type
		}
	}

	return Listing{
		Questions:       page,
		Total:           len(matched),
		CurrentCategory: current,
		Categories:      types,
	}, nil
}

// Delete removes a question and returns the refreshed first page.
func (s *Service) Delete(ctx context.Context, id int64) (DeleteResult, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DeleteResult{}, apperr.NotFound("delete question")
		}
		return DeleteResult{}, apperr.Unprocessable("get question", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// removed by a concurrent request between lookup and delete
			return DeleteResult{}, apperr.NotFound("delete question")
		}
		return DeleteResult{}, apperr.Unprocessable("delete question", err)
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")

	page, total, err := s.firstPage(ctx)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedID: id, Questions: page, Total: total}, nil
}

// Create stores a question as submitted and returns the refreshed first page.
// Field validation is left to the schema constraints.
func (s *Service) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	row, err := s.repo.Insert(ctx, repository.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		event := s.logger.Warn().Err(err)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			event = event.Str("sqlstate", pgErr.Code).Str("constraint", pgErr.ConstraintName)
		}
		event.Msg("question rejected by store")
		return CreateResult{}, apperr.Unprocessable("insert question", err)
	}
	s.logger.Info().Int64("question_id", row.ID).Int64("category", row.Category).Msg("question created")

	page, total, err := s.firstPage(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{CreatedID: row.ID, Questions: page, Total: total}, nil
}

func (s *Service) firstPage(ctx context.Context) ([]Question, int, error) {
	rows, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, 0, apperr.Unprocessable("list questions", err)
	}
	all := toDomainAll(rows)
	page, err := Paginate(all, 1)
	if err != nil {
		return nil, 0, err
	}
	return page, len(all), nil
}

// ToDomain converts a stored row into its client-facing shape.
func ToDomain(row queries.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

func toDomainAll(rows []queries.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToDomain(row))
	}
	return out
}
