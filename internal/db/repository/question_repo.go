package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
)

type questionStore interface {
	ListQuestions(ctx context.Context, categoryID pgtype.Int8) ([]queries.Question, error)
	SearchQuestions(ctx context.Context, arg queries.SearchQuestionsParams) ([]queries.Question, error)
	GetQuestion(ctx context.Context, id int64) (queries.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
	InsertQuestion(ctx context.Context, arg queries.InsertQuestionParams) (queries.Question, error)
	ListQuizCandidates(ctx context.Context, arg queries.ListQuizCandidatesParams) ([]queries.Question, error)
}

// QuestionRepository wraps the question queries.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns questions ordered by id, restricted to categoryID when set.
func (r *QuestionRepository) List(ctx context.Context, categoryID *int64) ([]queries.Question, error) {
	return r.store.ListQuestions(ctx, int8From(categoryID))
}

// Search matches term as a case-insensitive substring of the question text,
// ordered by difficulty then id.
func (r *QuestionRepository) Search(ctx context.Context, term string, categoryID *int64) ([]queries.Question, error) {
	return r.store.SearchQuestions(ctx, queries.SearchQuestionsParams{
		Term:       EscapeLike(term),
		CategoryID: int8From(categoryID),
	})
}

// Get fetches one question; ErrNotFound when absent.
func (r *QuestionRepository) Get(ctx context.Context, id int64) (queries.Question, error) {
	q, err := r.store.GetQuestion(ctx, id)
	if err != nil {
		return queries.Question{}, translate(err)
	}
	return q, nil
}

// Delete removes a question; ErrNotFound when no row was affected.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// NewQuestion carries the creation payload as-is; nil fields become SQL NULL.
type NewQuestion struct {
	Question   *string
	Answer     *string
	Category   *int64
	Difficulty *int32
}

// Insert stores a question and returns the persisted row.
func (r *QuestionRepository) Insert(ctx context.Context, nq NewQuestion) (queries.Question, error) {
	return r.store.InsertQuestion(ctx, queries.InsertQuestionParams{
		Question:   textFrom(nq.Question),
		Answer:     textFrom(nq.Answer),
		Category:   int8From(nq.Category),
		Difficulty: int4From(nq.Difficulty),
	})
}

// QuizCandidates lists questions in scope whose ids are not in exclude.
func (r *QuestionRepository) QuizCandidates(ctx context.Context, categoryID *int64, exclude []int64) ([]queries.Question, error) {
	return r.store.ListQuizCandidates(ctx, queries.ListQuizCandidatesParams{
		CategoryID: int8From(categoryID),
		ExcludeIDs: exclude,
	})
}
