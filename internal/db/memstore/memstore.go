// Package memstore is an in-memory stand-in for the Postgres queries, used by
// service and handler tests. It enforces the same constraints as the schema
// (NOT NULL columns, the category foreign key, the difficulty check) and can be
// told to fail individual operations.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
)

// ErrConstraint is returned for rows the real schema would reject.
var ErrConstraint = errors.New("constraint violation")

// Store keeps categories and questions in maps keyed by id.
type Store struct {
	mu         sync.Mutex
	categories map[int64]queries.Category
	questions  map[int64]queries.Question
	nextID     int64
	failures   map[string]error
}

func New() *Store {
	return &Store{
		categories: map[int64]queries.Category{},
		questions:  map[int64]queries.Question{},
		failures:   map[string]error{},
	}
}

// AddCategory seeds a category.
func (s *Store) AddCategory(id int64, categoryType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[id] = queries.Category{ID: id, Type: categoryType}
}

// AddQuestion seeds a question and returns its id.
func (s *Store) AddQuestion(text, answer string, category int64, difficulty int32) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.questions[s.nextID] = queries.Question{
		ID:         s.nextID,
		Question:   text,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
	return s.nextID
}

// Fail makes the named operation (e.g. "ListQuestions") return err until
// cleared with a nil err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// QuestionCount returns the number of stored questions.
func (s *Store) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

func (s *Store) ListCategories(ctx context.Context) ([]queries.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["ListCategories"]; err != nil {
		return nil, err
	}
	items := make([]queries.Category, 0, len(s.categories))
	for _, c := range s.categories {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) GetCategoryByID(ctx context.Context, id int64) (queries.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["GetCategoryByID"]; err != nil {
		return queries.Category{}, err
	}
	c, ok := s.categories[id]
	if !ok {
		return queries.Category{}, pgx.ErrNoRows
	}
	return c, nil
}

func (s *Store) GetCategoryByType(ctx context.Context, categoryType string) (queries.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["GetCategoryByType"]; err != nil {
		return queries.Category{}, err
	}
	for _, c := range s.categories {
		if c.Type == categoryType {
			return c, nil
		}
	}
	return queries.Category{}, pgx.ErrNoRows
}

func (s *Store) ListQuestions(ctx context.Context, categoryID pgtype.Int8) ([]queries.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["ListQuestions"]; err != nil {
		return nil, err
	}
	items := s.filter(func(q queries.Question) bool {
		return !categoryID.Valid || q.Category == categoryID.Int64
	})
	sortByID(items)
	return items, nil
}

var likeUnescaper = strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`)

func (s *Store) SearchQuestions(ctx context.Context, arg queries.SearchQuestionsParams) ([]queries.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["SearchQuestions"]; err != nil {
		return nil, err
	}
	needle := strings.ToLower(likeUnescaper.Replace(arg.Term))
	items := s.filter(func(q queries.Question) bool {
		if arg.CategoryID.Valid && q.Category != arg.CategoryID.Int64 {
			return false
		}
		return strings.Contains(strings.ToLower(q.Question), needle)
	})
	sort.Slice(items, func(i, j int) bool {
		if items[i].Difficulty != items[j].Difficulty {
			return items[i].Difficulty < items[j].Difficulty
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (queries.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["GetQuestion"]; err != nil {
		return queries.Question{}, err
	}
	q, ok := s.questions[id]
	if !ok {
		return queries.Question{}, pgx.ErrNoRows
	}
	return q, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["DeleteQuestion"]; err != nil {
		return 0, err
	}
	if _, ok := s.questions[id]; !ok {
		return 0, nil
	}
	delete(s.questions, id)
	return 1, nil
}

func (s *Store) InsertQuestion(ctx context.Context, arg queries.InsertQuestionParams) (queries.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["InsertQuestion"]; err != nil {
		return queries.Question{}, err
	}
	if !arg.Question.Valid || !arg.Answer.Valid || !arg.Category.Valid || !arg.Difficulty.Valid {
		return queries.Question{}, fmt.Errorf("%w: null value", ErrConstraint)
	}
	if _, ok := s.categories[arg.Category.Int64]; !ok {
		return queries.Question{}, fmt.Errorf("%w: category %d does not exist", ErrConstraint, arg.Category.Int64)
	}
	if arg.Difficulty.Int32 < 1 || arg.Difficulty.Int32 > 5 {
		return queries.Question{}, fmt.Errorf("%w: difficulty %d out of range", ErrConstraint, arg.Difficulty.Int32)
	}
	s.nextID++
	q := queries.Question{
		ID:         s.nextID,
		Question:   arg.Question.String,
		Answer:     arg.Answer.String,
		Category:   arg.Category.Int64,
		Difficulty: arg.Difficulty.Int32,
	}
	s.questions[q.ID] = q
	return q, nil
}

func (s *Store) ListQuizCandidates(ctx context.Context, arg queries.ListQuizCandidatesParams) ([]queries.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["ListQuizCandidates"]; err != nil {
		return nil, err
	}
	excluded := make(map[int64]struct{}, len(arg.ExcludeIDs))
	for _, id := range arg.ExcludeIDs {
		excluded[id] = struct{}{}
	}
	items := s.filter(func(q queries.Question) bool {
		if arg.CategoryID.Valid && q.Category != arg.CategoryID.Int64 {
			return false
		}
		_, seen := excluded[q.ID]
		return !seen
	})
	sortByID(items)
	return items, nil
}

func (s *Store) filter(keep func(queries.Question) bool) []queries.Question {
	var items []queries.Question
	for _, q := range s.questions {
		if keep(q) {
			items = append(items, q)
		}
	}
	return items
}

func sortByID(items []queries.Question) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
