package queries

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listQuestions = `
SELECT id, question, answer, category, difficulty FROM questions
WHERE ($1::bigint IS NULL OR category = $1::bigint)
ORDER BY id
`

// ListQuestions returns every question, optionally restricted to one category.
func (q *Queries) ListQuestions(ctx context.Context, categoryID pgtype.Int8) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions, categoryID)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

const searchQuestions = `
SELECT id, question, answer, category, difficulty FROM questions
WHERE question ILIKE '%' || $1::text || '%'
  AND ($2::bigint IS NULL OR category = $2::bigint)
ORDER BY difficulty, id
`

type SearchQuestionsParams struct {
	// Term must already have LIKE metacharacters escaped with a backslash.
	Term       string
	CategoryID pgtype.Int8
}

func (q *Queries) SearchQuestions(ctx context.Context, arg SearchQuestionsParams) ([]Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, arg.Term, arg.CategoryID)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

const getQuestion = `
SELECT id, question, answer, category, difficulty FROM questions
WHERE id = $1
`

func (q *Queries) GetQuestion(ctx context.Context, id int64) (Question, error) {
	row := q.db.QueryRow(ctx, getQuestion, id)
	var i Question
	err := row.Scan(&i.ID, &i.Question, &i.Answer, &i.Category, &i.Difficulty)
	return i, err
}

const deleteQuestion = `
DELETE FROM questions
WHERE id = $1
`

// DeleteQuestion reports the number of rows removed.
func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertQuestion = `
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty
`

// InsertQuestionParams uses nullable types so that missing fields reach the
// NOT NULL constraints instead of being coerced to zero values.
type InsertQuestionParams struct {
	Question   pgtype.Text
	Answer     pgtype.Text
	Category   pgtype.Int8
	Difficulty pgtype.Int4
}

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty)
	var i Question
	err := row.Scan(&i.ID, &i.Question, &i.Answer, &i.Category, &i.Difficulty)
	return i, err
}

const listQuizCandidates = `
SELECT id, question, answer, category, difficulty FROM questions
WHERE ($1::bigint IS NULL OR category = $1::bigint)
  AND NOT (id = ANY($2::bigint[]))
ORDER BY id
`

type ListQuizCandidatesParams struct {
	CategoryID pgtype.Int8
	ExcludeIDs []int64
}

func (q *Queries) ListQuizCandidates(ctx context.Context, arg ListQuizCandidatesParams) ([]Question, error) {
	exclude := arg.ExcludeIDs
	if exclude == nil {
		exclude = []int64{}
	}
	rows, err := q.db.Query(ctx, listQuizCandidates, arg.CategoryID, exclude)
	if err != nil {
		return nil, err
	}
	return collectQuestions(rows)
}

func collectQuestions(rows pgx.Rows) ([]Question, error) {
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(&i.ID, &i.Question, &i.Answer, &i.Category, &i.Difficulty); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
