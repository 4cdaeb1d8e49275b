// Package quiz picks the next question of a quiz round. Rounds are stateless on
// the server: the client resends the ids it has already been asked each time.
package quiz

import (
	"context"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

// DefaultRoundLength is the number of questions in a round.
const DefaultRoundLength = 5

var picksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_quiz_picks_total",
	Help: "Quiz next-question requests by outcome.",
}, []string{"outcome"})

type categoryResolver interface {
	Resolve(ctx context.Context, sel category.Selector) (*category.Category, error)
}

// Request is the caller-held round state.
type Request struct {
	PreviousQuestions []int64
	// Category nil, or a zero selector, means all categories.
	Category *category.Selector
}

// Result carries the next question, or nil when the round is complete.
type Result struct {
	Question *question.Question
}

// Complete reports whether the round has ended.
func (r Result) Complete() bool {
	return r.Question == nil
}

// Options tunes the picker. Zero values select the defaults.
type Options struct {
	RoundLength int
	// Intn returns a uniform int in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int
}

// Picker selects one unseen question uniformly at random.
type Picker struct {
	repo        *repository.QuestionRepository
	categories  categoryResolver
	roundLength int
	intn        func(n int) int
	logger      zerolog.Logger
}

func NewPicker(repo *repository.QuestionRepository, categories categoryResolver, opts Options, logger zerolog.Logger) *Picker {
	if opts.RoundLength <= 0 {
		opts.RoundLength = DefaultRoundLength
	}
	if opts.Intn == nil {
		opts.Intn = rand.IntN
	}
	return &Picker{
		repo:        repo,
		categories:  categories,
		roundLength: opts.RoundLength,
		intn:        opts.Intn,
		logger:      logger.With().Str("component", "quiz_picker").Logger(),
	}
}

// Next returns a question in scope that is not in req.PreviousQuestions. The
// round is complete once RoundLength questions were asked or nothing is left.
// A selector that names no stored category scopes the round to nothing rather
// than to every category.
func (p *Picker) Next(ctx context.Context, req Request) (Result, error) {
	if len(req.PreviousQuestions) >= p.roundLength {
		return p.complete("round_length"), nil
	}

	var scope *int64
	if req.Category != nil && !req.Category.IsZero() {
		c, err := p.categories.Resolve(ctx, *req.Category)
		if err != nil {
			return Result{}, err
		}
		if c == nil {
			p.logger.Debug().Int64("category_id", req.Category.ID).Str("category_type", req.Category.Type).Msg("quiz category did not resolve")
			return p.complete("unknown_category"), nil
		}
		scope = &c.ID
	}

	rows, err := p.repo.QuizCandidates(ctx, scope, req.PreviousQuestions)
	if err != nil {
		return Result{}, apperr.Unprocessable("list quiz candidates", err)
	}
	if len(rows) == 0 {
		return p.complete("exhausted"), nil
	}

	picked := question.ToDomain(rows[p.intn(len(rows))])
	picksTotal.WithLabelValues("question").Inc()
	return Result{Question: &picked}, nil
}

func (p *Picker) complete(reason string) Result {
	picksTotal.WithLabelValues("complete_" + reason).Inc()
	return Result{}
}
