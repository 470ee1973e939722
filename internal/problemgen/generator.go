package problemgen

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator synthesizes quiz questions and keeps the prior-art cache used to
// avoid repetition. A Generator is not safe for concurrent use: callers must
// serialize access or use one Generator per worker.
type Generator struct {
	config  Config
	cache   *Cache
	rand    Rand
	log     *zap.Logger
	metrics *Metrics
}

// New creates a Generator with the given config. Nil Rand, Logger and
// Profiles are replaced with defaults.
func New(cfg Config) *Generator {
	cfg = cfg.withDefaults()
	return &Generator{
		config:  cfg,
		cache:   NewCache(),
		rand:    cfg.Rand,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Cache returns the generator's prior-art cache.
func (g *Generator) Cache() *Cache {
	return g.cache
}

// ClearCache forgets every previously emitted question. It is the only way
// to reset prior-art state.
func (g *Generator) ClearCache() {
	g.cache.Clear()
}

// GenerateQuestion returns one question for the tier. Cached questions whose
// ids are in excludeIDs are ignored by the duplicate check.
func (g *Generator) GenerateQuestion(t QuizType, d Difficulty, excludeIDs ...string) (*Question, error) {
	prof, err := g.profile(t, d)
	if err != nil {
		return nil, err
	}
	exclude := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = struct{}{}
	}
	return g.generate(t, d, prof, exclude, nil), nil
}

// GenerateQuiz returns count questions for the tier. No two questions of
// the returned quiz share a signature.
func (g *Generator) GenerateQuiz(t QuizType, d Difficulty, count int) ([]*Question, error) {
	prof, err := g.profile(t, d)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	questions := make([]*Question, 0, count)
	exclude := make(map[string]struct{}, count)
	seen := make(map[string]struct{}, count)
	for range count {
		q := g.generate(t, d, prof, exclude, seen)
		questions = append(questions, q)
		exclude[q.ID] = struct{}{}
		seen[q.Signature()] = struct{}{}
	}
	return questions, nil
}

func (g *Generator) profile(t QuizType, d Difficulty) (DifficultyProfile, error) {
	if !t.Valid() {
		return DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownQuizType, t)
	}
	if !d.Valid() {
		return DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	prof, ok := g.config.Profiles[d]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: no profile for %q", ErrUnknownDifficulty, d)
	}
	if prof.OptionRange < 2 {
		prof.OptionRange = 2
	}
	return prof, nil
}

// outcome is the result of one retry-loop attempt.
type outcome int

const (
	outcomeAccept outcome = iota
	outcomeReject
)

// generate runs the retry loop and falls back once the budget is spent.
// quizSeen holds the signatures already placed in the current quiz; it is
// nil outside GenerateQuiz.
func (g *Generator) generate(t QuizType, d Difficulty, prof DifficultyProfile, exclude, quizSeen map[string]struct{}) *Question {
	for attempt := 1; attempt <= prof.RetryBudget; attempt++ {
		candidate := g.candidate(t, d, prof)

		res, reason := g.accept(candidate, prof, exclude, quizSeen)
		if res == outcomeReject {
			g.metrics.recordRejected(t, d, reason)
			g.log.Debug("candidate rejected",
				zap.String("reason", reason),
				zap.String("type", string(t)),
				zap.String("difficulty", string(d)),
				zap.Int("attempt", attempt),
				zap.String("question", candidate.Text),
			)
			continue
		}

		g.cache.Commit(candidate)
		g.metrics.recordGenerated(t, d, PathAccepted, attempt)
		return candidate
	}

	q, drawn := g.fallback(t, d, prof, quizSeen)
	g.log.Info("retry budget exhausted, using fallback question",
		zap.String("type", string(t)),
		zap.String("difficulty", string(d)),
		zap.Int("retry_budget", prof.RetryBudget),
		zap.Int("fallback_draws", drawn),
	)
	g.cache.Commit(q)
	g.metrics.recordGenerated(t, d, PathFallback, prof.RetryBudget+drawn)
	return q
}

// candidate builds one complete question, options included.
func (g *Generator) candidate(t QuizType, d Difficulty, prof DifficultyProfile) *Question {
	var q *Question
	if t == QuizArithmetic {
		q = buildArithmeticQuestion(g.rand, prof)
	} else {
		q = buildEquationQuestion(g.rand, d, prof)
	}
	q.ID = uuid.NewString()
	q.Type = t
	q.Difficulty = d
	q.Options = generateOptions(g.rand, q.CorrectAnswer, prof.OptionRange)
	return q
}

// accept applies the integrity chain, the quiz-local uniqueness check, and
// the three cache checks in order.
func (g *Generator) accept(q *Question, prof DifficultyProfile, exclude, quizSeen map[string]struct{}) (outcome, string) {
	if verr := runValidators(g.config.Validators, q); verr != nil {
		return outcomeReject, reasonInvalid
	}
	sig := q.Signature()
	if _, dup := quizSeen[sig]; dup {
		return outcomeReject, reasonQuizDuplicate
	}
	if g.cache.IsDuplicate(q, exclude) {
		return outcomeReject, reasonDuplicate
	}
	if !g.cache.CheckDistribution(sig, q.Type, q.Difficulty, prof.DistributionThreshold) {
		return outcomeReject, reasonDistribution
	}
	if g.cache.IsModeCollapsed(sig, q.Type, q.Difficulty) {
		return outcomeReject, reasonModeCollapse
	}
	return outcomeAccept, ""
}
