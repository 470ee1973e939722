// Package audit sweeps every quiz tier and checks the generator's output
// invariants: exact integer answers, valid options, HARD complexity and
// quiz-local uniqueness. It also reports fallback usage and near-duplicate
// question pairs.
package audit

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/mathrush/internal/problemgen"
)

// DefaultSimilarity is the Levenshtein similarity at or above which two
// questions of one quiz count as near-duplicates.
const DefaultSimilarity = 0.9

const generatedMetric = "mathrush_questions_generated_total"

// Options controls a sweep.
type Options struct {
	// Count is the number of questions checked per tier.
	Count int

	// QuizSize is the number of questions requested per GenerateQuiz call.
	QuizSize int

	// Seed makes the sweep reproducible when Seeded is set. Tier i uses Seed+i.
	Seed   uint64
	Seeded bool

	// Profiles overrides the default difficulty profiles.
	Profiles problemgen.Profiles

	// Similarity is the near-duplicate threshold; zero means DefaultSimilarity.
	Similarity float64

	Logger *zap.Logger
}

// Failure is one question that broke an invariant.
type Failure struct {
	Question string
	Answer   int
	Reason   string
}

// Pair is two questions of the same quiz whose texts are nearly identical.
type Pair struct {
	A, B       string
	Similarity float64
}

// TierReport is the sweep result for one (type, difficulty) tier.
type TierReport struct {
	Type       problemgen.QuizType
	Difficulty problemgen.Difficulty

	Total    int
	Passed   int
	Failures []Failure

	// Fallbacks is the number of questions emitted by the fallback path.
	Fallbacks int

	NearDuplicates []Pair
}

// FallbackRatio returns the share of the tier's questions that came from
// the fallback path.
func (t TierReport) FallbackRatio() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Fallbacks) / float64(t.Total)
}

// Report is the result of a sweep, one entry per tier in canonical order.
type Report struct {
	Tiers []TierReport
}

// Total returns the number of questions checked.
func (r Report) Total() int {
	n := 0
	for _, t := range r.Tiers {
		n += t.Total
	}
	return n
}

// Failed returns the number of questions that broke an invariant.
func (r Report) Failed() int {
	n := 0
	for _, t := range r.Tiers {
		n += len(t.Failures)
	}
	return n
}

// Run sweeps all six tiers concurrently, one Generator per tier.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Count < 1 {
		return Report{}, fmt.Errorf("%w: count %d", problemgen.ErrInvalidCount, opts.Count)
	}
	if opts.QuizSize < 1 {
		opts.QuizSize = 10
	}
	if opts.Similarity <= 0 {
		opts.Similarity = DefaultSimilarity
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	reg := prometheus.NewRegistry()
	metrics := problemgen.NewMetrics(reg)

	var tiers []TierReport
	for _, qt := range problemgen.AllQuizTypes() {
		for _, d := range problemgen.AllDifficulties() {
			tiers = append(tiers, TierReport{Type: qt, Difficulty: d})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range tiers {
		cfg := problemgen.DefaultConfig()
		cfg.Logger = opts.Logger.With(zap.String("tier", string(tiers[i].Type)+"/"+string(tiers[i].Difficulty)))
		cfg.Metrics = metrics
		if opts.Profiles != nil {
			cfg.Profiles = opts.Profiles
		}
		if opts.Seeded {
			cfg.Rand = problemgen.NewSeededRand(opts.Seed + uint64(i))
		}
		gen := problemgen.New(cfg)
		validators := cfg.Validators

		g.Go(func() error {
			return sweepTier(gctx, gen, validators, opts, &tiers[i])
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	if err := fillFallbacks(reg, tiers); err != nil {
		return Report{}, err
	}
	return Report{Tiers: tiers}, nil
}

func sweepTier(ctx context.Context, gen *problemgen.Generator, validators []problemgen.Validator, opts Options, tr *TierReport) error {
	for tr.Total < opts.Count {
		if err := ctx.Err(); err != nil {
			return err
		}
		size := min(opts.QuizSize, opts.Count-tr.Total)
		quiz, err := gen.GenerateQuiz(tr.Type, tr.Difficulty, size)
		if err != nil {
			return fmt.Errorf("generate %s/%s: %w", tr.Type, tr.Difficulty, err)
		}

		seen := make(map[string]struct{}, len(quiz))
		for _, q := range quiz {
			tr.Total++
			reason := checkQuestion(q, validators)
			if reason == "" {
				if _, dup := seen[q.Signature()]; dup {
					reason = "signature repeated within quiz"
				}
			}
			seen[q.Signature()] = struct{}{}

			if reason != "" {
				tr.Failures = append(tr.Failures, Failure{Question: q.Text, Answer: q.CorrectAnswer, Reason: reason})
				continue
			}
			tr.Passed++
		}
		tr.NearDuplicates = append(tr.NearDuplicates, nearDuplicates(quiz, opts.Similarity)...)
	}
	return nil
}

// checkQuestion returns why q breaks an invariant, or "" if it holds.
func checkQuestion(q *problemgen.Question, validators []problemgen.Validator) string {
	for _, v := range validators {
		if verr := v.Validate(q); verr != nil {
			return verr.Error()
		}
	}
	if q.Type == problemgen.QuizArithmetic && q.Difficulty == problemgen.DifficultyHard &&
		!strings.ContainsAny(q.Text, "²³(") {
		return "hard question has no exponent or parentheses"
	}
	return ""
}

// nearDuplicates returns the pairs of quiz questions whose texts are at
// least threshold similar.
func nearDuplicates(quiz []*problemgen.Question, threshold float64) []Pair {
	var pairs []Pair
	for i := range quiz {
		for j := i + 1; j < len(quiz); j++ {
			s := Similarity(quiz[i].Text, quiz[j].Text)
			if s >= threshold {
				pairs = append(pairs, Pair{A: quiz[i].Text, B: quiz[j].Text, Similarity: s})
			}
		}
	}
	return pairs
}

// Similarity returns 1 - distance/maxLen over runes, where distance is the
// Levenshtein edit distance. Identical strings score 1.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

// fillFallbacks reads the fallback counts for each tier out of reg.
func fillFallbacks(reg prometheus.Gatherer, tiers []TierReport) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if mf.GetName() != generatedMetric {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["path"] != problemgen.PathFallback {
				continue
			}
			for i := range tiers {
				if labels["type"] == string(tiers[i].Type) && labels["difficulty"] == string(tiers[i].Difficulty) {
					tiers[i].Fallbacks = int(m.GetCounter().GetValue())
				}
			}
		}
	}
	return nil
}
