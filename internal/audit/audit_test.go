package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathrush/internal/problemgen"
)

func TestRun_AllTiersPass(t *testing.T) {
	report, err := Run(context.Background(), Options{Count: 40, QuizSize: 10, Seed: 7, Seeded: true})
	require.NoError(t, err)

	require.Len(t, report.Tiers, 6)
	assert.Equal(t, 240, report.Total())
	assert.Zero(t, report.Failed())

	for _, tier := range report.Tiers {
		assert.Equal(t, 40, tier.Total, "%s/%s", tier.Type, tier.Difficulty)
		assert.Equal(t, tier.Total, tier.Passed, "%s/%s failures: %v", tier.Type, tier.Difficulty, tier.Failures)
		assert.GreaterOrEqual(t, tier.FallbackRatio(), 0.0)
		assert.LessOrEqual(t, tier.FallbackRatio(), 1.0)
	}
}

func TestRun_TierOrder(t *testing.T) {
	report, err := Run(context.Background(), Options{Count: 1, Seed: 1, Seeded: true})
	require.NoError(t, err)

	var got []string
	for _, tier := range report.Tiers {
		got = append(got, string(tier.Type)+"/"+string(tier.Difficulty))
	}
	assert.Equal(t, []string{
		"arithmetics/easy", "arithmetics/medium", "arithmetics/hard",
		"equations/easy", "equations/medium", "equations/hard",
	}, got)
}

func TestRun_InvalidCount(t *testing.T) {
	_, err := Run(context.Background(), Options{Count: 0})
	assert.True(t, errors.Is(err, problemgen.ErrInvalidCount))
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Count: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CountsFallbacks(t *testing.T) {
	// A one-value tier forces the retry loop to exhaust quickly.
	profiles := problemgen.DefaultProfiles()
	easy := profiles[problemgen.DifficultyEasy]
	easy.MaxValue = 1
	easy.RetryBudget = 1
	profiles[problemgen.DifficultyEasy] = easy

	report, err := Run(context.Background(), Options{Count: 20, QuizSize: 20, Seed: 3, Seeded: true, Profiles: profiles})
	require.NoError(t, err)

	arith := report.Tiers[0]
	require.Equal(t, problemgen.QuizArithmetic, arith.Type)
	require.Equal(t, problemgen.DifficultyEasy, arith.Difficulty)
	assert.Positive(t, arith.Fallbacks)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("3x + 4 = 25", "3x + 4 = 25"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	// one substitution in ten runes
	assert.InDelta(t, 0.9, Similarity("3x + 4 = 2", "3x + 5 = 2"), 1e-9)
	// × and ÷ are single runes
	assert.InDelta(t, 0.8, Similarity("6 × 3", "6 ÷ 3"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestNearDuplicates(t *testing.T) {
	quiz := []*problemgen.Question{
		{Text: "3x + 4 = 2"},
		{Text: "3x + 5 = 2"},
		{Text: "x² - 5x = -6"},
	}
	pairs := nearDuplicates(quiz, 0.9)
	require.Len(t, pairs, 1)
	assert.Equal(t, "3x + 4 = 2", pairs[0].A)
	assert.Equal(t, "3x + 5 = 2", pairs[0].B)
}

func TestCheckQuestion_HardNeedsComplexity(t *testing.T) {
	q := &problemgen.Question{
		ID:            "id",
		Type:          problemgen.QuizArithmetic,
		Difficulty:    problemgen.DifficultyHard,
		Text:          "2 × 3 + 4 + 5 = ?",
		CorrectAnswer: 15,
		Options:       []int{13, 15, 16, 20},
		Explanation:   "6 + 4 + 5 = 15",
	}
	assert.Contains(t, checkQuestion(q, problemgen.DefaultConfig().Validators), "exponent")

	q.Text = "2³ + 4 + 3 = ?"
	assert.Empty(t, checkQuestion(q, problemgen.DefaultConfig().Validators))
}
