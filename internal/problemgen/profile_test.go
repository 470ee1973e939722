package problemgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfiles(t *testing.T) {
	profiles := DefaultProfiles()
	require.NoError(t, profiles.Validate())

	easy := profiles[DifficultyEasy]
	assert.Equal(t, 1, easy.MinValue)
	assert.Equal(t, 20, easy.MaxValue)
	assert.Equal(t, 2, easy.MinBlocks)
	assert.Equal(t, 2, easy.MaxBlocks)
	assert.False(t, easy.AllowExponents)
	assert.False(t, easy.AllowParens)
	assert.Equal(t, 20, easy.RetryBudget)
	assert.InDelta(t, 0.15, easy.DistributionThreshold, 1e-9)

	medium := profiles[DifficultyMedium]
	assert.Equal(t, 50, medium.MaxValue)
	assert.Equal(t, 3, medium.MaxBlocks)
	assert.Equal(t, 30, medium.RetryBudget)

	hard := profiles[DifficultyHard]
	assert.Equal(t, 100, hard.MaxValue)
	assert.Equal(t, 3, hard.MinBlocks)
	assert.Equal(t, 4, hard.MaxBlocks)
	assert.Equal(t, 3, hard.MaxOps)
	assert.Equal(t, 40, hard.RetryBudget)
	assert.True(t, hard.RequireComplexity)
}

func TestParseProfiles_Override(t *testing.T) {
	data := []byte(`
easy:
  min_value: 1
  max_value: 30
  min_blocks: 2
  max_blocks: 3
  min_ops: 0
  max_ops: 1
  retry_budget: 25
  distribution_threshold: 0.2
  option_range: 6
`)
	profiles, err := ParseProfiles(data)
	require.NoError(t, err)

	assert.Equal(t, 30, profiles[DifficultyEasy].MaxValue)
	assert.Equal(t, 25, profiles[DifficultyEasy].RetryBudget)
	assert.Equal(t, 6, profiles[DifficultyEasy].OptionRange)
	// Untouched difficulties keep their defaults.
	assert.Equal(t, DefaultProfiles()[DifficultyHard], profiles[DifficultyHard])
}

func TestParseProfiles_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown difficulty", "expert:\n  max_value: 10\n"},
		{"bad yaml", "easy: [unterminated"},
		{"min above max", "medium:\n  min_value: 60\n  max_value: 50\n  min_blocks: 2\n  max_blocks: 3\n  min_ops: 1\n  max_ops: 2\n  retry_budget: 30\n  distribution_threshold: 0.2\n  option_range: 10\n"},
		{"zero retry budget", "easy:\n  min_value: 1\n  max_value: 20\n  min_blocks: 2\n  max_blocks: 2\n  max_ops: 1\n  retry_budget: 0\n  distribution_threshold: 0.15\n  option_range: 5\n"},
		{"complexity without features", "hard:\n  min_value: 1\n  max_value: 100\n  min_blocks: 3\n  max_blocks: 4\n  min_ops: 1\n  max_ops: 3\n  retry_budget: 40\n  distribution_threshold: 0.25\n  option_range: 20\n  require_complexity: true\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProfiles([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultProfiles(), profiles)

	_, err = LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
