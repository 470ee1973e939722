package problemgen

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Package-level validator instance for profile validation.
var validate = validator.New()

// DifficultyProfile holds the synthesis knobs for one difficulty tier.
type DifficultyProfile struct {
	// MinValue and MaxValue bound plain integer terms and equation solutions.
	MinValue int `yaml:"min_value" validate:"min=1"`
	MaxValue int `yaml:"max_value" validate:"gtefield=MinValue"`

	// MinBlocks and MaxBlocks bound the number of ×/÷ blocks in an arithmetic question.
	MinBlocks int `yaml:"min_blocks" validate:"min=1"`
	MaxBlocks int `yaml:"max_blocks" validate:"gtefield=MinBlocks"`

	// MinOps and MaxOps bound the ×/÷ steps inside each block.
	MinOps int `yaml:"min_ops" validate:"min=0"`
	MaxOps int `yaml:"max_ops" validate:"gtefield=MinOps"`

	AllowExponents bool `yaml:"allow_exponents"`
	AllowParens    bool `yaml:"allow_parens"`

	// ParenScore is the probability that a term is parenthesized.
	ParenScore float64 `yaml:"paren_score" validate:"min=0,max=1"`

	// ExponentScore is the additional probability width for exponent terms.
	ExponentScore float64 `yaml:"exponent_score" validate:"min=0,max=1"`

	// RetryBudget is the number of candidates tried before falling back.
	RetryBudget int `yaml:"retry_budget" validate:"min=1"`

	// DistributionThreshold is the maximum share of accepted questions a
	// single signature may hold.
	DistributionThreshold float64 `yaml:"distribution_threshold" validate:"gt=0,max=1"`

	// OptionRange is the maximum distance between a distractor and the answer.
	OptionRange int `yaml:"option_range" validate:"min=2"`

	// RequireComplexity forces at least one exponent or parenthesized
	// term into every arithmetic question.
	RequireComplexity bool `yaml:"require_complexity"`
}

// Profiles maps each difficulty to its profile.
type Profiles map[Difficulty]DifficultyProfile

// DefaultProfiles returns the standard tier table.
func DefaultProfiles() Profiles {
	return Profiles{
		DifficultyEasy: {
			MinValue: 1, MaxValue: 20,
			MinBlocks: 2, MaxBlocks: 2,
			MinOps: 0, MaxOps: 1,
			ParenScore: 0.15, ExponentScore: 0.20,
			RetryBudget:           20,
			DistributionThreshold: 0.15,
			OptionRange:           5,
		},
		DifficultyMedium: {
			MinValue: 1, MaxValue: 50,
			MinBlocks: 2, MaxBlocks: 3,
			MinOps: 1, MaxOps: 2,
			AllowExponents: true, AllowParens: true,
			ParenScore: 0.30, ExponentScore: 0.20,
			RetryBudget:           30,
			DistributionThreshold: 0.20,
			OptionRange:           10,
		},
		DifficultyHard: {
			MinValue: 1, MaxValue: 100,
			MinBlocks: 3, MaxBlocks: 4,
			MinOps: 1, MaxOps: 3,
			AllowExponents: true, AllowParens: true,
			ParenScore: 0.50, ExponentScore: 0.40,
			RetryBudget:           40,
			DistributionThreshold: 0.25,
			OptionRange:           20,
			RequireComplexity:     true,
		},
	}
}

// Validate checks every profile and that all three difficulties are present.
func (p Profiles) Validate() error {
	for _, d := range AllDifficulties() {
		prof, ok := p[d]
		if !ok {
			return fmt.Errorf("missing profile for difficulty %q", d)
		}
		if err := validate.Struct(prof); err != nil {
			return fmt.Errorf("profile %q: %w", d, err)
		}
		if prof.RequireComplexity && !prof.AllowExponents && !prof.AllowParens {
			return fmt.Errorf("profile %q: require_complexity needs exponents or parens", d)
		}
	}
	for d := range p {
		if !d.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
		}
	}
	return nil
}

// LoadProfiles reads profile overrides from a YAML file. Difficulties absent
// from the file keep their default profile. A profile present in the file
// replaces the default wholesale.
func LoadProfiles(path string) (Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes YAML profile overrides on top of DefaultProfiles.
func ParseProfiles(data []byte) (Profiles, error) {
	var raw map[string]DifficultyProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	profiles := DefaultProfiles()
	for name, prof := range raw {
		d, err := ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		profiles[d] = prof
	}

	if err := profiles.Validate(); err != nil {
		return nil, err
	}
	return profiles, nil
}
