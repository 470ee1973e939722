package problemgen

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Config controls the behavior of the Generator.
type Config struct {
	// Profiles holds the per-difficulty synthesis knobs.
	Profiles Profiles

	// Validators is the ordered list of integrity checks run on every
	// candidate. The first failure rejects the candidate.
	Validators []Validator

	// Rand is the source of every random draw. Nil means an unseeded
	// process-local source.
	Rand Rand

	// Logger receives rejection and fallback events. Nil means no logging.
	Logger *zap.Logger

	// Metrics records generation outcomes. Nil disables metrics.
	Metrics *Metrics

	// FallbackBudget bounds how many fallback candidates are drawn while
	// looking for one that is new to the current quiz.
	FallbackBudget int
}

// DefaultConfig returns a Config with the standard profiles, the standard
// validator chain, and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Profiles: DefaultProfiles(),
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&MathCheckValidator{},
		},
		FallbackBudget: 1000,
	}
}

// withDefaults fills nil fields so the Generator never has to nil-check them.
func (c Config) withDefaults() Config {
	if c.Profiles == nil {
		c.Profiles = DefaultProfiles()
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.FallbackBudget < 1 {
		c.FallbackBudget = 1
	}
	return c
}
