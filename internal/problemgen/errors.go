package problemgen

import "errors"

var (
	// ErrUnknownQuizType is returned for a quiz type outside the supported set.
	ErrUnknownQuizType = errors.New("unknown quiz type")

	// ErrUnknownDifficulty is returned for a difficulty outside the supported set.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrInvalidCount is returned when a quiz is requested with count < 1.
	ErrInvalidCount = errors.New("quiz count must be at least 1")
)
