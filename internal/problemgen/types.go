package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Question represents a generated quiz item ready for display.
// A Question is never mutated after it leaves the Generator.
type Question struct {
	// ID is an opaque unique identifier (UUID string).
	ID string `json:"id"`

	// Type is the question family.
	Type QuizType `json:"type"`

	// Difficulty is the tier the question was generated for.
	Difficulty Difficulty `json:"difficulty"`

	// Text is the expression or equation shown to the player,
	// e.g. "3 × 4 + 2² = ?" or "3x + 4 = 25".
	Text string `json:"question"`

	// CorrectAnswer is always an exact integer.
	CorrectAnswer int `json:"correctAnswer"`

	// Options contains exactly 4 distinct values, one of which is CorrectAnswer.
	Options []int `json:"options"`

	// Explanation is a brief worked solution shown after the player answers.
	Explanation string `json:"explanation"`

	// Metadata carries the structural description used for signatures.
	Metadata Metadata `json:"metadata"`
}

// Metadata describes how a question was built.
type Metadata struct {
	Operation string `json:"operation,omitempty"`
	Operands  []int  `json:"operands,omitempty"`
}

// Signature returns the structural deduplication key for the question.
// With metadata it is "<operation>:<op1>_<op2>_...", otherwise the raw text.
func (q *Question) Signature() string {
	if q.Metadata.Operation == "" || len(q.Metadata.Operands) == 0 {
		return q.Text
	}
	parts := make([]string, len(q.Metadata.Operands))
	for i, n := range q.Metadata.Operands {
		parts[i] = strconv.Itoa(n)
	}
	return q.Metadata.Operation + ":" + strings.Join(parts, signatureSeparator)
}

// signatureSeparator separates operands inside a signature. The text before
// the first separator is the signature's pattern.
const signatureSeparator = "_"

// QuizType is the question family.
type QuizType string

const (
	QuizArithmetic QuizType = "arithmetics"
	QuizEquation   QuizType = "equations"
)

// AllQuizTypes returns every supported quiz type.
func AllQuizTypes() []QuizType {
	return []QuizType{QuizArithmetic, QuizEquation}
}

// DisplayName returns a human-readable label for the quiz type.
func (t QuizType) DisplayName() string {
	switch t {
	case QuizArithmetic:
		return "arithmetic"
	case QuizEquation:
		return "equations"
	default:
		return string(t)
	}
}

// Valid reports whether t is a supported quiz type.
func (t QuizType) Valid() bool {
	return t == QuizArithmetic || t == QuizEquation
}

// ParseQuizType parses a quiz type name. Both the wire values and the short
// forms "arithmetic" / "equation" are accepted.
func ParseQuizType(s string) (QuizType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arithmetics", "arithmetic":
		return QuizArithmetic, nil
	case "equations", "equation":
		return QuizEquation, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQuizType, s)
	}
}

// Difficulty is the complexity tier, ordered EASY < MEDIUM < HARD.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties from lowest to highest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a supported difficulty.
func (d Difficulty) Valid() bool {
	return d.Rank() > 0
}

// Rank returns 1, 2, 3 for easy, medium, hard and 0 for anything else.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// tierKey identifies a (type, difficulty) bucket in the cache.
type tierKey struct {
	Type       QuizType
	Difficulty Difficulty
}

func (k tierKey) String() string {
	return string(k.Type) + "_" + string(k.Difficulty)
}
