package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the player's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - A single letter a-d (case-insensitive) selects the option at that position
// - Anything else must parse as an integer; leading zeros and a leading "+"
//   are ignored (e.g., "007" matches 7)
func CheckAnswer(input string, q *Question) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if idx, ok := OptionIndex(input); ok {
		if idx >= len(q.Options) {
			return false
		}
		return q.Options[idx] == q.CorrectAnswer
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return false
	}
	return n == q.CorrectAnswer
}

// OptionLabel returns the letter shown next to the option at index i.
func OptionLabel(i int) string {
	return string(rune('a' + i))
}

// OptionIndex maps an option letter back to its index.
func OptionIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := strings.ToLower(s)[0]
	if c < 'a' || c >= 'a'+optionCount {
		return 0, false
	}
	return int(c - 'a'), true
}
