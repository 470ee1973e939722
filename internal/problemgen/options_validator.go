package problemgen

import "fmt"

// OptionsValidator checks the multiple-choice constraints: exactly 4
// distinct options, one of which is the correct answer.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	if len(q.Options) != optionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("must have exactly %d options, got %d", optionCount, len(q.Options)),
		}
	}

	seen := make(map[int]bool, optionCount)
	found := false
	for _, o := range q.Options {
		if seen[o] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %d", o),
			}
		}
		seen[o] = true
		if o == q.CorrectAnswer {
			found = true
		}
	}
	if !found {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %d not found in options", q.CorrectAnswer),
		}
	}
	return nil
}
