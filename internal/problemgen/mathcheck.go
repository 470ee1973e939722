package problemgen

import "fmt"

// MathCheckValidator independently recomputes the answer from the question
// text. Arithmetic text is evaluated with standard precedence; equations are
// checked by substituting the answer for x.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	switch q.Type {
	case QuizArithmetic:
		computed, err := Evaluate(q.Text)
		if err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("cannot evaluate %q: %s", q.Text, err),
			}
		}
		if computed != q.CorrectAnswer {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("computed %d but answer is %d", computed, q.CorrectAnswer),
			}
		}

	case QuizEquation:
		ok, err := SatisfiesEquation(q.Text, q.CorrectAnswer)
		if err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("cannot evaluate %q: %s", q.Text, err),
			}
		}
		if !ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("x = %d does not satisfy %q", q.CorrectAnswer, q.Text),
			}
		}
	}
	return nil
}
