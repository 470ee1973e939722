package problemgen

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.ID == "" {
		return &ValidationError{Validator: v.Name(), Message: "id is empty"}
	}
	if !q.Type.Valid() {
		return &ValidationError{Validator: v.Name(), Message: "type must be \"arithmetics\" or \"equations\""}
	}
	if !q.Difficulty.Valid() {
		return &ValidationError{Validator: v.Name(), Message: "difficulty must be \"easy\", \"medium\", or \"hard\""}
	}
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if len(q.Text) > 300 {
		return &ValidationError{Validator: v.Name(), Message: "question text exceeds 300 characters"}
	}
	if q.Explanation == "" {
		return &ValidationError{Validator: v.Name(), Message: "explanation is empty"}
	}
	if len(q.Explanation) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "explanation exceeds 500 characters"}
	}
	return nil
}
