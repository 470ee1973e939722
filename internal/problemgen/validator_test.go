package problemgen

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 3 {
		t.Fatalf("expected 3 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "options", "math-check"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FallbackBudget != 1000 {
		t.Errorf("expected FallbackBudget 1000, got %d", cfg.FallbackBudget)
	}
	if err := cfg.Profiles.Validate(); err != nil {
		t.Errorf("default profiles should validate: %v", err)
	}
}

func TestOptionsValidator(t *testing.T) {
	v := &OptionsValidator{}

	tests := []struct {
		name    string
		options []int
		wantErr bool
	}{
		{"valid", []int{12, 14, 15, 11}, false},
		{"too few", []int{12, 14, 15}, true},
		{"too many", []int{12, 14, 15, 11, 10}, true},
		{"duplicate", []int{12, 14, 14, 11}, true},
		{"answer missing", []int{12, 13, 15, 11}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			q.Options = tc.options
			err := v.Validate(q)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil, got %v", err)
			}
		})
	}
}

func TestRunValidators_FirstFailureWins(t *testing.T) {
	q := validQuestion()
	q.ID = ""
	q.Options = nil

	verr := runValidators(DefaultConfig().Validators, q)
	if verr == nil {
		t.Fatal("expected failure")
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural to fail first, got %q", verr.Validator)
	}

	if verr := runValidators(DefaultConfig().Validators, validQuestion()); verr != nil {
		t.Errorf("valid question rejected: %v", verr)
	}
}

func TestGenerateOptions(t *testing.T) {
	r := NewSeededRand(8)
	for _, answer := range []int{0, -15, 7, 240} {
		for _, spread := range []int{2, 5, 20} {
			for range 50 {
				opts := generateOptions(r, answer, spread)
				q := &Question{CorrectAnswer: answer, Options: opts}
				if err := (&OptionsValidator{}).Validate(q); err != nil {
					t.Fatalf("answer %d spread %d: %v", answer, spread, err)
				}
				for _, o := range opts {
					if d := abs(o - answer); d > spread {
						t.Fatalf("option %d is %d away from %d (spread %d)", o, d, answer, spread)
					}
				}
			}
		}
	}
}
