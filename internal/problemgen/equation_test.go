package problemgen

import (
	"slices"
	"strings"
	"testing"
)

// scriptedRand replays fixed draws. IntN returns the next scripted int
// (reduced mod n); Float64 returns the next scripted float, or 0.99 once
// the floats run out.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestBuildLinear_ScriptedDraws(t *testing.T) {
	// a = 1+2, x = 1+6, b = 1+3
	r := &scriptedRand{ints: []int{2, 6, 3}}
	q := buildEquationQuestion(r, DifficultyEasy, DefaultProfiles()[DifficultyEasy])

	if q.Text != "3x + 4 = 25" {
		t.Errorf("expected %q, got %q", "3x + 4 = 25", q.Text)
	}
	if q.CorrectAnswer != 7 {
		t.Errorf("expected answer 7, got %d", q.CorrectAnswer)
	}
	if q.Metadata.Operation != "solve" || !slices.Equal(q.Metadata.Operands, []int{3, 4, 25}) {
		t.Errorf("unexpected metadata %+v", q.Metadata)
	}
	if q.Signature() != "solve:3_4_25" {
		t.Errorf("unexpected signature %q", q.Signature())
	}
}

func TestBuildLinear_UnitCoefficient(t *testing.T) {
	r := &scriptedRand{ints: []int{0, 4, 1}}
	q := buildLinear(r, DefaultProfiles()[DifficultyEasy])
	if q.Text != "x + 2 = 7" {
		t.Errorf("expected %q, got %q", "x + 2 = 7", q.Text)
	}
}

func TestBuildQuadratic_ScriptedDraws(t *testing.T) {
	tests := []struct {
		name   string
		ints   []int
		text   string
		answer int
		ops    []int
	}{
		{
			// x1 = 2, x2 = 3, a = 1 (coin keeps it positive)
			name:   "monic",
			ints:   []int{12, 13, 0, 1},
			text:   "x² - 5x = -6",
			answer: 2,
			ops:    []int{1, -5, 6},
		},
		{
			// x1 = -3, x2 = 3, a = -2: b = 0 so the x term is omitted
			name:   "no linear term",
			ints:   []int{7, 13, 1, 0},
			text:   "-2x² = -18",
			answer: -3,
			ops:    []int{-2, 0, 18},
		},
		{
			// x1 = 0 re-rolled to 5, x2 = -1, a = -1
			name:   "zero root re-rolled",
			ints:   []int{10, 4, 9, 0, 0},
			text:   "-x² + 4x = -5",
			answer: -1,
			ops:    []int{-1, 4, 5},
		},
		{
			// x1 = 4, x2 = -2, a = 3
			name:   "smaller root wins",
			ints:   []int{14, 8, 2, 1},
			text:   "3x² - 6x = 24",
			answer: -2,
			ops:    []int{3, -6, -24},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := buildFactorableQuadratic(&scriptedRand{ints: tc.ints})
			if q.Text != tc.text {
				t.Errorf("expected %q, got %q", tc.text, q.Text)
			}
			if q.CorrectAnswer != tc.answer {
				t.Errorf("expected answer %d, got %d", tc.answer, q.CorrectAnswer)
			}
			if !slices.Equal(q.Metadata.Operands, tc.ops) {
				t.Errorf("expected operands %v, got %v", tc.ops, q.Metadata.Operands)
			}
			ok, err := SatisfiesEquation(q.Text, q.CorrectAnswer)
			if err != nil || !ok {
				t.Errorf("answer does not satisfy %q (err=%v)", q.Text, err)
			}
		})
	}
}

func TestBuildMultiTermLinear_Properties(t *testing.T) {
	r := NewSeededRand(21)
	for range 500 {
		q := buildMultiTermLinear(r)

		ops := q.Metadata.Operands
		if len(ops) != 4 {
			t.Fatalf("%q: expected 4 operands, got %v", q.Text, ops)
		}
		netCoeff, netConst, rhs, numTerms := ops[0], ops[1], ops[2], ops[3]
		if netCoeff == 0 {
			t.Errorf("%q: net coefficient is zero", q.Text)
		}
		if numTerms < 3 || numTerms > 5 {
			t.Errorf("%q: %d terms outside [3,5]", q.Text, numTerms)
		}
		if netCoeff*q.CorrectAnswer+netConst != rhs {
			t.Errorf("%q: operands inconsistent with answer %d", q.Text, q.CorrectAnswer)
		}
		if !strings.Contains(q.Text, "x") {
			t.Errorf("%q: no variable term", q.Text)
		}
		ok, err := SatisfiesEquation(q.Text, q.CorrectAnswer)
		if err != nil || !ok {
			t.Errorf("%q: x = %d does not satisfy it (err=%v)", q.Text, q.CorrectAnswer, err)
		}
	}
}

func TestBuildMultiTermLinear_AllConstantsRerolled(t *testing.T) {
	// numTerms = 3; each term: variable coin, sign coin, value.
	// All three terms come up constant, so the first is re-rolled as a variable.
	r := &scriptedRand{ints: []int{
		0,       // numTerms = 3
		1, 0, 4, // constant, sign -, 5
		1, 1, 6, // constant, sign +, 7
		1, 1, 1, // constant, sign +, 2
		1, 2,    // re-roll: sign +, coeff 3
		12,      // x = 2
	}}
	q := buildMultiTermLinear(r)

	if q.Text != "3x + 7 + 2 = 15" {
		t.Errorf("expected %q, got %q", "3x + 7 + 2 = 15", q.Text)
	}
	if q.CorrectAnswer != 2 {
		t.Errorf("expected answer 2, got %d", q.CorrectAnswer)
	}
}

func TestBuildMultiTermLinear_ZeroNetCoefficientFlipped(t *testing.T) {
	r := &scriptedRand{ints: []int{
		0,       // numTerms = 3
		0, 1, 2, // variable, sign +, 3
		0, 0, 2, // variable, sign -, 3
		1, 1, 4, // constant, sign +, 5
		11,      // x = 1
	}}
	q := buildMultiTermLinear(r)

	// 3x - 3x nets to zero, so the first variable term flips to -3x.
	if q.Text != "-3x - 3x + 5 = -1" {
		t.Errorf("expected %q, got %q", "-3x - 3x + 5 = -1", q.Text)
	}
	if q.Metadata.Operands[0] != -6 {
		t.Errorf("expected net coefficient -6, got %d", q.Metadata.Operands[0])
	}
}
