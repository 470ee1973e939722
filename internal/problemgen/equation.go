package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// buildEquationQuestion synthesizes one equation body for the given tier.
func buildEquationQuestion(r Rand, d Difficulty, prof DifficultyProfile) *Question {
	switch d {
	case DifficultyMedium:
		return buildMultiTermLinear(r)
	case DifficultyHard:
		return buildFactorableQuadratic(r)
	default:
		return buildLinear(r, prof)
	}
}

// buildLinear builds "ax + b = c" with a in [1,5].
func buildLinear(r Rand, prof DifficultyProfile) *Question {
	a := randInt(r, 1, 5)
	x := randInt(r, prof.MinValue, prof.MaxValue)
	b := randInt(r, 1, prof.MaxValue)
	c := a*x + b

	return &Question{
		Type:          QuizEquation,
		Text:          fmt.Sprintf("%s + %d = %d", formatCoeff(a, "x"), b, c),
		CorrectAnswer: x,
		Explanation: fmt.Sprintf("Subtract %d from both sides: %s = %d. Then divide by %d: x = %d.",
			b, formatCoeff(a, "x"), c-b, a, x),
		Metadata: Metadata{
			Operation: "solve",
			Operands:  []int{a, b, c},
		},
	}
}

// linearTerm is one signed summand on the left side of a multi-term equation.
type linearTerm struct {
	coeff    int // non-zero for variable terms
	constant int
}

func (t linearTerm) isVariable() bool { return t.coeff != 0 }

func (t linearTerm) value() int {
	if t.isVariable() {
		return t.coeff
	}
	return t.constant
}

func (t linearTerm) body() string {
	if t.isVariable() {
		return formatCoeff(abs(t.coeff), "x")
	}
	return strconv.Itoa(abs(t.constant))
}

func randomLinearTerm(r Rand, variable bool) linearTerm {
	sign := 1
	if coin(r) {
		sign = -1
	}
	if variable {
		return linearTerm{coeff: sign * randInt(r, 1, 9)}
	}
	return linearTerm{constant: sign * randInt(r, 1, 20)}
}

// buildMultiTermLinear builds an equation with 3-5 signed terms such as
// "3x - 7 + 2x + 4 = 32". The net x coefficient is never zero.
func buildMultiTermLinear(r Rand) *Question {
	numTerms := randInt(r, 3, 5)
	terms := make([]linearTerm, numTerms)
	hasVar := false
	for i := range terms {
		terms[i] = randomLinearTerm(r, coin(r))
		if terms[i].isVariable() {
			hasVar = true
		}
	}
	if !hasVar {
		terms[0] = randomLinearTerm(r, true)
	}

	netCoeff, netConst := 0, 0
	for _, t := range terms {
		netCoeff += t.coeff
		netConst += t.constant
	}
	if netCoeff == 0 {
		for i, t := range terms {
			if t.isVariable() {
				terms[i].coeff = -t.coeff
				netCoeff -= 2 * t.coeff
				break
			}
		}
	}

	x := randInt(r, -10, 10)
	rhs := netCoeff*x + netConst

	var b strings.Builder
	for i, t := range terms {
		switch {
		case i == 0 && t.value() < 0:
			b.WriteString("-" + t.body())
		case i == 0:
			b.WriteString(t.body())
		case t.value() < 0:
			b.WriteString(" - " + t.body())
		default:
			b.WriteString(" + " + t.body())
		}
	}
	fmt.Fprintf(&b, " = %d", rhs)

	combined := formatSignedCoeff(netCoeff, "x")
	switch {
	case netConst > 0:
		combined += fmt.Sprintf(" + %d", netConst)
	case netConst < 0:
		combined += fmt.Sprintf(" - %d", -netConst)
	}

	return &Question{
		Type:          QuizEquation,
		Text:          b.String(),
		CorrectAnswer: x,
		Explanation: fmt.Sprintf("Combine like terms: %s = %d. Move the constant: %s = %d. Divide by %d: x = %d.",
			combined, rhs, formatSignedCoeff(netCoeff, "x"), rhs-netConst, netCoeff, x),
		Metadata: Metadata{
			Operation: "solve",
			Operands:  []int{netCoeff, netConst, rhs, numTerms},
		},
	}
}

// nonZeroRoot draws a root in [-10,10], re-rolling 0 into [1,10].
func nonZeroRoot(r Rand) int {
	x := randInt(r, -10, 10)
	if x == 0 {
		x = randInt(r, 1, 10)
	}
	return x
}

// buildFactorableQuadratic expands a(x - x1)(x - x2) = 0 and presents it as
// "ax² + bx = -c". The answer is the root closest to zero (x1 on ties).
func buildFactorableQuadratic(r Rand) *Question {
	x1 := nonZeroRoot(r)
	x2 := nonZeroRoot(r)
	a := randInt(r, 1, 5)
	if coin(r) {
		a = -a
	}

	b := -a * (x1 + x2)
	c := a * x1 * x2

	answer := x1
	if abs(x2) < abs(x1) {
		answer = x2
	}

	lhs := formatSignedCoeff(a, "x"+glyphSquare)
	switch {
	case b > 0:
		lhs += " + " + formatCoeff(b, "x")
	case b < 0:
		lhs += " - " + formatCoeff(-b, "x")
	}
	text := fmt.Sprintf("%s = %d", lhs, -c)

	return &Question{
		Type:          QuizEquation,
		Text:          text,
		CorrectAnswer: answer,
		Explanation: fmt.Sprintf("Move everything to one side and factor: %s(x %s)(x %s) = 0. The roots are %d and %d; the answer is the root closest to zero, %d.",
			factorPrefix(a), signedConst(-x1), signedConst(-x2), x1, x2, answer),
		Metadata: Metadata{
			Operation: "solve",
			Operands:  []int{a, b, c},
		},
	}
}

// formatCoeff renders a positive coefficient with its variable, dropping a
// coefficient of 1: (3, "x") -> "3x", (1, "x") -> "x".
func formatCoeff(n int, variable string) string {
	if n == 1 {
		return variable
	}
	return strconv.Itoa(n) + variable
}

// formatSignedCoeff is formatCoeff with a leading "-" for negative n.
func formatSignedCoeff(n int, variable string) string {
	if n < 0 {
		return "-" + formatCoeff(-n, variable)
	}
	return formatCoeff(n, variable)
}

// signedConst renders n as "+ n" or "- |n|".
func signedConst(n int) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}

func factorPrefix(a int) string {
	switch a {
	case 1:
		return ""
	case -1:
		return "-"
	default:
		return strconv.Itoa(a)
	}
}
