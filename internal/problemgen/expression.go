package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// multiplicativeCap bounds plain terms that feed a × or ÷ chain so that
// block values stay small enough to add up by hand.
const multiplicativeCap = 10

// Term is the smallest synthesis unit: a plain integer, an exponent
// such as "3²", or a parenthesized pair such as "(7 - 3)".
type Term struct {
	Value   int
	Display string
}

// Block is a chain of terms joined left to right by × and ÷.
// Its Value is always an exact integer.
type Block struct {
	Value   int
	Display string
	Ops     int
}

// termKind selects which term shape buildTerm produces.
type termKind int

const (
	termPlain termKind = iota
	termParen
	termExponent
)

// buildTerm draws a single threshold and produces a parenthesized,
// exponent, or plain term. A zero value becomes the literal 2 so the
// term can never divide by zero downstream.
func buildTerm(r Rand, min, max int, allowExponent, allowParens bool, prof DifficultyProfile) Term {
	threshold := r.Float64()
	kind := termPlain
	switch {
	case allowParens && threshold < prof.ParenScore:
		kind = termParen
	case allowExponent && threshold < prof.ParenScore+prof.ExponentScore:
		kind = termExponent
	}
	return buildTermOfKind(r, kind, min, max)
}

func buildTermOfKind(r Rand, kind termKind, min, max int) Term {
	var t Term
	switch kind {
	case termParen:
		t = parenTerm(r)
	case termExponent:
		t = exponentTerm(r)
	default:
		n := randInt(r, min, max)
		t = Term{Value: n, Display: strconv.Itoa(n)}
	}
	if t.Value == 0 {
		return Term{Value: 2, Display: "2"}
	}
	return t
}

// parenTerm builds "(a + b)" or "(a - b)" with a, b in [1,10] and a >= b.
func parenTerm(r Rand) Term {
	a := randInt(r, 1, 10)
	b := randInt(r, 1, 10)
	if coin(r) {
		return Term{Value: a + b, Display: fmt.Sprintf("(%d + %d)", a, b)}
	}
	if b > a {
		a, b = b, a
	}
	return Term{Value: a - b, Display: fmt.Sprintf("(%d - %d)", a, b)}
}

// exponentTerm builds base² or base³ with base in [2,5].
func exponentTerm(r Rand) Term {
	base := randInt(r, 2, 5)
	if coin(r) {
		return Term{Value: base * base, Display: strconv.Itoa(base) + glyphSquare}
	}
	return Term{Value: base * base * base, Display: strconv.Itoa(base) + glyphCube}
}

// buildBlock seeds a block with one term and applies between minOps and
// maxOps multiply/divide steps. Division only uses exact divisors of the
// running value; when none exist the step multiplies instead.
func buildBlock(r Rand, min, max, minOps, maxOps int, allowExponent, allowParens bool, prof DifficultyProfile, forceComplexity bool) Block {
	termMax := capTo(max, multiplicativeCap)
	termMin := capTo(min, termMax)

	var seed Term
	if forceComplexity {
		seed = complexTerm(r, allowExponent, allowParens, termMin, termMax)
	} else {
		seed = buildTerm(r, termMin, termMax, allowExponent, allowParens, prof)
	}

	value := seed.Value
	var b strings.Builder
	b.WriteString(seed.Display)

	ops := randInt(r, minOps, maxOps)
	for range ops {
		if !coin(r) {
			if divisors := divisorsUpTo(value, max); len(divisors) > 0 {
				d := pick(r, divisors)
				value /= d
				fmt.Fprintf(&b, " %s %d", opDiv, d)
				continue
			}
		}
		t := buildTerm(r, termMin, termMax, allowExponent, allowParens, prof)
		value *= t.Value
		fmt.Fprintf(&b, " %s %s", opMul, t.Display)
	}

	block := Block{Value: value, Display: b.String(), Ops: ops}

	// Safety net: the display must reproduce the value exactly.
	if got, err := Evaluate(block.Display); err != nil || got != block.Value {
		n := randInt(r, termMin, termMax)
		return Block{Value: n, Display: strconv.Itoa(n)}
	}
	return block
}

// complexTerm returns an exponent or parenthesized term, whichever the
// flags allow, choosing by coin flip when both are allowed.
func complexTerm(r Rand, allowExponent, allowParens bool, min, max int) Term {
	switch {
	case allowExponent && allowParens:
		if coin(r) {
			return buildTermOfKind(r, termParen, min, max)
		}
		return buildTermOfKind(r, termExponent, min, max)
	case allowParens:
		return buildTermOfKind(r, termParen, min, max)
	default:
		return buildTermOfKind(r, termExponent, min, max)
	}
}

// divisorsUpTo returns the divisors of |n| in [2, max].
func divisorsUpTo(n, max int) []int {
	n = abs(n)
	var out []int
	for d := 2; d <= max && d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// hasComplexity reports whether a display fragment contains an exponent
// glyph or a parenthesis.
func hasComplexity(display string) bool {
	return strings.ContainsAny(display, glyphSquare+glyphCube+"(")
}

// buildArithmeticQuestion synthesizes the body of one arithmetic question:
// blocks joined by + and -.
func buildArithmeticQuestion(r Rand, prof DifficultyProfile) *Question {
	numBlocks := randInt(r, prof.MinBlocks, prof.MaxBlocks)

	blocks := make([]Block, 0, numBlocks)
	featured := false
	for i := range numBlocks {
		force := prof.RequireComplexity && !featured && i == numBlocks-1
		blk := buildBlock(r, prof.MinValue, prof.MaxValue, prof.MinOps, prof.MaxOps,
			prof.AllowExponents, prof.AllowParens, prof, force)
		if hasComplexity(blk.Display) {
			featured = true
		}
		blocks = append(blocks, blk)
	}

	return assembleArithmetic(r, blocks)
}

// assembleArithmetic joins blocks left to right with random + or -.
func assembleArithmetic(r Rand, blocks []Block) *Question {
	total := blocks[0].Value
	operands := []int{blocks[0].Value}
	values := []string{strconv.Itoa(blocks[0].Value)}

	var b strings.Builder
	b.WriteString(blocks[0].Display)
	var expl strings.Builder
	expl.WriteString(strconv.Itoa(blocks[0].Value))

	for _, blk := range blocks[1:] {
		op := "+"
		if coin(r) {
			op = "-"
			total -= blk.Value
		} else {
			total += blk.Value
		}
		fmt.Fprintf(&b, " %s %s", op, blk.Display)
		fmt.Fprintf(&expl, " %s %d", op, blk.Value)
		operands = append(operands, blk.Value)
		values = append(values, strconv.Itoa(blk.Value))
	}

	explanation := fmt.Sprintf("Work out each group first: %s. Then add and subtract from left to right: %s = %d.",
		strings.Join(values, ", "), expl.String(), total)

	return &Question{
		Type:          QuizArithmetic,
		Text:          b.String() + " = ?",
		CorrectAnswer: total,
		Explanation:   explanation,
		Metadata: Metadata{
			Operation: "mixed",
			Operands:  operands,
		},
	}
}

func capTo(n, limit int) int {
	if n > limit {
		return limit
	}
	return n
}
