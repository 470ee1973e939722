package problemgen

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Display glyphs shared by the builders and the evaluator.
const (
	glyphSquare = "²"
	glyphCube   = "³"
	opMul       = "×"
	opDiv       = "÷"
)

var (
	errNotInteger = errors.New("division leaves a remainder")
	errDivZero    = errors.New("division by zero")
)

type tokenKind int

const (
	tokNum tokenKind = iota
	tokX
	tokOp
	tokLParen
	tokRParen
	tokPow
)

type token struct {
	kind tokenKind
	val  int  // tokNum: the number, tokPow: the exponent
	op   rune // tokOp: one of + - * /
}

// tokenize splits an expression into tokens. Unicode × ÷ − are normalized
// to * / - and the superscripts ² ³ become power tokens.
func tokenize(s string) ([]token, error) {
	var toks []token
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
		case r >= '0' && r <= '9':
			n := 0
			for ; i < len(rs) && rs[i] >= '0' && rs[i] <= '9'; i++ {
				n = n*10 + int(rs[i]-'0')
			}
			i--
			toks = append(toks, token{kind: tokNum, val: n})
		case r == 'x' || r == 'X':
			toks = append(toks, token{kind: tokX})
		case r == '+':
			toks = append(toks, token{kind: tokOp, op: '+'})
		case r == '-' || r == '−':
			toks = append(toks, token{kind: tokOp, op: '-'})
		case r == '*' || r == '×':
			toks = append(toks, token{kind: tokOp, op: '*'})
		case r == '/' || r == '÷':
			toks = append(toks, token{kind: tokOp, op: '/'})
		case r == '^':
			toks = append(toks, token{kind: tokOp, op: '^'})
		case r == '²':
			toks = append(toks, token{kind: tokPow, val: 2})
		case r == '³':
			toks = append(toks, token{kind: tokPow, val: 3})
		case r == '(':
			toks = append(toks, token{kind: tokLParen})
		case r == ')':
			toks = append(toks, token{kind: tokRParen})
		default:
			return nil, fmt.Errorf("unexpected character %q", r)
		}
	}
	return toks, nil
}

// exprParser is a recursive-descent evaluator over integers with standard
// precedence: parentheses > exponent > unary minus > × ÷ > + -.
type exprParser struct {
	toks []token
	pos  int
	x    int
	hasX bool
}

func (p *exprParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *exprParser) peekOp(ops ...rune) (rune, bool) {
	t, ok := p.peek()
	if !ok || t.kind != tokOp {
		return 0, false
	}
	for _, op := range ops {
		if t.op == op {
			return op, true
		}
	}
	return 0, false
}

func (p *exprParser) parseExpr() (int, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp('+', '-')
		if !ok {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *exprParser) parseTerm() (int, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		if op, ok := p.peekOp('*', '/'); ok {
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if op == '*' {
				v *= rhs
				continue
			}
			if rhs == 0 {
				return 0, errDivZero
			}
			if v%rhs != 0 {
				return 0, fmt.Errorf("%d / %d: %w", v, rhs, errNotInteger)
			}
			v /= rhs
			continue
		}

		// Implicit multiplication: "3x", "2(x + 1)".
		t, ok := p.peek()
		if ok && (t.kind == tokX || t.kind == tokLParen) {
			rhs, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			v *= rhs
			continue
		}
		return v, nil
	}
}

func (p *exprParser) parseUnary() (int, error) {
	if op, ok := p.peekOp('+', '-'); ok {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '-' {
			return -v, nil
		}
		return v, nil
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (int, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok {
			return base, nil
		}
		switch {
		case t.kind == tokPow:
			p.pos++
			base = ipow(base, t.val)
		case t.kind == tokOp && t.op == '^':
			p.pos++
			exp, err := p.parsePrimary()
			if err != nil {
				return 0, err
			}
			if exp < 0 {
				return 0, fmt.Errorf("negative exponent %d", exp)
			}
			base = ipow(base, exp)
		default:
			return base, nil
		}
	}
}

func (p *exprParser) parsePrimary() (int, error) {
	t, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	p.pos++
	switch t.kind {
	case tokNum:
		return t.val, nil
	case tokX:
		if !p.hasX {
			return 0, fmt.Errorf("variable x without a value")
		}
		return p.x, nil
	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if t, ok := p.peek(); !ok || t.kind != tokRParen {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	default:
		return 0, fmt.Errorf("unexpected token at position %d", p.pos-1)
	}
}

func evaluate(expr string, x int, hasX bool) (int, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, fmt.Errorf("empty expression")
	}
	p := &exprParser{toks: toks, x: x, hasX: hasX}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(toks) {
		return 0, fmt.Errorf("trailing tokens after position %d", p.pos)
	}
	return v, nil
}

// Evaluate computes an integer expression such as "12 ÷ 4 + 2³ - (7 - 3)".
// A trailing "= ?" is ignored. Any inexact division is an error.
func Evaluate(text string) (int, error) {
	expr := strings.TrimSpace(text)
	if lhs, rhs, ok := strings.Cut(expr, "="); ok {
		if strings.TrimSpace(rhs) != "?" {
			return 0, fmt.Errorf("not an arithmetic question: %q", text)
		}
		expr = lhs
	}
	return evaluate(expr, 0, false)
}

// SatisfiesEquation reports whether substituting x into both sides of an
// equation such as "2x² - 6x = -4" makes them equal.
func SatisfiesEquation(text string, x int) (bool, error) {
	lhs, rhs, ok := strings.Cut(text, "=")
	if !ok {
		return false, fmt.Errorf("not an equation: %q", text)
	}
	l, err := evaluate(lhs, x, true)
	if err != nil {
		return false, fmt.Errorf("left side: %w", err)
	}
	r, err := evaluate(rhs, x, true)
	if err != nil {
		return false, fmt.Errorf("right side: %w", err)
	}
	return l == r, nil
}

// ipow returns base^exp for exp >= 0.
func ipow(base, exp int) int {
	result := 1
	for range exp {
		result *= base
	}
	return result
}

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
