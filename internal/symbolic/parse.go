package symbolic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cleanup rules applied before tokenizing. LaTeX markup is rewritten to a
// plain infix form the scanner understands; repeated application handles
// nested \frac.
var (
	fracCleanRe    = regexp.MustCompile(`\\frac\s*\{([^{}]*)\}\s*\{([^{}]*)\}`)
	sqrtCleanRe    = regexp.MustCompile(`\\sqrt\s*\{([^{}]*)\}`)
	trigPowRe      = regexp.MustCompile(`\\(sin|cos|tan|sec|csc|cot)\^\{?(-?\d+)\}?`)
	spacingCleanRe = regexp.MustCompile(`\\[,;:!]|\\quad|\\qquad|\\left|\\right|\\text\{[^}]*\}|\\mathrm\{[^}]*\}`)
	dxTailRe       = regexp.MustCompile(`\\?,?\s*d[a-z]\s*$`)
)

var commandRewrites = []struct{ from, to string }{
	{`\arcsin`, ` asin `},
	{`\arccos`, ` acos `},
	{`\arctan`, ` atan `},
	{`\sin`, ` sin `},
	{`\cos`, ` cos `},
	{`\tan`, ` tan `},
	{`\sec`, ` sec `},
	{`\csc`, ` csc `},
	{`\cot`, ` cot `},
	{`\ln`, ` ln `},
	{`\log`, ` ln `},
	{`\exp`, ` exp `},
	{`\pi`, ` pi `},
	{`\cdot`, "*"},
	{`\times`, "*"},
	{`\div`, "/"},
}

// cleanLaTeX converts LaTeX math markup into the plain expression syntax
// consumed by the tokenizer. Absolute-value bars are dropped: d/dx ln|u|
// equals u'/u, so verification is unaffected.
func cleanLaTeX(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSpace(s)
	s = dxTailRe.ReplaceAllString(s, "")
	s = spacingCleanRe.ReplaceAllString(s, "")

	// sin^{-1} means arcsin; sin^{2}(u) means (sin(u))^2. Mark positive
	// powers so the scanner applies them after the argument is read.
	s = trigPowRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := trigPowRe.FindStringSubmatch(m)
		fn, p := sub[1], sub[2]
		if p == "-1" {
			return " a" + fn + " "
		}
		return " " + fn + "#" + p + " "
	})

	for _, r := range commandRewrites {
		s = strings.ReplaceAll(s, r.from, r.to)
	}

	// Innermost \frac first; loop until fixed point for nesting.
	for {
		next := fracCleanRe.ReplaceAllString(s, `(($1)/($2))`)
		next = sqrtCleanRe.ReplaceAllString(next, `(($1)^(1/2))`)
		if next == s {
			break
		}
		s = next
	}

	// Absolute-value bars alternate open/close; turn them into plain
	// grouping since abs is transparent to verification.
	var bars strings.Builder
	open := false
	for _, ch := range s {
		if ch == '|' {
			if open {
				bars.WriteByte(')')
			} else {
				bars.WriteByte('(')
			}
			open = !open
			continue
		}
		bars.WriteRune(ch)
	}
	s = bars.String()

	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	return s
}

// StripConstant removes trailing additive constant-of-integration terms
// (a lone c, C, or k) from a parsed expression.
func StripConstant(e Expr) Expr {
	sum, ok := e.(Add)
	if !ok {
		return e
	}
	isConstSym := func(t Expr) bool {
		v, ok := t.(Var)
		return ok && (v.Name == "c" || v.Name == "C" || v.Name == "k" || v.Name == "K")
	}
	var kept []Expr
	for _, t := range sum.Terms {
		if !isConstSym(t) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return intNum(0)
	}
	return add(kept...)
}

type tokenKind int

const (
	tokNum tokenKind = iota
	tokIdent
	tokFunc
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  Num
	// pending exponent from sin#2 style markers
	pendPow int64
}

var funcNames = []string{
	"asin", "acos", "atan", "sqrt", "sin", "cos", "tan", "sec", "csc", "cot",
	"exp", "ln", "abs",
}

type parser struct {
	toks []token
	pos  int
}

// ParseLaTeX parses a LaTeX math expression into an expression tree.
func ParseLaTeX(src string) (Expr, error) {
	cleaned := cleanLaTeX(src)
	toks, err := tokenize(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	p := &parser{toks: toks}
	e, err := p.parseSum()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("parse %q: unexpected %q", src, p.peek().text)
	}
	return e, nil
}

func tokenize(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n':
			i++
		case ch >= '0' && ch <= '9' || ch == '.':
			j := i
			seenDot := false
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.' && !seenDot) {
				if s[j] == '.' {
					seenDot = true
				}
				j++
			}
			n, err := parseNumber(s[i:j])
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokNum, text: s[i:j], num: n})
			i = j
		case isLetter(ch):
			matched := false
			for _, fn := range funcNames {
				if strings.HasPrefix(s[i:], fn) {
					t := token{kind: tokFunc, text: fn}
					i += len(fn)
					// power marker: sin#2
					if i < len(s) && s[i] == '#' {
						j := i + 1
						for j < len(s) && s[j] >= '0' && s[j] <= '9' {
							j++
						}
						p, _ := strconv.ParseInt(s[i+1:j], 10, 64)
						t.pendPow = p
						i = j
					}
					toks = append(toks, t)
					matched = true
					break
				}
			}
			if !matched {
				if strings.HasPrefix(s[i:], "pi") {
					toks = append(toks, token{kind: tokIdent, text: piName})
					i += 2
				} else {
					// single-letter variable; "ax" is a times x
					toks = append(toks, token{kind: tokIdent, text: string(ch)})
					i++
				}
			}
		case ch == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '^':
			toks = append(toks, token{kind: tokOp, text: string(ch)})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", string(ch))
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// parseNumber converts a decimal literal to an exact rational.
func parseNumber(s string) (Num, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Num{}, fmt.Errorf("bad number %q", s)
		}
		return intNum(v), nil
	}
	digits := s[:dot] + s[dot+1:]
	if digits == "" {
		return Num{}, fmt.Errorf("bad number %q", s)
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Num{}, fmt.Errorf("bad number %q", s)
	}
	q := int64(1)
	for range len(s) - dot - 1 {
		q *= 10
	}
	return newNum(v, q), nil
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token { t := p.toks[p.pos]; p.pos++; return t }

func (p *parser) parseSum() (Expr, error) {
	first, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	terms := []Expr{first}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			break
		}
		p.next()
		rhs, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if t.text == "-" {
			rhs = neg(rhs)
		}
		terms = append(terms, rhs)
	}
	return add(terms...), nil
}

// parseProduct handles explicit * and /, plus implicit multiplication:
// any token that can begin a factor continues the product.
func (p *parser) parseProduct() (Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []Expr{first}
	for {
		t := p.peek()
		switch {
		case t.kind == tokOp && t.text == "*":
			p.next()
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		case t.kind == tokOp && t.text == "/":
			p.next()
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, pow(f, intNum(-1)))
		case t.kind == tokNum || t.kind == tokIdent || t.kind == tokFunc || t.kind == tokLParen:
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		default:
			return mul(factors...), nil
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "-" || t.text == "+") {
		p.next()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if t.text == "-" {
			return neg(e), nil
		}
		return e, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind == tokOp && t.text == "^" {
		p.next()
		// Right-associative; exponent may itself be negated or a power.
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return t.num, nil
	case tokIdent:
		return Var{Name: t.text}, nil
	case tokFunc:
		arg, err := p.parseFuncArg()
		if err != nil {
			return nil, fmt.Errorf("argument of %s: %w", t.text, err)
		}
		var e Expr
		switch t.text {
		case "sqrt":
			e = pow(arg, newNum(1, 2))
		case "abs":
			e = arg
		default:
			e = Call{Fn: t.text, Arg: arg}
		}
		if t.pendPow > 0 {
			e = pow(e, intNum(t.pendPow))
		}
		return e, nil
	case tokLParen:
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, fmt.Errorf("expected ) got %q", c.text)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", t.text)
	}
}

// parseFuncArg reads a function argument: parenthesized, or the tight
// form "sin x" / "sin 2x" where the argument is the next power-factor.
func (p *parser) parseFuncArg() (Expr, error) {
	if p.peek().kind == tokLParen {
		p.next()
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, fmt.Errorf("expected ) got %q", c.text)
		}
		return e, nil
	}
	// Unparenthesized: consume an implicit product of tight factors,
	// so "sin 2x" parses as sin(2x) but "sin x + 1" stops at +.
	first, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	factors := []Expr{first}
	for {
		t := p.peek()
		if t.kind == tokNum || t.kind == tokIdent {
			f, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
			continue
		}
		break
	}
	return mul(factors...), nil
}
