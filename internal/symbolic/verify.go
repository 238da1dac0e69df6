package symbolic

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Result is the outcome of an answer check.
type Result struct {
	Equal bool
	// Method records how equality was settled: "symbolic" when
	// simplification reduced the difference to zero, "numeric" when the
	// probe comparison decided.
	Method string
}

// Integral is a parsed integral expression extracted from a question stem.
type Integral struct {
	Integrand string // LaTeX of the integrand
	Variable  string
	Definite  bool
	Lower     string // bound expressions, LaTeX (definite only)
	Upper     string
}

// A bound is a braced group, a command like \pi, or a single character.
// The forms mix freely: \int_0^{\pi} is as common as \int_{0}^{\pi}.
const boundPattern = `(\{[^{}]*\}|\\[a-zA-Z]+|[^\s{\\^_])`

var (
	defIntRe   = regexp.MustCompile(`\\int_` + boundPattern + `\^` + boundPattern + `(.*)`)
	indefIntRe = regexp.MustCompile(`\\int(.*)`)
	dVarRe     = regexp.MustCompile(`\\?,?\s*d([a-z])\s*$`)
)

// ExtractIntegral pulls the first integral out of a stem expression.
// Returns ok=false when the expression contains no \int.
func ExtractIntegral(expr string) (Integral, bool) {
	s := strings.ReplaceAll(expr, "$", "")
	s = strings.TrimSpace(s)

	var out Integral
	var body string
	if m := defIntRe.FindStringSubmatch(s); m != nil {
		out.Definite = true
		out.Lower, out.Upper = trimBound(m[1]), trimBound(m[2])
		body = m[3]
	} else if m := indefIntRe.FindStringSubmatch(s); m != nil {
		body = m[1]
	} else {
		return Integral{}, false
	}

	body = strings.TrimSpace(body)
	out.Variable = "x"
	if m := dVarRe.FindStringSubmatch(body); m != nil {
		out.Variable = m[1]
		body = strings.TrimSpace(body[:len(body)-len(m[0])])
	}
	out.Integrand = body
	return out, out.Integrand != ""
}

// trimBound strips the braces and padding around a bound expression.
func trimBound(b string) string {
	b = strings.TrimSpace(b)
	if strings.HasPrefix(b, "{") && strings.HasSuffix(b, "}") {
		b = strings.TrimSpace(b[1 : len(b)-1])
	}
	return b
}

// VerifyAntiderivative checks whether answer is an antiderivative of the
// integrand with respect to v: d/dv(answer) must equal the integrand.
// Trailing +c terms in the answer are ignored. The check is symbolic
// first, then numeric over the probe points.
func VerifyAntiderivative(integrandLaTeX, answerLaTeX, v string) (Result, error) {
	integrand, err := ParseLaTeX(integrandLaTeX)
	if err != nil {
		return Result{}, fmt.Errorf("integrand: %w", err)
	}
	answer, err := ParseLaTeX(answerLaTeX)
	if err != nil {
		return Result{}, fmt.Errorf("answer: %w", err)
	}
	answer = StripConstant(answer)
	deriv := Diff(answer, v)
	return exprEqual(deriv, integrand, v), nil
}

// Equivalent reports whether two LaTeX expressions denote the same
// function of v, up to an additive constant of integration. Used for
// duplicate detection among answer options.
func Equivalent(aLaTeX, bLaTeX, v string) bool {
	a, err := ParseLaTeX(aLaTeX)
	if err != nil {
		return false
	}
	b, err := ParseLaTeX(bLaTeX)
	if err != nil {
		return false
	}
	diff := Simplify(add(StripConstant(a), neg(StripConstant(b))))
	if n, ok := diff.(Num); ok {
		return n.isZero()
	}
	r := exprEqual(StripConstant(a), StripConstant(b), v)
	return r.Equal
}

// Negation reports whether b is the negation of a (the sign-flip
// mechanism check for distractor candidates).
func Negation(aLaTeX, bLaTeX, v string) bool {
	a, err := ParseLaTeX(aLaTeX)
	if err != nil {
		return false
	}
	b, err := ParseLaTeX(bLaTeX)
	if err != nil {
		return false
	}
	sum := add(StripConstant(a), StripConstant(b))
	return exprEqual(sum, intNum(0), v).Equal
}

// DerivativeOf differentiates a LaTeX expression with respect to v and
// renders the result. Used by the distractor mechanism checks.
func DerivativeOf(latexExpr, v string) (string, error) {
	e, err := ParseLaTeX(latexExpr)
	if err != nil {
		return "", err
	}
	return Render(Diff(StripConstant(e), v)), nil
}

// exprEqual decides a == b, symbolically where possible, numerically
// otherwise.
func exprEqual(a, b Expr, v string) Result {
	diff := Simplify(add(a, neg(b)))
	if n, ok := diff.(Num); ok {
		return Result{Equal: n.isZero(), Method: "symbolic"}
	}
	// Reciprocal trig forms often cancel only after rewriting.
	rewritten := Simplify(rewriteTrig(diff))
	if n, ok := rewritten.(Num); ok {
		return Result{Equal: n.isZero(), Method: "symbolic"}
	}
	scale := magnitude(b, v)
	return Result{Equal: numericZero(diff, v, scale), Method: "numeric"}
}

// ComputeAntiderivative integrates the integrand and renders the result
// as LaTeX (without the constant of integration). Returns ErrNoRule when
// the integrand is outside the rule table.
func ComputeAntiderivative(integrandLaTeX, v string) (string, error) {
	integrand, err := ParseLaTeX(integrandLaTeX)
	if err != nil {
		return "", fmt.Errorf("integrand: %w", err)
	}
	anti, err := Integrate(integrand, v)
	if err != nil {
		return "", err
	}
	return Render(anti), nil
}

// VerifyDefinite checks a claimed value for a definite integral. The
// claim must be a constant expression; the integral value comes from the
// antiderivative when one is available, otherwise from quadrature.
func VerifyDefinite(in Integral, claimLaTeX string) (Result, error) {
	claim, err := ParseLaTeX(claimLaTeX)
	if err != nil {
		return Result{}, fmt.Errorf("claim: %w", err)
	}
	claimVal, err := Eval(claim, nil)
	if err != nil {
		return Result{}, fmt.Errorf("claim not a constant: %w", err)
	}

	val, err := DefiniteValue(in)
	if err != nil {
		return Result{}, err
	}
	tol := 1e-6 * math.Max(1, math.Abs(val))
	return Result{Equal: math.Abs(claimVal-val) <= tol, Method: "numeric"}, nil
}

// DefiniteValue computes the numeric value of a definite integral:
// F(upper)-F(lower) when the rule table yields an antiderivative, and
// composite Simpson quadrature otherwise.
func DefiniteValue(in Integral) (float64, error) {
	integrand, err := ParseLaTeX(in.Integrand)
	if err != nil {
		return 0, fmt.Errorf("integrand: %w", err)
	}
	lo, err := evalBound(in.Lower)
	if err != nil {
		return 0, fmt.Errorf("lower bound: %w", err)
	}
	hi, err := evalBound(in.Upper)
	if err != nil {
		return 0, fmt.Errorf("upper bound: %w", err)
	}

	if anti, err := Integrate(integrand, in.Variable); err == nil {
		fHi, errHi := Eval(anti, map[string]float64{in.Variable: hi})
		fLo, errLo := Eval(anti, map[string]float64{in.Variable: lo})
		if errHi == nil && errLo == nil {
			return fHi - fLo, nil
		}
	}
	return simpson(integrand, in.Variable, lo, hi)
}

func evalBound(boundLaTeX string) (float64, error) {
	e, err := ParseLaTeX(boundLaTeX)
	if err != nil {
		return 0, err
	}
	return Eval(e, nil)
}

// simpson is composite Simpson's rule with a fixed even panel count.
func simpson(f Expr, v string, lo, hi float64) (float64, error) {
	const n = 200
	h := (hi - lo) / n
	sum := 0.0
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*h
		y, err := Eval(f, map[string]float64{v: x})
		if err != nil {
			return 0, fmt.Errorf("integrand undefined at %g: %w", x, err)
		}
		switch {
		case i == 0 || i == n:
			sum += y
		case i%2 == 1:
			sum += 4 * y
		default:
			sum += 2 * y
		}
	}
	return sum * h / 3, nil
}

// ClassifyIntegrand tags an integrand with the structural features that
// drive error-pattern selection. Tags align with the taxonomy's
// applicability labels.
func ClassifyIntegrand(integrandLaTeX, v string) []string {
	tags := []string{}
	e, err := ParseLaTeX(integrandLaTeX)
	if err != nil {
		return tags
	}
	e = Simplify(e)

	var hasTrig, hasInvTrig, hasExp, hasLog, hasPower, hasComposite bool
	var walk func(Expr)
	walk = func(x Expr) {
		switch n := x.(type) {
		case Add:
			for _, t := range n.Terms {
				walk(t)
			}
		case Mul:
			for _, f := range n.Factors {
				walk(f)
			}
		case Pow:
			if dependsOn(n.Base, v) {
				hasPower = true
			}
			if bv, ok := n.Base.(Var); ok && bv.Name == eulerName && dependsOn(n.Exp, v) {
				hasExp = true
			}
			walk(n.Base)
			walk(n.Exp)
		case Call:
			switch n.Fn {
			case "sin", "cos", "tan", "sec", "csc", "cot":
				hasTrig = true
			case "asin", "acos", "atan":
				hasInvTrig = true
			case "exp":
				hasExp = true
			case "ln":
				hasLog = true
			}
			// Non-linear argument means the chain rule is in play.
			if _, _, linear := linearIn(n.Arg, v); !linear {
				hasComposite = true
			}
			walk(n.Arg)
		}
	}
	walk(e)

	if hasPower {
		tags = append(tags, "power_rule", "basic_integral")
	}
	if hasTrig {
		tags = append(tags, "trigonometric")
	}
	if hasInvTrig {
		tags = append(tags, "inverse_trig")
	}
	if hasExp {
		tags = append(tags, "exponential")
	}
	if hasLog {
		tags = append(tags, "logarithmic")
	}
	if hasComposite {
		tags = append(tags, "substitution", "chain_rule", "composition")
	}
	if len(tags) == 0 {
		tags = append(tags, "basic_integral")
	}
	return tags
}
