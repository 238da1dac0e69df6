package symbolic

import (
	"fmt"
	"strings"
)

// Render produces LaTeX for an expression. Output favors the textbook
// conventions the rest of the pipeline expects: \frac for rational
// coefficients, ln with absolute-value bars, juxtaposition for products.
func Render(e Expr) string {
	return render(Simplify(e), false)
}

func render(e Expr, needGroup bool) string {
	switch n := e.(type) {
	case Num:
		return renderNum(n, needGroup)
	case Var:
		if n.Name == piName {
			return `\pi`
		}
		return n.Name
	case Add:
		var b strings.Builder
		for i, t := range n.Terms {
			s := render(t, false)
			if i > 0 && !strings.HasPrefix(s, "-") {
				b.WriteString(" + ")
			} else if i > 0 {
				b.WriteString(" - ")
				s = strings.TrimPrefix(s, "-")
			}
			b.WriteString(s)
		}
		out := b.String()
		if needGroup {
			return `\left(` + out + `\right)`
		}
		return out
	case Mul:
		return renderMul(n, needGroup)
	case Pow:
		return renderPow(n)
	case Call:
		return renderCall(n)
	}
	return "?"
}

func renderNum(n Num, needGroup bool) string {
	if n.Q == 1 {
		if n.P < 0 && needGroup {
			return fmt.Sprintf(`\left(%d\right)`, n.P)
		}
		return fmt.Sprintf("%d", n.P)
	}
	if n.P < 0 {
		return fmt.Sprintf(`-\frac{%d}{%d}`, -n.P, n.Q)
	}
	return fmt.Sprintf(`\frac{%d}{%d}`, n.P, n.Q)
}

func renderMul(m Mul, needGroup bool) string {
	// Split negative powers into a denominator.
	var numer, denom []Expr
	coeff := intNum(1)
	for _, f := range m.Factors {
		if c, ok := f.(Num); ok {
			coeff = coeff.mul(c)
			continue
		}
		if p, ok := f.(Pow); ok {
			if en, ok := p.Exp.(Num); ok && en.P < 0 {
				denom = append(denom, Simplify(pow(p.Base, en.neg())))
				continue
			}
		}
		numer = append(numer, f)
	}

	renderSeq := func(parts []Expr, lead string) string {
		var b strings.Builder
		b.WriteString(lead)
		for _, f := range parts {
			_, isAdd := f.(Add)
			b.WriteString(render(f, isAdd))
		}
		return b.String()
	}

	sign := ""
	if coeff.P < 0 {
		sign = "-"
		coeff = coeff.neg()
	}

	var out string
	switch {
	case len(denom) > 0:
		// Fold the rational coefficient into the fraction.
		numLead, denLead := "", ""
		if coeff.P != 1 {
			numLead = fmt.Sprintf("%d", coeff.P)
		}
		if coeff.Q != 1 {
			denLead = fmt.Sprintf("%d", coeff.Q)
		}
		top := renderSeq(numer, numLead)
		if top == "" {
			top = "1"
		}
		out = fmt.Sprintf(`\frac{%s}{%s}`, top, renderSeq(denom, denLead))
	case !coeff.isOne():
		out = renderSeq(numer, renderNum(coeff, false))
	default:
		out = renderSeq(numer, "")
	}

	out = sign + out
	if needGroup && (sign == "-" || len(m.Factors) > 1) {
		return `\left(` + out + `\right)`
	}
	return out
}

func renderPow(p Pow) string {
	if en, ok := p.Exp.(Num); ok {
		if en.P == 1 && en.Q == 2 {
			return fmt.Sprintf(`\sqrt{%s}`, render(p.Base, false))
		}
		if en.P < 0 {
			return fmt.Sprintf(`\frac{1}{%s}`, render(Simplify(pow(p.Base, en.neg())), false))
		}
	}
	base := render(p.Base, true)
	// Simple bases don't need grouping.
	switch p.Base.(type) {
	case Var, Num, Call:
		base = render(p.Base, false)
		if strings.HasPrefix(base, "-") || strings.Contains(base, `\frac`) {
			base = `\left(` + render(p.Base, false) + `\right)`
		}
	}
	exp := render(p.Exp, false)
	if len(exp) == 1 {
		return fmt.Sprintf(`%s^%s`, base, exp)
	}
	return fmt.Sprintf(`%s^{%s}`, base, exp)
}

func renderCall(c Call) string {
	arg := render(c.Arg, false)
	switch c.Fn {
	case "ln":
		return fmt.Sprintf(`\ln|%s|`, arg)
	case "exp":
		if len(arg) == 1 {
			return fmt.Sprintf(`e^%s`, arg)
		}
		return fmt.Sprintf(`e^{%s}`, arg)
	case "asin":
		return fmt.Sprintf(`\sin^{-1}\left(%s\right)`, arg)
	case "acos":
		return fmt.Sprintf(`\cos^{-1}\left(%s\right)`, arg)
	case "atan":
		return fmt.Sprintf(`\tan^{-1}\left(%s\right)`, arg)
	default:
		return fmt.Sprintf(`\%s\left(%s\right)`, c.Fn, arg)
	}
}
