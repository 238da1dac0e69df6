// Package symbolic implements the independent mathematical check behind
// answer validation: a small expression algebra with parsing,
// differentiation, simplification, and rule-based integration. It is not a
// general CAS — it covers the expression forms that appear in integration
// coursework, and the validator falls back to numeric probing where
// symbolic simplification stalls.
package symbolic

import (
	"fmt"
	"sort"
	"strings"
)

// Expr is a node in the expression tree.
type Expr interface {
	isExpr()
}

// Num is a rational constant p/q with q > 0.
type Num struct {
	P, Q int64
}

// Var is a named symbol. The integration variable is one of these; any
// other symbol (a, b, n, ...) is treated as a constant parameter.
type Var struct {
	Name string
}

// Add is a sum of two or more terms.
type Add struct {
	Terms []Expr
}

// Mul is a product of two or more factors.
type Mul struct {
	Factors []Expr
}

// Pow is Base raised to Exp.
type Pow struct {
	Base, Exp Expr
}

// Call is the application of a known function to one argument.
// Functions: sin cos tan sec csc cot asin acos atan exp ln.
type Call struct {
	Fn  string
	Arg Expr
}

func (Num) isExpr()  {}
func (Var) isExpr()  {}
func (Add) isExpr()  {}
func (Mul) isExpr()  {}
func (Pow) isExpr()  {}
func (Call) isExpr() {}

// Euler's number and pi are ordinary symbols with reserved names;
// evaluation and differentiation special-case them.
const (
	eulerName = "e"
	piName    = "pi"
)

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// newNum builds a reduced rational with positive denominator.
func newNum(p, q int64) Num {
	if q == 0 {
		// Division by zero upstream; keep a poisoned value that will
		// fail numeric evaluation rather than panic here.
		return Num{P: 0, Q: 1}
	}
	if q < 0 {
		p, q = -p, -q
	}
	g := gcd64(p, q)
	return Num{P: p / g, Q: q / g}
}

func intNum(n int64) Num { return Num{P: n, Q: 1} }

func (n Num) isZero() bool { return n.P == 0 }
func (n Num) isOne() bool  { return n.P == 1 && n.Q == 1 }
func (n Num) isInt() bool  { return n.Q == 1 }

func (n Num) add(m Num) Num { return newNum(n.P*m.Q+m.P*n.Q, n.Q*m.Q) }
func (n Num) mul(m Num) Num { return newNum(n.P*m.P, n.Q*m.Q) }
func (n Num) neg() Num      { return Num{P: -n.P, Q: n.Q} }
func (n Num) inv() Num      { return newNum(n.Q, n.P) }

// powInt raises n to an integer power k (k may be negative).
func (n Num) powInt(k int64) Num {
	if k < 0 {
		return n.inv().powInt(-k)
	}
	out := intNum(1)
	for range k {
		out = out.mul(n)
	}
	return out
}

func (n Num) float() float64 { return float64(n.P) / float64(n.Q) }

// key returns a canonical string for an expression, used for term
// collection and deterministic ordering. Two structurally equal
// expressions have equal keys.
func key(e Expr) string {
	switch v := e.(type) {
	case Num:
		if v.Q == 1 {
			return fmt.Sprintf("%d", v.P)
		}
		return fmt.Sprintf("%d/%d", v.P, v.Q)
	case Var:
		return v.Name
	case Add:
		parts := make([]string, len(v.Terms))
		for i, t := range v.Terms {
			parts[i] = key(t)
		}
		sort.Strings(parts)
		return "(+ " + strings.Join(parts, " ") + ")"
	case Mul:
		parts := make([]string, len(v.Factors))
		for i, f := range v.Factors {
			parts[i] = key(f)
		}
		sort.Strings(parts)
		return "(* " + strings.Join(parts, " ") + ")"
	case Pow:
		return "(^ " + key(v.Base) + " " + key(v.Exp) + ")"
	case Call:
		return "(" + v.Fn + " " + key(v.Arg) + ")"
	}
	return "?"
}

// dependsOn reports whether e mentions the variable named v.
func dependsOn(e Expr, v string) bool {
	switch n := e.(type) {
	case Num:
		return false
	case Var:
		return n.Name == v
	case Add:
		for _, t := range n.Terms {
			if dependsOn(t, v) {
				return true
			}
		}
	case Mul:
		for _, f := range n.Factors {
			if dependsOn(f, v) {
				return true
			}
		}
	case Pow:
		return dependsOn(n.Base, v) || dependsOn(n.Exp, v)
	case Call:
		return dependsOn(n.Arg, v)
	}
	return false
}

// add and mul build sums/products without premature flattening;
// simplify normalizes afterwards.
func add(terms ...Expr) Expr {
	if len(terms) == 1 {
		return terms[0]
	}
	return Add{Terms: terms}
}

func mul(factors ...Expr) Expr {
	if len(factors) == 1 {
		return factors[0]
	}
	return Mul{Factors: factors}
}

func neg(e Expr) Expr {
	return mul(intNum(-1), e)
}

func pow(base, exp Expr) Expr {
	return Pow{Base: base, Exp: exp}
}
