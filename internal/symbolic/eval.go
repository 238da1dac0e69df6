package symbolic

import (
	"fmt"
	"math"
)

// paramDefaults assigns fixed generic values to free symbols other than
// the integration variable, so expressions with parameters (a, n, ...)
// can still be probed numerically. Values are chosen away from 0, 1, and
// each other to avoid accidental coincidences.
var paramDefaults = map[string]float64{
	"a": 1.37,
	"b": 0.61,
	"m": 1.21,
	"n": 2.0,
	"k": 1.93,
}

// Eval numerically evaluates e with variable bindings from vars. Unbound
// symbols fall back to paramDefaults, then to 1.5. Returns an error when
// the value is undefined (division by zero, log of a non-positive number,
// inverse trig out of domain).
func Eval(e Expr, vars map[string]float64) (float64, error) {
	switch n := e.(type) {
	case Num:
		if n.Q == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return n.float(), nil
	case Var:
		switch n.Name {
		case eulerName:
			return math.E, nil
		case piName:
			return math.Pi, nil
		}
		if v, ok := vars[n.Name]; ok {
			return v, nil
		}
		if v, ok := paramDefaults[n.Name]; ok {
			return v, nil
		}
		return 1.5, nil
	case Add:
		sum := 0.0
		for _, t := range n.Terms {
			v, err := Eval(t, vars)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	case Mul:
		prod := 1.0
		for _, f := range n.Factors {
			v, err := Eval(f, vars)
			if err != nil {
				return 0, err
			}
			prod *= v
		}
		return prod, nil
	case Pow:
		base, err := Eval(n.Base, vars)
		if err != nil {
			return 0, err
		}
		exp, err := Eval(n.Exp, vars)
		if err != nil {
			return 0, err
		}
		v := math.Pow(base, exp)
		if math.IsNaN(v) && base < 0 {
			// Negative base with rational exponent: try via |base| when
			// the exponent is an odd-denominator rational (real root).
			if en, ok := n.Exp.(Num); ok && en.Q%2 == 1 {
				v = math.Pow(-base, exp)
				if en.P%2 != 0 {
					v = -v
				}
			}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("pow(%g, %g) undefined", base, exp)
		}
		return v, nil
	case Call:
		return evalCall(n, vars)
	}
	return 0, fmt.Errorf("cannot evaluate expression")
}

func evalCall(c Call, vars map[string]float64) (float64, error) {
	u, err := Eval(c.Arg, vars)
	if err != nil {
		return 0, err
	}
	var v float64
	switch c.Fn {
	case "sin":
		v = math.Sin(u)
	case "cos":
		v = math.Cos(u)
	case "tan":
		v = math.Tan(u)
	case "sec":
		v = 1 / math.Cos(u)
	case "csc":
		v = 1 / math.Sin(u)
	case "cot":
		v = math.Cos(u) / math.Sin(u)
	case "exp":
		v = math.Exp(u)
	case "ln":
		if u <= 0 {
			// ln|u| semantics: absolute values are transparent here.
			u = -u
		}
		if u == 0 {
			return 0, fmt.Errorf("ln(0) undefined")
		}
		v = math.Log(u)
	case "asin":
		if u < -1 || u > 1 {
			return 0, fmt.Errorf("asin(%g) out of domain", u)
		}
		v = math.Asin(u)
	case "acos":
		if u < -1 || u > 1 {
			return 0, fmt.Errorf("acos(%g) out of domain", u)
		}
		v = math.Acos(u)
	case "atan":
		v = math.Atan(u)
	default:
		return 0, fmt.Errorf("unknown function %s", c.Fn)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s(%g) undefined", c.Fn, u)
	}
	return v, nil
}

// probePoints are the sample abscissas for numeric equality checks,
// spread over both signs and away from common singularities.
var probePoints = []float64{0.3, 0.7, 1.1, 1.6, 2.3, -0.4, -1.2}

// numericZero reports whether e evaluates to (approximately) zero at
// enough probe points. Points where e is undefined are skipped; at least
// minValid points must evaluate for a confident answer.
func numericZero(e Expr, v string, scale float64) bool {
	const minValid = 4
	const tol = 1e-6
	if scale < 1 {
		scale = 1
	}
	valid := 0
	for _, x := range probePoints {
		val, err := Eval(e, map[string]float64{v: x})
		if err != nil {
			continue
		}
		if math.Abs(val) > tol*scale {
			return false
		}
		valid++
	}
	return valid >= minValid
}

// magnitude estimates the typical scale of e over the probe points, used
// to make the zero tolerance relative.
func magnitude(e Expr, v string) float64 {
	maxAbs := 0.0
	for _, x := range probePoints {
		val, err := Eval(e, map[string]float64{v: x})
		if err != nil {
			continue
		}
		if a := math.Abs(val); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}
