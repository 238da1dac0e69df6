package symbolic

// Diff returns the derivative of e with respect to the variable named v.
// Symbols other than v differentiate to zero.
func Diff(e Expr, v string) Expr {
	switch n := e.(type) {
	case Num:
		return intNum(0)
	case Var:
		if n.Name == v {
			return intNum(1)
		}
		return intNum(0)
	case Add:
		out := make([]Expr, len(n.Terms))
		for i, t := range n.Terms {
			out[i] = Diff(t, v)
		}
		return add(out...)
	case Mul:
		// Generalized product rule: sum over i of f_i' * prod(f_j, j != i).
		var terms []Expr
		for i := range n.Factors {
			if !dependsOn(n.Factors[i], v) {
				continue
			}
			fs := make([]Expr, 0, len(n.Factors))
			fs = append(fs, Diff(n.Factors[i], v))
			for j, f := range n.Factors {
				if j != i {
					fs = append(fs, f)
				}
			}
			terms = append(terms, mul(fs...))
		}
		if len(terms) == 0 {
			return intNum(0)
		}
		return add(terms...)
	case Pow:
		return diffPow(n, v)
	case Call:
		return diffCall(n, v)
	}
	return intNum(0)
}

func diffPow(p Pow, v string) Expr {
	baseDep := dependsOn(p.Base, v)
	expDep := dependsOn(p.Exp, v)
	switch {
	case !baseDep && !expDep:
		return intNum(0)
	case baseDep && !expDep:
		// d/dx u^c = c * u^(c-1) * u'
		return mul(p.Exp, pow(p.Base, add(p.Exp, intNum(-1))), Diff(p.Base, v))
	case !baseDep && expDep:
		// d/dx c^u = c^u * ln(c) * u'. For c = e the log vanishes.
		if bv, ok := p.Base.(Var); ok && bv.Name == eulerName {
			return mul(p, Diff(p.Exp, v))
		}
		return mul(p, Call{Fn: "ln", Arg: p.Base}, Diff(p.Exp, v))
	default:
		// u^w = e^(w ln u): u^w * (w' ln u + w u'/u)
		return mul(p, add(
			mul(Diff(p.Exp, v), Call{Fn: "ln", Arg: p.Base}),
			mul(p.Exp, Diff(p.Base, v), pow(p.Base, intNum(-1))),
		))
	}
}

func diffCall(c Call, v string) Expr {
	u := c.Arg
	du := Diff(u, v)
	var outer Expr
	switch c.Fn {
	case "sin":
		outer = Call{Fn: "cos", Arg: u}
	case "cos":
		outer = neg(Call{Fn: "sin", Arg: u})
	case "tan":
		outer = pow(Call{Fn: "sec", Arg: u}, intNum(2))
	case "sec":
		outer = mul(Call{Fn: "sec", Arg: u}, Call{Fn: "tan", Arg: u})
	case "csc":
		outer = neg(mul(Call{Fn: "csc", Arg: u}, Call{Fn: "cot", Arg: u}))
	case "cot":
		outer = neg(pow(Call{Fn: "csc", Arg: u}, intNum(2)))
	case "exp":
		outer = c
	case "ln":
		outer = pow(u, intNum(-1))
	case "asin":
		// 1 / sqrt(1 - u^2)
		outer = pow(add(intNum(1), neg(pow(u, intNum(2)))), newNum(-1, 2))
	case "acos":
		outer = neg(pow(add(intNum(1), neg(pow(u, intNum(2)))), newNum(-1, 2)))
	case "atan":
		outer = pow(add(intNum(1), pow(u, intNum(2))), intNum(-1))
	default:
		// Unknown function: derivative unavailable; zero would be wrong,
		// so return a form that only numeric probing can settle.
		outer = Call{Fn: c.Fn + "'", Arg: u}
	}
	return mul(outer, du)
}
