package symbolic

import "sort"

// Simplify normalizes an expression: flattens nested sums and products,
// folds rational arithmetic, collects like terms and like factors, and
// applies the basic power laws. The result is deterministic — simplified
// forms of structurally equal inputs have equal keys.
func Simplify(e Expr) Expr {
	switch n := e.(type) {
	case Num, Var:
		return e
	case Add:
		return simplifyAdd(n)
	case Mul:
		return simplifyMul(n)
	case Pow:
		return simplifyPow(n)
	case Call:
		return simplifyCall(n)
	}
	return e
}

// coeffRest splits a simplified term into its rational coefficient and the
// remaining symbolic part. A pure constant has rest == nil.
func coeffRest(e Expr) (Num, Expr) {
	switch n := e.(type) {
	case Num:
		return n, nil
	case Mul:
		c := intNum(1)
		var rest []Expr
		for _, f := range n.Factors {
			if num, ok := f.(Num); ok {
				c = c.mul(num)
			} else {
				rest = append(rest, f)
			}
		}
		if len(rest) == 0 {
			return c, nil
		}
		return c, mul(rest...)
	default:
		return intNum(1), e
	}
}

func simplifyAdd(a Add) Expr {
	// Simplify and flatten.
	var flat []Expr
	for _, t := range a.Terms {
		s := Simplify(t)
		if inner, ok := s.(Add); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, s)
		}
	}

	// Collect like terms by the key of their symbolic part.
	constant := intNum(0)
	coeffs := map[string]Num{}
	rests := map[string]Expr{}
	var order []string
	for _, t := range flat {
		c, rest := coeffRest(t)
		if rest == nil {
			constant = constant.add(c)
			continue
		}
		k := key(rest)
		if _, seen := coeffs[k]; !seen {
			order = append(order, k)
			rests[k] = rest
			coeffs[k] = c
		} else {
			coeffs[k] = coeffs[k].add(c)
		}
	}
	sort.Strings(order)

	var out []Expr
	for _, k := range order {
		c := coeffs[k]
		if c.isZero() {
			continue
		}
		if c.isOne() {
			out = append(out, rests[k])
		} else {
			out = append(out, makeMul(c, rests[k]))
		}
	}
	if !constant.isZero() || len(out) == 0 {
		out = append(out, constant)
	}
	if len(out) == 1 {
		return out[0]
	}
	return Add{Terms: out}
}

// makeMul prepends a rational coefficient to a symbolic part without
// re-simplifying.
func makeMul(c Num, rest Expr) Expr {
	if m, ok := rest.(Mul); ok {
		fs := make([]Expr, 0, len(m.Factors)+1)
		fs = append(fs, c)
		fs = append(fs, m.Factors...)
		return Mul{Factors: fs}
	}
	return Mul{Factors: []Expr{c, rest}}
}

func simplifyMul(m Mul) Expr {
	var flat []Expr
	for _, f := range m.Factors {
		s := Simplify(f)
		if inner, ok := s.(Mul); ok {
			flat = append(flat, inner.Factors...)
		} else {
			flat = append(flat, s)
		}
	}

	// Combine rational constants and collect exponents per base key.
	constant := intNum(1)
	expos := map[string]Expr{}
	bases := map[string]Expr{}
	var order []string
	addFactor := func(base, exp Expr) {
		k := key(base)
		if prev, seen := expos[k]; seen {
			expos[k] = Simplify(add(prev, exp))
		} else {
			order = append(order, k)
			bases[k] = base
			expos[k] = exp
		}
	}
	for _, f := range flat {
		switch n := f.(type) {
		case Num:
			constant = constant.mul(n)
		case Pow:
			addFactor(n.Base, n.Exp)
		default:
			addFactor(f, intNum(1))
		}
	}
	if constant.isZero() {
		return intNum(0)
	}
	sort.Strings(order)

	var out []Expr
	for _, k := range order {
		f := Simplify(pow(bases[k], expos[k]))
		if num, ok := f.(Num); ok {
			constant = constant.mul(num)
			continue
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return constant
	}
	if !constant.isOne() {
		out = append([]Expr{constant}, out...)
	}
	if len(out) == 1 {
		return out[0]
	}
	return Mul{Factors: out}
}

func simplifyPow(p Pow) Expr {
	base := Simplify(p.Base)
	exp := Simplify(p.Exp)

	if en, ok := exp.(Num); ok {
		if en.isZero() {
			return intNum(1)
		}
		if en.isOne() {
			return base
		}
		if bn, ok := base.(Num); ok && en.isInt() {
			return bn.powInt(en.P)
		}
	}
	if bn, ok := base.(Num); ok && bn.isOne() {
		return intNum(1)
	}
	// (u^a)^b = u^(a*b) for rational a, b.
	if inner, ok := base.(Pow); ok {
		if a, okA := inner.Exp.(Num); okA {
			if b, okB := exp.(Num); okB {
				return Simplify(pow(inner.Base, a.mul(b)))
			}
		}
	}
	// Distribute rational powers over products: (c*u)^n.
	if m, ok := base.(Mul); ok {
		if en, okE := exp.(Num); okE && en.isInt() {
			fs := make([]Expr, len(m.Factors))
			for i, f := range m.Factors {
				fs[i] = pow(f, en)
			}
			return Simplify(mul(fs...))
		}
	}
	return Pow{Base: base, Exp: exp}
}

func simplifyCall(c Call) Expr {
	arg := Simplify(c.Arg)
	if n, ok := arg.(Num); ok {
		switch {
		case c.Fn == "sin" && n.isZero():
			return intNum(0)
		case c.Fn == "cos" && n.isZero():
			return intNum(1)
		case c.Fn == "tan" && n.isZero():
			return intNum(0)
		case c.Fn == "ln" && n.isOne():
			return intNum(0)
		case c.Fn == "exp" && n.isZero():
			return intNum(1)
		case c.Fn == "atan" && n.isZero():
			return intNum(0)
		case c.Fn == "asin" && n.isZero():
			return intNum(0)
		}
	}
	// ln(e^u) = u, e^ln(u) = u.
	if c.Fn == "ln" {
		if p, ok := arg.(Pow); ok {
			if v, ok := p.Base.(Var); ok && v.Name == eulerName {
				return p.Exp
			}
		}
		if inner, ok := arg.(Call); ok && inner.Fn == "exp" {
			return inner.Arg
		}
	}
	if c.Fn == "exp" {
		if inner, ok := arg.(Call); ok && inner.Fn == "ln" {
			return inner.Arg
		}
	}
	return Call{Fn: c.Fn, Arg: arg}
}

// rewriteTrig expresses tan, sec, csc, and cot in terms of sin and cos so
// that reciprocal identities cancel during simplification. Used by the
// equality check before falling back to numeric probing.
func rewriteTrig(e Expr) Expr {
	switch n := e.(type) {
	case Num, Var:
		return e
	case Add:
		out := make([]Expr, len(n.Terms))
		for i, t := range n.Terms {
			out[i] = rewriteTrig(t)
		}
		return add(out...)
	case Mul:
		out := make([]Expr, len(n.Factors))
		for i, f := range n.Factors {
			out[i] = rewriteTrig(f)
		}
		return mul(out...)
	case Pow:
		return pow(rewriteTrig(n.Base), rewriteTrig(n.Exp))
	case Call:
		u := rewriteTrig(n.Arg)
		switch n.Fn {
		case "tan":
			return mul(Call{Fn: "sin", Arg: u}, pow(Call{Fn: "cos", Arg: u}, intNum(-1)))
		case "cot":
			return mul(Call{Fn: "cos", Arg: u}, pow(Call{Fn: "sin", Arg: u}, intNum(-1)))
		case "sec":
			return pow(Call{Fn: "cos", Arg: u}, intNum(-1))
		case "csc":
			return pow(Call{Fn: "sin", Arg: u}, intNum(-1))
		}
		return Call{Fn: n.Fn, Arg: u}
	}
	return e
}
