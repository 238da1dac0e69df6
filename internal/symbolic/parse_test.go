package symbolic

import (
	"math"
	"testing"
)

func evalAt(t *testing.T, latex string, x float64) float64 {
	t.Helper()
	e, err := ParseLaTeX(latex)
	if err != nil {
		t.Fatalf("ParseLaTeX(%q): %v", latex, err)
	}
	v, err := Eval(e, map[string]float64{"x": x})
	if err != nil {
		t.Fatalf("Eval(%q at x=%g): %v", latex, x, err)
	}
	return v
}

func TestParseAndEval(t *testing.T) {
	tests := []struct {
		latex string
		x     float64
		want  float64
	}{
		{`x^2`, 3, 9},
		{`\frac{3}{4}x^2`, 2, 3},
		{`2x + 1`, 5, 11},
		{`\frac{x^3}{3}`, 3, 9},
		{`\sin x`, math.Pi / 2, 1},
		{`\cos 2x`, math.Pi / 2, -1},
		{`\sin^{2} x + \cos^{2} x`, 0.83, 1},
		{`e^x`, 1, math.E},
		{`e^{2x}`, 0.5, math.E},
		{`\ln|x|`, math.E, 1},
		{`\sqrt{x}`, 9, 3},
		{`\frac{1}{\sqrt{1 - x^2}}`, 0.5, 1 / math.Sqrt(0.75)},
		{`\tan^{-1}(x)`, 1, math.Pi / 4},
		{`3 \cdot 4`, 0, 12},
		{`-x^2`, 2, -4},
		{`(x+1)(x-1)`, 3, 8},
		{`2\pi`, 0, 2 * math.Pi},
		{`0.5x`, 4, 2},
	}
	for _, tt := range tests {
		got := evalAt(t, tt.latex, tt.x)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("eval %q at x=%g = %g, want %g", tt.latex, tt.x, got, tt.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, bad := range []string{`x +`, `(x`, `\frac{x}{`, `x ? y`} {
		if _, err := ParseLaTeX(bad); err == nil {
			t.Errorf("ParseLaTeX(%q) succeeded, want error", bad)
		}
	}
}

func TestImplicitMultiplication(t *testing.T) {
	// "ax" is two symbols multiplied, never a single identifier.
	e, err := ParseLaTeX(`ax`)
	if err != nil {
		t.Fatalf("ParseLaTeX: %v", err)
	}
	got, err := Eval(e, map[string]float64{"a": 3, "x": 4})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 12 {
		t.Errorf("ax with a=3 x=4 = %g, want 12", got)
	}
}

func TestStripConstant(t *testing.T) {
	for _, latex := range []string{`x^2 + c`, `x^2 + C`, `x^2 + k`} {
		e, err := ParseLaTeX(latex)
		if err != nil {
			t.Fatalf("ParseLaTeX(%q): %v", latex, err)
		}
		stripped := Simplify(StripConstant(e))
		want := Simplify(pow(Var{Name: "x"}, intNum(2)))
		if key(stripped) != key(want) {
			t.Errorf("StripConstant(%q) = %s, want %s", latex, key(stripped), key(want))
		}
	}
}

func TestSimplifyCollectsTerms(t *testing.T) {
	tests := []struct {
		latex string
		want  string
	}{
		{`x + x`, `(* 2 x)`},
		{`x - x`, `0`},
		{`2x + 3x`, `(* 5 x)`},
		{`x + x + x`, `(* 3 x)`},
		{`x^3 - x^2`, `(+ (* -1 (^ x 2)) (^ x 3))`},
		{`\frac{1}{2}x + \frac{1}{2}x`, `x`},
		{`x \cdot x`, `(^ x 2)`},
		{`\frac{1}{2} \cdot 2`, `1`},
		{`x^2 \cdot x^3`, `(^ x 5)`},
	}
	for _, tt := range tests {
		e, err := ParseLaTeX(tt.latex)
		if err != nil {
			t.Fatalf("ParseLaTeX(%q): %v", tt.latex, err)
		}
		if got := key(Simplify(e)); got != tt.want {
			t.Errorf("Simplify(%q) = %s, want %s", tt.latex, got, tt.want)
		}
	}
}

func TestDiff(t *testing.T) {
	// Check derivatives numerically against a central difference.
	exprs := []string{
		`x^3`,
		`\sin 2x`,
		`e^{3x}`,
		`\ln|x|`,
		`x \sin x`,
		`\tan x`,
		`\sin^{-1}(x)`,
		`\frac{1}{x^2 + 1}`,
	}
	const h = 1e-5
	for _, latex := range exprs {
		e, err := ParseLaTeX(latex)
		if err != nil {
			t.Fatalf("ParseLaTeX(%q): %v", latex, err)
		}
		d := Diff(e, "x")
		for _, x := range []float64{0.4, 0.9} {
			got, err := Eval(d, map[string]float64{"x": x})
			if err != nil {
				t.Fatalf("Eval diff of %q at %g: %v", latex, x, err)
			}
			hi, err1 := Eval(e, map[string]float64{"x": x + h})
			lo, err2 := Eval(e, map[string]float64{"x": x - h})
			if err1 != nil || err2 != nil {
				t.Fatalf("Eval %q near %g failed", latex, x)
			}
			want := (hi - lo) / (2 * h)
			if math.Abs(got-want) > 1e-4*math.Max(1, math.Abs(want)) {
				t.Errorf("d/dx %q at %g = %g, want ~%g", latex, x, got, want)
			}
		}
	}
}
