package symbolic

import (
	"math"
	"testing"
)

func TestVerifyAntiderivative(t *testing.T) {
	tests := []struct {
		name      string
		integrand string
		answer    string
		equal     bool
	}{
		{"power rule", `x^2`, `\frac{x^3}{3} + C`, true},
		{"power rule wrong exponent", `x^2`, `\frac{x^2}{2} + C`, false},
		{"missing coefficient", `\cos 2x`, `\sin 2x + C`, false},
		{"chain rule coefficient", `\cos 2x`, `\frac{1}{2}\sin 2x + C`, true},
		{"derivative instead of integral", `x^3`, `3x^2`, false},
		{"sign flip", `\sin x`, `\cos x + C`, false},
		{"negative cosine", `\sin x`, `-\cos x + C`, true},
		{"reciprocal", `\frac{1}{x}`, `\ln|x| + C`, true},
		{"exponential", `e^{3x}`, `\frac{1}{3}e^{3x} + C`, true},
		{"secant squared", `\sec^{2} x`, `\tan x + C`, true},
		{"inverse tangent", `\frac{1}{1 + x^2}`, `\tan^{-1}(x) + C`, true},
		{"inverse sine", `\frac{1}{\sqrt{1 - x^2}}`, `\sin^{-1}(x) + C`, true},
		{"no constant needed", `2x`, `x^2`, true},
		{"constant shift ignored", `2x`, `x^2 + 7`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := VerifyAntiderivative(tt.integrand, tt.answer, "x")
			if err != nil {
				t.Fatalf("VerifyAntiderivative: %v", err)
			}
			if r.Equal != tt.equal {
				t.Errorf("integrand %q answer %q: equal=%v (%s), want %v",
					tt.integrand, tt.answer, r.Equal, r.Method, tt.equal)
			}
		})
	}
}

func TestVerifyNeedsNumericProbe(t *testing.T) {
	// sin(2x) and 2 sin x cos x differ structurally; only the probe can
	// identify them.
	r, err := VerifyAntiderivative(`2\sin x \cos x`, `-\frac{1}{2}\cos 2x + C`, "x")
	if err != nil {
		t.Fatalf("VerifyAntiderivative: %v", err)
	}
	if !r.Equal {
		t.Fatal("double-angle form not recognized as antiderivative")
	}
	if r.Method != "numeric" {
		t.Errorf("method = %s, want numeric", r.Method)
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`\frac{x^3}{3}`, `\frac{1}{3}x^3`, true},
		{`\frac{x^3}{3} + C`, `\frac{1}{3}x^3`, true},
		{`x^2`, `x^3`, false},
		{`\tan x`, `\frac{\sin x}{\cos x}`, true},
		{`-\cos x`, `\cos x`, false},
	}
	for _, tt := range tests {
		if got := Equivalent(tt.a, tt.b, "x"); got != tt.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNegation(t *testing.T) {
	if !Negation(`\cos x`, `-\cos x`, "x") {
		t.Error("negation not detected")
	}
	if Negation(`\cos x`, `\cos x`, "x") {
		t.Error("identical expressions reported as negation")
	}
}

func TestComputeAntiderivative(t *testing.T) {
	// The rendered antiderivative must itself verify against the
	// integrand, closing the parse/render loop.
	integrands := []string{
		`x^2`,
		`3x^2 + 2x + 1`,
		`\cos 2x`,
		`e^{3x}`,
		`\frac{1}{x}`,
		`\sin 5x`,
		`\sec^{2} x`,
		`\frac{1}{1 + x^2}`,
		`(2x + 1)^3`,
		`\frac{1}{2x + 3}`,
	}
	for _, in := range integrands {
		got, err := ComputeAntiderivative(in, "x")
		if err != nil {
			t.Fatalf("ComputeAntiderivative(%q): %v", in, err)
		}
		r, err := VerifyAntiderivative(in, got, "x")
		if err != nil {
			t.Fatalf("verify rendered %q for %q: %v", got, in, err)
		}
		if !r.Equal {
			t.Errorf("rendered antiderivative %q does not verify for %q", got, in)
		}
	}
}

func TestComputeAntiderivativeNoRule(t *testing.T) {
	// Beyond the rule table: must refuse, not guess.
	if _, err := ComputeAntiderivative(`e^{x^2}`, "x"); err == nil {
		t.Error("expected no-rule error for e^{x^2}")
	}
}

func TestExtractIntegral(t *testing.T) {
	in, ok := ExtractIntegral(`$\int x^2 \, dx$`)
	if !ok {
		t.Fatal("indefinite integral not extracted")
	}
	if in.Definite || in.Variable != "x" || in.Integrand != `x^2` {
		t.Errorf("got %+v", in)
	}

	// Bound brace styles mix freely in model output.
	definite := []struct {
		expr         string
		lower, upper string
	}{
		{`$\int_{0}^{1} x^2 \, dx$`, "0", "1"},
		{`$\int_0^1 x^2 \, dx$`, "0", "1"},
		{`$\int_0^{\pi} \sin x \, dx$`, "0", `\pi`},
		{`$\int_{0}^1 x^2 \, dx$`, "0", "1"},
		{`$\int_0^\pi \sin x \, dx$`, "0", `\pi`},
		{`$\int_{-1}^{2} x \, dx$`, "-1", "2"},
	}
	for _, tt := range definite {
		in, ok = ExtractIntegral(tt.expr)
		if !ok {
			t.Fatalf("definite integral not extracted from %q", tt.expr)
		}
		if !in.Definite || in.Lower != tt.lower || in.Upper != tt.upper {
			t.Errorf("%q: got %+v, want bounds %q..%q", tt.expr, in, tt.lower, tt.upper)
		}
	}

	if _, ok := ExtractIntegral(`x^2 + 1`); ok {
		t.Error("extracted an integral from a non-integral expression")
	}
}

func TestVerifyDefinite(t *testing.T) {
	in := Integral{Integrand: `x^2`, Variable: "x", Definite: true, Lower: "0", Upper: "1"}
	r, err := VerifyDefinite(in, `\frac{1}{3}`)
	if err != nil {
		t.Fatalf("VerifyDefinite: %v", err)
	}
	if !r.Equal {
		t.Error("1/3 rejected for integral of x^2 over [0,1]")
	}

	r, err = VerifyDefinite(in, `\frac{1}{2}`)
	if err != nil {
		t.Fatalf("VerifyDefinite: %v", err)
	}
	if r.Equal {
		t.Error("1/2 accepted for integral of x^2 over [0,1]")
	}
}

func TestDefiniteValueQuadratureFallback(t *testing.T) {
	// e^{x^2} has no elementary antiderivative; Simpson takes over.
	in := Integral{Integrand: `e^{x^2}`, Variable: "x", Definite: true, Lower: "0", Upper: "1"}
	got, err := DefiniteValue(in)
	if err != nil {
		t.Fatalf("DefiniteValue: %v", err)
	}
	const want = 1.46265174 // reference value
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("DefiniteValue = %g, want ~%g", got, want)
	}
}

func TestClassifyIntegrand(t *testing.T) {
	tags := ClassifyIntegrand(`\sin(x^2) \cdot 2x`, "x")
	has := func(want string) bool {
		for _, tg := range tags {
			if tg == want {
				return true
			}
		}
		return false
	}
	if !has("trigonometric") || !has("substitution") {
		t.Errorf("tags = %v, want trigonometric and substitution", tags)
	}

	tags = ClassifyIntegrand(`x^5`, "x")
	if len(tags) == 0 || tags[0] != "power_rule" {
		t.Errorf("tags = %v, want power_rule first", tags)
	}
}
