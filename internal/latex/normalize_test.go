package latex

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  x^2   +  1 ", "x^2 + 1"},
		{`\arcsin(x)`, `\sin^{-1}(x)`},
		{`\arctan(2x) + \arccos(x)`, `\tan^{-1}(2x) + \cos^{-1}(x)`},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompareKey(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"spacing", `\frac{x^3}{3} + C`, `\frac{x^3}{3}+C`, true},
		{"dollar wrapping", `$x^2 + C$`, `x^2 + C`, true},
		{"constant trimmed", `x^2 + C`, `x^2`, true},
		{"case of constant", `x^2 + c`, `x^2 + C`, true},
		{"left right delimiters", `\left(x+1\right)^2`, `(x+1)^2`, true},
		{"thin space", `\frac{x^3}{3}\,+C`, `\frac{x^3}{3}+C`, true},
		{"different answers", `x^2 + C`, `x^3 + C`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareKey(tt.a) == CompareKey(tt.b); got != tt.same {
				t.Errorf("CompareKey(%q) vs CompareKey(%q): same=%v, want %v", tt.a, tt.b, got, tt.same)
			}
		})
	}
}

func TestStrictKeyKeepsConstant(t *testing.T) {
	if StrictKey(`x^2 + C`) == StrictKey(`x^2`) {
		t.Fatal("StrictKey must distinguish an answer with +C from one without")
	}
	if CompareKey(`x^2 + C`) != CompareKey(`x^2`) {
		t.Fatal("CompareKey must treat +C as presentation")
	}
}
