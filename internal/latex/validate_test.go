package latex

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{"empty", "", ""},
		{"plain polynomial", `x^2 + 3x - 1`, ""},
		{"frac", `\frac{x^3}{3} + C`, ""},
		{"nested frac", `\frac{1}{\frac{a}{b}}`, ""},
		{"integral with dx", `\int x^2 \, dx`, ""},
		{"definite integral", `\int_{0}^{1} \sin x \, dx`, ""},
		{"sqrt", `\sqrt{1 - x^2}`, ""},
		{"sqrt with index", `\sqrt[3]{x}`, ""},
		{"inverse trig", `\sin^{-1}(x)`, ""},
		{"left right", `\left( \frac{x}{2} \right)^2`, ""},
		{"unclosed brace", `\frac{x^3}{3`, "unclosed brace"},
		{"unmatched close", `x^2}`, "unmatched closing brace"},
		{"unclosed paren", `\sin(x`, "unclosed parenthesis"},
		{"frac missing arg", `\frac{x}`, `malformed \frac`},
		{"bare sqrt", `\sqrt + 2`, `malformed \sqrt`},
		{"double superscript", `x^^2`, "double superscript"},
		{"double subscript", `x__2`, "double subscript"},
		{"unknown command", `\badmacro{x}`, `unknown command \badmacro`},
		{"injection", `\input{/etc/passwd}`, `unknown command \input`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expr)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate(%q) = %v, want nil", tt.expr, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want error containing %q", tt.expr, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate(%q) = %v, want error containing %q", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestExtractMath(t *testing.T) {
	text := `Evaluate $$\int x \, dx$$ where $x > 0$ and $a \neq 0$.`
	got := ExtractMath(text)
	if len(got) != 3 {
		t.Fatalf("got %d expressions, want 3: %v", len(got), got)
	}
	// Display blocks come first.
	if got[0] != `\int x \, dx` {
		t.Errorf("display = %q", got[0])
	}
	if got[1] != `x > 0` || got[2] != `a \neq 0` {
		t.Errorf("inline = %q, %q", got[1], got[2])
	}
}

func TestExtractMathNone(t *testing.T) {
	if got := ExtractMath("no math here"); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestValidateMarkdown(t *testing.T) {
	good := `What is $\int x^2 \, dx$?`
	if err := ValidateMarkdown(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := `What is $\frac{x^3}{3$?`
	if err := ValidateMarkdown(bad); err == nil {
		t.Fatal("expected error for unbalanced math in markdown")
	}
}
