// Package latex provides structural checks and normalization for the math
// markup flowing through the pipeline. Validation here is purely syntactic;
// mathematical correctness lives in the symbolic package.
package latex

import (
	"fmt"
	"regexp"
	"strings"
)

// safeCommands is the known-safe set of commands allowed in stems and
// answers. A command outside this set fails validation — the symbolic
// parser cannot handle it and the renderer may not either.
var safeCommands = map[string]bool{
	"frac": true, "int": true, "sqrt": true, "sum": true, "prod": true,
	"lim": true, "infty": true,
	"sin": true, "cos": true, "tan": true, "sec": true, "csc": true, "cot": true,
	"arcsin": true, "arccos": true, "arctan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"log": true, "ln": true, "exp": true,
	"alpha": true, "beta": true, "gamma": true, "theta": true, "pi": true,
	"cdot": true, "times": true, "div": true, "pm": true,
	"leq": true, "geq": true, "neq": true, "approx": true,
	"left": true, "right": true, "text": true, "mathrm": true, "dx": true,
	"quad": true, "qquad": true, ",": true, ";": true, ":": true,
}

var (
	commandRe     = regexp.MustCompile(`\\([a-zA-Z]+|[,;:])`)
	fracRe        = regexp.MustCompile(`\\frac\s*\{[^{}]*\}\s*\{[^{}]*\}`)
	fracNestedRe  = regexp.MustCompile(`\\frac\s*\{`)
	sqrtShapeRe   = regexp.MustCompile(`\\sqrt(\[[^\]]*\])?\s*\{[^}]*\}`)
	sqrtRe        = regexp.MustCompile(`\\sqrt`)
	doubleSupRe   = regexp.MustCompile(`\^\^`)
	doubleSubRe   = regexp.MustCompile(`__`)
	inlineMathRe  = regexp.MustCompile(`\$([^$]+)\$`)
	displayMathRe = regexp.MustCompile(`\$\$([^$]+)\$\$`)
)

// Validate checks a single math expression for structural soundness:
// balanced grouping delimiters, well-formed commands, and command safety.
// Returns nil if the expression is valid.
func Validate(expr string) error {
	if expr == "" {
		return nil
	}

	if err := checkBalanced(expr, '{', '}', "brace"); err != nil {
		return err
	}
	if err := checkBalanced(expr, '[', ']', "bracket"); err != nil {
		return err
	}
	if err := checkBalanced(expr, '(', ')', "parenthesis"); err != nil {
		return err
	}

	// Every \frac must carry two braced arguments. Counting nested fracs
	// via the simple shape regex undercounts, so only flag when the outer
	// shape is clearly absent.
	fracCount := len(fracNestedRe.FindAllString(expr, -1))
	fracOK := len(fracRe.FindAllString(expr, -1))
	if fracCount > 0 && fracOK == 0 {
		return fmt.Errorf(`malformed \frac command (needs two arguments in braces)`)
	}

	sqrtCount := len(sqrtRe.FindAllString(expr, -1))
	sqrtOK := len(sqrtShapeRe.FindAllString(expr, -1))
	if sqrtCount > 0 && sqrtOK == 0 {
		return fmt.Errorf(`malformed \sqrt command`)
	}

	if doubleSupRe.MatchString(expr) {
		return fmt.Errorf("double superscript (^^) without braces")
	}
	if doubleSubRe.MatchString(expr) {
		return fmt.Errorf("double subscript (__) without braces")
	}

	for _, m := range commandRe.FindAllStringSubmatch(expr, -1) {
		if !safeCommands[m[1]] {
			return fmt.Errorf("unknown command \\%s", m[1])
		}
	}

	return nil
}

// ValidateMarkdown extracts every math expression from markdown text and
// validates each. The first failure is returned.
func ValidateMarkdown(text string) error {
	for _, expr := range ExtractMath(text) {
		if err := Validate(expr); err != nil {
			return fmt.Errorf("%q: %w", truncate(expr, 40), err)
		}
	}
	return nil
}

// ExtractMath returns all inline ($...$) and display ($$...$$) math
// expressions found in markdown text.
func ExtractMath(text string) []string {
	var out []string
	for _, m := range displayMathRe.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	// Strip display blocks first so inline matching doesn't see their halves.
	stripped := displayMathRe.ReplaceAllString(text, "")
	for _, m := range inlineMathRe.FindAllStringSubmatch(stripped, -1) {
		out = append(out, m[1])
	}
	return out
}

func checkBalanced(expr string, open, close rune, name string) error {
	depth := 0
	for i, ch := range expr {
		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth < 0 {
				return fmt.Errorf("unmatched closing %s at position %d", name, i)
			}
		}
	}
	if depth > 0 {
		return fmt.Errorf("unclosed %s: %d remaining", name, depth)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
