package latex

import (
	"regexp"
	"strings"
)

var (
	wsRe      = regexp.MustCompile(`\s+`)
	spacingRe = regexp.MustCompile(`\\[,;:]|\\quad|\\qquad`)
	parenRe   = regexp.MustCompile(`\\left|\\right`)
)

// Normalize cleans an expression for consistency: collapses whitespace and
// rewrites arc-function names to inverse notation.
func Normalize(expr string) string {
	if expr == "" {
		return expr
	}

	n := wsRe.ReplaceAllString(expr, " ")
	n = strings.TrimSpace(n)

	n = strings.ReplaceAll(n, `\arcsin`, `\sin^{-1}`)
	n = strings.ReplaceAll(n, `\arccos`, `\cos^{-1}`)
	n = strings.ReplaceAll(n, `\arctan`, `\tan^{-1}`)

	return n
}

// CompareKey reduces an expression to a markup-insensitive key used for
// duplicate detection between answer options. Two options whose keys match
// are the same answer regardless of spacing, delimiters, or $ wrapping.
func CompareKey(expr string) string {
	k := StrictKey(expr)

	// +c / +C at the tail is presentation, not substance.
	for _, suffix := range []string{"+c", "+k"} {
		k = strings.TrimSuffix(k, suffix)
	}
	return k
}

// StrictKey is CompareKey without constant-of-integration trimming:
// "x^2 + C" and "x^2" stay distinct. Used when the missing constant IS
// the difference under test.
func StrictKey(expr string) string {
	k := Normalize(expr)
	k = strings.ReplaceAll(k, "$", "")
	k = spacingRe.ReplaceAllString(k, "")
	k = parenRe.ReplaceAllString(k, "")
	k = wsRe.ReplaceAllString(k, "")
	return strings.ToLower(k)
}
