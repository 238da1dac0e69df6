package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/mcqgen/internal/latex"
	"github.com/abhisek/mcqgen/internal/symbolic"
)

// Validator checks claimed answers independently of the model that
// produced them: structural LaTeX validation first, then mathematical
// verification against the integral in the stem. A wrong claim is
// corrected when the rule-based integrator can produce the answer
// itself; otherwise the question is dropped.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// validationOutcome is the per-question result of Validate.
type validationOutcome struct {
	question Question
	ok       bool
	drop     Drop
}

// Validate runs every question through both validation phases and
// returns the survivors plus drops. Validation is deterministic and
// idempotent: a corrected survivor re-validates unchanged, with its
// Corrected flag intact. The corrected count covers this pass only.
func (v *Validator) Validate(questions []Question) (validated []Question, drops []Drop, corrected int) {
	for _, q := range questions {
		out := v.validateOne(q)
		if !out.ok {
			drops = append(drops, out.drop)
			continue
		}
		if out.question.Corrected && !q.Corrected {
			corrected++
		}
		validated = append(validated, out.question)
	}
	return validated, drops, corrected
}

func (v *Validator) validateOne(q Question) validationOutcome {
	// Phase 1: structure. A stem or answer the renderer cannot display
	// is unusable regardless of the math.
	if err := latex.ValidateMarkdown(q.Stem); err != nil {
		return dropped(q, DropSyntaxInvalid, fmt.Sprintf("stem: %v", err))
	}
	if err := latex.Validate(strings.ReplaceAll(q.Answer, "$", "")); err != nil {
		return dropped(q, DropSyntaxInvalid, fmt.Sprintf("answer: %v", err))
	}

	// Phase 2: mathematics. The integral comes from the stem, never
	// from the claim being checked.
	integral, ok := extractFromStem(q.Stem)
	if !ok {
		return dropped(q, DropUnverifiedAnswer, "no integral found in stem")
	}

	q.Variable = integral.Variable
	q.Definite = integral.Definite
	q.IntegralTags = integralTags(integral)

	if integral.Definite {
		return v.validateDefinite(q, integral)
	}
	return v.validateIndefinite(q, integral)
}

func (v *Validator) validateIndefinite(q Question, in symbolic.Integral) validationOutcome {
	r, err := symbolic.VerifyAntiderivative(in.Integrand, q.Answer, in.Variable)
	if err == nil && r.Equal {
		q.Validated = true
		q.ValidationMethod = r.Method
		q.ValidationScore = 1.0
		return validationOutcome{question: q, ok: true}
	}

	// The claim is wrong or unparseable: compute the real answer.
	correctedAnswer, cerr := symbolic.ComputeAntiderivative(in.Integrand, in.Variable)
	if cerr != nil {
		detail := "claim did not verify and no correction rule applies"
		if err != nil {
			detail = fmt.Sprintf("claim unparseable (%v) and no correction rule applies", err)
		}
		if errors.Is(cerr, symbolic.ErrNoRule) {
			return dropped(q, DropUnverifiedAnswer, detail)
		}
		return dropped(q, DropUnverifiedAnswer, fmt.Sprintf("%s: %v", detail, cerr))
	}

	q.Answer = correctedAnswer + " + C"
	q.Validated = true
	q.Corrected = true
	q.ValidationMethod = "corrected"
	q.ValidationScore = 1.0
	return validationOutcome{question: q, ok: true}
}

func (v *Validator) validateDefinite(q Question, in symbolic.Integral) validationOutcome {
	r, err := symbolic.VerifyDefinite(in, q.Answer)
	if err == nil && r.Equal {
		q.Validated = true
		q.ValidationMethod = r.Method
		q.ValidationScore = 1.0
		return validationOutcome{question: q, ok: true}
	}

	val, cerr := symbolic.DefiniteValue(in)
	if cerr != nil {
		return dropped(q, DropUnverifiedAnswer, fmt.Sprintf("definite integral unevaluable: %v", cerr))
	}
	q.Answer = formatDefinite(val)
	q.Validated = true
	q.Corrected = true
	q.ValidationMethod = "corrected"
	q.ValidationScore = 1.0
	return validationOutcome{question: q, ok: true}
}

func dropped(q Question, reason, detail string) validationOutcome {
	return validationOutcome{drop: Drop{
		QuestionID: q.ID,
		Stage:      string(PhaseValidating),
		Reason:     reason,
		Detail:     detail,
	}}
}

// extractFromStem finds the integral inside the stem's math markup.
func extractFromStem(stem string) (symbolic.Integral, bool) {
	for _, expr := range latex.ExtractMath(stem) {
		if in, ok := symbolic.ExtractIntegral(expr); ok {
			return in, true
		}
	}
	// Stems occasionally arrive without $ delimiters.
	return symbolic.ExtractIntegral(stem)
}

// integralTags derives the taxonomy applicability tags for a question.
func integralTags(in symbolic.Integral) []string {
	tags := symbolic.ClassifyIntegrand(in.Integrand, in.Variable)
	if in.Definite {
		tags = append(tags, "definite_integral")
	} else {
		tags = append(tags, "indefinite_integral")
	}
	return tags
}

// formatDefinite renders a numeric definite-integral value, preferring
// exact-looking output for near-integers.
func formatDefinite(val float64) string {
	if math.Abs(val-math.Round(val)) < 1e-9 {
		return fmt.Sprintf("%d", int64(math.Round(val)))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", val), "0"), ".")
}
