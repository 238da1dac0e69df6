package pipeline

import (
	"strings"
	"testing"
)

func TestValidatorAcceptsCorrectAnswer(t *testing.T) {
	v := NewValidator()
	qs := []Question{{
		ID:         "q1",
		Stem:       `Evaluate $\int x^2 \, dx$.`,
		Answer:     `\frac{x^3}{3} + C`,
		Difficulty: DifficultyEasy,
	}}
	validated, drops, corrected := v.Validate(qs)
	if len(drops) != 0 {
		t.Fatalf("unexpected drops: %+v", drops)
	}
	if corrected != 0 {
		t.Errorf("corrected = %d, want 0", corrected)
	}
	if len(validated) != 1 {
		t.Fatalf("validated %d questions, want 1", len(validated))
	}
	q := validated[0]
	if !q.Validated || q.ValidationScore != 1.0 {
		t.Errorf("question not marked validated: %+v", q)
	}
	if q.Variable != "x" || q.Definite {
		t.Errorf("integral metadata wrong: var=%q definite=%v", q.Variable, q.Definite)
	}
	if len(q.IntegralTags) == 0 {
		t.Error("no integral tags assigned")
	}
}

func TestValidatorCorrectsWrongAnswer(t *testing.T) {
	v := NewValidator()
	qs := []Question{{
		ID:     "q1",
		Stem:   `Evaluate $\int x^2 \, dx$.`,
		Answer: `\frac{x^2}{2} + C`, // wrong: power rule misapplied
	}}
	validated, drops, corrected := v.Validate(qs)
	if len(drops) != 0 {
		t.Fatalf("unexpected drops: %+v", drops)
	}
	if corrected != 1 {
		t.Fatalf("corrected = %d, want 1", corrected)
	}
	q := validated[0]
	if !q.Corrected || q.ValidationMethod != "corrected" {
		t.Errorf("correction not recorded: %+v", q)
	}
	if !strings.Contains(q.Answer, "+ C") {
		t.Errorf("corrected answer %q missing constant", q.Answer)
	}
	// The corrected answer must itself validate.
	revalidated, redrops, recorrected := v.Validate(validated)
	if len(redrops) != 0 || len(revalidated) != 1 {
		t.Fatalf("corrected answer failed re-validation: %+v", redrops)
	}
	if recorrected != 0 {
		t.Error("re-validation corrected an already correct answer")
	}
}

func TestValidatorIdempotentOnCorrectedAnswers(t *testing.T) {
	v := NewValidator()
	qs := []Question{{
		ID:     "q1",
		Stem:   `Evaluate $\int \sin x \, dx$.`,
		Answer: `\cos x + C`, // sign flipped
	}}
	validated, drops, corrected := v.Validate(qs)
	if len(drops) != 0 || len(validated) != 1 || corrected != 1 {
		t.Fatalf("validated=%d drops=%d corrected=%d, want 1/0/1", len(validated), len(drops), corrected)
	}
	first := validated[0]
	if !first.Corrected {
		t.Fatal("correction not flagged")
	}

	// A second pass over the survivors must be a no-op: same answer,
	// correction flag intact, nothing newly corrected.
	again, redrops, recorrected := v.Validate(validated)
	if len(redrops) != 0 || len(again) != 1 {
		t.Fatalf("re-validation dropped a corrected survivor: %+v", redrops)
	}
	if again[0].Answer != first.Answer {
		t.Errorf("answer changed on re-validation: %q -> %q", first.Answer, again[0].Answer)
	}
	if !again[0].Corrected {
		t.Error("correction flag lost on re-validation")
	}
	if recorrected != 0 {
		t.Errorf("recorrected = %d, want 0", recorrected)
	}
}

func TestValidatorDropsBadSyntax(t *testing.T) {
	v := NewValidator()
	qs := []Question{{
		ID:     "q1",
		Stem:   `Evaluate $\int \frac{x^2 \, dx$.`, // unclosed brace
		Answer: `\frac{x^3}{3} + C`,
	}}
	validated, drops, _ := v.Validate(qs)
	if len(validated) != 0 {
		t.Fatalf("invalid stem passed validation")
	}
	if len(drops) != 1 || drops[0].Reason != DropSyntaxInvalid {
		t.Fatalf("drops = %+v, want one %s", drops, DropSyntaxInvalid)
	}
}

func TestValidatorDropsUnverifiable(t *testing.T) {
	v := NewValidator()
	qs := []Question{
		{
			ID:     "q1",
			Stem:   `Evaluate $\int e^{x^2} \, dx$.`, // no elementary antiderivative
			Answer: `e^{x^2} + C`,
		},
		{
			ID:     "q2",
			Stem:   `What is the derivative of $x^2$?`, // no integral at all
			Answer: `2x`,
		},
	}
	validated, drops, _ := v.Validate(qs)
	if len(validated) != 0 {
		t.Fatalf("unverifiable questions passed: %+v", validated)
	}
	for _, d := range drops {
		if d.Reason != DropUnverifiedAnswer {
			t.Errorf("drop reason = %s, want %s", d.Reason, DropUnverifiedAnswer)
		}
	}
}

func TestValidatorDefiniteIntegral(t *testing.T) {
	v := NewValidator()
	qs := []Question{
		{
			ID:     "good",
			Stem:   `Evaluate $\int_{0}^{1} x^2 \, dx$.`,
			Answer: `\frac{1}{3}`,
		},
		{
			ID:     "wrong",
			Stem:   `Evaluate $\int_{0}^{1} x^2 \, dx$.`,
			Answer: `\frac{1}{2}`,
		},
	}
	validated, drops, corrected := v.Validate(qs)
	if len(drops) != 0 {
		t.Fatalf("unexpected drops: %+v", drops)
	}
	if len(validated) != 2 || corrected != 1 {
		t.Fatalf("validated=%d corrected=%d, want 2 and 1", len(validated), corrected)
	}
	for _, q := range validated {
		if !q.Definite {
			t.Errorf("question %s not tagged definite", q.ID)
		}
	}
	if validated[1].Answer == `\frac{1}{2}` {
		t.Error("wrong definite answer was not corrected")
	}
}
