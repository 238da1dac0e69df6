package pipeline

import (
	"testing"

	"github.com/abhisek/mcqgen/internal/taxonomy"
)

func sampleQuestion() Question {
	return Question{
		ID:           "q1",
		Stem:         `Evaluate $\int \sin x \, dx$.`,
		Answer:       `-\cos x + C`,
		Difficulty:   DifficultyMedium,
		Variable:     "x",
		IntegralTags: []string{"trigonometric", "indefinite_integral"},
		Validated:    true,
	}
}

func TestRankDistractorsDiscardsDuplicates(t *testing.T) {
	q := sampleQuestion()
	candidates := []Distractor{
		{Text: `-\cos x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic},       // identical to correct
		{Text: `\frac{-2\cos x}{2} + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic}, // equivalent to correct
		{Text: `\cos x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic},
	}
	ranked := RankDistractors(q, candidates, 3)
	if len(ranked) != 1 {
		t.Fatalf("ranked %d candidates, want 1 (duplicates discarded): %+v", len(ranked), ranked)
	}
	if ranked[0].Text != `\cos x + C` {
		t.Errorf("survivor = %q, want the sign-flipped answer", ranked[0].Text)
	}
}

func TestRankDistractorsKeepsConstantOmitted(t *testing.T) {
	// Dropping "+ C" is equivalent math but a legitimate distractor; only
	// the not_const_omitted mechanism may present it.
	q := sampleQuestion()
	candidates := []Distractor{
		{Text: `-\cos x`, ErrorTypeID: "not_const_omitted", Category: taxonomy.CategoryNotational},
	}
	ranked := RankDistractors(q, candidates, 3)
	if len(ranked) != 1 {
		t.Fatalf("constant-omitted distractor discarded")
	}
}

func TestRankDistractorsOrderIndependent(t *testing.T) {
	q := sampleQuestion()
	candidates := []Distractor{
		{Text: `\cos x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic},
		{Text: `\sin x + C`, ErrorTypeID: "trig_identity_confusion", Category: taxonomy.CategoryTrigonometric},
		{Text: `-\cos x`, ErrorTypeID: "not_const_omitted", Category: taxonomy.CategoryNotational},
		{Text: `\tan x + C`, ErrorTypeID: "calc_wrong_formula", Category: taxonomy.CategoryCalculus},
	}
	first := RankDistractors(q, candidates, 3)

	reversed := make([]Distractor, len(candidates))
	for i, c := range candidates {
		reversed[len(candidates)-1-i] = c
	}
	second := RankDistractors(q, reversed, 3)

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("selection sizes %d/%d, want 3", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("position %d: %q vs %q — ranking depends on input order",
				i, first[i].Text, second[i].Text)
		}
	}
}

func TestRankDistractorsSignFlipMechanism(t *testing.T) {
	// A candidate that demonstrably is the negated correct answer must
	// outrank one that merely claims the sign-flip mechanism.
	q := sampleQuestion()
	candidates := []Distractor{
		{Text: `\tan x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic},
		{Text: `\cos x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic},
	}
	ranked := RankDistractors(q, candidates, 2)
	if len(ranked) != 2 {
		t.Fatalf("ranked %d, want 2", len(ranked))
	}
	if ranked[0].Text != `\cos x + C` {
		t.Errorf("on-mechanism candidate ranked %q first, want the true negation", ranked[0].Text)
	}
}

func TestApplicableErrorsUnionsTags(t *testing.T) {
	q := sampleQuestion()
	q.IntegralTags = []string{"trigonometric", "indefinite_integral"}
	q.Difficulty = DifficultyHard

	errs := applicableErrors(q)
	ids := make(map[string]bool)
	for _, e := range errs {
		if ids[e.ID] {
			t.Fatalf("duplicate error type %s in union", e.ID)
		}
		ids[e.ID] = true
	}
	// "all"-applicable plus trig plus indefinite-specific must be present.
	for _, want := range []string{"alg_sign_flip", "trig_identity_confusion", "not_const_omitted"} {
		if !ids[want] {
			t.Errorf("expected %s in applicable set, got %v", want, ids)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
