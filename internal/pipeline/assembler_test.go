package pipeline

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/mcqgen/internal/latex"
	"github.com/abhisek/mcqgen/internal/taxonomy"
)

func sampleDistractors() []Distractor {
	return []Distractor{
		{Text: `\cos x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic, Rationale: "Sign lost when integrating sine."},
		{Text: `-\sin x + C`, ErrorTypeID: "trig_identity_confusion", Category: taxonomy.CategoryTrigonometric},
		{Text: `-\cos x`, ErrorTypeID: "not_const_omitted", Category: taxonomy.CategoryNotational},
	}
}

func TestAssembleFourDistinctOptions(t *testing.T) {
	a := NewAssembler(rand.NewPCG(1, 2), true)
	q := sampleQuestion()

	mcq, stats, err := a.Assemble(q, sampleDistractors())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if stats.Collisions != 0 || stats.Shortfall {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(mcq.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(mcq.Options))
	}

	correct := 0
	seen := make(map[string]bool)
	for _, letter := range OptionLetters {
		opt, ok := mcq.Options[letter]
		if !ok {
			t.Fatalf("missing option %s", letter)
		}
		if seen[opt] {
			t.Errorf("duplicate option text %q", opt)
		}
		seen[opt] = true
		if opt == q.Answer {
			correct++
			if mcq.CorrectLetter != letter {
				t.Errorf("correct answer on %s but CorrectLetter is %s", letter, mcq.CorrectLetter)
			}
		}
	}
	if correct != 1 {
		t.Errorf("correct answer appears %d times, want exactly 1", correct)
	}
	if len(mcq.Explanations) != 4 {
		t.Errorf("got %d explanations, want 4", len(mcq.Explanations))
	}
}

func TestAssembleCorrectLetterVaries(t *testing.T) {
	a := NewAssembler(rand.NewPCG(7, 7), false)
	q := sampleQuestion()

	counts := make(map[string]int)
	for range 200 {
		mcq, _, err := a.Assemble(q, sampleDistractors())
		if err != nil {
			t.Fatalf("Assemble: %v", err)
		}
		counts[mcq.CorrectLetter]++
	}
	for _, letter := range OptionLetters {
		if counts[letter] == 0 {
			t.Errorf("correct answer never landed on %s in 200 runs: %v", letter, counts)
		}
	}
}

func TestAssembleCollisionSubstitution(t *testing.T) {
	a := NewAssembler(rand.NewPCG(3, 4), false)
	q := sampleQuestion()

	// Second candidate collides with the correct answer (markup aside);
	// the next-ranked one must take its place.
	ranked := []Distractor{
		{Text: `\cos x + C`, ErrorTypeID: "alg_sign_flip", Category: taxonomy.CategoryAlgebraic},
		{Text: `- \cos x + C`, ErrorTypeID: "calc_wrong_formula", Category: taxonomy.CategoryCalculus},
		{Text: `-\sin x + C`, ErrorTypeID: "trig_identity_confusion", Category: taxonomy.CategoryTrigonometric},
		{Text: `-\cos x`, ErrorTypeID: "not_const_omitted", Category: taxonomy.CategoryNotational},
	}
	mcq, stats, err := a.Assemble(q, ranked)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if stats.Collisions != 1 {
		t.Errorf("collisions = %d, want 1", stats.Collisions)
	}
	if len(mcq.Options) != 4 {
		t.Errorf("got %d options, want 4 after substitution", len(mcq.Options))
	}
	for letter, opt := range mcq.Options {
		if letter != mcq.CorrectLetter && latex.StrictKey(opt) == latex.StrictKey(q.Answer) {
			t.Errorf("colliding option survived on %s", letter)
		}
	}
}

func TestAssembleShortfall(t *testing.T) {
	a := NewAssembler(rand.NewPCG(5, 6), false)
	q := sampleQuestion()

	mcq, stats, err := a.Assemble(q, sampleDistractors()[:1])
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !stats.Shortfall {
		t.Error("shortfall not reported")
	}
	if len(mcq.Options) != 2 {
		t.Errorf("got %d options, want 2", len(mcq.Options))
	}
	if mcq.CorrectLetter != "a" && mcq.CorrectLetter != "b" {
		t.Errorf("correct letter %s outside available options", mcq.CorrectLetter)
	}
}

func TestAssembleNoDistractors(t *testing.T) {
	a := NewAssembler(rand.NewPCG(5, 6), false)
	if _, _, err := a.Assemble(sampleQuestion(), nil); err == nil {
		t.Fatal("expected error with zero distractors")
	}
}

func TestAssembleCarriesValidationOutcome(t *testing.T) {
	a := NewAssembler(rand.NewPCG(9, 9), true)
	q := sampleQuestion()
	q.Corrected = true
	q.ValidationScore = 1.0
	q.ConceptName = "Sine Integral"
	q.ConceptContext = "Applies when the integrand is a bare sine or cosine."

	mcq, _, err := a.Assemble(q, sampleDistractors())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !mcq.WasCorrected {
		t.Error("corrected answer not flagged on the assembled question")
	}
	if mcq.ValidationScore != 1.0 {
		t.Errorf("validation score = %g, want 1.0", mcq.ValidationScore)
	}
	explanation := mcq.Explanations[mcq.CorrectLetter]
	if want := "bare sine or cosine"; !strings.Contains(explanation, want) {
		t.Errorf("correct explanation %q missing concept context %q", explanation, want)
	}
}
