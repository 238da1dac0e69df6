package pipeline

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/mcqgen/internal/latex"
)

// Assembler turns a validated question plus ranked distractors into a
// finished MCQ: the correct answer lands on a uniformly random letter,
// distractors fill the rest in rank order.
type Assembler struct {
	rng          *rand.Rand
	explanations bool
}

// NewAssembler creates an Assembler. Pass a seeded source for
// reproducible letter placement; nil uses the process-global generator.
func NewAssembler(src rand.Source, explanations bool) *Assembler {
	a := &Assembler{explanations: explanations}
	if src != nil {
		a.rng = rand.New(src)
	}
	return a
}

// AssembleStats reports soft events observed during assembly.
type AssembleStats struct {
	Collisions int
	Shortfall  bool
}

// Assemble builds the MCQ. Distractors colliding with an already placed
// option (same answer under markup-insensitive comparison) are replaced
// by the next-ranked candidate. With fewer than three usable distractors
// the question still assembles with fewer options; zero usable
// distractors is a failure.
func (a *Assembler) Assemble(q Question, ranked []Distractor) (MCQ, AssembleStats, error) {
	var stats AssembleStats

	usedKeys := map[string]bool{latex.StrictKey(q.Answer): true}
	var chosen []Distractor
	for _, d := range ranked {
		if len(chosen) == len(OptionLetters)-1 {
			break
		}
		k := latex.StrictKey(d.Text)
		if usedKeys[k] {
			stats.Collisions++
			continue
		}
		usedKeys[k] = true
		chosen = append(chosen, d)
	}
	if len(chosen) == 0 {
		return MCQ{}, stats, fmt.Errorf("question %s: no usable distractors", q.ID)
	}
	if len(chosen) < len(OptionLetters)-1 {
		stats.Shortfall = true
	}

	optionCount := len(chosen) + 1
	correctIdx := a.intN(optionCount)

	options := make(map[string]string, optionCount)
	explanations := make(map[string]string, optionCount)
	di := 0
	for i := 0; i < optionCount; i++ {
		letter := OptionLetters[i]
		if i == correctIdx {
			options[letter] = q.Answer
			explanations[letter] = correctExplanation(q)
			continue
		}
		d := chosen[di]
		di++
		options[letter] = d.Text
		explanations[letter] = wrongExplanation(d)
	}

	mcq := MCQ{
		QuestionID:      q.ID,
		ConceptName:     q.ConceptName,
		Difficulty:      q.Difficulty,
		Stem:            q.Stem,
		Options:         options,
		CorrectLetter:   OptionLetters[correctIdx],
		ValidationScore: q.ValidationScore,
		WasCorrected:    q.Corrected,
	}
	if a.explanations {
		mcq.Explanations = explanations
	}
	return mcq, stats, nil
}

func (a *Assembler) intN(n int) int {
	if a.rng != nil {
		return a.rng.IntN(n)
	}
	return rand.IntN(n)
}

func correctExplanation(q Question) string {
	base := fmt.Sprintf("This is correct because it is the verified antiderivative for this %s problem", q.ConceptName)
	if q.Definite {
		base = fmt.Sprintf("This is correct because it is the verified value of this %s definite integral", q.ConceptName)
	}
	if q.Corrected {
		base += " (recomputed during validation)"
	}
	if q.ConceptContext != "" {
		return base + ". " + q.ConceptContext
	}
	return base + "."
}

func wrongExplanation(d Distractor) string {
	if d.Rationale != "" {
		return d.Rationale
	}
	return fmt.Sprintf("Results from the %s error pattern.", d.ErrorTypeID)
}
