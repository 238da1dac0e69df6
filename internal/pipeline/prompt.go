package pipeline

import (
	"fmt"
	"strings"

	"github.com/abhisek/mcqgen/internal/taxonomy"
)

const analyzerSystemPrompt = `You are a calculus content analyst. You read textbook material on integration and extract the distinct concepts it teaches.

Rules:
- Each concept is one integration technique or standard formula.
- Write formulas in LaTeX without $ delimiters.
- Skip worked examples that repeat an already-extracted concept.
- Judge difficulty for a first-course calculus student: easy for direct formula application, medium for single substitution or manipulation, hard for multi-step techniques.
- In context, say in one sentence when the technique applies.
- In prerequisites, list the names of other extracted concepts a student must know first; empty if none.
- In worked_example, give one short worked application in LaTeX if the material shows one; empty otherwise.`

const mcqBankSystemPrompt = `You are a calculus content analyst. You read an existing bank of multiple-choice integration questions and extract the distinct concepts the questions exercise.

Rules:
- Each concept is one integration technique or standard formula that at least one question tests.
- Infer the concept from the stem and correct answer; ignore the distractors.
- Write formulas in LaTeX without $ delimiters.
- Collapse questions testing the same technique into one concept.
- Judge difficulty from the hardest question exercising the concept: easy for direct formula application, medium for single substitution or manipulation, hard for multi-step techniques.
- In context, say in one sentence when the technique applies.
- In prerequisites, list the names of other extracted concepts a student must know first; empty if none.
- In worked_example, give one short worked application in LaTeX, or empty.`

const stemSystemPrompt = `You are a calculus exam author. For each concept given, write one integration question with its correct answer.

Rules:
- The stem asks to evaluate a single integral, with the integral in LaTeX between $ delimiters, e.g. "Evaluate $\int x^2 \, dx$".
- Use x as the integration variable.
- The correct_answer is the antiderivative in LaTeX with + C appended (or the numeric value for a definite integral).
- Stay within the technique of the given concept; do not require techniques from other concepts.
- Match the requested difficulty.
- Return exactly one question per concept, in the order given.`

const distractorSystemPrompt = `You are a calculus exam author crafting wrong answers for a multiple-choice question. Each wrong answer must be the result of one specific, named student error applied to this problem.

Rules:
- Work the problem yourself first, then re-work it committing exactly the named error.
- Each distractor must differ from the correct answer and from each other.
- Format distractors in LaTeX exactly like the correct answer (same style, + C if present).
- Use only error types from the provided list, and report the error_type ID you used.
- Prefer covering different error categories over several variants of one category.`

// buildAnalyzerMessage frames chapter material for concept extraction.
func buildAnalyzerMessage(sourceName, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n\n", sourceName)
	b.WriteString("Extract the integration concepts from this material:\n\n")
	b.WriteString(content)
	return b.String()
}

// buildMCQBankMessage frames an existing question bank for extraction.
func buildMCQBankMessage(sourceName, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n\n", sourceName)
	b.WriteString("Extract the integration concepts these questions exercise:\n\n")
	b.WriteString(content)
	return b.String()
}

// buildStemMessage lists one batch of concepts for stem generation.
func buildStemMessage(batch []Concept) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one question for each of these %d concepts:\n\n", len(batch))
	for i, c := range batch {
		fmt.Fprintf(&b, "%d. %s (difficulty: %s)\n   Formula: %s\n", i+1, c.Name, c.Difficulty, c.Formula)
	}
	return b.String()
}

// buildDistractorMessage describes the question and the applicable error
// patterns, requesting count candidates.
func buildDistractorMessage(q Question, errs []*taxonomy.ErrorType, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", q.Stem)
	fmt.Fprintf(&b, "Correct answer: %s\n", q.Answer)
	fmt.Fprintf(&b, "Concept: %s (difficulty: %s)\n\n", q.ConceptName, q.Difficulty)
	fmt.Fprintf(&b, "Generate %d distractors using these error patterns:\n\n", count)
	for _, e := range errs {
		fmt.Fprintf(&b, "- %s [%s, category %s]: %s\n", e.ID, e.Name, e.Category, e.Description)
		fmt.Fprintf(&b, "  Example: correct %s, student writes %s\n", e.ExampleCorrect, e.ExampleWrong)
	}
	return b.String()
}
