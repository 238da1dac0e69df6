package pipeline

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	s := &RunSummary{
		SourceName: "chapter-3",
		Metrics:    Metrics{ConceptsExtracted: 2},
		MCQs: []MCQ{
			{
				QuestionNumber: 1,
				ConceptName:    "Power Rule",
				Difficulty:     DifficultyEasy,
				Stem:           `Evaluate $\int x^2 \, dx$.`,
				Options:        map[string]string{"a": `\frac{x^3}{3} + C`, "b": `2x + C`},
				CorrectLetter:  "a",
				Explanations:   map[string]string{"a": "Verified.", "b": "Differentiated instead."},
			},
			{
				QuestionNumber: 2,
				ConceptName:    "Sine Integral",
				Difficulty:     DifficultyMedium,
				Stem:           `Evaluate $\int \sin x \, dx$.`,
				Options:        map[string]string{"a": `\cos x + C`, "b": `-\cos x + C`},
				CorrectLetter:  "b",
			},
		},
		Difficulty: map[string]int{DifficultyEasy: 1, DifficultyMedium: 1},
	}

	md := RenderMarkdown(s)

	for _, want := range []string{
		"# Multiple-Choice Questions: chapter-3",
		"## Question 1",
		"## Question 2",
		"- **(a)** $\\frac{x^3}{3} + C$",
		"## Answer Key",
		"1. (a)",
		"2. (b)",
		"## Difficulty Distribution",
		"- easy: 1",
		"- medium: 1",
		"- hard: 0",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered markdown missing %q", want)
		}
	}

	// Question headers follow the persisted numbering, not slice order.
	if strings.Index(md, "## Question 1") > strings.Index(md, "## Question 2") {
		t.Error("questions rendered out of order")
	}
}
