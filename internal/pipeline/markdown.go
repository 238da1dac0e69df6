package pipeline

import (
	"fmt"
	"strings"
)

// RenderMarkdown formats a run's questions as a markdown document:
// numbered questions, lettered options, and an answer key at the end.
func RenderMarkdown(s *RunSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Multiple-Choice Questions: %s\n\n", s.SourceName)
	fmt.Fprintf(&b, "Generated %d questions from %d concepts.\n\n",
		len(s.MCQs), s.Metrics.ConceptsExtracted)

	for _, q := range s.MCQs {
		fmt.Fprintf(&b, "## Question %d\n\n", q.QuestionNumber)
		fmt.Fprintf(&b, "*Concept: %s — difficulty %s*\n\n", q.ConceptName, q.Difficulty)
		fmt.Fprintf(&b, "%s\n\n", q.Stem)
		for _, letter := range OptionLetters {
			opt, ok := q.Options[letter]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "- **(%s)** $%s$\n", letter, strings.Trim(opt, "$"))
		}
		b.WriteString("\n")
		if len(q.Explanations) > 0 {
			b.WriteString("<details><summary>Explanations</summary>\n\n")
			for _, letter := range OptionLetters {
				if ex, ok := q.Explanations[letter]; ok {
					fmt.Fprintf(&b, "- **(%s)** %s\n", letter, ex)
				}
			}
			b.WriteString("\n</details>\n\n")
		}
	}

	b.WriteString("## Answer Key\n\n")
	for _, q := range s.MCQs {
		fmt.Fprintf(&b, "%d. (%s)\n", q.QuestionNumber, q.CorrectLetter)
	}

	b.WriteString("\n## Difficulty Distribution\n\n")
	for _, level := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		fmt.Fprintf(&b, "- %s: %d\n", level, s.Difficulty[level])
	}
	return b.String()
}
