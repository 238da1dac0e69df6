package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/mcqgen/internal/latex"
	"github.com/abhisek/mcqgen/internal/llm"
)

// Analyzer extracts integration concepts from source material.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// NewAnalyzer creates an Analyzer with the given provider and config.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

type conceptListOutput struct {
	Concepts []Concept `json:"concepts"`
}

// Extract pulls the distinct concepts out of the source content. The
// kind selects the extraction framing: prose chapters are read for the
// techniques they teach, MCQ banks for the techniques their questions
// exercise. Duplicate concepts (same formula up to markup) are
// collapsed; concepts with unusable formulas or unknown difficulty are
// dropped. An empty result after filtering is an extraction failure.
func (a *Analyzer) Extract(ctx context.Context, sourceName, kind, content string) ([]Concept, error) {
	if !ValidSourceKind(kind) {
		return nil, &ExtractionError{Err: fmt.Errorf("unknown source kind %q", kind)}
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeConceptExtract)

	system := analyzerSystemPrompt
	message := buildAnalyzerMessage(sourceName, content)
	if kind == SourceKindMCQs {
		system = mcqBankSystemPrompt
		message = buildMCQBankMessage(sourceName, content)
	}

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: message},
		},
		Schema:      ConceptListSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	var raw conceptListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("parse response: %w", err)}
	}

	seen := make(map[string]bool)
	var concepts []Concept
	for _, c := range raw.Concepts {
		if c.Name == "" || c.Formula == "" {
			continue
		}
		if c.Difficulty != DifficultyEasy && c.Difficulty != DifficultyMedium && c.Difficulty != DifficultyHard {
			continue
		}
		if err := latex.Validate(c.Formula); err != nil {
			continue
		}
		k := latex.CompareKey(c.Formula)
		if seen[k] {
			continue
		}
		seen[k] = true
		c.Formula = latex.Normalize(c.Formula)
		c.ID = conceptID(c.Name)
		concepts = append(concepts, c)
	}

	if len(concepts) == 0 {
		return nil, &ExtractionError{Err: fmt.Errorf("no usable concepts in %q", sourceName)}
	}
	return concepts, nil
}

// conceptID derives a stable slug from a concept name: lowercased, runs
// of non-alphanumerics collapsed to single hyphens.
func conceptID(name string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	return b.String()
}
