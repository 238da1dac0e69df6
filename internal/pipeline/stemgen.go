package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mcqgen/internal/llm"
)

// StemGenerator produces question stems with claimed answers, one batch
// of concepts at a time.
type StemGenerator struct {
	provider llm.Provider
	config   Config
}

// NewStemGenerator creates a StemGenerator.
func NewStemGenerator(provider llm.Provider, cfg Config) *StemGenerator {
	return &StemGenerator{provider: provider, config: cfg.withDefaults()}
}

type stemBatchOutput struct {
	Questions []struct {
		ConceptName string `json:"concept_name"`
		Stem        string `json:"stem"`
		Answer      string `json:"correct_answer"`
	} `json:"questions"`
}

// GenerateBatch writes stems for one batch of concepts. A failed batch
// is retried with a delay that doubles per attempt; after the retries
// are exhausted the GenerationError is returned and the caller skips
// the batch.
func (g *StemGenerator) GenerateBatch(ctx context.Context, batchIndex int, batch []Concept) ([]Question, error) {
	attempts := g.config.BatchRetries + 1
	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.retryDelay(attempt)):
			}
		}
		qs, err := g.generateOnce(ctx, batch)
		if err == nil {
			return qs, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, &GenerationError{Batch: batchIndex, Attempts: attempts, Err: lastErr}
}

// retryDelay doubles the base delay for each attempt past the first:
// base before attempt 1, 2x before attempt 2, and so on.
func (g *StemGenerator) retryDelay(attempt int) time.Duration {
	return g.config.RetryDelay << (attempt - 1)
}

func (g *StemGenerator) generateOnce(ctx context.Context, batch []Concept) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeStemGen)

	req := llm.Request{
		System: stemSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStemMessage(batch)},
		},
		Schema:      StemBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var raw stemBatchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("empty batch response")
	}

	// Difficulty comes from the concept, matched by name; positional
	// fallback covers responses that rename concepts slightly.
	byName := make(map[string]Concept, len(batch))
	for _, c := range batch {
		byName[c.Name] = c
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, rq := range raw.Questions {
		if rq.Stem == "" || rq.Answer == "" {
			return nil, fmt.Errorf("question %d missing stem or answer", i)
		}
		c, ok := byName[rq.ConceptName]
		if !ok && i < len(batch) {
			c = batch[i]
		}
		questions = append(questions, Question{
			ID:             uuid.NewString(),
			ConceptName:    c.Name,
			ConceptContext: c.Context,
			Stem:           rq.Stem,
			Answer:         rq.Answer,
			Difficulty:     c.Difficulty,
		})
	}
	return questions, nil
}
