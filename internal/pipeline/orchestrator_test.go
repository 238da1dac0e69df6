package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcqgen/internal/llm"
)

type fakeSink struct {
	concepts []Concept
	mcqs     []MCQ
	summary  *RunSummary
}

func (s *fakeSink) SaveConcepts(_ context.Context, _, _ string, cs []Concept) error {
	s.concepts = append(s.concepts, cs...)
	return nil
}

func (s *fakeSink) SaveMCQs(_ context.Context, _ string, ms []MCQ) error {
	s.mcqs = append(s.mcqs, ms...)
	return nil
}

func (s *fakeSink) CompleteRun(_ context.Context, sum RunSummary) error {
	s.summary = &sum
	return nil
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func conceptResponse(t *testing.T) llm.MockResponse {
	return llm.MockResponse{Content: mustJSON(t, map[string]any{
		"concepts": []map[string]any{
			{
				"concept_name": "Power Rule",
				"formula":      `\int x^n \, dx = \frac{x^{n+1}}{n+1} + C`,
				"difficulty":   "easy",
				"context":      "Applies to any monomial integrand with exponent other than -1.",
			},
			{"concept_name": "Sine Integral", "formula": `\int \sin x \, dx = -\cos x + C`, "difficulty": "medium"},
		},
	})}
}

func stemResponse(t *testing.T) llm.MockResponse {
	return llm.MockResponse{Content: mustJSON(t, map[string]any{
		"questions": []map[string]any{
			{
				"concept_name":   "Power Rule",
				"stem":           `Evaluate $\int x^2 \, dx$.`,
				"correct_answer": `\frac{x^3}{3} + C`,
			},
			{
				"concept_name": "Sine Integral",
				"stem":         `Evaluate $\int \sin x \, dx$.`,
				// Wrong on purpose: the validator must correct it.
				"correct_answer": `\cos x + C`,
			},
		},
	})}
}

func distractorResponse(t *testing.T, texts ...string) llm.MockResponse {
	ds := make([]map[string]any, len(texts))
	for i, text := range texts {
		errType := "alg_sign_flip"
		if i == 1 {
			errType = "not_const_omitted"
		}
		if i == 2 {
			errType = "conc_deriv_instead"
		}
		ds[i] = map[string]any{
			"text":       text,
			"error_type": errType,
			"rationale":  "Common slip.",
		}
	}
	return llm.MockResponse{Content: mustJSON(t, map[string]any{"distractors": ds})}
}

func testConfig() Config {
	return Config{
		BatchSize:             5,
		BatchRetries:          0,
		RetryDelay:            time.Millisecond,
		CandidatesPerQuestion: 3,
		Workers:               1,
		Explanations:          true,
		MaxTokens:             1024,
		Temperature:           0.7,
	}
}

func TestOrchestratorFullRun(t *testing.T) {
	provider := llm.NewMockProvider(
		conceptResponse(t),
		stemResponse(t),
		// Workers=1 keeps distractor calls in question order.
		distractorResponse(t, `-\frac{x^3}{3} + C`, `\frac{x^3}{3}`, `2x + C`),
		distractorResponse(t, `\cos x + C`, `-\cos x`, `\sin x + C`),
	)
	sink := &fakeSink{}
	o := New(provider, testConfig(), sink)

	summary, err := o.Run(context.Background(), "chapter-3", SourceKindChapter, "Integration techniques...")
	require.NoError(t, err)

	assert.Equal(t, PhaseDone, summary.Phase)
	assert.Equal(t, 2, summary.Metrics.ConceptsExtracted)
	assert.Equal(t, 2, summary.Metrics.StemsGenerated)
	assert.Equal(t, 2, summary.Metrics.QuestionsValidated)
	assert.Equal(t, 1, summary.Metrics.AnswersCorrected, "the wrong sine answer must be corrected")
	require.Len(t, summary.MCQs, 2)

	for i, mcq := range summary.MCQs {
		assert.Equal(t, i+1, mcq.QuestionNumber)
		assert.NotEmpty(t, mcq.CorrectLetter)
		assert.Contains(t, mcq.Options, mcq.CorrectLetter)
		assert.GreaterOrEqual(t, len(mcq.Options), 2)
		assert.NotEmpty(t, mcq.Explanations[mcq.CorrectLetter])
		assert.Greater(t, mcq.ValidationScore, 0.0)
	}
	assert.False(t, summary.MCQs[0].WasCorrected)
	assert.True(t, summary.MCQs[1].WasCorrected, "the corrected sine answer must be flagged")
	assert.Contains(t, summary.MCQs[0].Explanations[summary.MCQs[0].CorrectLetter],
		"monomial integrand", "correct-answer explanation draws on the concept context")

	assert.Equal(t, map[string]int{"easy": 1, "medium": 1}, summary.Difficulty)

	// Sink received everything.
	assert.Len(t, sink.concepts, 2)
	assert.Equal(t, "power-rule", sink.concepts[0].ID)
	assert.Len(t, sink.mcqs, 2)
	require.NotNil(t, sink.summary)
	assert.Equal(t, summary.SessionID, sink.summary.SessionID)
}

func TestOrchestratorSourceKindSelectsPrompt(t *testing.T) {
	provider := llm.NewMockProvider() // extraction fails; only the request matters
	o := New(provider, testConfig(), nil)

	_, err := o.Run(context.Background(), "bank-1", SourceKindMCQs, "1. Evaluate...")
	require.Error(t, err)
	require.Len(t, provider.Calls, 1)
	assert.Equal(t, mcqBankSystemPrompt, provider.Calls[0].System)

	_, err = o.Run(context.Background(), "chapter-3", "worksheet", "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source kind")
	assert.Len(t, provider.Calls, 1, "an invalid kind never reaches the provider")
}

func TestOrchestratorExtractionFailureIsFatal(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	o := New(provider, testConfig(), nil)

	summary, err := o.Run(context.Background(), "chapter-3", SourceKindChapter, "content")
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, PhaseFailed, summary.Phase)
	assert.Empty(t, summary.MCQs)
	assert.Equal(t, 1, provider.CallCount(), "nothing should run after extraction fails")
}

func TestOrchestratorSkipsFailedBatchAndLoops(t *testing.T) {
	cfg := testConfig()
	cfg.BatchSize = 1 // two concepts, two generation passes

	provider := llm.NewMockProvider(
		conceptResponse(t),
		// First batch fails its single attempt and is skipped.
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
		llm.MockResponse{Content: mustJSON(t, map[string]any{
			"questions": []map[string]any{{
				"concept_name":   "Sine Integral",
				"stem":           `Evaluate $\int \sin x \, dx$.`,
				"correct_answer": `-\cos x + C`,
			}},
		})},
		distractorResponse(t, `\cos x + C`, `-\cos x`, `\sin x + C`),
	)
	o := New(provider, cfg, nil)

	summary, err := o.Run(context.Background(), "chapter-3", SourceKindChapter, "content")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Metrics.BatchesSkipped)
	assert.Equal(t, 1, summary.Metrics.StemsGenerated)
	require.Len(t, summary.MCQs, 1)
	assert.Equal(t, "Sine Integral", summary.MCQs[0].ConceptName)
}

func TestOrchestratorZeroValidatedIsFatal(t *testing.T) {
	provider := llm.NewMockProvider(
		conceptResponse(t),
		llm.MockResponse{Content: mustJSON(t, map[string]any{
			"questions": []map[string]any{{
				"concept_name":   "Power Rule",
				"stem":           `Evaluate $\int e^{x^2} \, dx$.`,
				"correct_answer": `e^{x^2} + C`,
			}},
		})},
	)
	o := New(provider, testConfig(), nil)

	summary, err := o.Run(context.Background(), "chapter-3", SourceKindChapter, "content")
	require.Error(t, err)
	assert.Equal(t, PhaseFailed, summary.Phase)
	assert.Equal(t, 1, summary.Metrics.QuestionsDropped)
}

func TestOrchestratorCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := llm.NewMockProvider(conceptResponse(t))
	o := New(provider, testConfig(), nil)

	_, err := o.Run(ctx, "chapter-3", SourceKindChapter, "content")
	require.Error(t, err)
}

func TestPhaseTransitions(t *testing.T) {
	assert.True(t, CanTransition(PhaseGenerating, PhaseGenerating), "generation loops per batch")
	assert.True(t, CanTransition(PhaseExtracting, PhaseFailed))
	assert.False(t, CanTransition(PhaseAssembling, PhaseGenerating))
	assert.False(t, CanTransition(PhaseDone, PhaseExtracting))
}
