package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcqgen/internal/llm"
)

func stemBatch() []Concept {
	return []Concept{
		{ID: "power-rule", Name: "Power Rule", Formula: `\int x^n \, dx`, Difficulty: DifficultyEasy},
		{ID: "sine-integral", Name: "Sine Integral", Formula: `\int \sin x \, dx`, Difficulty: DifficultyMedium},
	}
}

func TestStemRetryDelayDoubles(t *testing.T) {
	cfg := testConfig()
	cfg.RetryDelay = 2 * time.Second
	g := NewStemGenerator(llm.NewMockProvider(), cfg)

	assert.Equal(t, 2*time.Second, g.retryDelay(1))
	assert.Equal(t, 4*time.Second, g.retryDelay(2))
	assert.Equal(t, 8*time.Second, g.retryDelay(3))
}

func TestStemBatchRetriesThenSucceeds(t *testing.T) {
	cfg := testConfig()
	cfg.BatchRetries = 2
	cfg.RetryDelay = time.Millisecond

	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
		stemResponse(t),
	)
	g := NewStemGenerator(provider, cfg)

	qs, err := g.GenerateBatch(context.Background(), 0, stemBatch())
	require.NoError(t, err)
	assert.Len(t, qs, 2)
	assert.Equal(t, 2, provider.CallCount())
}

func TestStemBatchExhaustsRetries(t *testing.T) {
	cfg := testConfig()
	cfg.BatchRetries = 1
	cfg.RetryDelay = time.Millisecond

	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
	)
	g := NewStemGenerator(provider, cfg)

	_, err := g.GenerateBatch(context.Background(), 3, stemBatch())
	require.Error(t, err)
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, 3, genErr.Batch)
	assert.Equal(t, 2, genErr.Attempts)
	assert.Equal(t, 2, provider.CallCount())
}

func TestStemGenerationThreadsConceptContext(t *testing.T) {
	cfg := testConfig()
	batch := stemBatch()
	batch[0].Context = "Applies to monomial integrands."

	g := NewStemGenerator(llm.NewMockProvider(stemResponse(t)), cfg)
	qs, err := g.GenerateBatch(context.Background(), 0, batch)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Applies to monomial integrands.", qs[0].ConceptContext)
	assert.Empty(t, qs[1].ConceptContext)
}
