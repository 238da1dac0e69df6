package pipeline

import "time"

// Config tunes the pipeline stages.
type Config struct {
	// BatchSize is the number of concepts per stem-generation request.
	BatchSize int

	// BatchRetries is how many times a failed stem batch is retried
	// before being skipped. These are stage-level retries on top of the
	// provider's transport retries.
	BatchRetries int

	// RetryDelay is the wait between stage-level batch retries.
	RetryDelay time.Duration

	// CandidatesPerQuestion is how many distractor candidates to request
	// before ranking; the top OptionsPerQuestion-1 survive.
	CandidatesPerQuestion int

	// Workers bounds concurrent distractor generation.
	Workers int

	// Explanations toggles per-option explanation text on assembled
	// questions.
	Explanations bool

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard pipeline tuning.
func DefaultConfig() Config {
	return Config{
		BatchSize:             15,
		BatchRetries:          2,
		RetryDelay:            2 * time.Second,
		CandidatesPerQuestion: 5,
		Workers:               4,
		Explanations:          true,
		MaxTokens:             4096,
		Temperature:           0.7,
	}
}

// withDefaults fills zero fields so a partially specified config works.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.BatchRetries < 0 {
		c.BatchRetries = d.BatchRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = d.RetryDelay
	}
	if c.CandidatesPerQuestion <= 0 {
		c.CandidatesPerQuestion = d.CandidatesPerQuestion
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	return c
}
