package pipeline

import "fmt"

// ExtractionError means concept extraction failed outright. It is fatal:
// nothing downstream can run without concepts.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("concept extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// GenerationError means one stem batch failed after its retries. The
// batch is skipped; the run continues with the remaining batches.
type GenerationError struct {
	Batch    int
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("stem batch %d failed after %d attempts: %v", e.Batch, e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// DistractorError means distractor generation failed for one question.
// The question still assembles with whatever options are available.
type DistractorError struct {
	QuestionID string
	Err        error
}

func (e *DistractorError) Error() string {
	return fmt.Sprintf("distractor generation for %s failed: %v", e.QuestionID, e.Err)
}

func (e *DistractorError) Unwrap() error { return e.Err }
