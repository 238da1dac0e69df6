package store

import (
	"context"
	"time"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Purpose string // filter by purpose label ("" = all)
}

// LLMRequestRecord is a persisted LLM request event.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	llm.RequestEvent
}

// EventRepo provides append and query access to LLM telemetry events.
// It satisfies llm.EventSink, so a Store plugs directly into the
// provider middleware.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error

	// ListLLMRequests returns events newest-first.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMRequest returns one event by sequence, or nil if not found.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestRecord, error)

	// UsageByPurpose aggregates call counts and token totals per purpose.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}

// PurposeUsage is an aggregated view of LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// SessionSummary is a persisted pipeline run overview.
type SessionSummary struct {
	SessionID          string
	SourceName         string
	Phase              string
	ConceptsExtracted  int
	QuestionsGenerated int
	QuestionsValidated int
	AnswersCorrected   int
	QuestionsDropped   int
	MCQCount           int
	Difficulty         map[string]int
	Duration           time.Duration
	Timestamp          time.Time
}

// SessionRepo persists pipeline runs. It satisfies pipeline.Sink, so a
// Store plugs directly into the orchestrator.
type SessionRepo interface {
	pipeline.Sink

	// ListSessions returns run summaries newest-first.
	ListSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// Questions returns the assembled questions of one run.
	Questions(ctx context.Context, sessionID string) ([]pipeline.MCQ, error)

	// Concepts returns the extracted concepts of one run.
	Concepts(ctx context.Context, sessionID string) ([]pipeline.Concept, error)
}
