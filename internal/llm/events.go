package llm

import "context"

// RequestEvent is the telemetry record of one model call: who served it,
// what it was for, what it cost, and the full request/response text for
// later inspection.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives request events. The interface lives on the consumer
// side so this package stays free of storage concerns; the store package
// provides the durable implementation.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}
