package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels attached to requests by the pipeline stages. Telemetry
// queries group usage by these values.
const (
	PurposeConceptExtract = "concept-extract"
	PurposeStemGen        = "stem-gen"
	PurposeDistractorGen  = "distractor-gen"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context. Requests made
// outside a labelled stage report "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
