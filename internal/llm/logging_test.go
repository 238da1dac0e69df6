package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// captureSink records events in memory for assertions.
type captureSink struct {
	events []RequestEvent
	err    error
}

func (c *captureSink) AppendLLMRequest(_ context.Context, ev RequestEvent) error {
	c.events = append(c.events, ev)
	return c.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 42, OutputTokens: 7},
	})
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	ctx := WithPurpose(context.Background(), PurposeStemGen)
	req := Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.Success || ev.Purpose != PurposeStemGen {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 42 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 42/7", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success || ev.ErrorMessage != "boom" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", ev.Purpose)
	}
}

func TestLoggingSinkFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	sink := &captureSink{err: errors.New("disk full")}
	p := WithLogging(mock, sink)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{}` {
		t.Errorf("content = %q", resp.Content)
	}
}
