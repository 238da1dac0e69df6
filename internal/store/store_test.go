package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func sampleRun() pipeline.RunSummary {
	return pipeline.RunSummary{
		SessionID:  "sess-1",
		SourceName: "chapter-3",
		Phase:      pipeline.PhaseDone,
		Drops: []pipeline.Drop{
			{QuestionID: "q-gone", Stage: "validating", Reason: pipeline.DropUnverifiedAnswer},
		},
		Metrics: pipeline.Metrics{
			ConceptsExtracted:  2,
			StemsGenerated:     2,
			QuestionsValidated: 1,
			AnswersCorrected:   1,
			QuestionsDropped:   1,
		},
		MCQs: []pipeline.MCQ{{
			QuestionNumber:  1,
			QuestionID:      "q-1",
			ConceptName:     "Power Rule",
			Difficulty:      "easy",
			Stem:            `Evaluate $\int x^2 \, dx$.`,
			Options:         map[string]string{"a": `\frac{x^3}{3} + C`, "b": `2x + C`},
			CorrectLetter:   "a",
			Explanations:    map[string]string{"a": "Verified antiderivative.", "b": "Derivative instead of integral."},
			ValidationScore: 1.0,
			WasCorrected:    true,
		}},
		Difficulty: map[string]int{"easy": 1},
		StartedAt:  time.Now(),
		Duration:   1500 * time.Millisecond,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	run := sampleRun()

	concepts := []pipeline.Concept{
		{
			ID:         "power-rule",
			Name:       "Power Rule",
			Formula:    `\int x^n \, dx`,
			Difficulty: "easy",
			Context:    "Applies to monomial integrands.",
		},
		{
			ID:            "sine-integral",
			Name:          "Sine Integral",
			Formula:       `\int \sin x \, dx`,
			Difficulty:    "medium",
			Prerequisites: []string{"Power Rule"},
		},
	}
	if err := repo.SaveConcepts(ctx, run.SessionID, run.SourceName, concepts); err != nil {
		t.Fatalf("save concepts: %v", err)
	}
	if err := repo.SaveMCQs(ctx, run.SessionID, run.MCQs); err != nil {
		t.Fatalf("save questions: %v", err)
	}
	if err := repo.CompleteRun(ctx, run); err != nil {
		t.Fatalf("complete run: %v", err)
	}

	sessions, err := repo.ListSessions(ctx, 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	got := sessions[0]
	if got.SessionID != run.SessionID || got.Phase != string(pipeline.PhaseDone) {
		t.Errorf("session = %+v", got)
	}
	if got.MCQCount != 1 || got.AnswersCorrected != 1 {
		t.Errorf("counts wrong: %+v", got)
	}
	if got.Difficulty["easy"] != 1 {
		t.Errorf("difficulty distribution = %+v, want easy: 1", got.Difficulty)
	}

	qs, err := repo.Questions(ctx, run.SessionID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].CorrectLetter != "a" || qs[0].Options["b"] != `2x + C` {
		t.Errorf("question = %+v", qs[0])
	}
	if qs[0].QuestionNumber != 1 || qs[0].ValidationScore != 1.0 || !qs[0].WasCorrected {
		t.Errorf("validation fields lost in round trip: %+v", qs[0])
	}

	cs, err := repo.Concepts(ctx, run.SessionID)
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(cs) != 2 || cs[0].Name != "Power Rule" {
		t.Errorf("concepts = %+v", cs)
	}
	if cs[0].ID != "power-rule" || cs[0].Context == "" {
		t.Errorf("concept enrichment lost in round trip: %+v", cs[0])
	}
	if len(cs[1].Prerequisites) != 1 || cs[1].Prerequisites[0] != "Power Rule" {
		t.Errorf("prerequisites = %+v", cs[1].Prerequisites)
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "groq", Model: "m", Purpose: "concept-extract", Success: true, InputTokens: 100},
		{Provider: "groq", Model: "m", Purpose: "stem-gen", Success: true, OutputTokens: 50},
		{Provider: "groq", Model: "m", Purpose: "stem-gen", Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	// Newest first.
	if all[0].Purpose != "stem-gen" || all[0].Success {
		t.Errorf("first event = %+v, want the failed stem-gen call", all[0])
	}

	stems, err := repo.ListLLMRequests(ctx, QueryOpts{Purpose: "stem-gen", Limit: 1})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(stems) != 1 || stems[0].Purpose != "stem-gen" {
		t.Errorf("filtered = %+v", stems)
	}

	got, err := repo.GetLLMRequest(ctx, all[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ErrorMessage != "boom" {
		t.Errorf("get = %+v, want the failed event", got)
	}
	missing, err := repo.GetLLMRequest(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown sequence, got %+v", missing)
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]PurposeUsage, len(usage))
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	if u := byPurpose["concept-extract"]; u.Calls != 1 || u.InputTokens != 100 {
		t.Errorf("concept-extract usage = %+v", u)
	}
	if u := byPurpose["stem-gen"]; u.Calls != 2 || u.OutputTokens != 50 {
		t.Errorf("stem-gen usage = %+v", u)
	}
}
