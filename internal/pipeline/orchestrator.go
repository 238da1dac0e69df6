package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mcqgen/internal/llm"
)

// Sink receives pipeline products as they become final. Writes are
// append-only; the pipeline never reads back.
type Sink interface {
	SaveConcepts(ctx context.Context, sessionID, sourceName string, concepts []Concept) error
	SaveMCQs(ctx context.Context, sessionID string, mcqs []MCQ) error
	CompleteRun(ctx context.Context, summary RunSummary) error
}

// Orchestrator drives the pipeline through its phases. It is the sole
// owner of the run state; stages are pure input-to-output workers.
type Orchestrator struct {
	analyzer    *Analyzer
	stems       *StemGenerator
	distractors *DistractorGenerator
	assembler   *Assembler
	validator   *Validator
	sink        Sink
	config      Config

	// Progress receives human-readable phase updates; nil disables.
	Progress func(format string, args ...any)
}

// New wires an Orchestrator from a provider, config, and optional sink.
func New(provider llm.Provider, cfg Config, sink Sink) *Orchestrator {
	cfg = cfg.withDefaults()
	return &Orchestrator{
		analyzer:    NewAnalyzer(provider, cfg),
		stems:       NewStemGenerator(provider, cfg),
		distractors: NewDistractorGenerator(provider, cfg),
		assembler:   NewAssembler(nil, cfg.Explanations),
		validator:   NewValidator(),
		sink:        sink,
		config:      cfg,
	}
}

// Run executes the full pipeline over one piece of source material of
// the given kind. The returned summary is populated as far as the run
// got, including on failure.
func (o *Orchestrator) Run(ctx context.Context, sourceName, kind, content string) (*RunSummary, error) {
	started := time.Now()
	sessionID := uuid.NewString()
	state := &State{Phase: PhaseExtracting}

	summary := func() *RunSummary {
		dist := make(map[string]int)
		for _, m := range state.MCQs {
			dist[m.Difficulty]++
		}
		return &RunSummary{
			SessionID:  sessionID,
			SourceName: sourceName,
			Phase:      state.Phase,
			Concepts:   state.Concepts,
			MCQs:       state.MCQs,
			Drops:      state.Drops,
			Metrics:    state.Metrics,
			Difficulty: dist,
			StartedAt:  started,
			Duration:   time.Since(started),
		}
	}

	// Extraction. Failure here is fatal: nothing downstream can run.
	o.progress("extracting concepts from %s", sourceName)
	concepts, err := o.analyzer.Extract(ctx, sourceName, kind, content)
	if err != nil {
		state.Phase = PhaseFailed
		return summary(), err
	}
	state.Concepts = concepts
	state.Metrics.ConceptsExtracted = len(concepts)
	o.progress("extracted %d concepts", len(concepts))
	o.saveConcepts(ctx, sessionID, sourceName, concepts)

	// Generation loops once per concept batch.
	state.advance(PhaseGenerating)
	for state.batchIndex*o.config.BatchSize < len(state.Concepts) {
		if err := ctx.Err(); err != nil {
			state.Phase = PhaseFailed
			return summary(), err
		}
		if state.batchIndex > 0 {
			state.advance(PhaseGenerating)
		}
		batch := o.nextBatch(state)
		state.Metrics.StemsRequested += len(batch)
		o.progress("generating stems, batch %d (%d concepts)", state.batchIndex+1, len(batch))

		qs, err := o.stems.GenerateBatch(ctx, state.batchIndex, batch)
		if err != nil {
			if ctx.Err() != nil {
				state.Phase = PhaseFailed
				return summary(), ctx.Err()
			}
			// Batch exhausted its retries; skip it and move on.
			state.Metrics.BatchesSkipped++
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			state.Questions = append(state.Questions, qs...)
			state.Metrics.StemsGenerated += len(qs)
		}
		state.batchIndex++
	}

	// Validation. Zero survivors is fatal: there is nothing to assemble.
	state.advance(PhaseValidating)
	o.progress("validating %d questions", len(state.Questions))
	validated, drops, corrected := o.validator.Validate(state.Questions)
	for _, d := range drops {
		state.recordDrop(d)
	}
	state.Validated = validated
	state.Metrics.QuestionsValidated = len(validated)
	state.Metrics.AnswersCorrected = corrected
	if len(validated) == 0 {
		state.Phase = PhaseFailed
		return summary(), fmt.Errorf("no questions survived validation (%d generated, %d dropped)",
			len(state.Questions), len(drops))
	}

	// Distractors, concurrently per question.
	state.advance(PhaseDistracting)
	o.progress("generating distractors for %d questions", len(validated))
	results := o.distractors.GenerateAll(ctx, validated, o.config.CandidatesPerQuestion)
	if err := ctx.Err(); err != nil {
		state.Phase = PhaseFailed
		return summary(), err
	}

	// Assembly.
	state.advance(PhaseAssembling)
	for i, q := range validated {
		res := results[i]
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", res.Err)
		}
		if len(res.Distractors) == 0 {
			state.recordDrop(Drop{
				QuestionID: q.ID,
				Stage:      string(PhaseAssembling),
				Reason:     DropAssemblyFailed,
				Detail:     "no distractors available",
			})
			continue
		}
		mcq, stats, err := o.assembler.Assemble(q, res.Distractors)
		if err != nil {
			state.recordDrop(Drop{
				QuestionID: q.ID,
				Stage:      string(PhaseAssembling),
				Reason:     DropAssemblyFailed,
				Detail:     err.Error(),
			})
			continue
		}
		state.Metrics.OptionCollisions += stats.Collisions
		if stats.Shortfall {
			state.Metrics.DistractorShortfalls++
		}
		mcq.QuestionNumber = len(state.MCQs) + 1
		state.MCQs = append(state.MCQs, mcq)
	}

	state.advance(PhaseDone)
	o.progress("assembled %d questions (%d dropped)", len(state.MCQs), state.Metrics.QuestionsDropped)

	out := summary()
	if o.sink != nil {
		if err := o.sink.SaveMCQs(ctx, sessionID, state.MCQs); err != nil {
			return out, fmt.Errorf("save questions: %w", err)
		}
		if err := o.sink.CompleteRun(ctx, *out); err != nil {
			return out, fmt.Errorf("complete run: %w", err)
		}
	}
	return out, nil
}

// nextBatch slices the concepts for the current generation pass.
func (o *Orchestrator) nextBatch(state *State) []Concept {
	start := state.batchIndex * o.config.BatchSize
	end := start + o.config.BatchSize
	if end > len(state.Concepts) {
		end = len(state.Concepts)
	}
	return state.Concepts[start:end]
}

// saveConcepts persists extracted concepts. Persistence trouble here is
// a warning, not a run failure.
func (o *Orchestrator) saveConcepts(ctx context.Context, sessionID, sourceName string, concepts []Concept) {
	if o.sink == nil {
		return
	}
	if err := o.sink.SaveConcepts(ctx, sessionID, sourceName, concepts); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save concepts: %v\n", err)
	}
}

func (o *Orchestrator) progress(format string, args ...any) {
	if o.Progress != nil {
		o.Progress(format, args...)
	}
}
