package pipeline

// Phase is a stage of the pipeline state machine. The orchestrator is the
// only writer; stages receive inputs and return outputs without touching
// shared state.
type Phase string

const (
	PhaseExtracting  Phase = "extracting"
	PhaseGenerating  Phase = "generating"
	PhaseValidating  Phase = "validating"
	PhaseDistracting Phase = "distracting"
	PhaseAssembling  Phase = "assembling"
	PhaseDone        Phase = "done"
	PhaseFailed      Phase = "failed"
)

// transitions lists the legal phase successors. Generating may loop on
// itself: one pass per stem batch until all concepts are consumed.
var transitions = map[Phase][]Phase{
	PhaseExtracting:  {PhaseGenerating, PhaseFailed},
	PhaseGenerating:  {PhaseGenerating, PhaseValidating, PhaseFailed},
	PhaseValidating:  {PhaseDistracting, PhaseFailed},
	PhaseDistracting: {PhaseAssembling},
	PhaseAssembling:  {PhaseDone},
}

// CanTransition reports whether moving from to next is legal.
func CanTransition(from, next Phase) bool {
	for _, p := range transitions[from] {
		if p == next {
			return true
		}
	}
	return false
}

// State carries the accumulated products of a run. Owned exclusively by
// the orchestrator.
type State struct {
	Phase     Phase
	Concepts  []Concept
	Questions []Question
	Validated []Question
	MCQs      []MCQ
	Drops     []Drop
	Metrics   Metrics

	// batchIndex is the next concept batch to generate stems for.
	batchIndex int
}

// advance moves the state to the next phase, panicking on an illegal
// transition. Illegal transitions are orchestrator bugs, not runtime
// conditions.
func (s *State) advance(next Phase) {
	if !CanTransition(s.Phase, next) {
		panic("illegal phase transition " + string(s.Phase) + " -> " + string(next))
	}
	s.Phase = next
}

// recordDrop appends a drop and bumps the counter.
func (s *State) recordDrop(d Drop) {
	s.Drops = append(s.Drops, d)
	s.Metrics.QuestionsDropped++
}
