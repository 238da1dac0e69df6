package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/mcqgen/internal/latex"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/symbolic"
	"github.com/abhisek/mcqgen/internal/taxonomy"
)

// DistractorGenerator produces and ranks wrong-answer candidates for
// validated questions. Questions are processed concurrently; results
// come back in question order.
type DistractorGenerator struct {
	provider llm.Provider
	config   Config
}

// NewDistractorGenerator creates a DistractorGenerator.
func NewDistractorGenerator(provider llm.Provider, cfg Config) *DistractorGenerator {
	return &DistractorGenerator{provider: provider, config: cfg.withDefaults()}
}

// DistractorResult pairs a question with its ranked distractors. Err is
// set when generation failed; Distractors may still be non-empty on
// partial success.
type DistractorResult struct {
	QuestionID  string
	Distractors []Distractor
	Err         error
}

type distractorBatchOutput struct {
	Distractors []struct {
		Text      string `json:"text"`
		ErrorType string `json:"error_type"`
		Rationale string `json:"rationale"`
	} `json:"distractors"`
}

// GenerateAll runs distractor generation for every question with bounded
// concurrency. The i-th result always belongs to the i-th question
// regardless of completion order. Per-question failures are recorded in
// the result, not returned: a shortfall never sinks the run.
func (d *DistractorGenerator) GenerateAll(ctx context.Context, questions []Question, want int) []DistractorResult {
	results := make([]DistractorResult, len(questions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.Workers)
	for i, q := range questions {
		g.Go(func() error {
			ds, err := d.generate(gctx, q, want)
			results[i] = DistractorResult{QuestionID: q.ID, Distractors: ds, Err: err}
			return nil
		})
	}
	// Workers never return errors; Wait only observes ctx cancellation.
	_ = g.Wait()

	if ctx.Err() != nil {
		for i, q := range questions {
			if results[i].QuestionID == "" {
				results[i] = DistractorResult{QuestionID: q.ID, Err: ctx.Err()}
			}
		}
	}
	return results
}

// generate requests candidates for one question and ranks them.
func (d *DistractorGenerator) generate(ctx context.Context, q Question, want int) ([]Distractor, error) {
	errTypes := applicableErrors(q)
	if len(errTypes) == 0 {
		return nil, &DistractorError{QuestionID: q.ID, Err: fmt.Errorf("no applicable error patterns")}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeDistractorGen)
	req := llm.Request{
		System: distractorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDistractorMessage(q, errTypes, d.config.CandidatesPerQuestion)},
		},
		Schema:      DistractorBatchSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, &DistractorError{QuestionID: q.ID, Err: err}
	}

	var raw distractorBatchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &DistractorError{QuestionID: q.ID, Err: fmt.Errorf("parse response: %w", err)}
	}

	candidates := make([]Distractor, 0, len(raw.Distractors))
	for _, rd := range raw.Distractors {
		et := taxonomy.Get(rd.ErrorType)
		if et == nil || rd.Text == "" {
			continue
		}
		candidates = append(candidates, Distractor{
			Text:        rd.Text,
			ErrorTypeID: et.ID,
			Category:    et.Category,
			Rationale:   rd.Rationale,
		})
	}

	ranked := RankDistractors(q, candidates, want)
	if len(ranked) == 0 {
		return nil, &DistractorError{QuestionID: q.ID, Err: fmt.Errorf("no viable candidates out of %d", len(raw.Distractors))}
	}
	return ranked, nil
}

// applicableErrors unions the taxonomy filter across the question's
// integral tags, preserving seed order.
func applicableErrors(q Question) []*taxonomy.ErrorType {
	seen := make(map[string]bool)
	var out []*taxonomy.ErrorType
	for _, tag := range q.IntegralTags {
		for _, e := range taxonomy.Applicable(tag, q.Difficulty) {
			if !seen[e.ID] {
				seen[e.ID] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// Plausibility score weights. Similarity rewards lookalikes, mechanism
// rewards candidates that demonstrably embody their claimed error, and
// the diversity bonus (applied during selection) rewards covering a new
// category.
const (
	weightSimilarity = 0.4
	weightMechanism  = 0.4
	diversityBonus   = 0.2
)

// RankDistractors scores candidates, discards duplicates of the correct
// answer, and selects the top `want` with category diversity. Selection
// is deterministic and independent of candidate order.
func RankDistractors(q Question, candidates []Distractor, want int) []Distractor {
	correctStrict := latex.StrictKey(q.Answer)

	var viable []Distractor
	seen := make(map[string]bool)
	for _, c := range candidates {
		k := latex.StrictKey(c.Text)
		if k == "" || k == correctStrict || seen[k] {
			continue
		}
		// A candidate mathematically equal to the correct answer would
		// make the question unanswerable — unless the claimed error is
		// precisely the dropped constant, which only differs textually.
		if c.ErrorTypeID != "not_const_omitted" && !q.Definite &&
			symbolic.Equivalent(c.Text, q.Answer, variableOf(q)) {
			continue
		}
		seen[k] = true
		c.Score = weightSimilarity*similarity(correctStrict, k) + weightMechanism*mechanismScore(q, c)
		viable = append(viable, c)
	}

	if want > len(viable) {
		want = len(viable)
	}
	var selected []Distractor
	usedCategories := make(map[taxonomy.Category]bool)
	picked := make([]bool, len(viable))
	for len(selected) < want {
		best := -1
		bestEff := 0.0
		for i, c := range viable {
			if picked[i] {
				continue
			}
			eff := c.Score
			if !usedCategories[c.Category] {
				eff += diversityBonus
			}
			if best == -1 || eff > bestEff ||
				(eff == bestEff && betterTie(c, viable[best])) {
				best, bestEff = i, eff
			}
		}
		picked[best] = true
		viable[best].Score = bestEff
		selected = append(selected, viable[best])
		usedCategories[viable[best].Category] = true
	}
	return selected
}

// betterTie breaks score ties: higher-priority category first, then
// lexicographic text so the outcome does not depend on input order.
func betterTie(a, b Distractor) bool {
	pa, pb := taxonomy.Priority(a.Category), taxonomy.Priority(b.Category)
	if pa != pb {
		return pa < pb
	}
	return a.Text < b.Text
}

// similarity is a normalized edit-distance likeness of two option keys.
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// mechanismScore checks whether the candidate plausibly results from its
// claimed error pattern. Checks are cheap and category-specific; a
// candidate that passes its check is a demonstrably on-mechanism
// distractor.
func mechanismScore(q Question, c Distractor) float64 {
	v := variableOf(q)
	switch c.ErrorTypeID {
	case "alg_sign_flip":
		if symbolic.Negation(c.Text, q.Answer, v) {
			return 1.0
		}
	case "not_const_omitted":
		if latex.CompareKey(c.Text) == latex.CompareKey(q.Answer) {
			return 1.0
		}
	case "conc_deriv_instead":
		if in, ok := extractFromStem(q.Stem); ok {
			if deriv, err := symbolic.DerivativeOf(in.Integrand, v); err == nil &&
				symbolic.Equivalent(c.Text, deriv, v) {
				return 1.0
			}
		}
	default:
		// No structural check for this mechanism; neutral credit.
		return 0.6
	}
	// Checkable mechanism that did not check out.
	return 0.3
}

func variableOf(q Question) string {
	if q.Variable != "" {
		return q.Variable
	}
	return "x"
}

// levenshtein is the classic two-row edit distance. Small enough that a
// dependency is not warranted for option keys a few dozen bytes long.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
