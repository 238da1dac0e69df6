// Package pipeline implements the question-generation flow: concept
// extraction from source material, stem generation with a claimed answer,
// independent mathematical validation, error-driven distractor
// generation, and final assembly into multiple-choice questions.
package pipeline

import (
	"time"

	"github.com/abhisek/mcqgen/internal/taxonomy"
)

// Difficulty levels assigned to extracted concepts.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Source kinds the analyzer accepts. Chapters are prose teaching
// material; MCQ banks are existing question collections whose concepts
// are inferred from the questions themselves.
const (
	SourceKindChapter = "chapter"
	SourceKindMCQs    = "mcqs"
)

// ValidSourceKind reports whether kind is a recognized source kind.
func ValidSourceKind(kind string) bool {
	return kind == SourceKindChapter || kind == SourceKindMCQs
}

// Concept is a single integration technique or formula extracted from
// source material. ID is a stable slug derived from the name, assigned
// locally rather than by the model.
type Concept struct {
	ID            string   `json:"concept_id"`
	Name          string   `json:"concept_name"`
	Formula       string   `json:"formula"`
	Difficulty    string   `json:"difficulty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Context       string   `json:"context,omitempty"`
	WorkedExample string   `json:"worked_example,omitempty"`
}

// Question is a generated stem with its claimed answer, progressively
// enriched as it moves through validation.
type Question struct {
	ID             string `json:"question_id"`
	ConceptName    string `json:"concept_name"`
	ConceptContext string `json:"-"`
	Stem           string `json:"stem"`
	Answer         string `json:"correct_answer"`
	Difficulty     string `json:"difficulty"`

	// Set by the validator.
	Variable         string   `json:"-"`
	Definite         bool     `json:"-"`
	IntegralTags     []string `json:"-"`
	Validated        bool     `json:"-"`
	Corrected        bool     `json:"-"`
	ValidationMethod string   `json:"-"`
	ValidationScore  float64  `json:"-"`
}

// Distractor is one wrong answer option tied to a known error pattern.
type Distractor struct {
	Text        string            `json:"text"`
	ErrorTypeID string            `json:"error_type"`
	Category    taxonomy.Category `json:"category"`
	Rationale   string            `json:"rationale"`
	Score       float64           `json:"-"`
}

// MCQ is a fully assembled multiple-choice question. QuestionNumber is
// its 1-based position among the run's surviving questions.
type MCQ struct {
	QuestionNumber  int               `json:"question_number"`
	QuestionID      string            `json:"question_id"`
	ConceptName     string            `json:"concept_name"`
	Difficulty      string            `json:"difficulty"`
	Stem            string            `json:"stem"`
	Options         map[string]string `json:"options"`
	CorrectLetter   string            `json:"correct_letter"`
	Explanations    map[string]string `json:"explanations,omitempty"`
	ValidationScore float64           `json:"validation_score"`
	WasCorrected    bool              `json:"was_corrected"`
}

// OptionLetters is the fixed letter order for assembled options.
var OptionLetters = []string{"a", "b", "c", "d"}

// Drop reasons recorded when a question leaves the pipeline.
const (
	DropSyntaxInvalid    = "syntax_invalid"
	DropUnverifiedAnswer = "unverified_answer"
	DropBatchFailed      = "batch_failed"
	DropAssemblyFailed   = "assembly_failed"
)

// Drop records a question removed from the pipeline and why.
type Drop struct {
	QuestionID string `json:"question_id"`
	Stage      string `json:"stage"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

// Metrics counts pipeline activity for the run summary.
type Metrics struct {
	ConceptsExtracted    int `json:"concepts_extracted"`
	StemsRequested       int `json:"stems_requested"`
	StemsGenerated       int `json:"stems_generated"`
	BatchRetries         int `json:"batch_retries"`
	BatchesSkipped       int `json:"batches_skipped"`
	QuestionsValidated   int `json:"questions_validated"`
	AnswersCorrected     int `json:"answers_corrected"`
	QuestionsDropped     int `json:"questions_dropped"`
	DistractorShortfalls int `json:"distractor_shortfalls"`
	OptionCollisions     int `json:"option_collisions"`
}

// RunSummary is the final account of a pipeline run. Difficulty maps
// each difficulty level to the number of assembled questions at it.
type RunSummary struct {
	SessionID  string         `json:"session_id"`
	SourceName string         `json:"source_name"`
	Phase      Phase          `json:"phase"`
	Concepts   []Concept      `json:"concepts"`
	MCQs       []MCQ          `json:"mcqs"`
	Drops      []Drop         `json:"drops"`
	Metrics    Metrics        `json:"metrics"`
	Difficulty map[string]int `json:"difficulty_distribution"`
	StartedAt  time.Time      `json:"started_at"`
	Duration   time.Duration  `json:"duration"`
}
