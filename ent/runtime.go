// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mcqgen/ent/conceptrecord"
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/llmrequestevent"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
	"github.com/abhisek/mcqgen/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptrecordMixin := schema.ConceptRecord{}.Mixin()
	conceptrecordMixinFields0 := conceptrecordMixin[0].Fields()
	_ = conceptrecordMixinFields0
	conceptrecordFields := schema.ConceptRecord{}.Fields()
	_ = conceptrecordFields
	// conceptrecordDescTimestamp is the schema descriptor for timestamp field.
	conceptrecordDescTimestamp := conceptrecordMixinFields0[1].Descriptor()
	// conceptrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	conceptrecord.DefaultTimestamp = conceptrecordDescTimestamp.Default.(func() time.Time)
	// conceptrecordDescSessionID is the schema descriptor for session_id field.
	conceptrecordDescSessionID := conceptrecordFields[0].Descriptor()
	// conceptrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	conceptrecord.SessionIDValidator = conceptrecordDescSessionID.Validators[0].(func(string) error)
	// conceptrecordDescConceptID is the schema descriptor for concept_id field.
	conceptrecordDescConceptID := conceptrecordFields[1].Descriptor()
	// conceptrecord.DefaultConceptID holds the default value on creation for the concept_id field.
	conceptrecord.DefaultConceptID = conceptrecordDescConceptID.Default.(string)
	// conceptrecordDescName is the schema descriptor for name field.
	conceptrecordDescName := conceptrecordFields[2].Descriptor()
	// conceptrecord.NameValidator is a validator for the "name" field. It is called by the builders before save.
	conceptrecord.NameValidator = conceptrecordDescName.Validators[0].(func(string) error)
	// conceptrecordDescFormula is the schema descriptor for formula field.
	conceptrecordDescFormula := conceptrecordFields[3].Descriptor()
	// conceptrecord.FormulaValidator is a validator for the "formula" field. It is called by the builders before save.
	conceptrecord.FormulaValidator = conceptrecordDescFormula.Validators[0].(func(string) error)
	// conceptrecordDescContext is the schema descriptor for context field.
	conceptrecordDescContext := conceptrecordFields[5].Descriptor()
	// conceptrecord.DefaultContext holds the default value on creation for the context field.
	conceptrecord.DefaultContext = conceptrecordDescContext.Default.(string)
	// conceptrecordDescWorkedExample is the schema descriptor for worked_example field.
	conceptrecordDescWorkedExample := conceptrecordFields[7].Descriptor()
	// conceptrecord.DefaultWorkedExample holds the default value on creation for the worked_example field.
	conceptrecord.DefaultWorkedExample = conceptrecordDescWorkedExample.Default.(string)
	generationsessionMixin := schema.GenerationSession{}.Mixin()
	generationsessionMixinFields0 := generationsessionMixin[0].Fields()
	_ = generationsessionMixinFields0
	generationsessionFields := schema.GenerationSession{}.Fields()
	_ = generationsessionFields
	// generationsessionDescTimestamp is the schema descriptor for timestamp field.
	generationsessionDescTimestamp := generationsessionMixinFields0[1].Descriptor()
	// generationsession.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationsession.DefaultTimestamp = generationsessionDescTimestamp.Default.(func() time.Time)
	// generationsessionDescSessionID is the schema descriptor for session_id field.
	generationsessionDescSessionID := generationsessionFields[0].Descriptor()
	// generationsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	generationsession.SessionIDValidator = generationsessionDescSessionID.Validators[0].(func(string) error)
	// generationsessionDescSourceName is the schema descriptor for source_name field.
	generationsessionDescSourceName := generationsessionFields[1].Descriptor()
	// generationsession.SourceNameValidator is a validator for the "source_name" field. It is called by the builders before save.
	generationsession.SourceNameValidator = generationsessionDescSourceName.Validators[0].(func(string) error)
	// generationsessionDescConceptsExtracted is the schema descriptor for concepts_extracted field.
	generationsessionDescConceptsExtracted := generationsessionFields[3].Descriptor()
	// generationsession.DefaultConceptsExtracted holds the default value on creation for the concepts_extracted field.
	generationsession.DefaultConceptsExtracted = generationsessionDescConceptsExtracted.Default.(int)
	// generationsessionDescQuestionsGenerated is the schema descriptor for questions_generated field.
	generationsessionDescQuestionsGenerated := generationsessionFields[4].Descriptor()
	// generationsession.DefaultQuestionsGenerated holds the default value on creation for the questions_generated field.
	generationsession.DefaultQuestionsGenerated = generationsessionDescQuestionsGenerated.Default.(int)
	// generationsessionDescQuestionsValidated is the schema descriptor for questions_validated field.
	generationsessionDescQuestionsValidated := generationsessionFields[5].Descriptor()
	// generationsession.DefaultQuestionsValidated holds the default value on creation for the questions_validated field.
	generationsession.DefaultQuestionsValidated = generationsessionDescQuestionsValidated.Default.(int)
	// generationsessionDescAnswersCorrected is the schema descriptor for answers_corrected field.
	generationsessionDescAnswersCorrected := generationsessionFields[6].Descriptor()
	// generationsession.DefaultAnswersCorrected holds the default value on creation for the answers_corrected field.
	generationsession.DefaultAnswersCorrected = generationsessionDescAnswersCorrected.Default.(int)
	// generationsessionDescQuestionsDropped is the schema descriptor for questions_dropped field.
	generationsessionDescQuestionsDropped := generationsessionFields[7].Descriptor()
	// generationsession.DefaultQuestionsDropped holds the default value on creation for the questions_dropped field.
	generationsession.DefaultQuestionsDropped = generationsessionDescQuestionsDropped.Default.(int)
	// generationsessionDescMcqCount is the schema descriptor for mcq_count field.
	generationsessionDescMcqCount := generationsessionFields[8].Descriptor()
	// generationsession.DefaultMcqCount holds the default value on creation for the mcq_count field.
	generationsession.DefaultMcqCount = generationsessionDescMcqCount.Default.(int)
	// generationsessionDescDurationMs is the schema descriptor for duration_ms field.
	generationsessionDescDurationMs := generationsessionFields[11].Descriptor()
	// generationsession.DefaultDurationMs holds the default value on creation for the duration_ms field.
	generationsession.DefaultDurationMs = generationsessionDescDurationMs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	mcqrecordMixin := schema.MCQRecord{}.Mixin()
	mcqrecordMixinFields0 := mcqrecordMixin[0].Fields()
	_ = mcqrecordMixinFields0
	mcqrecordFields := schema.MCQRecord{}.Fields()
	_ = mcqrecordFields
	// mcqrecordDescTimestamp is the schema descriptor for timestamp field.
	mcqrecordDescTimestamp := mcqrecordMixinFields0[1].Descriptor()
	// mcqrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	mcqrecord.DefaultTimestamp = mcqrecordDescTimestamp.Default.(func() time.Time)
	// mcqrecordDescSessionID is the schema descriptor for session_id field.
	mcqrecordDescSessionID := mcqrecordFields[0].Descriptor()
	// mcqrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	mcqrecord.SessionIDValidator = mcqrecordDescSessionID.Validators[0].(func(string) error)
	// mcqrecordDescQuestionNumber is the schema descriptor for question_number field.
	mcqrecordDescQuestionNumber := mcqrecordFields[1].Descriptor()
	// mcqrecord.DefaultQuestionNumber holds the default value on creation for the question_number field.
	mcqrecord.DefaultQuestionNumber = mcqrecordDescQuestionNumber.Default.(int)
	// mcqrecordDescQuestionID is the schema descriptor for question_id field.
	mcqrecordDescQuestionID := mcqrecordFields[2].Descriptor()
	// mcqrecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	mcqrecord.QuestionIDValidator = mcqrecordDescQuestionID.Validators[0].(func(string) error)
	// mcqrecordDescConceptName is the schema descriptor for concept_name field.
	mcqrecordDescConceptName := mcqrecordFields[3].Descriptor()
	// mcqrecord.DefaultConceptName holds the default value on creation for the concept_name field.
	mcqrecord.DefaultConceptName = mcqrecordDescConceptName.Default.(string)
	// mcqrecordDescDifficulty is the schema descriptor for difficulty field.
	mcqrecordDescDifficulty := mcqrecordFields[4].Descriptor()
	// mcqrecord.DefaultDifficulty holds the default value on creation for the difficulty field.
	mcqrecord.DefaultDifficulty = mcqrecordDescDifficulty.Default.(string)
	// mcqrecordDescStem is the schema descriptor for stem field.
	mcqrecordDescStem := mcqrecordFields[5].Descriptor()
	// mcqrecord.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	mcqrecord.StemValidator = mcqrecordDescStem.Validators[0].(func(string) error)
	// mcqrecordDescCorrectLetter is the schema descriptor for correct_letter field.
	mcqrecordDescCorrectLetter := mcqrecordFields[7].Descriptor()
	// mcqrecord.CorrectLetterValidator is a validator for the "correct_letter" field. It is called by the builders before save.
	mcqrecord.CorrectLetterValidator = mcqrecordDescCorrectLetter.Validators[0].(func(string) error)
	// mcqrecordDescValidationScore is the schema descriptor for validation_score field.
	mcqrecordDescValidationScore := mcqrecordFields[9].Descriptor()
	// mcqrecord.DefaultValidationScore holds the default value on creation for the validation_score field.
	mcqrecord.DefaultValidationScore = mcqrecordDescValidationScore.Default.(float64)
	// mcqrecordDescWasCorrected is the schema descriptor for was_corrected field.
	mcqrecordDescWasCorrected := mcqrecordFields[10].Descriptor()
	// mcqrecord.DefaultWasCorrected holds the default value on creation for the was_corrected field.
	mcqrecord.DefaultWasCorrected = mcqrecordDescWasCorrected.Default.(bool)
}
