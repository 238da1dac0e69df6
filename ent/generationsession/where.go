// Code generated by ent, DO NOT EDIT.

package generationsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldSessionID, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldSourceName, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldPhase, v))
}

// ConceptsExtracted applies equality check predicate on the "concepts_extracted" field. It's identical to ConceptsExtractedEQ.
func ConceptsExtracted(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldConceptsExtracted, v))
}

// QuestionsGenerated applies equality check predicate on the "questions_generated" field. It's identical to QuestionsGeneratedEQ.
func QuestionsGenerated(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldQuestionsGenerated, v))
}

// QuestionsValidated applies equality check predicate on the "questions_validated" field. It's identical to QuestionsValidatedEQ.
func QuestionsValidated(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldQuestionsValidated, v))
}

// AnswersCorrected applies equality check predicate on the "answers_corrected" field. It's identical to AnswersCorrectedEQ.
func AnswersCorrected(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldAnswersCorrected, v))
}

// QuestionsDropped applies equality check predicate on the "questions_dropped" field. It's identical to QuestionsDroppedEQ.
func QuestionsDropped(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldQuestionsDropped, v))
}

// McqCount applies equality check predicate on the "mcq_count" field. It's identical to McqCountEQ.
func McqCount(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldMcqCount, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldContainsFold(FieldSessionID, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldContainsFold(FieldSourceName, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldContainsFold(FieldPhase, v))
}

// ConceptsExtractedEQ applies the EQ predicate on the "concepts_extracted" field.
func ConceptsExtractedEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldConceptsExtracted, v))
}

// ConceptsExtractedNEQ applies the NEQ predicate on the "concepts_extracted" field.
func ConceptsExtractedNEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldConceptsExtracted, v))
}

// ConceptsExtractedIn applies the In predicate on the "concepts_extracted" field.
func ConceptsExtractedIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldConceptsExtracted, vs...))
}

// ConceptsExtractedNotIn applies the NotIn predicate on the "concepts_extracted" field.
func ConceptsExtractedNotIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldConceptsExtracted, vs...))
}

// ConceptsExtractedGT applies the GT predicate on the "concepts_extracted" field.
func ConceptsExtractedGT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldConceptsExtracted, v))
}

// ConceptsExtractedGTE applies the GTE predicate on the "concepts_extracted" field.
func ConceptsExtractedGTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldConceptsExtracted, v))
}

// ConceptsExtractedLT applies the LT predicate on the "concepts_extracted" field.
func ConceptsExtractedLT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldConceptsExtracted, v))
}

// ConceptsExtractedLTE applies the LTE predicate on the "concepts_extracted" field.
func ConceptsExtractedLTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldConceptsExtracted, v))
}

// QuestionsGeneratedEQ applies the EQ predicate on the "questions_generated" field.
func QuestionsGeneratedEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldQuestionsGenerated, v))
}

// QuestionsGeneratedNEQ applies the NEQ predicate on the "questions_generated" field.
func QuestionsGeneratedNEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldQuestionsGenerated, v))
}

// QuestionsGeneratedIn applies the In predicate on the "questions_generated" field.
func QuestionsGeneratedIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldQuestionsGenerated, vs...))
}

// QuestionsGeneratedNotIn applies the NotIn predicate on the "questions_generated" field.
func QuestionsGeneratedNotIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldQuestionsGenerated, vs...))
}

// QuestionsGeneratedGT applies the GT predicate on the "questions_generated" field.
func QuestionsGeneratedGT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldQuestionsGenerated, v))
}

// QuestionsGeneratedGTE applies the GTE predicate on the "questions_generated" field.
func QuestionsGeneratedGTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldQuestionsGenerated, v))
}

// QuestionsGeneratedLT applies the LT predicate on the "questions_generated" field.
func QuestionsGeneratedLT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldQuestionsGenerated, v))
}

// QuestionsGeneratedLTE applies the LTE predicate on the "questions_generated" field.
func QuestionsGeneratedLTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldQuestionsGenerated, v))
}

// QuestionsValidatedEQ applies the EQ predicate on the "questions_validated" field.
func QuestionsValidatedEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldQuestionsValidated, v))
}

// QuestionsValidatedNEQ applies the NEQ predicate on the "questions_validated" field.
func QuestionsValidatedNEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldQuestionsValidated, v))
}

// QuestionsValidatedIn applies the In predicate on the "questions_validated" field.
func QuestionsValidatedIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldQuestionsValidated, vs...))
}

// QuestionsValidatedNotIn applies the NotIn predicate on the "questions_validated" field.
func QuestionsValidatedNotIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldQuestionsValidated, vs...))
}

// QuestionsValidatedGT applies the GT predicate on the "questions_validated" field.
func QuestionsValidatedGT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldQuestionsValidated, v))
}

// QuestionsValidatedGTE applies the GTE predicate on the "questions_validated" field.
func QuestionsValidatedGTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldQuestionsValidated, v))
}

// QuestionsValidatedLT applies the LT predicate on the "questions_validated" field.
func QuestionsValidatedLT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldQuestionsValidated, v))
}

// QuestionsValidatedLTE applies the LTE predicate on the "questions_validated" field.
func QuestionsValidatedLTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldQuestionsValidated, v))
}

// AnswersCorrectedEQ applies the EQ predicate on the "answers_corrected" field.
func AnswersCorrectedEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldAnswersCorrected, v))
}

// AnswersCorrectedNEQ applies the NEQ predicate on the "answers_corrected" field.
func AnswersCorrectedNEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldAnswersCorrected, v))
}

// AnswersCorrectedIn applies the In predicate on the "answers_corrected" field.
func AnswersCorrectedIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldAnswersCorrected, vs...))
}

// AnswersCorrectedNotIn applies the NotIn predicate on the "answers_corrected" field.
func AnswersCorrectedNotIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldAnswersCorrected, vs...))
}

// AnswersCorrectedGT applies the GT predicate on the "answers_corrected" field.
func AnswersCorrectedGT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldAnswersCorrected, v))
}

// AnswersCorrectedGTE applies the GTE predicate on the "answers_corrected" field.
func AnswersCorrectedGTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldAnswersCorrected, v))
}

// AnswersCorrectedLT applies the LT predicate on the "answers_corrected" field.
func AnswersCorrectedLT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldAnswersCorrected, v))
}

// AnswersCorrectedLTE applies the LTE predicate on the "answers_corrected" field.
func AnswersCorrectedLTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldAnswersCorrected, v))
}

// QuestionsDroppedEQ applies the EQ predicate on the "questions_dropped" field.
func QuestionsDroppedEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldQuestionsDropped, v))
}

// QuestionsDroppedNEQ applies the NEQ predicate on the "questions_dropped" field.
func QuestionsDroppedNEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldQuestionsDropped, v))
}

// QuestionsDroppedIn applies the In predicate on the "questions_dropped" field.
func QuestionsDroppedIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldQuestionsDropped, vs...))
}

// QuestionsDroppedNotIn applies the NotIn predicate on the "questions_dropped" field.
func QuestionsDroppedNotIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldQuestionsDropped, vs...))
}

// QuestionsDroppedGT applies the GT predicate on the "questions_dropped" field.
func QuestionsDroppedGT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldQuestionsDropped, v))
}

// QuestionsDroppedGTE applies the GTE predicate on the "questions_dropped" field.
func QuestionsDroppedGTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldQuestionsDropped, v))
}

// QuestionsDroppedLT applies the LT predicate on the "questions_dropped" field.
func QuestionsDroppedLT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldQuestionsDropped, v))
}

// QuestionsDroppedLTE applies the LTE predicate on the "questions_dropped" field.
func QuestionsDroppedLTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldQuestionsDropped, v))
}

// McqCountEQ applies the EQ predicate on the "mcq_count" field.
func McqCountEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldMcqCount, v))
}

// McqCountNEQ applies the NEQ predicate on the "mcq_count" field.
func McqCountNEQ(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldMcqCount, v))
}

// McqCountIn applies the In predicate on the "mcq_count" field.
func McqCountIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldMcqCount, vs...))
}

// McqCountNotIn applies the NotIn predicate on the "mcq_count" field.
func McqCountNotIn(vs ...int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldMcqCount, vs...))
}

// McqCountGT applies the GT predicate on the "mcq_count" field.
func McqCountGT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldMcqCount, v))
}

// McqCountGTE applies the GTE predicate on the "mcq_count" field.
func McqCountGTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldMcqCount, v))
}

// McqCountLT applies the LT predicate on the "mcq_count" field.
func McqCountLT(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldMcqCount, v))
}

// McqCountLTE applies the LTE predicate on the "mcq_count" field.
func McqCountLTE(v int) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldMcqCount, v))
}

// DropsIsNil applies the IsNil predicate on the "drops" field.
func DropsIsNil() predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIsNull(FieldDrops))
}

// DropsNotNil applies the NotNil predicate on the "drops" field.
func DropsNotNil() predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotNull(FieldDrops))
}

// DifficultyDistributionIsNil applies the IsNil predicate on the "difficulty_distribution" field.
func DifficultyDistributionIsNil() predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIsNull(FieldDifficultyDistribution))
}

// DifficultyDistributionNotNil applies the NotNil predicate on the "difficulty_distribution" field.
func DifficultyDistributionNotNil() predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotNull(FieldDifficultyDistribution))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.GenerationSession {
	return predicate.GenerationSession(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationSession) predicate.GenerationSession {
	return predicate.GenerationSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationSession) predicate.GenerationSession {
	return predicate.GenerationSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationSession) predicate.GenerationSession {
	return predicate.GenerationSession(sql.NotPredicates(p))
}
