// Code generated by ent, DO NOT EDIT.

package mcqrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldSessionID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldQuestionID, v))
}

// ConceptName applies equality check predicate on the "concept_name" field. It's identical to ConceptNameEQ.
func ConceptName(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldConceptName, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldDifficulty, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldStem, v))
}

// CorrectLetter applies equality check predicate on the "correct_letter" field. It's identical to CorrectLetterEQ.
func CorrectLetter(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldCorrectLetter, v))
}

// ValidationScore applies equality check predicate on the "validation_score" field. It's identical to ValidationScoreEQ.
func ValidationScore(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldValidationScore, v))
}

// WasCorrected applies equality check predicate on the "was_corrected" field. It's identical to WasCorrectedEQ.
func WasCorrected(v bool) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldWasCorrected, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldQuestionNumber, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContainsFold(FieldQuestionID, v))
}

// ConceptNameEQ applies the EQ predicate on the "concept_name" field.
func ConceptNameEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldConceptName, v))
}

// ConceptNameNEQ applies the NEQ predicate on the "concept_name" field.
func ConceptNameNEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldConceptName, v))
}

// ConceptNameIn applies the In predicate on the "concept_name" field.
func ConceptNameIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldConceptName, vs...))
}

// ConceptNameNotIn applies the NotIn predicate on the "concept_name" field.
func ConceptNameNotIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldConceptName, vs...))
}

// ConceptNameGT applies the GT predicate on the "concept_name" field.
func ConceptNameGT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldConceptName, v))
}

// ConceptNameGTE applies the GTE predicate on the "concept_name" field.
func ConceptNameGTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldConceptName, v))
}

// ConceptNameLT applies the LT predicate on the "concept_name" field.
func ConceptNameLT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldConceptName, v))
}

// ConceptNameLTE applies the LTE predicate on the "concept_name" field.
func ConceptNameLTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldConceptName, v))
}

// ConceptNameContains applies the Contains predicate on the "concept_name" field.
func ConceptNameContains(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContains(FieldConceptName, v))
}

// ConceptNameHasPrefix applies the HasPrefix predicate on the "concept_name" field.
func ConceptNameHasPrefix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasPrefix(FieldConceptName, v))
}

// ConceptNameHasSuffix applies the HasSuffix predicate on the "concept_name" field.
func ConceptNameHasSuffix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasSuffix(FieldConceptName, v))
}

// ConceptNameEqualFold applies the EqualFold predicate on the "concept_name" field.
func ConceptNameEqualFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEqualFold(FieldConceptName, v))
}

// ConceptNameContainsFold applies the ContainsFold predicate on the "concept_name" field.
func ConceptNameContainsFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContainsFold(FieldConceptName, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContainsFold(FieldDifficulty, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContainsFold(FieldStem, v))
}

// CorrectLetterEQ applies the EQ predicate on the "correct_letter" field.
func CorrectLetterEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldCorrectLetter, v))
}

// CorrectLetterNEQ applies the NEQ predicate on the "correct_letter" field.
func CorrectLetterNEQ(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldCorrectLetter, v))
}

// CorrectLetterIn applies the In predicate on the "correct_letter" field.
func CorrectLetterIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldCorrectLetter, vs...))
}

// CorrectLetterNotIn applies the NotIn predicate on the "correct_letter" field.
func CorrectLetterNotIn(vs ...string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldCorrectLetter, vs...))
}

// CorrectLetterGT applies the GT predicate on the "correct_letter" field.
func CorrectLetterGT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldCorrectLetter, v))
}

// CorrectLetterGTE applies the GTE predicate on the "correct_letter" field.
func CorrectLetterGTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldCorrectLetter, v))
}

// CorrectLetterLT applies the LT predicate on the "correct_letter" field.
func CorrectLetterLT(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldCorrectLetter, v))
}

// CorrectLetterLTE applies the LTE predicate on the "correct_letter" field.
func CorrectLetterLTE(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldCorrectLetter, v))
}

// CorrectLetterContains applies the Contains predicate on the "correct_letter" field.
func CorrectLetterContains(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContains(FieldCorrectLetter, v))
}

// CorrectLetterHasPrefix applies the HasPrefix predicate on the "correct_letter" field.
func CorrectLetterHasPrefix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasPrefix(FieldCorrectLetter, v))
}

// CorrectLetterHasSuffix applies the HasSuffix predicate on the "correct_letter" field.
func CorrectLetterHasSuffix(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldHasSuffix(FieldCorrectLetter, v))
}

// CorrectLetterEqualFold applies the EqualFold predicate on the "correct_letter" field.
func CorrectLetterEqualFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEqualFold(FieldCorrectLetter, v))
}

// CorrectLetterContainsFold applies the ContainsFold predicate on the "correct_letter" field.
func CorrectLetterContainsFold(v string) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldContainsFold(FieldCorrectLetter, v))
}

// ExplanationsIsNil applies the IsNil predicate on the "explanations" field.
func ExplanationsIsNil() predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIsNull(FieldExplanations))
}

// ExplanationsNotNil applies the NotNil predicate on the "explanations" field.
func ExplanationsNotNil() predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotNull(FieldExplanations))
}

// ValidationScoreEQ applies the EQ predicate on the "validation_score" field.
func ValidationScoreEQ(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldValidationScore, v))
}

// ValidationScoreNEQ applies the NEQ predicate on the "validation_score" field.
func ValidationScoreNEQ(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldValidationScore, v))
}

// ValidationScoreIn applies the In predicate on the "validation_score" field.
func ValidationScoreIn(vs ...float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldIn(FieldValidationScore, vs...))
}

// ValidationScoreNotIn applies the NotIn predicate on the "validation_score" field.
func ValidationScoreNotIn(vs ...float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNotIn(FieldValidationScore, vs...))
}

// ValidationScoreGT applies the GT predicate on the "validation_score" field.
func ValidationScoreGT(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGT(FieldValidationScore, v))
}

// ValidationScoreGTE applies the GTE predicate on the "validation_score" field.
func ValidationScoreGTE(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldGTE(FieldValidationScore, v))
}

// ValidationScoreLT applies the LT predicate on the "validation_score" field.
func ValidationScoreLT(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLT(FieldValidationScore, v))
}

// ValidationScoreLTE applies the LTE predicate on the "validation_score" field.
func ValidationScoreLTE(v float64) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldLTE(FieldValidationScore, v))
}

// WasCorrectedEQ applies the EQ predicate on the "was_corrected" field.
func WasCorrectedEQ(v bool) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldEQ(FieldWasCorrected, v))
}

// WasCorrectedNEQ applies the NEQ predicate on the "was_corrected" field.
func WasCorrectedNEQ(v bool) predicate.MCQRecord {
	return predicate.MCQRecord(sql.FieldNEQ(FieldWasCorrected, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MCQRecord) predicate.MCQRecord {
	return predicate.MCQRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MCQRecord) predicate.MCQRecord {
	return predicate.MCQRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MCQRecord) predicate.MCQRecord {
	return predicate.MCQRecord(sql.NotPredicates(p))
}
