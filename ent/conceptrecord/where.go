// Code generated by ent, DO NOT EDIT.

package conceptrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldSessionID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConceptID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldName, v))
}

// Formula applies equality check predicate on the "formula" field. It's identical to FormulaEQ.
func Formula(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldFormula, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldDifficulty, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldContext, v))
}

// WorkedExample applies equality check predicate on the "worked_example" field. It's identical to WorkedExampleEQ.
func WorkedExample(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldWorkedExample, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldConceptID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldName, v))
}

// FormulaEQ applies the EQ predicate on the "formula" field.
func FormulaEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldFormula, v))
}

// FormulaNEQ applies the NEQ predicate on the "formula" field.
func FormulaNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldFormula, v))
}

// FormulaIn applies the In predicate on the "formula" field.
func FormulaIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldFormula, vs...))
}

// FormulaNotIn applies the NotIn predicate on the "formula" field.
func FormulaNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldFormula, vs...))
}

// FormulaGT applies the GT predicate on the "formula" field.
func FormulaGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldFormula, v))
}

// FormulaGTE applies the GTE predicate on the "formula" field.
func FormulaGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldFormula, v))
}

// FormulaLT applies the LT predicate on the "formula" field.
func FormulaLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldFormula, v))
}

// FormulaLTE applies the LTE predicate on the "formula" field.
func FormulaLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldFormula, v))
}

// FormulaContains applies the Contains predicate on the "formula" field.
func FormulaContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldFormula, v))
}

// FormulaHasPrefix applies the HasPrefix predicate on the "formula" field.
func FormulaHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldFormula, v))
}

// FormulaHasSuffix applies the HasSuffix predicate on the "formula" field.
func FormulaHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldFormula, v))
}

// FormulaEqualFold applies the EqualFold predicate on the "formula" field.
func FormulaEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldFormula, v))
}

// FormulaContainsFold applies the ContainsFold predicate on the "formula" field.
func FormulaContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldFormula, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldDifficulty, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldContext, v))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldContext, v))
}

// PrerequisitesIsNil applies the IsNil predicate on the "prerequisites" field.
func PrerequisitesIsNil() predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIsNull(FieldPrerequisites))
}

// PrerequisitesNotNil applies the NotNil predicate on the "prerequisites" field.
func PrerequisitesNotNil() predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotNull(FieldPrerequisites))
}

// WorkedExampleEQ applies the EQ predicate on the "worked_example" field.
func WorkedExampleEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldWorkedExample, v))
}

// WorkedExampleNEQ applies the NEQ predicate on the "worked_example" field.
func WorkedExampleNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldWorkedExample, v))
}

// WorkedExampleIn applies the In predicate on the "worked_example" field.
func WorkedExampleIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldWorkedExample, vs...))
}

// WorkedExampleNotIn applies the NotIn predicate on the "worked_example" field.
func WorkedExampleNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldWorkedExample, vs...))
}

// WorkedExampleGT applies the GT predicate on the "worked_example" field.
func WorkedExampleGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldWorkedExample, v))
}

// WorkedExampleGTE applies the GTE predicate on the "worked_example" field.
func WorkedExampleGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldWorkedExample, v))
}

// WorkedExampleLT applies the LT predicate on the "worked_example" field.
func WorkedExampleLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldWorkedExample, v))
}

// WorkedExampleLTE applies the LTE predicate on the "worked_example" field.
func WorkedExampleLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldWorkedExample, v))
}

// WorkedExampleContains applies the Contains predicate on the "worked_example" field.
func WorkedExampleContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldWorkedExample, v))
}

// WorkedExampleHasPrefix applies the HasPrefix predicate on the "worked_example" field.
func WorkedExampleHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldWorkedExample, v))
}

// WorkedExampleHasSuffix applies the HasSuffix predicate on the "worked_example" field.
func WorkedExampleHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldWorkedExample, v))
}

// WorkedExampleEqualFold applies the EqualFold predicate on the "worked_example" field.
func WorkedExampleEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldWorkedExample, v))
}

// WorkedExampleContainsFold applies the ContainsFold predicate on the "worked_example" field.
func WorkedExampleContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldWorkedExample, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptRecord) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptRecord) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptRecord) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.NotPredicates(p))
}
