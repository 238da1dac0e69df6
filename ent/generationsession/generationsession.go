// Code generated by ent, DO NOT EDIT.

package generationsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the generationsession type in the database.
	Label = "generation_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldConceptsExtracted holds the string denoting the concepts_extracted field in the database.
	FieldConceptsExtracted = "concepts_extracted"
	// FieldQuestionsGenerated holds the string denoting the questions_generated field in the database.
	FieldQuestionsGenerated = "questions_generated"
	// FieldQuestionsValidated holds the string denoting the questions_validated field in the database.
	FieldQuestionsValidated = "questions_validated"
	// FieldAnswersCorrected holds the string denoting the answers_corrected field in the database.
	FieldAnswersCorrected = "answers_corrected"
	// FieldQuestionsDropped holds the string denoting the questions_dropped field in the database.
	FieldQuestionsDropped = "questions_dropped"
	// FieldMcqCount holds the string denoting the mcq_count field in the database.
	FieldMcqCount = "mcq_count"
	// FieldDrops holds the string denoting the drops field in the database.
	FieldDrops = "drops"
	// FieldDifficultyDistribution holds the string denoting the difficulty_distribution field in the database.
	FieldDifficultyDistribution = "difficulty_distribution"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the generationsession in the database.
	Table = "generation_sessions"
)

// Columns holds all SQL columns for generationsession fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSourceName,
	FieldPhase,
	FieldConceptsExtracted,
	FieldQuestionsGenerated,
	FieldQuestionsValidated,
	FieldAnswersCorrected,
	FieldQuestionsDropped,
	FieldMcqCount,
	FieldDrops,
	FieldDifficultyDistribution,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// SourceNameValidator is a validator for the "source_name" field. It is called by the builders before save.
	SourceNameValidator func(string) error
	// DefaultConceptsExtracted holds the default value on creation for the "concepts_extracted" field.
	DefaultConceptsExtracted int
	// DefaultQuestionsGenerated holds the default value on creation for the "questions_generated" field.
	DefaultQuestionsGenerated int
	// DefaultQuestionsValidated holds the default value on creation for the "questions_validated" field.
	DefaultQuestionsValidated int
	// DefaultAnswersCorrected holds the default value on creation for the "answers_corrected" field.
	DefaultAnswersCorrected int
	// DefaultQuestionsDropped holds the default value on creation for the "questions_dropped" field.
	DefaultQuestionsDropped int
	// DefaultMcqCount holds the default value on creation for the "mcq_count" field.
	DefaultMcqCount int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the GenerationSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByConceptsExtracted orders the results by the concepts_extracted field.
func ByConceptsExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptsExtracted, opts...).ToFunc()
}

// ByQuestionsGenerated orders the results by the questions_generated field.
func ByQuestionsGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsGenerated, opts...).ToFunc()
}

// ByQuestionsValidated orders the results by the questions_validated field.
func ByQuestionsValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsValidated, opts...).ToFunc()
}

// ByAnswersCorrected orders the results by the answers_corrected field.
func ByAnswersCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswersCorrected, opts...).ToFunc()
}

// ByQuestionsDropped orders the results by the questions_dropped field.
func ByQuestionsDropped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsDropped, opts...).ToFunc()
}

// ByMcqCount orders the results by the mcq_count field.
func ByMcqCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMcqCount, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
