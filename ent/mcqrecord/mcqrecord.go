// Code generated by ent, DO NOT EDIT.

package mcqrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mcqrecord type in the database.
	Label = "mcq_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldConceptName holds the string denoting the concept_name field in the database.
	FieldConceptName = "concept_name"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectLetter holds the string denoting the correct_letter field in the database.
	FieldCorrectLetter = "correct_letter"
	// FieldExplanations holds the string denoting the explanations field in the database.
	FieldExplanations = "explanations"
	// FieldValidationScore holds the string denoting the validation_score field in the database.
	FieldValidationScore = "validation_score"
	// FieldWasCorrected holds the string denoting the was_corrected field in the database.
	FieldWasCorrected = "was_corrected"
	// Table holds the table name of the mcqrecord in the database.
	Table = "mcq_records"
)

// Columns holds all SQL columns for mcqrecord fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionNumber,
	FieldQuestionID,
	FieldConceptName,
	FieldDifficulty,
	FieldStem,
	FieldOptions,
	FieldCorrectLetter,
	FieldExplanations,
	FieldValidationScore,
	FieldWasCorrected,
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
	// DefaultQuestionNumber holds the default value on creation for the "question_number" field.
	DefaultQuestionNumber int
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultConceptName holds the default value on creation for the "concept_name" field.
	DefaultConceptName string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// StemValidator is a validator for the "stem" field. It is called by the builders before save.
	StemValidator func(string) error
	// CorrectLetterValidator is a validator for the "correct_letter" field. It is called by the builders before save.
	CorrectLetterValidator func(string) error
	// DefaultValidationScore holds the default value on creation for the "validation_score" field.
	DefaultValidationScore float64
	// DefaultWasCorrected holds the default value on creation for the "was_corrected" field.
	DefaultWasCorrected bool
)

// OrderOption defines the ordering options for the MCQRecord queries.
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

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByConceptName orders the results by the concept_name field.
func ByConceptName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptName, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByCorrectLetter orders the results by the correct_letter field.
func ByCorrectLetter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectLetter, opts...).ToFunc()
}

// ByValidationScore orders the results by the validation_score field.
func ByValidationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationScore, opts...).ToFunc()
}

// ByWasCorrected orders the results by the was_corrected field.
func ByWasCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasCorrected, opts...).ToFunc()
}
