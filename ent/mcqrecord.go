// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/mcqrecord"
)

// MCQRecord is the model entity for the MCQRecord schema.
type MCQRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 1-based position within the run's surviving questions
	QuestionNumber int `json:"question_number,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// ConceptName holds the value of the "concept_name" field.
	ConceptName string `json:"concept_name,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// Letter to option text
	Options map[string]string `json:"options,omitempty"`
	// CorrectLetter holds the value of the "correct_letter" field.
	CorrectLetter string `json:"correct_letter,omitempty"`
	// Letter to per-option explanation, when enabled
	Explanations map[string]string `json:"explanations,omitempty"`
	// Confidence from the validation method that passed
	ValidationScore float64 `json:"validation_score,omitempty"`
	// Answer was recomputed during validation
	WasCorrected bool `json:"was_corrected,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MCQRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mcqrecord.FieldOptions, mcqrecord.FieldExplanations:
			values[i] = new([]byte)
		case mcqrecord.FieldWasCorrected:
			values[i] = new(sql.NullBool)
		case mcqrecord.FieldValidationScore:
			values[i] = new(sql.NullFloat64)
		case mcqrecord.FieldID, mcqrecord.FieldSequence, mcqrecord.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case mcqrecord.FieldSessionID, mcqrecord.FieldQuestionID, mcqrecord.FieldConceptName, mcqrecord.FieldDifficulty, mcqrecord.FieldStem, mcqrecord.FieldCorrectLetter:
			values[i] = new(sql.NullString)
		case mcqrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MCQRecord fields.
func (_m *MCQRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mcqrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mcqrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case mcqrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case mcqrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case mcqrecord.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case mcqrecord.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case mcqrecord.FieldConceptName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_name", values[i])
			} else if value.Valid {
				_m.ConceptName = value.String
			}
		case mcqrecord.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case mcqrecord.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case mcqrecord.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case mcqrecord.FieldCorrectLetter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_letter", values[i])
			} else if value.Valid {
				_m.CorrectLetter = value.String
			}
		case mcqrecord.FieldExplanations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field explanations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Explanations); err != nil {
					return fmt.Errorf("unmarshal field explanations: %w", err)
				}
			}
		case mcqrecord.FieldValidationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field validation_score", values[i])
			} else if value.Valid {
				_m.ValidationScore = value.Float64
			}
		case mcqrecord.FieldWasCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_corrected", values[i])
			} else if value.Valid {
				_m.WasCorrected = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MCQRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MCQRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MCQRecord.
// Note that you need to call MCQRecord.Unwrap() before calling this method if this MCQRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MCQRecord) Update() *MCQRecordUpdateOne {
	return NewMCQRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MCQRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MCQRecord) Unwrap() *MCQRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MCQRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MCQRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MCQRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("concept_name=")
	builder.WriteString(_m.ConceptName)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_letter=")
	builder.WriteString(_m.CorrectLetter)
	builder.WriteString(", ")
	builder.WriteString("explanations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Explanations))
	builder.WriteString(", ")
	builder.WriteString("validation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationScore))
	builder.WriteString(", ")
	builder.WriteString("was_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasCorrected))
	builder.WriteByte(')')
	return builder.String()
}

// MCQRecords is a parsable slice of MCQRecord.
type MCQRecords []*MCQRecord
