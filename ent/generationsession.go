// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mcqgen/ent/generationsession"
	"github.com/abhisek/mcqgen/ent/schema"
)

// GenerationSession is the model entity for the GenerationSession schema.
type GenerationSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping all records of one run
	SessionID string `json:"session_id,omitempty"`
	// Name of the source material
	SourceName string `json:"source_name,omitempty"`
	// Final pipeline phase: done or failed
	Phase string `json:"phase,omitempty"`
	// ConceptsExtracted holds the value of the "concepts_extracted" field.
	ConceptsExtracted int `json:"concepts_extracted,omitempty"`
	// QuestionsGenerated holds the value of the "questions_generated" field.
	QuestionsGenerated int `json:"questions_generated,omitempty"`
	// QuestionsValidated holds the value of the "questions_validated" field.
	QuestionsValidated int `json:"questions_validated,omitempty"`
	// AnswersCorrected holds the value of the "answers_corrected" field.
	AnswersCorrected int `json:"answers_corrected,omitempty"`
	// QuestionsDropped holds the value of the "questions_dropped" field.
	QuestionsDropped int `json:"questions_dropped,omitempty"`
	// Assembled questions persisted for this run
	McqCount int `json:"mcq_count,omitempty"`
	// Questions removed during the run and why
	Drops []schema.DropSummary `json:"drops,omitempty"`
	// Difficulty level to count of assembled questions
	DifficultyDistribution map[string]int `json:"difficulty_distribution,omitempty"`
	// Total run time
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationsession.FieldDrops, generationsession.FieldDifficultyDistribution:
			values[i] = new([]byte)
		case generationsession.FieldID, generationsession.FieldSequence, generationsession.FieldConceptsExtracted, generationsession.FieldQuestionsGenerated, generationsession.FieldQuestionsValidated, generationsession.FieldAnswersCorrected, generationsession.FieldQuestionsDropped, generationsession.FieldMcqCount, generationsession.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case generationsession.FieldSessionID, generationsession.FieldSourceName, generationsession.FieldPhase:
			values[i] = new(sql.NullString)
		case generationsession.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationSession fields.
func (_m *GenerationSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generationsession.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case generationsession.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case generationsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case generationsession.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case generationsession.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case generationsession.FieldConceptsExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_extracted", values[i])
			} else if value.Valid {
				_m.ConceptsExtracted = int(value.Int64)
			}
		case generationsession.FieldQuestionsGenerated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_generated", values[i])
			} else if value.Valid {
				_m.QuestionsGenerated = int(value.Int64)
			}
		case generationsession.FieldQuestionsValidated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_validated", values[i])
			} else if value.Valid {
				_m.QuestionsValidated = int(value.Int64)
			}
		case generationsession.FieldAnswersCorrected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answers_corrected", values[i])
			} else if value.Valid {
				_m.AnswersCorrected = int(value.Int64)
			}
		case generationsession.FieldQuestionsDropped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_dropped", values[i])
			} else if value.Valid {
				_m.QuestionsDropped = int(value.Int64)
			}
		case generationsession.FieldMcqCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mcq_count", values[i])
			} else if value.Valid {
				_m.McqCount = int(value.Int64)
			}
		case generationsession.FieldDrops:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field drops", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Drops); err != nil {
					return fmt.Errorf("unmarshal field drops: %w", err)
				}
			}
		case generationsession.FieldDifficultyDistribution:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_distribution", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DifficultyDistribution); err != nil {
					return fmt.Errorf("unmarshal field difficulty_distribution: %w", err)
				}
			}
		case generationsession.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationSession.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationSession.
// Note that you need to call GenerationSession.Unwrap() before calling this method if this GenerationSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationSession) Update() *GenerationSessionUpdateOne {
	return NewGenerationSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationSession) Unwrap() *GenerationSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationSession) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationSession(")
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
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("concepts_extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsExtracted))
	builder.WriteString(", ")
	builder.WriteString("questions_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsGenerated))
	builder.WriteString(", ")
	builder.WriteString("questions_validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsValidated))
	builder.WriteString(", ")
	builder.WriteString("answers_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswersCorrected))
	builder.WriteString(", ")
	builder.WriteString("questions_dropped=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsDropped))
	builder.WriteString(", ")
	builder.WriteString("mcq_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.McqCount))
	builder.WriteString(", ")
	builder.WriteString("drops=")
	builder.WriteString(fmt.Sprintf("%v", _m.Drops))
	builder.WriteString(", ")
	builder.WriteString("difficulty_distribution=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyDistribution))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationSessions is a parsable slice of GenerationSession.
type GenerationSessions []*GenerationSession
