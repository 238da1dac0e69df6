// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptRecordsColumns holds the columns for the "concept_records" table.
	ConceptRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "formula", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "context", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "worked_example", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// ConceptRecordsTable holds the schema information for the "concept_records" table.
	ConceptRecordsTable = &schema.Table{
		Name:       "concept_records",
		Columns:    ConceptRecordsColumns,
		PrimaryKey: []*schema.Column{ConceptRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{ConceptRecordsColumns[1]},
			},
			{
				Name:    "conceptrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ConceptRecordsColumns[2]},
			},
			{
				Name:    "conceptrecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptRecordsColumns[3]},
			},
		},
	}
	// GenerationSessionsColumns holds the columns for the "generation_sessions" table.
	GenerationSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "source_name", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "concepts_extracted", Type: field.TypeInt, Default: 0},
		{Name: "questions_generated", Type: field.TypeInt, Default: 0},
		{Name: "questions_validated", Type: field.TypeInt, Default: 0},
		{Name: "answers_corrected", Type: field.TypeInt, Default: 0},
		{Name: "questions_dropped", Type: field.TypeInt, Default: 0},
		{Name: "mcq_count", Type: field.TypeInt, Default: 0},
		{Name: "drops", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_distribution", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// GenerationSessionsTable holds the schema information for the "generation_sessions" table.
	GenerationSessionsTable = &schema.Table{
		Name:       "generation_sessions",
		Columns:    GenerationSessionsColumns,
		PrimaryKey: []*schema.Column{GenerationSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationsession_sequence",
				Unique:  false,
				Columns: []*schema.Column{GenerationSessionsColumns[1]},
			},
			{
				Name:    "generationsession_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationSessionsColumns[2]},
			},
			{
				Name:    "generationsession_session_id",
				Unique:  false,
				Columns: []*schema.Column{GenerationSessionsColumns[3]},
			},
			{
				Name:    "generationsession_source_name",
				Unique:  false,
				Columns: []*schema.Column{GenerationSessionsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// McqRecordsColumns holds the columns for the "mcq_records" table.
	McqRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_number", Type: field.TypeInt, Default: 0},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "concept_name", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_letter", Type: field.TypeString},
		{Name: "explanations", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_score", Type: field.TypeFloat64, Default: 0},
		{Name: "was_corrected", Type: field.TypeBool, Default: false},
	}
	// McqRecordsTable holds the schema information for the "mcq_records" table.
	McqRecordsTable = &schema.Table{
		Name:       "mcq_records",
		Columns:    McqRecordsColumns,
		PrimaryKey: []*schema.Column{McqRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mcqrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{McqRecordsColumns[1]},
			},
			{
				Name:    "mcqrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{McqRecordsColumns[2]},
			},
			{
				Name:    "mcqrecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{McqRecordsColumns[3]},
			},
			{
				Name:    "mcqrecord_question_id",
				Unique:  false,
				Columns: []*schema.Column{McqRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptRecordsTable,
		GenerationSessionsTable,
		LlmRequestEventsTable,
		McqRecordsTable,
	}
)

func init() {
}
