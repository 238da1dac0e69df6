package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationSession records one pipeline run over a piece of source
// material, from extraction through assembly.
type GenerationSession struct {
	ent.Schema
}

func (GenerationSession) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// DropSummary is the serialized form of a dropped question for persistence.
type DropSummary struct {
	QuestionID string `json:"question_id"`
	Stage      string `json:"stage"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

func (GenerationSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID grouping all records of one run"),
		field.String("source_name").
			NotEmpty().
			Comment("Name of the source material"),
		field.String("phase").
			Comment("Final pipeline phase: done or failed"),
		field.Int("concepts_extracted").
			Default(0),
		field.Int("questions_generated").
			Default(0),
		field.Int("questions_validated").
			Default(0),
		field.Int("answers_corrected").
			Default(0),
		field.Int("questions_dropped").
			Default(0),
		field.Int("mcq_count").
			Default(0).
			Comment("Assembled questions persisted for this run"),
		field.JSON("drops", []DropSummary{}).
			Optional().
			Comment("Questions removed during the run and why"),
		field.JSON("difficulty_distribution", map[string]int{}).
			Optional().
			Comment("Difficulty level to count of assembled questions"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Total run time"),
	}
}

func (GenerationSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("source_name"),
	}
}
