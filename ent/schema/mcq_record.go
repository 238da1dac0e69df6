package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MCQRecord stores one assembled multiple-choice question.
type MCQRecord struct {
	ent.Schema
}

func (MCQRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MCQRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("question_number").
			Default(0).
			Comment("1-based position within the run's surviving questions"),
		field.String("question_id").
			Unique().
			NotEmpty(),
		field.String("concept_name").
			Default(""),
		field.String("difficulty").
			Default(""),
		field.Text("stem").
			NotEmpty(),
		field.JSON("options", map[string]string{}).
			Comment("Letter to option text"),
		field.String("correct_letter").
			NotEmpty(),
		field.JSON("explanations", map[string]string{}).
			Optional().
			Comment("Letter to per-option explanation, when enabled"),
		field.Float("validation_score").
			Default(0).
			Comment("Confidence from the validation method that passed"),
		field.Bool("was_corrected").
			Default(false).
			Comment("Answer was recomputed during validation"),
	}
}

func (MCQRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
