package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptRecord stores one extracted concept, tied to its session.
type ConceptRecord struct {
	ent.Schema
}

func (ConceptRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ConceptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("concept_id").
			Default("").
			Comment("Stable slug derived from the name"),
		field.String("name").
			NotEmpty().
			Comment("Short name of the technique or formula"),
		field.Text("formula").
			NotEmpty().
			Comment("Key formula in LaTeX"),
		field.String("difficulty").
			Comment("easy, medium, or hard"),
		field.Text("context").
			Default("").
			Comment("When the technique applies"),
		field.JSON("prerequisites", []string{}).
			Optional().
			Comment("Names of concepts a student must know first"),
		field.Text("worked_example").
			Default("").
			Comment("Short worked application in LaTeX, when available"),
	}
}

func (ConceptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
