package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RevealEvent records that a masked word was uncovered before submission.
type RevealEvent struct {
	ent.Schema
}

func (RevealEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RevealEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").NotEmpty(),
		field.Int("question_id"),
		field.Int("hint_index").
			Comment("Position of the blank within the question's hint list"),
		field.String("word").
			NotEmpty().
			Comment("The word that was uncovered"),
	}
}

func (RevealEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("question_id"),
	}
}
