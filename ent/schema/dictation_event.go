package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DictationEvent records that a word or sentence was spoken aloud.
type DictationEvent struct {
	ent.Schema
}

func (DictationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DictationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").NotEmpty(),
		field.Int("question_id"),
		field.String("text").
			NotEmpty().
			Comment("What was sent to the speech engine, post-sanitization"),
		field.String("kind").
			NotEmpty().
			Comment("blank, literal, or sentence"),
	}
}

func (DictationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
