package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded answer to a masked-sentence question.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Practice run this attempt belongs to"),
		field.Int("question_id").
			Comment("Server-side question id"),
		field.String("level").
			Comment("CEFR level of the question, may be empty"),
		field.String("topic").
			Comment("Topic label of the question, may be empty"),
		field.String("prompt_tr").
			NotEmpty().
			Comment("The Turkish prompt shown"),
		field.String("masked_en").
			NotEmpty().
			Comment("The masked English sentence"),
		field.String("user_answer").
			NotEmpty().
			Comment("What the learner submitted"),
		field.String("correct_answer").
			Comment("The canonical sentence returned by grading"),
		field.Bool("correct").
			Comment("Whether grading accepted the answer"),
		field.Float("similarity").
			Comment("Similarity score in [0,1]"),
		field.String("feedback").
			Comment("Raw feedback text from grading"),
		field.Bool("voice_input").
			Default(false).
			Comment("Whether recognized speech contributed to the answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
