package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records that a hint was shown to the student.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SequencedEvent{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("problem_text").NotEmpty(),
		field.String("hint_text").NotEmpty(),
		field.Int("level").
			Comment("Escalation level 1-3"),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
