package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed problem attempt and its mastery
// classification.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SequencedEvent{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Topic the problem was classified under"),
		field.String("problem_text").
			NotEmpty().
			Comment("The problem as shown to the student"),
		field.Int("turns_taken").
			Comment("Dialogue turns to completion"),
		field.Int("step_count").
			Default(0).
			Comment("Steps in the approach used, 0 when unknown"),
		field.Int("approach_index").
			Default(0).
			Comment("Which solution approach was followed"),
		field.String("level").
			NotEmpty().
			Comment("mastered, competent, or struggling"),
		field.Int("hints_requested").
			Default(0),
		field.Int("incorrect_attempts").
			Default(0),
		field.Int("clarification_requests").
			Default(0),
		field.String("session_id").
			Optional().
			Comment("Practice session this attempt belonged to"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("session_id"),
	}
}
