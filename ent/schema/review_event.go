package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one spaced-repetition schedule update.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SequencedEvent{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").NotEmpty(),
		field.Int("quality").
			Comment("SM-2 quality rating 0-5"),
		field.Float("ease_factor").
			Comment("Ease factor after the update"),
		field.Int("interval_days").
			Comment("Interval after the update"),
		field.Float("strength").
			Comment("Retention strength after the update"),
		field.Time("next_review").
			Comment("When the topic is next due"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
