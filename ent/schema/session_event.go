package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SequencedEvent{}}
}

// PlanSlotSummary is the serialized form of a plan slot for persistence.
type PlanSlotSummary struct {
	Topic  string `json:"topic"`
	Reason string `json:"reason"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("problems_served").
			Default(0).
			Comment("Total problems (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.JSON("plan_summary", []PlanSlotSummary{}).
			Optional().
			Comment("Serialized plan (on start only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
