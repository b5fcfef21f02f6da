package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// SequencedEvent is the mixin shared by every event table. Each event
// carries its position in the global append-only log plus the time it
// was recorded; ordering always follows the sequence, never the clock.
// The unique constraint on sequence doubles as its lookup index.
type SequencedEvent struct {
	mixin.Schema
}

func (SequencedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the global event log"),
		field.Time("recorded_at").
			Immutable().
			Default(func() time.Time { return time.Now().UTC() }).
			Comment("When the event was appended"),
	}
}
