package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures the full scheduling state at a point in time,
// enabling fast restore without replaying the entire event log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Log position the snapshot covers; newest snapshot = highest sequence"),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Comment("When the snapshot was taken, informational only"),
		field.JSON("data", map[string]any{}).
			Comment("Full scheduling state as JSON"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
	}
}
