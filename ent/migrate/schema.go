// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "problem_text", Type: field.TypeString},
		{Name: "turns_taken", Type: field.TypeInt},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "approach_index", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeString},
		{Name: "hints_requested", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_attempts", Type: field.TypeInt, Default: 0},
		{Name: "clarification_requests", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[12]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "problem_text", Type: field.TypeString},
		{Name: "hint_text", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
			{
				Name:    "hintevent_topic",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[4]},
			},
		},
	}
	// LlmCallEventsColumns holds the columns for the "llm_call_events" table.
	LlmCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmCallEventsTable holds the schema information for the "llm_call_events" table.
	LlmCallEventsTable = &schema.Table{
		Name:       "llm_call_events",
		Columns:    LlmCallEventsColumns,
		PrimaryKey: []*schema.Column{LlmCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcallevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[3]},
			},
			{
				Name:    "llmcallevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[5]},
			},
			{
				Name:    "llmcallevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[9]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "strength", Type: field.TypeFloat64},
		{Name: "next_review", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_topic",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "problems_served", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "plan_summary", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		HintEventsTable,
		LlmCallEventsTable,
		ReviewEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
