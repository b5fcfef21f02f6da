package store

import (
	"context"
	"time"

	"github.com/abhisek/tutoriz/internal/llm"
)

// AttemptEventData captures one completed problem attempt.
type AttemptEventData struct {
	Topic                 string
	ProblemText           string
	TurnsTaken            int
	StepCount             int
	ApproachIndex         int
	Level                 string
	HintsRequested        int
	IncorrectAttempts     int
	ClarificationRequests int
	SessionID             string
}

// ReviewEventData captures one spaced-repetition schedule update.
type ReviewEventData struct {
	Topic        string
	Quality      int
	EaseFactor   float64
	IntervalDays int
	Strength     float64
	NextReview   time.Time
}

// PlanSlot is the serialized form of one session plan entry.
type PlanSlot struct {
	Topic  string
	Reason string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string // "start" or "end"
	ProblemsServed int
	DurationSecs   int
	PlanSummary    []PlanSlot
}

// HintEventData captures a hint shown to the student.
type HintEventData struct {
	SessionID   string
	Topic       string
	ProblemText string
	HintText    string
	Level       int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records a completed, classified attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendReviewEvent records a schedule update.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendHintEvent records a hint shown to the student.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// AppendLLMCall records an LLM API call. Satisfies llm.CallRecorder.
	AppendLLMCall(ctx context.Context, rec llm.CallRecord) error

	// RecentAttemptLevels returns the mastery levels of the last N
	// attempts on a topic, most recent first.
	RecentAttemptLevels(ctx context.Context, topic string, lastN int) ([]string, error)

	// AttemptCount returns the total number of attempts on a topic.
	AttemptCount(ctx context.Context, topic string) (int, error)

	// RecentAttemptTopics returns the topics of the last N attempts
	// across all topics, most recent first, with duplicates preserved.
	RecentAttemptTopics(ctx context.Context, lastN int) ([]string, error)

	// RecentLevels returns the mastery levels of the last N attempts
	// across all topics, most recent first.
	RecentLevels(ctx context.Context, lastN int) ([]string, error)

	// CurrentSequence returns the highest sequence number assigned so far.
	CurrentSequence(ctx context.Context) (int64, error)
}

// ScheduleData is the persisted form of one topic schedule.
type ScheduleData struct {
	Topic        string  `json:"topic"`
	Strength     float64 `json:"strength"`
	ReviewCount  int     `json:"review_count"`
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
	LastReviewed string  `json:"last_reviewed"` // RFC 3339
	NextReview   string  `json:"next_review"`   // RFC 3339
}

// ScheduleSnapshotData holds all topic schedules, keyed by topic.
type ScheduleSnapshotData struct {
	Schedules map[string]*ScheduleData `json:"schedules"`
}

// SnapshotData captures the full scheduling state at a point in time.
type SnapshotData struct {
	Version   int                   `json:"version"`
	Schedules *ScheduleSnapshotData `json:"schedules,omitempty"`
}

// Snapshot represents a point-in-time capture of scheduling state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages scheduling state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
