// Package engine glues the pure scheduling algorithms to persistence.
// The host calls it between dialogue turns; everything underneath it
// (mastery, topics, spacedrep, session, hints) stays side-effect-free.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutoriz/internal/hints"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/spacedrep"
	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/topics"
)

const (
	// snapshotVersion tags persisted schedule snapshots.
	snapshotVersion = 1

	// recentLevelWindow is how many recent attempts feed tier classification.
	recentLevelWindow = 20

	// recentTopicWindow is how many recent attempt topics count as
	// "recently practiced" for interference filtering.
	recentTopicWindow = 3

	// snapshotsToKeep bounds snapshot table growth.
	snapshotsToKeep = 10
)

// Options configures a Service.
type Options struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo

	// Classifier is the topic classifier. May be nil for keyword-only
	// classification.
	Classifier *topics.Classifier

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Service orchestrates attempt recording, session planning, and the
// per-turn hint state machine against the event store.
type Service struct {
	events     store.EventRepo
	snapshots  store.SnapshotRepo
	classifier *topics.Classifier
	now        func() time.Time
}

// New creates a Service.
func New(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		events:     opts.Events,
		snapshots:  opts.Snapshots,
		classifier: opts.Classifier,
		now:        now,
	}
}

// AttemptResult is the outcome of recording one attempt.
type AttemptResult struct {
	Topic    topics.Topic
	Level    mastery.Level
	Schedule spacedrep.Schedule
}

// SessionPlan is a practice plan bound to a session ID.
type SessionPlan struct {
	SessionID string
	Plan      session.Plan
}

// ClassifyProblem returns the topic for problem text, using the
// semantic path with keyword fallback when configured.
func (s *Service) ClassifyProblem(ctx context.Context, text string) topics.Result {
	return s.classifier.Classify(ctx, text)
}

// RecordAttempt classifies one completed attempt, advances its topic
// schedule, and persists both. sessionID may be empty for attempts
// outside a planned session.
func (s *Service) RecordAttempt(ctx context.Context, sessionID string, attempt mastery.Attempt) (*AttemptResult, error) {
	level := mastery.Classify(attempt)
	topic := s.ClassifyProblem(ctx, attempt.ProblemText).Topic
	now := s.now()

	schedules, err := s.loadSchedules(ctx)
	if err != nil {
		return nil, err
	}

	prev := findSchedule(schedules, topic)
	if prev == nil {
		tier, err := s.classifyTier(ctx, schedules)
		if err != nil {
			return nil, err
		}
		prev = spacedrep.SeedSchedule(topic, tier)
	}

	next := spacedrep.NextSchedule(prev, topic, level, now)

	attemptData := store.AttemptEventData{
		Topic:         string(topic),
		ProblemText:   attempt.ProblemText,
		TurnsTaken:    attempt.TurnsTaken,
		StepCount:     attempt.StepCount,
		ApproachIndex: attempt.ApproachIndex,
		Level:         string(level),
		SessionID:     sessionID,
	}
	if attempt.Struggle != nil {
		attemptData.HintsRequested = attempt.Struggle.HintsRequested
		attemptData.IncorrectAttempts = attempt.Struggle.IncorrectAttempts
		attemptData.ClarificationRequests = attempt.Struggle.ClarificationRequests
	}
	if err := s.events.AppendAttemptEvent(ctx, attemptData); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	if err := s.events.AppendReviewEvent(ctx, store.ReviewEventData{
		Topic:        string(topic),
		Quality:      spacedrep.QualityFor(level),
		EaseFactor:   next.EaseFactor,
		IntervalDays: next.IntervalDays,
		Strength:     next.Strength,
		NextReview:   next.NextReview,
	}); err != nil {
		return nil, fmt.Errorf("record review: %w", err)
	}

	schedules = upsertSchedule(schedules, next)
	if err := s.saveSchedules(ctx, schedules); err != nil {
		return nil, err
	}

	return &AttemptResult{Topic: topic, Level: level, Schedule: next}, nil
}

// PlanSession builds a practice plan from the current schedules and
// records the session start. seed drives the variety shuffle;
// production callers pass a time-derived value.
func (s *Service) PlanSession(ctx context.Context, count int, seed int64) (*SessionPlan, error) {
	schedules, err := s.loadSchedules(ctx)
	if err != nil {
		return nil, err
	}

	recentRaw, err := s.events.RecentAttemptTopics(ctx, recentTopicWindow)
	if err != nil {
		return nil, fmt.Errorf("load recent topics: %w", err)
	}
	recent := make([]topics.Topic, 0, len(recentRaw))
	for _, t := range recentRaw {
		recent = append(recent, topics.Topic(t))
	}

	plan := session.BuildPlan(schedules, session.Request{
		Count:        count,
		Now:          s.now(),
		Seed:         seed,
		RecentTopics: recent,
	})

	id := uuid.NewString()

	summary := make([]store.PlanSlot, 0, len(plan.Slots))
	for _, slot := range plan.Slots {
		summary = append(summary, store.PlanSlot{
			Topic:  string(slot.Topic),
			Reason: string(slot.Reason),
		})
	}
	if err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:   id,
		Action:      "start",
		PlanSummary: summary,
	}); err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}

	return &SessionPlan{SessionID: id, Plan: plan}, nil
}

// EndSession records the end of a practice session.
func (s *Service) EndSession(ctx context.Context, sessionID string, problemsServed, durationSecs int) error {
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      sessionID,
		Action:         "end",
		ProblemsServed: problemsServed,
		DurationSecs:   durationSecs,
	})
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}
	return nil
}

// AdvanceTurn applies one dialogue turn to the hint state. It returns
// the next state and the hint to show ("" when none). Newly escalated
// hints are recorded as events.
func (s *Service) AdvanceTurn(ctx context.Context, sessionID string, st hints.State, ev hints.TurnEvent, outline *hints.Outline) (hints.State, string, error) {
	next := hints.Advance(st, ev, outline)

	hint := next.CurrentHint(outline)
	if hint != "" && next.HintsShown > st.HintsShown {
		topic := topics.ClassifyText(outlineProblemText(outline)).Topic
		err := s.events.AppendHintEvent(ctx, store.HintEventData{
			SessionID:   sessionID,
			Topic:       string(topic),
			ProblemText: outlineProblemText(outline),
			HintText:    hint,
			Level:       next.EffectiveLevel(),
		})
		if err != nil {
			return next, hint, fmt.Errorf("record hint: %w", err)
		}
	}

	return next, hint, nil
}

// CompleteProblem converts a finished hint state into an attempt and
// records it.
func (s *Service) CompleteProblem(ctx context.Context, sessionID string, st hints.State, outline *hints.Outline, incorrectAttempts, clarifications int) (*AttemptResult, error) {
	return s.RecordAttempt(ctx, sessionID, st.Outcome(outline, incorrectAttempts, clarifications))
}

// Schedules returns the current topic schedules, most recently
// snapshotted state first restored.
func (s *Service) Schedules(ctx context.Context) ([]spacedrep.Schedule, error) {
	return s.loadSchedules(ctx)
}

func (s *Service) classifyTier(ctx context.Context, schedules []spacedrep.Schedule) (spacedrep.Tier, error) {
	raw, err := s.events.RecentLevels(ctx, recentLevelWindow)
	if err != nil {
		return spacedrep.TierAverage, fmt.Errorf("load recent levels: %w", err)
	}
	levels := make([]mastery.Level, 0, len(raw))
	for _, l := range raw {
		levels = append(levels, mastery.Level(l))
	}
	return spacedrep.ClassifyTier(schedules, levels), nil
}

func (s *Service) loadSchedules(ctx context.Context) ([]spacedrep.Schedule, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	return spacedrep.FromSnapshot(snap.Data.Schedules), nil
}

func (s *Service) saveSchedules(ctx context.Context, schedules []spacedrep.Schedule) error {
	seq, err := s.events.CurrentSequence(ctx)
	if err != nil {
		return fmt.Errorf("current sequence: %w", err)
	}

	err = s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: s.now(),
		Data: store.SnapshotData{
			Version:   snapshotVersion,
			Schedules: spacedrep.ToSnapshot(schedules),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return s.snapshots.Prune(ctx, snapshotsToKeep)
}

func findSchedule(schedules []spacedrep.Schedule, topic topics.Topic) *spacedrep.Schedule {
	for i := range schedules {
		if schedules[i].Topic == topic {
			return &schedules[i]
		}
	}
	return nil
}

func upsertSchedule(schedules []spacedrep.Schedule, next spacedrep.Schedule) []spacedrep.Schedule {
	for i := range schedules {
		if schedules[i].Topic == next.Topic {
			schedules[i] = next
			return schedules
		}
	}
	return append(schedules, next)
}

func outlineProblemText(o *hints.Outline) string {
	if o == nil {
		return ""
	}
	return o.ProblemText
}
