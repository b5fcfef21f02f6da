package engine

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/tutoriz/internal/hints"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/topics"
)

var engineNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

// mockEventRepo is an in-memory store.EventRepo.
type mockEventRepo struct {
	attempts []store.AttemptEventData
	reviews  []store.ReviewEventData
	sessions []store.SessionEventData
	hints    []store.HintEventData
	llmCalls []llm.CallRecord

	recentLevels []string
	recentTopics []string
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	m.reviews = append(m.reviews, data)
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *mockEventRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	m.hints = append(m.hints, data)
	return nil
}

func (m *mockEventRepo) AppendLLMCall(_ context.Context, rec llm.CallRecord) error {
	m.llmCalls = append(m.llmCalls, rec)
	return nil
}

func (m *mockEventRepo) RecentAttemptLevels(_ context.Context, topic string, lastN int) ([]string, error) {
	return nil, nil
}

func (m *mockEventRepo) AttemptCount(_ context.Context, topic string) (int, error) {
	return len(m.attempts), nil
}

func (m *mockEventRepo) RecentAttemptTopics(_ context.Context, lastN int) ([]string, error) {
	if len(m.recentTopics) > lastN {
		return m.recentTopics[:lastN], nil
	}
	return m.recentTopics, nil
}

func (m *mockEventRepo) RecentLevels(_ context.Context, lastN int) ([]string, error) {
	if len(m.recentLevels) > lastN {
		return m.recentLevels[:lastN], nil
	}
	return m.recentLevels, nil
}

func (m *mockEventRepo) CurrentSequence(_ context.Context) (int64, error) {
	return int64(len(m.attempts) + len(m.reviews) + len(m.sessions) + len(m.hints)), nil
}

// mockSnapshotRepo is an in-memory store.SnapshotRepo.
type mockSnapshotRepo struct {
	latest *store.Snapshot
	saves  int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.latest = snap
	m.saves++
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return m.latest, nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	return nil
}

func newTestService(events *mockEventRepo, snaps *mockSnapshotRepo) *Service {
	return New(Options{
		Events:    events,
		Snapshots: snaps,
		Now:       func() time.Time { return engineNow },
	})
}

func scheduleData(topic string, strength, ease float64, intervalDays, reviewCount int) *store.ScheduleData {
	return &store.ScheduleData{
		Topic:        topic,
		Strength:     strength,
		ReviewCount:  reviewCount,
		EaseFactor:   ease,
		IntervalDays: intervalDays,
		LastReviewed: engineNow.AddDate(0, 0, -1).Format(time.RFC3339),
		NextReview:   engineNow.Format(time.RFC3339),
	}
}

func snapshotWith(schedules ...*store.ScheduleData) *store.Snapshot {
	data := &store.ScheduleSnapshotData{Schedules: map[string]*store.ScheduleData{}}
	for _, sd := range schedules {
		data.Schedules[sd.Topic] = sd
	}
	return &store.Snapshot{
		Timestamp: engineNow.AddDate(0, 0, -1),
		Data:      store.SnapshotData{Version: 1, Schedules: data},
	}
}

func TestRecordAttempt_NewTopicGetsAverageSeed(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	svc := newTestService(events, snaps)

	res, err := svc.RecordAttempt(context.Background(), "", mastery.Attempt{
		ProblemText: "Solve for x: 2x + 3 = 11",
		TurnsTaken:  4,
		StepCount:   2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Topic != topics.TopicLinearEquations {
		t.Errorf("topic = %s, want linear-equations", res.Topic)
	}
	if res.Level != mastery.LevelMastered {
		t.Errorf("level = %s, want mastered", res.Level)
	}
	// Average seed: interval 1, ease 2.5. After one mastered review:
	// interval stays 1 (first success), ease 2.6.
	if res.Schedule.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", res.Schedule.IntervalDays)
	}
	if res.Schedule.EaseFactor != 2.6 {
		t.Errorf("ease = %v, want 2.6", res.Schedule.EaseFactor)
	}
	if res.Schedule.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", res.Schedule.ReviewCount)
	}

	if len(events.attempts) != 1 || len(events.reviews) != 1 {
		t.Fatalf("events = %d attempts, %d reviews, want 1 each",
			len(events.attempts), len(events.reviews))
	}
	if events.attempts[0].Level != "mastered" {
		t.Errorf("attempt event level = %q, want mastered", events.attempts[0].Level)
	}
	if events.reviews[0].Quality != 5 {
		t.Errorf("review quality = %d, want 5", events.reviews[0].Quality)
	}
	if snaps.saves != 1 {
		t.Errorf("snapshot saves = %d, want 1", snaps.saves)
	}
}

func TestRecordAttempt_HighPerformerSeedsLongerInterval(t *testing.T) {
	events := &mockEventRepo{
		recentLevels: []string{"mastered", "mastered", "mastered", "mastered", "mastered", "competent"},
	}
	snaps := &mockSnapshotRepo{
		latest: snapshotWith(
			scheduleData("geometry", 0.9, 2.7, 6, 2),
			scheduleData("calculus", 0.8, 2.6, 6, 2),
		),
	}
	svc := newTestService(events, snaps)

	res, err := svc.RecordAttempt(context.Background(), "", mastery.Attempt{
		ProblemText: "Solve for x: 2x + 3 = 11",
		TurnsTaken:  4,
		StepCount:   2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// High-performer seed: interval 3, ease 2.8. First success keeps
	// the seeded interval; ease rises to 2.9.
	if res.Schedule.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3 (high-performer seed)", res.Schedule.IntervalDays)
	}
	if res.Schedule.EaseFactor != 2.9 {
		t.Errorf("ease = %v, want 2.9", res.Schedule.EaseFactor)
	}
}

func TestRecordAttempt_ExistingTopicAdvancesLadder(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{
		latest: snapshotWith(scheduleData("linear-equations", 0.65, 2.6, 1, 1)),
	}
	svc := newTestService(events, snaps)

	res, err := svc.RecordAttempt(context.Background(), "", mastery.Attempt{
		ProblemText: "Solve for x: 2x + 3 = 11",
		TurnsTaken:  4,
		StepCount:   2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Schedule.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2", res.Schedule.ReviewCount)
	}
	if res.Schedule.IntervalDays != 6 {
		t.Errorf("interval = %d, want 6 (second success)", res.Schedule.IntervalDays)
	}

	// The snapshot must carry the updated schedule.
	sd := snaps.latest.Data.Schedules.Schedules["linear-equations"]
	if sd == nil {
		t.Fatal("expected linear-equations in saved snapshot")
	}
	if sd.IntervalDays != 6 {
		t.Errorf("persisted interval = %d, want 6", sd.IntervalDays)
	}
}

func TestPlanSession_RecordsStartWithSummary(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{
		latest: snapshotWith(
			scheduleData("linear-equations", 0.3, 2.5, 1, 1),
			scheduleData("geometry", 0.9, 2.5, 6, 2),
		),
	}
	svc := newTestService(events, snaps)

	sp, err := svc.PlanSession(context.Background(), 3, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sp.SessionID == "" {
		t.Error("expected a session ID")
	}
	if len(sp.Plan.Slots) == 0 {
		t.Fatal("expected a non-empty plan")
	}
	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	ev := events.sessions[0]
	if ev.Action != "start" || ev.SessionID != sp.SessionID {
		t.Errorf("session event = %+v", ev)
	}
	if len(ev.PlanSummary) != len(sp.Plan.Slots) {
		t.Errorf("plan summary len = %d, want %d", len(ev.PlanSummary), len(sp.Plan.Slots))
	}
}

func TestPlanSession_DeterministicForSeed(t *testing.T) {
	mk := func() *Service {
		return newTestService(&mockEventRepo{}, &mockSnapshotRepo{})
	}

	a, err := mk().PlanSession(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := mk().PlanSession(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at, bt := a.Plan.Topics(), b.Plan.Topics()
	if len(at) != len(bt) {
		t.Fatalf("plan lengths differ: %d vs %d", len(at), len(bt))
	}
	for i := range at {
		if at[i] != bt[i] {
			t.Errorf("slot %d: %s vs %s", i, at[i], bt[i])
		}
	}
}

func TestEndSession(t *testing.T) {
	events := &mockEventRepo{}
	svc := newTestService(events, &mockSnapshotRepo{})

	if err := svc.EndSession(context.Background(), "sess-1", 4, 900); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	ev := events.sessions[0]
	if ev.Action != "end" || ev.ProblemsServed != 4 || ev.DurationSecs != 900 {
		t.Errorf("session event = %+v", ev)
	}
}

func testEngineOutline() *hints.Outline {
	return &hints.Outline{
		ProblemText: "Solve for x: 2x + 3 = 11",
		Approaches: []hints.Approach{
			{
				Name: "isolate x",
				Steps: []hints.Step{
					{
						Action:    "Subtract 3 from both sides",
						Reasoning: "Isolate the term with x",
						Hints:     [hints.HintLevels]string{"What undoes +3?", "Subtract 3", "2x = 8"},
					},
				},
			},
		},
	}
}

func TestAdvanceTurn_LogsEscalatedHint(t *testing.T) {
	events := &mockEventRepo{}
	svc := newTestService(events, &mockSnapshotRepo{})
	outline := testEngineOutline()

	st, hint, err := svc.AdvanceTurn(context.Background(), "sess-1", hints.State{},
		hints.TurnEvent{Text: "I'm stuck"}, outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hint != "What undoes +3?" {
		t.Errorf("hint = %q, want the level-1 hint", hint)
	}
	if len(events.hints) != 1 {
		t.Fatalf("hint events = %d, want 1", len(events.hints))
	}
	if events.hints[0].Topic != "linear-equations" || events.hints[0].Level != 1 {
		t.Errorf("hint event = %+v", events.hints[0])
	}

	// Same level next turn: hint still shown, no new event.
	_, hint, err = svc.AdvanceTurn(context.Background(), "sess-1", st,
		hints.TurnEvent{Text: "let me think"}, outline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hint != "What undoes +3?" {
		t.Errorf("hint = %q, want the level-1 hint again", hint)
	}
	if len(events.hints) != 1 {
		t.Errorf("hint events = %d, want still 1", len(events.hints))
	}
}

func TestCompleteProblem_RecordsOutcome(t *testing.T) {
	events := &mockEventRepo{}
	svc := newTestService(events, &mockSnapshotRepo{})
	outline := testEngineOutline()

	st := hints.State{TurnCount: 2, Completed: true}
	res, err := svc.CompleteProblem(context.Background(), "sess-1", st, outline, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Level != mastery.LevelMastered {
		t.Errorf("level = %s, want mastered (2 turns for 1 step)", res.Level)
	}
	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	if events.attempts[0].SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", events.attempts[0].SessionID)
	}
}
