package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/tutoriz/internal/spacedrep"
	"github.com/abhisek/tutoriz/internal/topics"
)

var planNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func sched(t topics.Topic, strength float64, dueOffsetDays int) spacedrep.Schedule {
	return spacedrep.Schedule{
		Topic:        t,
		Strength:     strength,
		EaseFactor:   spacedrep.DefaultEaseFactor,
		IntervalDays: 1,
		LastReviewed: planNow.AddDate(0, 0, dueOffsetDays-1),
		NextReview:   planNow.AddDate(0, 0, dueOffsetDays),
	}
}

func TestBuildPlan_MostOverdueFirst(t *testing.T) {
	schedules := []spacedrep.Schedule{
		sched(topics.TopicCalculus, 0.9, -1),
		sched(topics.TopicGeometry, 0.9, -5),
		sched(topics.TopicTrigonometry, 0.9, -3),
	}

	plan := BuildPlan(schedules, Request{Count: 2, Now: planNow, Seed: 1})

	if len(plan.Slots) != 2 {
		t.Fatalf("len(Slots) = %d, want 2", len(plan.Slots))
	}
	if plan.Slots[0].Topic != topics.TopicGeometry {
		t.Errorf("first slot = %s, want most overdue (geometry)", plan.Slots[0].Topic)
	}
	if plan.Slots[0].Reason != ReasonDue {
		t.Errorf("first slot reason = %s, want due", plan.Slots[0].Reason)
	}
}

func TestBuildPlan_DueCappedAtHalf(t *testing.T) {
	var schedules []spacedrep.Schedule
	for i, topic := range topics.All()[:6] {
		schedules = append(schedules, sched(topic, 0.9, -(i + 1)))
	}

	plan := BuildPlan(schedules, Request{Count: 4, Now: planNow, Seed: 1})

	due := 0
	for _, s := range plan.Slots {
		if s.Reason == ReasonDue {
			due++
		}
	}
	if due > 2 {
		t.Errorf("due slots = %d, want at most half of 4", due)
	}
}

func TestBuildPlan_WeakestFirst(t *testing.T) {
	schedules := []spacedrep.Schedule{
		sched(topics.TopicCalculus, 0.5, 5),
		sched(topics.TopicGeometry, 0.2, 5),
		sched(topics.TopicTrigonometry, 0.9, 5),
	}

	plan := BuildPlan(schedules, Request{Count: 2, Now: planNow, Seed: 1})

	if len(plan.Slots) != 2 {
		t.Fatalf("len(Slots) = %d, want 2", len(plan.Slots))
	}
	if plan.Slots[0].Topic != topics.TopicGeometry || plan.Slots[0].Reason != ReasonWeak {
		t.Errorf("first slot = %+v, want weakest topic (geometry)", plan.Slots[0])
	}
	if plan.Slots[1].Topic != topics.TopicCalculus {
		t.Errorf("second slot = %s, want calculus (strength 0.5)", plan.Slots[1].Topic)
	}
}

func TestBuildPlan_StrongTopicsNotWeakFill(t *testing.T) {
	schedules := []spacedrep.Schedule{
		sched(topics.TopicCalculus, 0.95, 5),
	}
	plan := BuildPlan(schedules, Request{Count: 3, Now: planNow, Seed: 1})
	for _, s := range plan.Slots {
		if s.Topic == topics.TopicCalculus && s.Reason == ReasonWeak {
			t.Error("strength 0.95 must not be selected as weak")
		}
	}
}

func TestBuildPlan_ExcludesInterferingWithRecent(t *testing.T) {
	// Candidates linear and systems share a group with recent topics;
	// only calculus should survive the filter.
	schedules := []spacedrep.Schedule{
		sched(topics.TopicLinearEquations, 0.3, -1),
		sched(topics.TopicSystemsOfEquations, 0.3, -1),
		sched(topics.TopicCalculus, 0.3, -1),
	}
	recent := []topics.Topic{topics.TopicLinearEquations, topics.TopicQuadraticEquations}

	plan := BuildPlan(schedules, Request{Count: 1, Now: planNow, Seed: 1, RecentTopics: recent})

	if len(plan.Slots) != 1 {
		t.Fatalf("len(Slots) = %d, want 1", len(plan.Slots))
	}
	if plan.Slots[0].Topic != topics.TopicCalculus {
		t.Errorf("slot = %s, want calculus (others interfere with recents)", plan.Slots[0].Topic)
	}
}

func TestBuildPlan_InterferenceWaivedWhenNothingElse(t *testing.T) {
	schedules := []spacedrep.Schedule{
		sched(topics.TopicLinearEquations, 0.3, -1),
	}
	recent := []topics.Topic{topics.TopicQuadraticEquations}

	plan := BuildPlan(schedules, Request{Count: 1, Now: planNow, Seed: 1, RecentTopics: recent})

	if len(plan.Slots) == 0 {
		t.Fatal("expected the filter to be waived when no clean candidates exist")
	}
}

func TestBuildPlan_SpacingBetweenSameGroup(t *testing.T) {
	schedules := []spacedrep.Schedule{
		sched(topics.TopicLinearEquations, 0.1, 5),
		sched(topics.TopicQuadraticEquations, 0.2, 5),
		sched(topics.TopicCalculus, 0.3, 5),
		sched(topics.TopicGeometry, 0.4, 5),
	}

	plan := BuildPlan(schedules, Request{Count: 4, Now: planNow, Seed: 1})

	positions := map[topics.Topic]int{}
	for i, s := range plan.Slots {
		positions[s.Topic] = i
	}
	li, lok := positions[topics.TopicLinearEquations]
	qi, qok := positions[topics.TopicQuadraticEquations]
	if lok && qok {
		dist := qi - li
		if dist < 0 {
			dist = -dist
		}
		if dist < DefaultMinSpacing {
			t.Errorf("same-group topics %d apart, want >= %d", dist, DefaultMinSpacing)
		}
	}
}

func TestBuildPlan_VarietyFillsShortfall(t *testing.T) {
	plan := BuildPlan(nil, Request{Count: 3, Now: planNow, Seed: 1})

	if len(plan.Slots) != 3 {
		t.Fatalf("len(Slots) = %d, want 3 from variety fill", len(plan.Slots))
	}
	for _, s := range plan.Slots {
		if s.Reason != ReasonVariety {
			t.Errorf("slot %s reason = %s, want variety", s.Topic, s.Reason)
		}
	}
}

func TestBuildPlan_NoDuplicates(t *testing.T) {
	schedules := []spacedrep.Schedule{
		sched(topics.TopicCalculus, 0.1, -2), // both due and weak
	}
	plan := BuildPlan(schedules, Request{Count: 5, Now: planNow, Seed: 1})

	seen := map[topics.Topic]bool{}
	for _, s := range plan.Slots {
		if seen[s.Topic] {
			t.Errorf("topic %s appears twice", s.Topic)
		}
		seen[s.Topic] = true
	}
}

func TestBuildPlan_DeterministicForSeed(t *testing.T) {
	a := BuildPlan(nil, Request{Count: 6, Now: planNow, Seed: 42})
	b := BuildPlan(nil, Request{Count: 6, Now: planNow, Seed: 42})
	if !reflect.DeepEqual(a.Topics(), b.Topics()) {
		t.Error("same seed must produce the same plan")
	}

	c := BuildPlan(nil, Request{Count: 6, Now: planNow, Seed: 43})
	if reflect.DeepEqual(a.Topics(), c.Topics()) {
		t.Log("different seeds produced the same order (possible but unlikely)")
	}
}

func TestBuildPlan_CountNeverExceeded(t *testing.T) {
	var schedules []spacedrep.Schedule
	for i, topic := range topics.All() {
		schedules = append(schedules, sched(topic, 0.1, -i))
	}
	plan := BuildPlan(schedules, Request{Count: 4, Now: planNow, Seed: 9})
	if len(plan.Slots) > 4 {
		t.Errorf("len(Slots) = %d, want <= 4", len(plan.Slots))
	}
}
