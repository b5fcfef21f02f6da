package spacedrep

import (
	"testing"

	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/topics"
)

func schedulesWithStrength(strengths ...float64) []Schedule {
	out := make([]Schedule, len(strengths))
	for i, s := range strengths {
		out[i] = Schedule{Topic: topics.All()[i%len(topics.All())], Strength: s}
	}
	return out
}

func levels(mastered, competent, struggling int) []mastery.Level {
	var out []mastery.Level
	for i := 0; i < mastered; i++ {
		out = append(out, mastery.LevelMastered)
	}
	for i := 0; i < competent; i++ {
		out = append(out, mastery.LevelCompetent)
	}
	for i := 0; i < struggling; i++ {
		out = append(out, mastery.LevelStruggling)
	}
	return out
}

func TestClassifyTier_HighPerformer(t *testing.T) {
	scheds := schedulesWithStrength(0.8, 0.9, 0.75)
	tier := ClassifyTier(scheds, levels(8, 2, 0)) // 80% mastered
	if tier != TierHighPerformer {
		t.Errorf("tier = %s, want high-performer", tier)
	}
}

func TestClassifyTier_StrugglingByStrength(t *testing.T) {
	scheds := schedulesWithStrength(0.3, 0.4, 0.45)
	tier := ClassifyTier(scheds, levels(3, 2, 1))
	if tier != TierStruggling {
		t.Errorf("tier = %s, want struggling (avg strength < 0.5)", tier)
	}
}

func TestClassifyTier_StrugglingByRecentShare(t *testing.T) {
	scheds := schedulesWithStrength(0.7, 0.7)
	tier := ClassifyTier(scheds, levels(1, 1, 4)) // 66% struggling
	if tier != TierStruggling {
		t.Errorf("tier = %s, want struggling (>50%% recent struggling)", tier)
	}
}

func TestClassifyTier_Average(t *testing.T) {
	scheds := schedulesWithStrength(0.6, 0.65, 0.7)
	tier := ClassifyTier(scheds, levels(3, 3, 1))
	if tier != TierAverage {
		t.Errorf("tier = %s, want average", tier)
	}
}

func TestClassifyTier_TooFewAttemptsIsAverage(t *testing.T) {
	// Even dismal history defaults to average below the attempt gate.
	scheds := schedulesWithStrength(0.1, 0.1)
	tier := ClassifyTier(scheds, levels(0, 0, 4))
	if tier != TierAverage {
		t.Errorf("tier = %s, want average below %d attempts", tier, MinAttemptsForTier)
	}
}

func TestClassifyTier_StrongStrengthButFewMastered(t *testing.T) {
	scheds := schedulesWithStrength(0.8, 0.85)
	tier := ClassifyTier(scheds, levels(3, 4, 0)) // 43% mastered
	if tier != TierAverage {
		t.Errorf("tier = %s, want average without 70%% mastered share", tier)
	}
}

func TestParamsForTier(t *testing.T) {
	tests := []struct {
		tier     Tier
		interval int
		ease     float64
	}{
		{TierHighPerformer, 3, 2.8},
		{TierAverage, 1, 2.5},
		{TierStruggling, 1, 2.3},
		{Tier("bogus"), 1, 2.5},
	}
	for _, tt := range tests {
		p := ParamsForTier(tt.tier)
		if p.IntervalDays != tt.interval || p.EaseFactor != tt.ease {
			t.Errorf("ParamsForTier(%s) = %+v, want {%d %f}", tt.tier, p, tt.interval, tt.ease)
		}
	}
}

func TestSeedSchedule_FeedsLadder(t *testing.T) {
	seed := SeedSchedule(topics.TopicCalculus, TierHighPerformer)
	s := NextSchedule(seed, topics.TopicCalculus, mastery.LevelMastered, testNow)

	// High performers start at a 3-day first interval instead of 1.
	if s.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3 for high-performer seed", s.IntervalDays)
	}
	if s.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", s.ReviewCount)
	}
	// ease: 2.8 + 0.1 = 2.9
	if s.EaseFactor < 2.89 || s.EaseFactor > 2.91 {
		t.Errorf("EaseFactor = %f, want 2.9", s.EaseFactor)
	}
}
