package spacedrep

import (
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/topics"
)

// Tier classifies a learner's aggregate performance. The tier only
// affects the initial scheduling parameters of never-seen topics;
// established schedules are untouched.
type Tier string

const (
	TierHighPerformer Tier = "high-performer"
	TierAverage       Tier = "average"
	TierStruggling    Tier = "struggling"
)

// MinAttemptsForTier gates tier classification. Below this the learner
// is treated as average.
const MinAttemptsForTier = 5

// Tier thresholds.
const (
	highStrengthFloor  = 0.75
	highMasteredShare  = 0.70
	lowStrengthCeiling = 0.5
	lowStrugglingShare = 0.5
)

// InitialParams are the scheduling seeds for a brand-new topic.
type InitialParams struct {
	IntervalDays int
	EaseFactor   float64
}

// ParamsForTier returns the initial parameters for a tier.
func ParamsForTier(t Tier) InitialParams {
	switch t {
	case TierHighPerformer:
		return InitialParams{IntervalDays: 3, EaseFactor: 2.8}
	case TierStruggling:
		return InitialParams{IntervalDays: 1, EaseFactor: 2.3}
	default:
		return InitialParams{IntervalDays: 1, EaseFactor: 2.5}
	}
}

// ClassifyTier derives a performance tier from all topic schedules and
// the learner's recent attempt outcomes. With fewer than
// MinAttemptsForTier attempts the learner is average by default.
func ClassifyTier(schedules []Schedule, recent []mastery.Level) Tier {
	if len(recent) < MinAttemptsForTier {
		return TierAverage
	}

	avgStrength := averageStrength(schedules)

	mastered, struggling := 0, 0
	for _, l := range recent {
		switch l {
		case mastery.LevelMastered:
			mastered++
		case mastery.LevelStruggling:
			struggling++
		}
	}
	masteredShare := float64(mastered) / float64(len(recent))
	strugglingShare := float64(struggling) / float64(len(recent))

	switch {
	case avgStrength >= highStrengthFloor && masteredShare >= highMasteredShare:
		return TierHighPerformer
	case avgStrength < lowStrengthCeiling || strugglingShare > lowStrugglingShare:
		return TierStruggling
	default:
		return TierAverage
	}
}

// SeedSchedule builds the starting state for a never-seen topic with
// tier-adjusted parameters. Feed it to NextSchedule as prev.
func SeedSchedule(topic topics.Topic, tier Tier) *Schedule {
	p := ParamsForTier(tier)
	return &Schedule{
		Topic:        topic,
		Strength:     DefaultStrength,
		EaseFactor:   p.EaseFactor,
		IntervalDays: p.IntervalDays,
	}
}

func averageStrength(schedules []Schedule) float64 {
	if len(schedules) == 0 {
		return DefaultStrength
	}
	sum := 0.0
	for _, s := range schedules {
		sum += clamp01(s.Strength)
	}
	return sum / float64(len(schedules))
}
