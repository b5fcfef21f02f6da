package spacedrep

import (
	"math"
	"time"

	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/topics"
)

// Quality scores on the SM-2 0-5 scale.
const (
	QualityMastered   = 5
	QualityCompetent  = 3
	QualityStruggling = 1
)

// failThreshold is the quality below which a review counts as a lapse.
const failThreshold = 3

// Strength is an exponential moving average of normalized quality.
const (
	strengthDecay  = 0.7
	strengthWeight = 0.3
)

// secondReviewIntervalDays is the fixed SM-2 interval after the second
// consecutive successful review.
const secondReviewIntervalDays = 6

// QualityFor maps a mastery level to an SM-2 quality score.
// Unrecognized levels score as struggling.
func QualityFor(level mastery.Level) int {
	switch level {
	case mastery.LevelMastered:
		return QualityMastered
	case mastery.LevelCompetent:
		return QualityCompetent
	default:
		return QualityStruggling
	}
}

// NextSchedule computes the schedule state following one attempt.
//
// prev is the persisted state, or nil for a first-time topic (in which
// case defaults apply; see SeedSchedule for tier-adjusted seeds).
// The function is deterministic and side-effect-free; the caller
// persists the returned state.
func NextSchedule(prev *Schedule, topic topics.Topic, level mastery.Level, now time.Time) Schedule {
	var s Schedule
	if prev == nil {
		s = Schedule{
			Topic:        topic,
			Strength:     DefaultStrength,
			EaseFactor:   DefaultEaseFactor,
			IntervalDays: DefaultIntervalDays,
		}
	} else {
		s = prev.Normalized()
	}
	if s.Topic == "" {
		s.Topic = topic
	}

	q := QualityFor(level)

	// Ease update: EF' = EF + (0.1 - (5-q)(0.08 + (5-q)*0.02)), floored.
	miss := float64(5 - q)
	ease := s.EaseFactor + (0.1 - miss*(0.08+miss*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var reviewCount, interval int
	if q < failThreshold {
		// Lapse: restart the ladder.
		reviewCount = 0
		interval = 1
	} else {
		reviewCount = s.ReviewCount + 1
		switch reviewCount {
		case 1:
			// First success uses the seeded interval (1 by default;
			// the adaptive tuner seeds faster learners at 3).
			interval = s.IntervalDays
		case 2:
			interval = secondReviewIntervalDays
		default:
			interval = int(math.Round(float64(s.IntervalDays) * ease))
		}
		if interval < 1 {
			interval = 1
		}
	}

	strength := clamp01(s.Strength*strengthDecay + float64(q)/5.0*strengthWeight)

	return Schedule{
		Topic:        s.Topic,
		Strength:     strength,
		ReviewCount:  reviewCount,
		EaseFactor:   ease,
		IntervalDays: interval,
		LastReviewed: now,
		NextReview:   now.AddDate(0, 0, interval),
	}
}
