package spacedrep

import (
	"time"

	"github.com/abhisek/tutoriz/internal/topics"
)

const (
	// MinEaseFactor is the SM-2 ease floor. No update may go below it.
	MinEaseFactor = 1.3

	// DefaultEaseFactor is the starting ease for a never-seen topic.
	DefaultEaseFactor = 2.5

	// DefaultStrength is the starting strength for a never-seen topic.
	DefaultStrength = 0.5

	// DefaultIntervalDays is the starting interval for a never-seen topic.
	DefaultIntervalDays = 1
)

// Schedule holds the spaced repetition state for a single topic.
// It is owned by the caller's persistence layer; the engine only reads
// a Schedule and returns a new one, never mutating in place.
type Schedule struct {
	Topic        topics.Topic `json:"topic"`
	Strength     float64      `json:"strength"`
	ReviewCount  int          `json:"review_count"`
	EaseFactor   float64      `json:"ease_factor"`
	IntervalDays int          `json:"interval_days"`
	LastReviewed time.Time    `json:"last_reviewed"`
	NextReview   time.Time    `json:"next_review"`
}

// IsDue returns true if the topic is at or past its review date.
func (s Schedule) IsDue(now time.Time) bool {
	return !now.Before(s.NextReview)
}

// OverdueDays returns how many days past due the topic is, 0 if not due.
func (s Schedule) OverdueDays(now time.Time) float64 {
	if now.Before(s.NextReview) {
		return 0
	}
	return now.Sub(s.NextReview).Hours() / 24.0
}

// Normalized returns a copy with out-of-range fields clamped into their
// invariants. Storage may hand back manually edited or legacy records;
// the engine clamps on read instead of failing.
func (s Schedule) Normalized() Schedule {
	if s.EaseFactor < MinEaseFactor {
		s.EaseFactor = MinEaseFactor
	}
	s.Strength = clamp01(s.Strength)
	if s.IntervalDays < 1 {
		s.IntervalDays = 1
	}
	if s.ReviewCount < 0 {
		s.ReviewCount = 0
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
