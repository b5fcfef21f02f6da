package spacedrep

import (
	"sort"
	"time"

	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/topics"
)

// FromSnapshot restores schedules from persisted snapshot data.
// Records with unparseable timestamps are skipped; out-of-range numeric
// fields are clamped on read.
func FromSnapshot(data *store.ScheduleSnapshotData) []Schedule {
	if data == nil || data.Schedules == nil {
		return nil
	}

	schedules := make([]Schedule, 0, len(data.Schedules))
	for _, sd := range data.Schedules {
		last, err := time.Parse(time.RFC3339, sd.LastReviewed)
		if err != nil {
			continue
		}
		next, err := time.Parse(time.RFC3339, sd.NextReview)
		if err != nil {
			continue
		}
		s := Schedule{
			Topic:        topics.Topic(sd.Topic),
			Strength:     sd.Strength,
			ReviewCount:  sd.ReviewCount,
			EaseFactor:   sd.EaseFactor,
			IntervalDays: sd.IntervalDays,
			LastReviewed: last,
			NextReview:   next,
		}
		schedules = append(schedules, s.Normalized())
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].Topic < schedules[j].Topic
	})
	return schedules
}

// ToSnapshot exports schedules for persistence.
func ToSnapshot(schedules []Schedule) *store.ScheduleSnapshotData {
	data := &store.ScheduleSnapshotData{
		Schedules: make(map[string]*store.ScheduleData, len(schedules)),
	}
	for _, s := range schedules {
		data.Schedules[string(s.Topic)] = &store.ScheduleData{
			Topic:        string(s.Topic),
			Strength:     s.Strength,
			ReviewCount:  s.ReviewCount,
			EaseFactor:   s.EaseFactor,
			IntervalDays: s.IntervalDays,
			LastReviewed: s.LastReviewed.Format(time.RFC3339),
			NextReview:   s.NextReview.Format(time.RFC3339),
		}
	}
	return data
}
