package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetQuality(data.Quality).
		SetEaseFactor(data.EaseFactor).
		SetIntervalDays(data.IntervalDays).
		SetStrength(data.Strength).
		SetNextReview(data.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}
