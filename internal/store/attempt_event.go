package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutoriz/ent"
	"github.com/abhisek/tutoriz/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetProblemText(data.ProblemText).
		SetTurnsTaken(data.TurnsTaken).
		SetStepCount(data.StepCount).
		SetApproachIndex(data.ApproachIndex).
		SetLevel(data.Level).
		SetHintsRequested(data.HintsRequested).
		SetIncorrectAttempts(data.IncorrectAttempts).
		SetClarificationRequests(data.ClarificationRequests)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttemptLevels(ctx context.Context, topic string, lastN int) ([]string, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Topic(topic)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	levels := make([]string, 0, len(events))
	for _, e := range events {
		levels = append(levels, e.Level)
	}
	return levels, nil
}

func (r *eventRepo) AttemptCount(ctx context.Context, topic string) (int, error) {
	count, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Topic(topic)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return count, nil
}

func (r *eventRepo) RecentLevels(ctx context.Context, lastN int) ([]string, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent levels: %w", err)
	}

	levels := make([]string, 0, len(events))
	for _, e := range events {
		levels = append(levels, e.Level)
	}
	return levels, nil
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) RecentAttemptTopics(ctx context.Context, lastN int) ([]string, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent topics: %w", err)
	}

	topics := make([]string, 0, len(events))
	for _, e := range events {
		topics = append(topics, e.Topic)
	}
	return topics, nil
}
