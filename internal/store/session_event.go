package store

import (
	"context"
	"fmt"

	entschema "github.com/abhisek/tutoriz/ent/schema"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var planSummary []entschema.PlanSlotSummary
	for _, s := range data.PlanSummary {
		planSummary = append(planSummary, entschema.PlanSlotSummary{
			Topic:  s.Topic,
			Reason: s.Reason,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetProblemsServed(data.ProblemsServed).
		SetDurationSecs(data.DurationSecs)

	if len(planSummary) > 0 {
		builder = builder.SetPlanSummary(planSummary)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
