package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutoriz/internal/llm"
)

func (r *eventRepo) AppendLLMCall(ctx context.Context, rec llm.CallRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMCallEvent.Create().
		SetSequence(seqNum).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM call event: %w", err)
	}

	return nil
}
