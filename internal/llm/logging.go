package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

type purposeKey struct{}

// WithPurpose labels the context with what the call is for ("classify",
// "outline-gen"), so the event log can attribute token spend.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose label, "unknown" when unset.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}

// CallRecord captures one LLM request for the event log.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
}

// CallRecorder persists LLM call records. Satisfied by the event store.
type CallRecorder interface {
	AppendLLMCall(ctx context.Context, rec CallRecord) error
}

// callLogger records every completion as an event.
type callLogger struct {
	next     Provider
	recorder CallRecorder
}

// WithLogging wraps p so every call is appended to the event log.
func WithLogging(p Provider, rec CallRecorder) Provider {
	return &callLogger{next: p, recorder: rec}
}

func (l *callLogger) Complete(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	res, err := l.next.Complete(ctx, req)

	rec := CallRecord{
		Provider:  l.next.Name(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if res != nil {
		rec.Model = res.Model
		rec.InputTokens = res.Usage.Prompt
		rec.OutputTokens = res.Usage.Completion
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// A failed log write must not fail the call itself.
	if logErr := l.recorder.AppendLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call event: %v\n", logErr)
	}

	return res, err
}

func (l *callLogger) Name() string {
	return l.next.Name()
}
