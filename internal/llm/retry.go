package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retrier re-issues failed calls with exponential backoff. Outages,
// throttling, and plain network errors are retried up to MaxAttempts;
// a schema-invalid reply gets exactly one regeneration; truncation and
// context errors are final.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps p with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) Complete(ctx context.Context, req Request) (*Result, error) {
	wait := r.cfg.InitialWait
	badRetried := false

	for attempt := 1; ; attempt++ {
		res, err := r.next.Complete(ctx, req)
		if err == nil {
			return res, nil
		}
		if attempt >= r.cfg.MaxAttempts || !r.retryable(err, &badRetried) {
			return nil, err
		}

		delay := wait
		// A throttle hint from the provider overrides the schedule.
		var ce *CallError
		if errors.As(err, &ce) && ce.RetryAfter > 0 {
			delay = ce.RetryAfter
		}

		t := time.NewTimer(jittered(delay))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}

		wait = time.Duration(float64(wait) * r.cfg.Multiplier)
		if wait > r.cfg.MaxWait {
			wait = r.cfg.MaxWait
		}
	}
}

func (r *retrier) Name() string {
	return r.next.Name()
}

func (r *retrier) retryable(err error, badRetried *bool) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrTruncated):
		// Token budget too small; a retry reproduces the cut-off.
		return false
	case errors.Is(err, ErrBadResponse):
		// One regeneration, since models do occasionally emit a
		// malformed reply they would not repeat.
		if *badRetried {
			return false
		}
		*badRetried = true
		return true
	default:
		return true
	}
}

// jittered spreads d by ±20% so synchronized clients don't retry in
// lockstep.
func jittered(d time.Duration) time.Duration {
	return time.Duration(float64(d) * (0.8 + 0.4*rand.Float64()))
}
