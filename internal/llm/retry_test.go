package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func topicReply() json.RawMessage {
	return json.RawMessage(`{"topic":"linear-equations"}`)
}

func TestWithRetry_CleanCallNotRepeated(t *testing.T) {
	stub := NewStub().Reply(topicReply())
	p := WithRetry(stub, fastRetry())

	res, err := p.Complete(context.Background(), Request{Prompt: "classify: solve 2x + 3 = 11"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Content) != `{"topic":"linear-equations"}` {
		t.Errorf("content = %s", res.Content)
	}
	if stub.Calls() != 1 {
		t.Errorf("calls = %d, want 1", stub.Calls())
	}
}

func TestWithRetry_RecoversFromOutage(t *testing.T) {
	stub := NewStub().
		Fail(Unavailable(errors.New("upstream 503"))).
		Reply(topicReply())
	p := WithRetry(stub, fastRetry())

	res, err := p.Complete(context.Background(), Request{Prompt: "classify"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || stub.Calls() != 2 {
		t.Errorf("calls = %d, want 2 (one failure, one recovery)", stub.Calls())
	}
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	stub := NewStub().
		Fail(Unavailable(errors.New("down"))).
		Fail(Unavailable(errors.New("down"))).
		Fail(Unavailable(errors.New("down")))
	p := WithRetry(stub, fastRetry())

	_, err := p.Complete(context.Background(), Request{Prompt: "classify"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if stub.Calls() != 3 {
		t.Errorf("calls = %d, want 3", stub.Calls())
	}
}

func TestWithRetry_TruncationIsFinal(t *testing.T) {
	stub := NewStub().
		Fail(Truncated(json.RawMessage(`{"topic":"lin`))).
		Reply(topicReply())
	p := WithRetry(stub, fastRetry())

	_, err := p.Complete(context.Background(), Request{Prompt: "classify", MaxTokens: 4})
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
	if stub.Calls() != 1 {
		t.Errorf("calls = %d, want 1: same token budget reproduces the cut-off", stub.Calls())
	}
}

func TestWithRetry_BadReplyRegeneratedOnce(t *testing.T) {
	bad := BadResponse(json.RawMessage(`{"subject":"algebra"}`), errors.New("missing topic"))
	stub := NewStub().
		Fail(bad).
		Fail(bad).
		Reply(topicReply()) // never reached
	p := WithRetry(stub, fastRetry())

	_, err := p.Complete(context.Background(), Request{Prompt: "classify"})
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
	if stub.Calls() != 2 {
		t.Errorf("calls = %d, want 2 (exactly one regeneration)", stub.Calls())
	}
}

func TestWithRetry_HonorsThrottleHint(t *testing.T) {
	stub := NewStub().
		Fail(RateLimited(time.Millisecond, errors.New("429"))).
		Reply(topicReply())
	p := WithRetry(stub, fastRetry())

	start := time.Now()
	res, err := p.Complete(context.Background(), Request{Prompt: "classify"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || stub.Calls() != 2 {
		t.Errorf("calls = %d, want 2", stub.Calls())
	}
	// Jitter keeps the wait within ±20% of the hint.
	if elapsed := time.Since(start); elapsed < 800*time.Microsecond {
		t.Errorf("retried after %v, sooner than the throttle hint allows", elapsed)
	}
}

func TestWithRetry_CancelledContextStopsWaiting(t *testing.T) {
	stub := NewStub().
		Fail(Unavailable(errors.New("down"))).
		Fail(Unavailable(errors.New("down"))).
		Reply(topicReply())
	p := WithRetry(stub, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Complete(ctx, Request{Prompt: "classify"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestWithRetry_NameDelegates(t *testing.T) {
	p := WithRetry(NewStub(), fastRetry())
	if p.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", p.Name())
	}
}
