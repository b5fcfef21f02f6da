package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCallError_MatchesClassAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable(cause)

	if !errors.Is(err, ErrUnavailable) {
		t.Error("expected match on the class sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("expected match on the underlying cause")
	}
	if errors.Is(err, ErrRateLimited) {
		t.Error("must not match other classes")
	}
}

func TestCallError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("semantic classify: %w", BadResponse(nil, errors.New("no topic")))
	if !errors.Is(err, ErrBadResponse) {
		t.Error("class lost through fmt.Errorf wrapping")
	}
}

func TestRateLimited_CarriesThrottleHint(t *testing.T) {
	err := RateLimited(30*time.Second, errors.New("429"))

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T, want *CallError", err)
	}
	if ce.RetryAfter != 30*time.Second {
		t.Errorf("RetryAfter = %v, want 30s", ce.RetryAfter)
	}
}

func TestTruncated_CarriesPartialContent(t *testing.T) {
	partial := json.RawMessage(`{"approaches":[{"na`)
	err := Truncated(partial)

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T, want *CallError", err)
	}
	if string(ce.Content) != string(partial) {
		t.Errorf("Content = %s, want the partial output", ce.Content)
	}
	if ce.Err != nil {
		t.Error("truncation has no separate cause")
	}
}
