package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Failure classes for LLM calls. Callers branch with errors.Is; the
// retry layer uses them to decide what is worth another attempt.
var (
	// ErrRateLimited: the provider throttled the request (HTTP 429).
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrUnavailable: the provider is down, unreachable, or returned a
	// server-side failure.
	ErrUnavailable = errors.New("llm: provider unavailable")

	// ErrBadResponse: the model replied, but the content is not valid
	// JSON or does not conform to the requested schema.
	ErrBadResponse = errors.New("llm: response failed validation")

	// ErrTruncated: generation stopped at the token limit, so the
	// content is incomplete. Retrying with the same budget reproduces it.
	ErrTruncated = errors.New("llm: response truncated at token limit")
)

// CallError attaches call details to one of the failure classes above.
// errors.Is matches both the class and the underlying cause.
type CallError struct {
	// Class is one of the sentinel errors.
	Class error

	// RetryAfter is the provider's throttle hint, when it gave one.
	// Only meaningful for ErrRateLimited.
	RetryAfter time.Duration

	// Content is the rejected or partial output, when any was received.
	Content json.RawMessage

	// Err is the underlying cause.
	Err error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Class, e.Err)
	}
	return e.Class.Error()
}

func (e *CallError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Class}
	}
	return []error{e.Class, e.Err}
}

// RateLimited wraps cause as a throttled call. retryAfter may be 0 when
// the provider gave no hint.
func RateLimited(retryAfter time.Duration, cause error) error {
	return &CallError{Class: ErrRateLimited, RetryAfter: retryAfter, Err: cause}
}

// Unavailable wraps cause as a provider outage.
func Unavailable(cause error) error {
	return &CallError{Class: ErrUnavailable, Err: cause}
}

// BadResponse wraps cause as a validation failure, carrying the
// rejected content for diagnostics.
func BadResponse(content json.RawMessage, cause error) error {
	return &CallError{Class: ErrBadResponse, Content: content, Err: cause}
}

// Truncated marks content as cut off at the token limit.
func Truncated(content json.RawMessage) error {
	return &CallError{Class: ErrTruncated, Content: content}
}
