package topics

import (
	"context"
	"strings"
	"time"
)

// SemanticClassifier is an external text-classification service.
// Implementations may block on I/O; callers bound them with a timeout.
type SemanticClassifier interface {
	Topic(ctx context.Context, problemText string) (Topic, error)
}

// DefaultSemanticTimeout bounds a single semantic classification call.
const DefaultSemanticTimeout = 5 * time.Second

// Classifier combines keyword scoring with an optional semantic path.
// The semantic path consults a TTL cache, calls the service once on a
// miss, and silently degrades to the keyword result on any failure.
// The zero-value (or nil) Classifier is keyword-only.
type Classifier struct {
	semantic SemanticClassifier
	cache    Cache
	timeout  time.Duration
}

// NewClassifier creates a classifier. semantic may be nil for
// keyword-only operation; cache may be nil to disable caching.
func NewClassifier(semantic SemanticClassifier, cache Cache, timeout time.Duration) *Classifier {
	if timeout <= 0 {
		timeout = DefaultSemanticTimeout
	}
	return &Classifier{semantic: semantic, cache: cache, timeout: timeout}
}

// Classify returns the topic for problem text. Never fails: semantic
// errors and timeouts fall back to the keyword algorithm, and unmatched
// text yields TopicUnknown.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	keyword := ClassifyText(text)

	if c == nil || c.semantic == nil || strings.TrimSpace(text) == "" {
		return keyword
	}

	key := normalizeKey(text)
	if c.cache != nil {
		if t, ok := c.cache.Get(key); ok {
			return semanticResult(t, keyword)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	t, err := c.semantic.Topic(ctx, text)
	if err != nil || !Known(t) || t == TopicUnknown {
		return keyword
	}

	if c.cache != nil {
		c.cache.Set(key, t)
	}
	return semanticResult(t, keyword)
}

// semanticResult wraps a semantic topic, keeping the keyword runner-ups
// around for diagnostics.
func semanticResult(t Topic, keyword Result) Result {
	return Result{
		Topic:        t,
		Confidence:   1.0,
		Alternatives: keyword.Alternatives,
	}
}

// normalizeKey collapses text into a stable cache key: lowercased,
// whitespace-normalized.
func normalizeKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
