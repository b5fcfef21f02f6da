package topics

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubSemantic is a scripted SemanticClassifier for tests.
type stubSemantic struct {
	topic Topic
	err   error
	calls int
	block bool
}

func (s *stubSemantic) Topic(ctx context.Context, _ string) (Topic, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return TopicUnknown, ctx.Err()
	}
	return s.topic, s.err
}

const quadraticProblem = "Solve the quadratic equation x² + 3x - 4 = 0"

func TestClassifier_SemanticWins(t *testing.T) {
	stub := &stubSemantic{topic: TopicWordProblems}
	c := NewClassifier(stub, NewTTLCache(0), 0)

	r := c.Classify(context.Background(), quadraticProblem)
	if r.Topic != TopicWordProblems {
		t.Errorf("Topic = %s, want semantic result", r.Topic)
	}
	if r.Confidence != 1.0 {
		t.Errorf("Confidence = %f, want 1.0 for semantic result", r.Confidence)
	}
}

func TestClassifier_ErrorFallsBackToKeyword(t *testing.T) {
	stub := &stubSemantic{err: errors.New("service down")}
	c := NewClassifier(stub, NewTTLCache(0), 0)

	r := c.Classify(context.Background(), quadraticProblem)
	if r.Topic != TopicQuadraticEquations {
		t.Errorf("Topic = %s, want keyword fallback", r.Topic)
	}
}

func TestClassifier_TimeoutFallsBackToKeyword(t *testing.T) {
	stub := &stubSemantic{block: true}
	c := NewClassifier(stub, nil, 10*time.Millisecond)

	r := c.Classify(context.Background(), quadraticProblem)
	if r.Topic != TopicQuadraticEquations {
		t.Errorf("Topic = %s, want keyword fallback on timeout", r.Topic)
	}
}

func TestClassifier_CacheHitSkipsService(t *testing.T) {
	stub := &stubSemantic{topic: TopicCalculus}
	c := NewClassifier(stub, NewTTLCache(0), 0)

	c.Classify(context.Background(), quadraticProblem)
	// Same text modulo case and whitespace shares the cache key.
	c.Classify(context.Background(), "  solve THE quadratic   equation x² + 3x - 4 = 0")
	c.Classify(context.Background(), "Find the derivative of f(x) = 3x²")

	if stub.calls != 2 {
		t.Errorf("service calls = %d, want 2 (second call served from cache)", stub.calls)
	}
}

func TestClassifier_FailureNotCached(t *testing.T) {
	stub := &stubSemantic{err: errors.New("boom")}
	cache := NewTTLCache(0)
	c := NewClassifier(stub, cache, 0)

	c.Classify(context.Background(), quadraticProblem)
	if cache.Len() != 0 {
		t.Error("failed classification must not be cached")
	}
}

func TestClassifier_NilIsKeywordOnly(t *testing.T) {
	var c *Classifier
	r := c.Classify(context.Background(), quadraticProblem)
	if r.Topic != TopicQuadraticEquations {
		t.Errorf("Topic = %s, want keyword result from nil classifier", r.Topic)
	}
}

func TestTTLCache_Expiry(t *testing.T) {
	cache := NewTTLCache(time.Hour)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("k", TopicGeometry)
	if got, ok := cache.Get("k"); !ok || got != TopicGeometry {
		t.Fatal("expected fresh entry to hit")
	}

	current = current.Add(2 * time.Hour)
	if _, ok := cache.Get("k"); ok {
		t.Error("expected entry to expire after TTL")
	}
	if cache.Len() != 0 {
		t.Error("expired entry should be evicted on read")
	}
}

func TestTTLCache_Clear(t *testing.T) {
	cache := NewTTLCache(0)
	cache.Set("a", TopicCalculus)
	cache.Set("b", TopicGeometry)
	cache.Clear()
	if cache.Len() != 0 {
		t.Error("expected empty cache after Clear")
	}
}

func TestNormalizeKey(t *testing.T) {
	a := normalizeKey("  Solve   2x+1 = 7 ")
	b := normalizeKey("solve 2x+1 = 7")
	if a != b {
		t.Errorf("normalizeKey mismatch: %q vs %q", a, b)
	}
}
