package session

import (
	"time"

	"github.com/abhisek/tutoriz/internal/topics"
)

// Reason records why a topic made it into the plan.
type Reason string

const (
	ReasonDue     Reason = "due"     // review at or past its due date
	ReasonWeak    Reason = "weak"    // strength below the weak threshold
	ReasonVariety Reason = "variety" // random fill for variety
)

// Slot is one topic in the practice plan.
type Slot struct {
	Topic       topics.Topic
	Reason      Reason
	OverdueDays float64
	Strength    float64
}

// Plan is the ordered topic list for one practice session.
type Plan struct {
	Slots []Slot
	Seed  int64
}

// Topics returns the plan's topics in order.
func (p Plan) Topics() []topics.Topic {
	out := make([]topics.Topic, len(p.Slots))
	for i, s := range p.Slots {
		out[i] = s.Topic
	}
	return out
}

// Defaults for plan requests.
const (
	DefaultPlanCount     = 5
	DefaultWeakThreshold = 0.6
	DefaultMinSpacing    = 2
)

// Request configures one plan build.
type Request struct {
	// Count is the target number of topics (defaults to DefaultPlanCount).
	Count int

	// Now anchors due-date comparisons.
	Now time.Time

	// Seed drives the variety shuffle; fix it in tests for reproducibility.
	Seed int64

	// RecentTopics were practiced just before this session. Candidates
	// in the same interference group are avoided when possible.
	RecentTopics []topics.Topic

	// WeakThreshold is the strength below which a topic counts as weak
	// (defaults to DefaultWeakThreshold).
	WeakThreshold float64

	// MinSpacing is the minimum gap between same-group topics in the
	// output (defaults to DefaultMinSpacing).
	MinSpacing int
}

func (r Request) withDefaults() Request {
	if r.Count <= 0 {
		r.Count = DefaultPlanCount
	}
	if r.Now.IsZero() {
		r.Now = time.Now()
	}
	if r.WeakThreshold <= 0 {
		r.WeakThreshold = DefaultWeakThreshold
	}
	if r.MinSpacing <= 0 {
		r.MinSpacing = DefaultMinSpacing
	}
	return r
}
