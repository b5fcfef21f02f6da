package session

import (
	"math/rand"
	"sort"

	"github.com/abhisek/tutoriz/internal/spacedrep"
	"github.com/abhisek/tutoriz/internal/topics"
)

// BuildPlan composes a practice session from the learner's topic
// schedules: due reviews first (most overdue leading, capped at half the
// target), then weak topics (lowest strength first), then random variety
// fill from the catalog. Same-group topics are kept MinSpacing apart
// where a reordering allows it; priority order wins otherwise.
//
// Deterministic for a fixed request seed. Returns at most req.Count
// unique topics; fewer when the catalog runs out.
func BuildPlan(schedules []spacedrep.Schedule, req Request) Plan {
	req = req.withDefaults()
	rng := rand.New(rand.NewSource(req.Seed))

	candidates := excludeInterfering(schedules, req.RecentTopics)

	picked := make(map[topics.Topic]bool)
	var slots []Slot

	// Due reviews, most overdue first, at most half the session.
	dueCap := (req.Count + 1) / 2
	for _, s := range dueTopics(candidates, req) {
		if len(slots) >= dueCap {
			break
		}
		if picked[s.Topic] {
			continue
		}
		picked[s.Topic] = true
		slots = append(slots, Slot{
			Topic:       s.Topic,
			Reason:      ReasonDue,
			OverdueDays: s.OverdueDays(req.Now),
			Strength:    s.Strength,
		})
	}

	// Weak topics, lowest strength first.
	for _, s := range weakTopics(candidates, req) {
		if len(slots) >= req.Count {
			break
		}
		if picked[s.Topic] {
			continue
		}
		picked[s.Topic] = true
		slots = append(slots, Slot{
			Topic:    s.Topic,
			Reason:   ReasonWeak,
			Strength: s.Strength,
		})
	}

	// Variety fill from the full catalog, shuffled.
	if len(slots) < req.Count {
		catalog := varietyCandidates(picked, req.RecentTopics)
		rng.Shuffle(len(catalog), func(i, j int) {
			catalog[i], catalog[j] = catalog[j], catalog[i]
		})
		for _, t := range catalog {
			if len(slots) >= req.Count {
				break
			}
			picked[t] = true
			slots = append(slots, Slot{Topic: t, Reason: ReasonVariety, Strength: spacedrep.DefaultStrength})
		}
	}

	slots = spaceOut(slots, req.MinSpacing)

	return Plan{Slots: slots, Seed: req.Seed}
}

// excludeInterfering drops schedules whose topic shares an interference
// group with a recently practiced topic. If that would leave nothing to
// choose from, the filter is waived.
func excludeInterfering(schedules []spacedrep.Schedule, recent []topics.Topic) []spacedrep.Schedule {
	if len(recent) == 0 {
		return schedules
	}
	var clean []spacedrep.Schedule
	for _, s := range schedules {
		if !interferesWithAny(s.Topic, recent) {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		return schedules
	}
	return clean
}

func interferesWithAny(t topics.Topic, recent []topics.Topic) bool {
	for _, r := range recent {
		if topics.SameGroup(t, r) {
			return true
		}
	}
	return false
}

func dueTopics(schedules []spacedrep.Schedule, req Request) []spacedrep.Schedule {
	var due []spacedrep.Schedule
	for _, s := range schedules {
		if s.IsDue(req.Now) {
			due = append(due, s)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(req.Now), due[j].OverdueDays(req.Now)
		if oi != oj {
			return oi > oj
		}
		return due[i].Topic < due[j].Topic
	})
	return due
}

func weakTopics(schedules []spacedrep.Schedule, req Request) []spacedrep.Schedule {
	var weak []spacedrep.Schedule
	for _, s := range schedules {
		if s.Strength < req.WeakThreshold {
			weak = append(weak, s)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Strength != weak[j].Strength {
			return weak[i].Strength < weak[j].Strength
		}
		return weak[i].Topic < weak[j].Topic
	})
	return weak
}

// varietyCandidates returns catalog topics not yet picked, preferring
// ones outside the recent topics' interference groups.
func varietyCandidates(picked map[topics.Topic]bool, recent []topics.Topic) []topics.Topic {
	var clean, conflicting []topics.Topic
	for _, t := range topics.All() {
		if picked[t] {
			continue
		}
		if interferesWithAny(t, recent) {
			conflicting = append(conflicting, t)
			continue
		}
		clean = append(clean, t)
	}
	if len(clean) > 0 {
		return clean
	}
	return conflicting
}

// spaceOut reorders slots so same-group topics sit at least minSpacing
// apart. Greedy: walk the sequence, and when the next slot would violate
// spacing, pull forward the first later slot that doesn't. When no slot
// fits, the violating slot stays: priority order is preferred over full
// spacing compliance.
func spaceOut(slots []Slot, minSpacing int) []Slot {
	if minSpacing <= 1 || len(slots) < 3 {
		return slots
	}

	out := make([]Slot, 0, len(slots))
	rest := append([]Slot(nil), slots...)

	for len(rest) > 0 {
		placed := false
		for i, candidate := range rest {
			if fitsSpacing(out, candidate.Topic, minSpacing) {
				out = append(out, candidate)
				rest = append(rest[:i], rest[i+1:]...)
				placed = true
				break
			}
		}
		if !placed {
			// Nothing fits; take the highest-priority remaining slot.
			out = append(out, rest[0])
			rest = rest[1:]
		}
	}
	return out
}

// fitsSpacing reports whether topic can be appended without landing
// within minSpacing of a same-group topic.
func fitsSpacing(out []Slot, t topics.Topic, minSpacing int) bool {
	start := len(out) - (minSpacing - 1)
	if start < 0 {
		start = 0
	}
	for _, s := range out[start:] {
		if topics.SameGroup(s.Topic, t) {
			return false
		}
	}
	return true
}
