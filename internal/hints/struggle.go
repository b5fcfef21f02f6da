package hints

import "github.com/abhisek/tutoriz/internal/mastery"

// MaxStruggleLevel caps the effective struggle level and the hint
// escalation depth.
const MaxStruggleLevel = 3

// State tracks one learner's progress through a solution outline.
// Created at problem start, advanced once per learner turn, discarded
// at completion. Values, not pointers: Advance returns a new State.
type State struct {
	ApproachIndex int
	StepIndex     int

	// KeywordStruggleCount counts turns with a detected struggle phrase
	// since the last step advancement.
	KeywordStruggleCount int

	// AIAssessment is the latest external per-turn struggle assessment
	// (0-3) since the last step advancement.
	AIAssessment int

	// TurnCount is the total learner turns on this problem.
	TurnCount int

	// HintsShown counts hint escalations, for the mastery classifier.
	HintsShown int

	Completed bool
}

// TurnEvent is everything observed on one learner turn.
type TurnEvent struct {
	// Text is the learner's raw message.
	Text string

	// Assessment is the dialogue service's struggle rating (0-3).
	// Only read when HasAssessment is set.
	Assessment    int
	HasAssessment bool

	// StepCompleted signals the current step was finished this turn.
	StepCompleted bool

	// NewApproach signals the learner switched to another solution
	// path; ApproachIndex selects it. StepIndex restarts at 0.
	NewApproach   bool
	ApproachIndex int

	// ProblemCompleted marks the whole problem solved.
	ProblemCompleted bool
}

// Advance applies one turn to the state. Pure transition function:
// the input state is never mutated.
func Advance(s State, ev TurnEvent, outline *Outline) State {
	if s.Completed {
		return s
	}

	s.TurnCount++

	prior := s.EffectiveLevel()
	if DetectStruggle(ev.Text) && s.KeywordStruggleCount < MaxStruggleLevel {
		s.KeywordStruggleCount++
	}
	if ev.HasAssessment {
		s.AIAssessment = clampLevel(ev.Assessment)
	}
	// Count an escalation whenever this turn pushed the hint level up.
	if s.EffectiveLevel() > prior {
		s.HintsShown++
	}

	switch {
	case ev.ProblemCompleted:
		s.Completed = true

	case ev.NewApproach:
		// A switch to an approach the outline doesn't have is ignored
		// entirely; the learner's position and counters stay put.
		if outline.Approach(ev.ApproachIndex) != nil {
			s.ApproachIndex = ev.ApproachIndex
			s.StepIndex = 0
			s.resetStruggle()
		}

	case ev.StepCompleted:
		s.StepIndex++
		s.resetStruggle()
		if outline != nil && s.StepIndex >= outline.StepCount(s.ApproachIndex) {
			s.Completed = true
		}
	}

	return s
}

// EffectiveLevel is the current hint escalation level (0-3):
// the max of keyword-detected struggle and the external assessment.
func (s State) EffectiveLevel() int {
	return effectiveLevel(s.KeywordStruggleCount, s.AIAssessment)
}

// CurrentHint returns the hint to show for the current step, or ""
// at level 0 or when the cursor is out of range.
func (s State) CurrentHint(outline *Outline) string {
	level := s.EffectiveLevel()
	if level == 0 {
		return ""
	}
	step := outline.Step(s.ApproachIndex, s.StepIndex)
	if step == nil {
		return ""
	}
	return step.Hints[level-1]
}

// Outcome converts a finished problem into an attempt for the mastery
// classifier, using total turns and the hint escalation count.
func (s State) Outcome(outline *Outline, incorrectAttempts, clarifications int) mastery.Attempt {
	a := mastery.Attempt{
		TurnsTaken:    s.TurnCount,
		ApproachIndex: s.ApproachIndex,
	}
	if outline != nil {
		a.ProblemText = outline.ProblemText
		a.StepCount = outline.StepCount(s.ApproachIndex)
	}
	if s.HintsShown > 0 || incorrectAttempts > 0 || clarifications > 0 {
		a.Struggle = &mastery.StruggleData{
			HintsRequested:        s.HintsShown,
			IncorrectAttempts:     incorrectAttempts,
			ClarificationRequests: clarifications,
		}
	}
	return a
}

func (s *State) resetStruggle() {
	s.KeywordStruggleCount = 0
	s.AIAssessment = 0
}

func effectiveLevel(keyword, assessment int) int {
	level := keyword
	if assessment > level {
		level = assessment
	}
	return clampLevel(level)
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStruggleLevel {
		return MaxStruggleLevel
	}
	return v
}
