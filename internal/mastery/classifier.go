package mastery

// Step-based classification compares actual turns against the expected
// turn count derived from the solution outline.
const (
	// TurnsPerStep is the expected dialogue turns per outline step.
	TurnsPerStep = 2

	// MasteredEfficiency is the minimum efficiency for a mastered attempt.
	MasteredEfficiency = 0.8

	// CompetentEfficiency is the minimum efficiency for a competent attempt.
	CompetentEfficiency = 0.5
)

// Basic classification thresholds, used when no outline was available.
const (
	BasicMasteredTurns  = 5
	BasicCompetentTurns = 10
)

// Struggle penalty weights and cutoffs.
const (
	hintPenalty          = 0.15
	mistakePenalty       = 0.20
	clarificationPenalty = 0.10

	// ForceStrugglingPenalty forces a struggling result regardless of
	// the base classification.
	ForceStrugglingPenalty = 0.6

	// DowngradePenalty downgrades the base classification by one level.
	DowngradePenalty = 0.3
)

// Classify converts a completed attempt into a mastery level.
//
// The most informative variant available is used: step-based when the
// attempt carries a step count, otherwise the basic turn-count rule.
// Struggle signals, when present, are applied as an adjustment on top of
// the base result. Malformed input (non-positive turn count) degrades to
// struggling rather than failing.
func Classify(a Attempt) Level {
	if a.TurnsTaken <= 0 {
		return LevelStruggling
	}

	level := baseLevel(a)

	if a.Struggle != nil {
		level = adjustForStruggle(level, *a.Struggle)
	}

	return level
}

// baseLevel computes the classification before any struggle adjustment.
func baseLevel(a Attempt) Level {
	if a.StepCount > 0 {
		expected := float64(a.StepCount * TurnsPerStep)
		efficiency := expected / float64(a.TurnsTaken)
		switch {
		case efficiency >= MasteredEfficiency:
			return LevelMastered
		case efficiency >= CompetentEfficiency:
			return LevelCompetent
		default:
			return LevelStruggling
		}
	}

	switch {
	case a.TurnsTaken <= BasicMasteredTurns:
		return LevelMastered
	case a.TurnsTaken <= BasicCompetentTurns:
		return LevelCompetent
	default:
		return LevelStruggling
	}
}

// StrugglePenalty computes the weighted penalty for the collected
// struggle signals, capped at 1.0.
func StrugglePenalty(sd StruggleData) float64 {
	p := hintPenalty*float64(sd.HintsRequested) +
		mistakePenalty*float64(sd.IncorrectAttempts) +
		clarificationPenalty*float64(sd.ClarificationRequests)
	if p > 1.0 {
		return 1.0
	}
	if p < 0 {
		return 0
	}
	return p
}

func adjustForStruggle(base Level, sd StruggleData) Level {
	penalty := StrugglePenalty(sd)
	switch {
	case penalty >= ForceStrugglingPenalty:
		return LevelStruggling
	case penalty >= DowngradePenalty:
		return Downgrade(base)
	default:
		return base
	}
}
