package mastery

// Level is the coarse outcome of one completed problem attempt.
type Level string

const (
	LevelMastered   Level = "mastered"
	LevelCompetent  Level = "competent"
	LevelStruggling Level = "struggling"
)

// Downgrade returns the level one notch below l. Struggling stays struggling.
func Downgrade(l Level) Level {
	switch l {
	case LevelMastered:
		return LevelCompetent
	case LevelCompetent:
		return LevelStruggling
	default:
		return LevelStruggling
	}
}

// StruggleData aggregates the difficulty signals collected while the
// learner worked through a problem.
type StruggleData struct {
	HintsRequested        int
	IncorrectAttempts     int
	ClarificationRequests int
}

// Attempt is one completed problem attempt as reported by the host
// application. It is consumed once and never persisted as-is.
type Attempt struct {
	ProblemText string
	TurnsTaken  int

	// StepCount is the number of steps in the solution approach the
	// learner followed. Zero when no solution outline was available.
	StepCount int

	// ApproachIndex identifies which approach of the outline was used.
	ApproachIndex int

	// Struggle is nil when no difficulty signals were collected.
	Struggle *StruggleData
}
