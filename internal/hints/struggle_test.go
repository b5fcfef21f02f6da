package hints

import (
	"testing"

	"github.com/abhisek/tutoriz/internal/mastery"
)

func testOutline() *Outline {
	return &Outline{
		ProblemText: "Solve 2x + 3 = 11",
		Approaches: []Approach{
			{
				Name: "isolate x",
				Steps: []Step{
					{
						Action:    "Subtract 3 from both sides",
						Reasoning: "Isolate the term with x",
						Hints:     [HintLevels]string{"What undoes +3?", "Subtract 3 from both sides", "2x + 3 - 3 = 11 - 3, so 2x = 8"},
					},
					{
						Action:    "Divide both sides by 2",
						Reasoning: "Solve for x",
						Hints:     [HintLevels]string{"What undoes ×2?", "Divide both sides by 2", "2x/2 = 8/2, so x = 4"},
					},
				},
			},
			{
				Name: "guess and check",
				Steps: []Step{
					{
						Action:    "Try candidate values for x",
						Reasoning: "Small integer solutions can be found by testing",
						Hints:     [HintLevels]string{"Try x = 1", "Try a few small values", "x = 4 gives 2(4)+3 = 11"},
					},
				},
			},
		},
	}
}

func TestAdvance_KeywordStruggleIncrements(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "I'm stuck on this"}, o)

	if s.KeywordStruggleCount != 1 {
		t.Errorf("KeywordStruggleCount = %d, want 1", s.KeywordStruggleCount)
	}
	if s.EffectiveLevel() != 1 {
		t.Errorf("EffectiveLevel = %d, want 1", s.EffectiveLevel())
	}
	if got := s.CurrentHint(o); got != "What undoes +3?" {
		t.Errorf("CurrentHint = %q, want first hint", got)
	}
}

func TestAdvance_AssessmentDominates(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "hmm", Assessment: 2, HasAssessment: true}, o)

	if s.EffectiveLevel() != 2 {
		t.Errorf("EffectiveLevel = %d, want max(0,2) = 2", s.EffectiveLevel())
	}
	if got := s.CurrentHint(o); got != "Subtract 3 from both sides" {
		t.Errorf("CurrentHint = %q, want second hint", got)
	}
}

func TestAdvance_LevelCappedAtThree(t *testing.T) {
	o := testOutline()
	s := State{}
	for i := 0; i < 6; i++ {
		s = Advance(s, TurnEvent{Text: "I don't know"}, o)
	}
	if s.EffectiveLevel() != MaxStruggleLevel {
		t.Errorf("EffectiveLevel = %d, want cap %d", s.EffectiveLevel(), MaxStruggleLevel)
	}

	s = Advance(s, TurnEvent{Text: "ok", Assessment: 9, HasAssessment: true}, o)
	if s.EffectiveLevel() != MaxStruggleLevel {
		t.Errorf("EffectiveLevel = %d, want assessment clamped to %d", s.EffectiveLevel(), MaxStruggleLevel)
	}
}

func TestAdvance_StepCompletionResetsStruggle(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "so confused", Assessment: 3, HasAssessment: true}, o)
	s = Advance(s, TurnEvent{Text: "oh I see, subtract 3", StepCompleted: true}, o)

	if s.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", s.StepIndex)
	}
	if s.KeywordStruggleCount != 0 || s.AIAssessment != 0 {
		t.Error("struggle counters must reset on step advancement")
	}
	if s.EffectiveLevel() != 0 {
		t.Errorf("EffectiveLevel = %d, want 0 after reset", s.EffectiveLevel())
	}
}

func TestAdvance_CompletesAfterLastStep(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "subtract 3", StepCompleted: true}, o)
	s = Advance(s, TurnEvent{Text: "x = 4", StepCompleted: true}, o)

	if !s.Completed {
		t.Error("state should complete after the last step")
	}
	if s.TurnCount != 2 {
		t.Errorf("TurnCount = %d, want 2", s.TurnCount)
	}
}

func TestAdvance_ApproachSwitchRestartsSteps(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "stuck", StepCompleted: false}, o)
	s = Advance(s, TurnEvent{Text: "what if I just try numbers", NewApproach: true, ApproachIndex: 1}, o)

	if s.ApproachIndex != 1 {
		t.Errorf("ApproachIndex = %d, want 1", s.ApproachIndex)
	}
	if s.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0 after approach switch", s.StepIndex)
	}
	if s.EffectiveLevel() != 0 {
		t.Error("struggle counters must reset on approach switch")
	}
}

func TestAdvance_InvalidApproachIgnored(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "switch", NewApproach: true, ApproachIndex: 7}, o)
	if s.ApproachIndex != 0 {
		t.Errorf("ApproachIndex = %d, want 0 for out-of-range switch", s.ApproachIndex)
	}
}

func TestAdvance_InvalidApproachKeepsPosition(t *testing.T) {
	o := testOutline()

	// Mid-problem: one step done, struggling on the second.
	s := Advance(State{}, TurnEvent{Text: "subtract 3", StepCompleted: true}, o)
	s = Advance(s, TurnEvent{Text: "I'm stuck here"}, o)

	got := Advance(s, TurnEvent{Text: "try something else", NewApproach: true, ApproachIndex: 7}, o)

	if got.StepIndex != s.StepIndex {
		t.Errorf("StepIndex = %d, want %d: bogus switch must not restart steps", got.StepIndex, s.StepIndex)
	}
	if got.KeywordStruggleCount != s.KeywordStruggleCount {
		t.Errorf("KeywordStruggleCount = %d, want %d preserved", got.KeywordStruggleCount, s.KeywordStruggleCount)
	}
	if got.EffectiveLevel() != s.EffectiveLevel() {
		t.Errorf("EffectiveLevel = %d, want %d preserved", got.EffectiveLevel(), s.EffectiveLevel())
	}
	if got.TurnCount != s.TurnCount+1 {
		t.Errorf("TurnCount = %d, want %d: the turn itself still counts", got.TurnCount, s.TurnCount+1)
	}
}

func TestAdvance_ExplicitCompletion(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "x = 4", ProblemCompleted: true}, o)
	if !s.Completed {
		t.Error("explicit completion signal must terminate the state")
	}

	// Further turns are no-ops.
	after := Advance(s, TurnEvent{Text: "hello?"}, o)
	if after.TurnCount != s.TurnCount {
		t.Error("completed state must not advance")
	}
}

func TestAdvance_PureTransition(t *testing.T) {
	o := testOutline()
	original := State{TurnCount: 3, KeywordStruggleCount: 1}
	_ = Advance(original, TurnEvent{Text: "I give up"}, o)

	if original.TurnCount != 3 || original.KeywordStruggleCount != 1 {
		t.Error("Advance must not mutate its input state")
	}
}

func TestAdvance_HintsShownCountsEscalations(t *testing.T) {
	o := testOutline()
	s := Advance(State{}, TurnEvent{Text: "stuck"}, o)       // level 1
	s = Advance(s, TurnEvent{Text: "still stuck"}, o)        // level 2
	s = Advance(s, TurnEvent{Text: "ok let me try that"}, o) // stays 2
	s = Advance(s, TurnEvent{Text: "no idea"}, o)            // level 3

	if s.HintsShown != 3 {
		t.Errorf("HintsShown = %d, want 3", s.HintsShown)
	}
}

func TestOutcome_FeedsMasteryClassifier(t *testing.T) {
	o := testOutline()
	s := State{TurnCount: 4, HintsShown: 0, Completed: true}

	a := s.Outcome(o, 0, 0)
	if a.TurnsTaken != 4 || a.StepCount != 2 {
		t.Errorf("Outcome = %+v, want turns 4 steps 2", a)
	}
	if a.Struggle != nil {
		t.Error("no struggle data expected for a clean solve")
	}
	if got := mastery.Classify(a); got != mastery.LevelMastered {
		t.Errorf("Classify(Outcome) = %s, want mastered (efficiency 1.0)", got)
	}
}

func TestOutcome_CarriesStruggleData(t *testing.T) {
	o := testOutline()
	s := State{TurnCount: 4, HintsShown: 2, Completed: true}

	a := s.Outcome(o, 1, 0)
	if a.Struggle == nil {
		t.Fatal("expected struggle data")
	}
	// penalty = 0.15*2 + 0.20*1 = 0.5 → downgrade mastered to competent.
	if got := mastery.Classify(a); got != mastery.LevelCompetent {
		t.Errorf("Classify(Outcome) = %s, want competent", got)
	}
}

func TestOutline_Validate(t *testing.T) {
	if err := testOutline().Validate(); err != nil {
		t.Errorf("valid outline rejected: %v", err)
	}

	var nilOutline *Outline
	if err := nilOutline.Validate(); err == nil {
		t.Error("nil outline should fail validation")
	}

	missing := testOutline()
	missing.Approaches[0].Steps[1].Hints[2] = ""
	if err := missing.Validate(); err == nil {
		t.Error("outline with a missing hint should fail validation")
	}
}
