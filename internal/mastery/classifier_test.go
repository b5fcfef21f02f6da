package mastery

import "testing"

func TestClassify_StepBased(t *testing.T) {
	tests := []struct {
		name  string
		turns int
		steps int
		want  Level
	}{
		{"perfect efficiency", 4, 2, LevelMastered},
		{"exactly at mastered threshold", 5, 2, LevelMastered},
		{"competent band", 7, 2, LevelCompetent},
		{"exactly at competent threshold", 8, 2, LevelCompetent},
		{"slow attempt", 10, 2, LevelStruggling},
		{"long outline solved quickly", 6, 4, LevelMastered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(Attempt{TurnsTaken: tt.turns, StepCount: tt.steps})
			if got != tt.want {
				t.Errorf("Classify(turns=%d, steps=%d) = %s, want %s", tt.turns, tt.steps, got, tt.want)
			}
		})
	}
}

func TestClassify_BasicFallback(t *testing.T) {
	tests := []struct {
		turns int
		want  Level
	}{
		{1, LevelMastered},
		{5, LevelMastered},
		{6, LevelCompetent},
		{10, LevelCompetent},
		{11, LevelStruggling},
		{30, LevelStruggling},
	}

	for _, tt := range tests {
		got := Classify(Attempt{TurnsTaken: tt.turns})
		if got != tt.want {
			t.Errorf("Classify(turns=%d) = %s, want %s", tt.turns, got, tt.want)
		}
	}
}

func TestClassify_StruggleDowngrade(t *testing.T) {
	// penalty = 0.15*2 + 0.20*1 = 0.5 → one-level downgrade.
	a := Attempt{
		TurnsTaken: 4,
		StepCount:  2, // base mastered
		Struggle:   &StruggleData{HintsRequested: 2, IncorrectAttempts: 1},
	}
	if got := Classify(a); got != LevelCompetent {
		t.Errorf("Classify = %s, want competent after one-level downgrade", got)
	}
}

func TestClassify_StruggleForcesStruggling(t *testing.T) {
	// penalty = 0.15*2 + 0.20*2 = 0.7 ≥ 0.6 → struggling regardless of base.
	a := Attempt{
		TurnsTaken: 4,
		StepCount:  2,
		Struggle:   &StruggleData{HintsRequested: 2, IncorrectAttempts: 2},
	}
	if got := Classify(a); got != LevelStruggling {
		t.Errorf("Classify = %s, want struggling when penalty >= 0.6", got)
	}
}

func TestClassify_LowPenaltyKeepsBase(t *testing.T) {
	// penalty = 0.15 + 0.10 = 0.25 < 0.3 → base result unchanged.
	a := Attempt{
		TurnsTaken: 4,
		StepCount:  2,
		Struggle:   &StruggleData{HintsRequested: 1, ClarificationRequests: 1},
	}
	if got := Classify(a); got != LevelMastered {
		t.Errorf("Classify = %s, want mastered when penalty < 0.3", got)
	}
}

func TestClassify_StrugglingStaysStruggling(t *testing.T) {
	a := Attempt{
		TurnsTaken: 12,
		StepCount:  2, // base struggling
		Struggle:   &StruggleData{HintsRequested: 3},
	}
	if got := Classify(a); got != LevelStruggling {
		t.Errorf("Classify = %s, want struggling", got)
	}
}

func TestClassify_InvalidTurnsDegrades(t *testing.T) {
	for _, turns := range []int{0, -1, -100} {
		if got := Classify(Attempt{TurnsTaken: turns}); got != LevelStruggling {
			t.Errorf("Classify(turns=%d) = %s, want struggling for invalid input", turns, got)
		}
	}
}

func TestStrugglePenalty_CappedAtOne(t *testing.T) {
	p := StrugglePenalty(StruggleData{HintsRequested: 10, IncorrectAttempts: 10, ClarificationRequests: 10})
	if p != 1.0 {
		t.Errorf("StrugglePenalty = %f, want cap at 1.0", p)
	}
}

func TestDowngrade(t *testing.T) {
	if Downgrade(LevelMastered) != LevelCompetent {
		t.Error("mastered should downgrade to competent")
	}
	if Downgrade(LevelCompetent) != LevelStruggling {
		t.Error("competent should downgrade to struggling")
	}
	if Downgrade(LevelStruggling) != LevelStruggling {
		t.Error("struggling should stay struggling")
	}
}
