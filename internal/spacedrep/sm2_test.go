package spacedrep

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/topics"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestNextSchedule_FirstAttemptMastered(t *testing.T) {
	s := NextSchedule(nil, topics.TopicLinearEquations, mastery.LevelMastered, testNow)

	if got := s.EaseFactor; math.Abs(got-2.6) > 1e-9 {
		t.Errorf("EaseFactor = %f, want 2.6", got)
	}
	if s.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", s.ReviewCount)
	}
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if !s.NextReview.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("NextReview = %v, want next day", s.NextReview)
	}
	// strength = 0.5*0.7 + 1.0*0.3 = 0.65
	if math.Abs(s.Strength-0.65) > 1e-9 {
		t.Errorf("Strength = %f, want 0.65", s.Strength)
	}
}

func TestNextSchedule_LadderThenLapse(t *testing.T) {
	// First success: interval 1.
	s1 := NextSchedule(nil, topics.TopicCalculus, mastery.LevelMastered, testNow)

	// Second success: interval 6.
	s2 := NextSchedule(&s1, topics.TopicCalculus, mastery.LevelMastered, testNow.AddDate(0, 0, 1))
	if s2.IntervalDays != 6 {
		t.Errorf("second review IntervalDays = %d, want 6", s2.IntervalDays)
	}
	if s2.ReviewCount != 2 {
		t.Errorf("second review ReviewCount = %d, want 2", s2.ReviewCount)
	}

	// Third attempt is a lapse: interval and count reset.
	s3 := NextSchedule(&s2, topics.TopicCalculus, mastery.LevelStruggling, testNow.AddDate(0, 0, 7))
	if s3.IntervalDays != 1 {
		t.Errorf("lapse IntervalDays = %d, want 1", s3.IntervalDays)
	}
	if s3.ReviewCount != 0 {
		t.Errorf("lapse ReviewCount = %d, want 0", s3.ReviewCount)
	}
}

func TestNextSchedule_ThirdSuccessGrowsInterval(t *testing.T) {
	s1 := NextSchedule(nil, topics.TopicGeometry, mastery.LevelMastered, testNow)
	s2 := NextSchedule(&s1, topics.TopicGeometry, mastery.LevelMastered, testNow)
	s3 := NextSchedule(&s2, topics.TopicGeometry, mastery.LevelMastered, testNow)

	// ease after three mastered reviews: 2.5 + 0.1*3 = 2.8; round(6*2.8) = 17.
	if s3.IntervalDays != 17 {
		t.Errorf("third review IntervalDays = %d, want 17", s3.IntervalDays)
	}
	if s3.IntervalDays < s2.IntervalDays {
		t.Error("interval must not shrink on success")
	}
}

func TestNextSchedule_CompetentKeepsProgress(t *testing.T) {
	s1 := NextSchedule(nil, topics.TopicFunctions, mastery.LevelCompetent, testNow)
	if s1.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1 (quality 3 is a pass)", s1.ReviewCount)
	}
	// ease: 2.5 + (0.1 - 2*(0.08+2*0.02)) = 2.36
	if math.Abs(s1.EaseFactor-2.36) > 1e-9 {
		t.Errorf("EaseFactor = %f, want 2.36", s1.EaseFactor)
	}
}

func TestNextSchedule_EaseFloorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	levels := []mastery.Level{mastery.LevelMastered, mastery.LevelCompetent, mastery.LevelStruggling}

	s := NextSchedule(nil, topics.TopicInequalities, mastery.LevelStruggling, testNow)
	for i := 0; i < 500; i++ {
		s = NextSchedule(&s, topics.TopicInequalities, levels[rng.Intn(len(levels))], testNow)
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("iteration %d: EaseFactor = %f below floor", i, s.EaseFactor)
		}
	}
}

func TestNextSchedule_StrengthBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	levels := []mastery.Level{mastery.LevelMastered, mastery.LevelCompetent, mastery.LevelStruggling}

	for i := 0; i < 500; i++ {
		prev := Schedule{
			Topic:        topics.TopicPolynomials,
			Strength:     rng.Float64()*4 - 2, // deliberately out of range
			ReviewCount:  rng.Intn(20),
			EaseFactor:   rng.Float64() * 4,
			IntervalDays: rng.Intn(60),
		}
		s := NextSchedule(&prev, topics.TopicPolynomials, levels[rng.Intn(len(levels))], testNow)
		if s.Strength < 0 || s.Strength > 1 {
			t.Fatalf("Strength = %f out of [0,1]", s.Strength)
		}
	}
}

func TestNextSchedule_ResetOnFailureProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		prev := Schedule{
			Topic:        topics.TopicTrigonometry,
			Strength:     rng.Float64(),
			ReviewCount:  rng.Intn(30),
			EaseFactor:   1.3 + rng.Float64()*2,
			IntervalDays: 1 + rng.Intn(90),
		}
		s := NextSchedule(&prev, topics.TopicTrigonometry, mastery.LevelStruggling, testNow)
		if s.IntervalDays != 1 || s.ReviewCount != 0 {
			t.Fatalf("lapse did not reset: interval=%d count=%d", s.IntervalDays, s.ReviewCount)
		}
	}
}

func TestNextSchedule_ClampsCorruptedState(t *testing.T) {
	corrupt := Schedule{
		Topic:        topics.TopicWordProblems,
		Strength:     3.5,
		ReviewCount:  -4,
		EaseFactor:   0.5,
		IntervalDays: -10,
	}
	s := NextSchedule(&corrupt, topics.TopicWordProblems, mastery.LevelMastered, testNow)
	if s.EaseFactor < MinEaseFactor {
		t.Errorf("EaseFactor = %f, want >= %f after clamp", s.EaseFactor, MinEaseFactor)
	}
	if s.Strength < 0 || s.Strength > 1 {
		t.Errorf("Strength = %f out of bounds", s.Strength)
	}
	if s.IntervalDays < 1 {
		t.Errorf("IntervalDays = %d, want >= 1", s.IntervalDays)
	}
}

func TestQualityFor(t *testing.T) {
	if QualityFor(mastery.LevelMastered) != 5 {
		t.Error("mastered should map to quality 5")
	}
	if QualityFor(mastery.LevelCompetent) != 3 {
		t.Error("competent should map to quality 3")
	}
	if QualityFor(mastery.LevelStruggling) != 1 {
		t.Error("struggling should map to quality 1")
	}
	if QualityFor(mastery.Level("bogus")) != 1 {
		t.Error("unrecognized level should map to quality 1")
	}
}

func TestSchedule_DueAndOverdue(t *testing.T) {
	s := Schedule{NextReview: testNow}
	if !s.IsDue(testNow) {
		t.Error("schedule should be due at its review time")
	}
	if s.IsDue(testNow.Add(-time.Hour)) {
		t.Error("schedule should not be due before its review time")
	}
	if got := s.OverdueDays(testNow.AddDate(0, 0, 3)); math.Abs(got-3) > 1e-9 {
		t.Errorf("OverdueDays = %f, want 3", got)
	}
	if got := s.OverdueDays(testNow.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays = %f, want 0 before due", got)
	}
}
