package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmaDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"/tmp/tutoriz.db",
			"file:/tmp/tutoriz.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		},
		{
			"file::memory:?cache=shared",
			"file::memory:?cache=shared&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		},
	}
	for _, tt := range tests {
		if got := pragmaDSN(tt.in); got != tt.want {
			t.Errorf("pragmaDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPragmasAppliedPerConnection(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Schedules: &ScheduleSnapshotData{
				Schedules: map[string]*ScheduleData{
					"linear-equations": {
						Topic:        "linear-equations",
						Strength:     0.7,
						ReviewCount:  2,
						EaseFactor:   2.6,
						IntervalDays: 6,
						LastReviewed: now.Format(time.RFC3339),
						NextReview:   now.AddDate(0, 0, 6).Format(time.RFC3339),
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Schedules == nil {
		t.Fatal("expected schedules in snapshot data")
	}
	sd := snap.Data.Schedules.Schedules["linear-equations"]
	if sd == nil {
		t.Fatal("expected linear-equations schedule")
	}
	if sd.EaseFactor != 2.6 || sd.IntervalDays != 6 || sd.ReviewCount != 2 {
		t.Errorf("schedule round-trip mismatch: %+v", sd)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotOrderFollowsSequenceNotClock(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Same wall-clock time for all three; only the log position differs.
	now := time.Now().UTC().Truncate(time.Second)
	for _, seq := range []int64{5, 9, 7} {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  seq,
			Timestamp: now,
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save seq %d: %v", seq, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 9 {
		t.Errorf("latest sequence = %d, want 9", snap.Sequence)
	}

	if err := repo.Prune(ctx, 1); err != nil {
		t.Fatalf("prune: %v", err)
	}
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("remaining snapshots = %d, want 1", count)
	}
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap.Sequence != 9 {
		t.Errorf("survivor sequence = %d, want 9", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptEventQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{Topic: "linear-equations", ProblemText: "a", TurnsTaken: 4, Level: "mastered"},
		{Topic: "geometry", ProblemText: "b", TurnsTaken: 9, Level: "competent"},
		{Topic: "linear-equations", ProblemText: "c", TurnsTaken: 12, Level: "struggling"},
	}
	for i, a := range attempts {
		if err := repo.AppendAttemptEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := repo.AttemptCount(ctx, "linear-equations")
	if err != nil {
		t.Fatalf("attempt count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	levels, err := repo.RecentAttemptLevels(ctx, "linear-equations", 10)
	if err != nil {
		t.Fatalf("recent levels: %v", err)
	}
	if len(levels) != 2 || levels[0] != "struggling" || levels[1] != "mastered" {
		t.Errorf("levels = %v, want [struggling mastered] (most recent first)", levels)
	}

	recent, err := repo.RecentAttemptTopics(ctx, 2)
	if err != nil {
		t.Fatalf("recent topics: %v", err)
	}
	if len(recent) != 2 || recent[0] != "linear-equations" || recent[1] != "geometry" {
		t.Errorf("recent = %v, want [linear-equations geometry]", recent)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
