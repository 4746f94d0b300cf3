package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
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

func TestPragmasApplied(t *testing.T) {
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

func TestAttemptEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	events := []AttemptEventData{
		{AttemptID: "a1", AssessmentID: "go-fundamentals", Action: ActionStart, RemainingSecs: 600},
		{AttemptID: "a1", AssessmentID: "go-fundamentals", Action: ActionSubmit, AnsweredCount: 4, RemainingSecs: 120},
		{AttemptID: "a2", AssessmentID: "sql-essentials", Action: ActionStart, RemainingSecs: 480},
	}
	for i, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.ByAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("by attempt: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events for a1 = %d, want 2", len(got))
	}
	if got[0].Action != ActionStart || got[1].Action != ActionSubmit {
		t.Errorf("order = %s, %s, want start then submit", got[0].Action, got[1].Action)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if got[1].AnsweredCount != 4 {
		t.Errorf("answered count = %d, want 4", got[1].AnsweredCount)
	}
}

func TestAttemptEventRecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, AttemptEventData{
			AttemptID:    "a1",
			AssessmentID: "go-fundamentals",
			Action:       ActionStart,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("recent = %d events, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence >= got[i-1].Sequence {
			t.Errorf("not newest first at %d: %d then %d", i, got[i-1].Sequence, got[i].Sequence)
		}
	}
}

func TestAttemptEventForcedSubmit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	err := repo.Append(ctx, AttemptEventData{
		AttemptID:    "a1",
		AssessmentID: "web-apis",
		Action:       ActionSubmit,
		Forced:       true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ByAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("by attempt: %v", err)
	}
	if len(got) != 1 || !got[0].Forced {
		t.Error("expected forced submit event to round-trip")
	}
}

func TestResultSaveAndByAttempt(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	// No result yet.
	res, err := repo.ByAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("by attempt (empty): %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result when none exist")
	}

	err = repo.Save(ctx, ResultData{
		AttemptID:        "a1",
		AssessmentID:     "go-fundamentals",
		AssessmentTitle:  "Go Fundamentals",
		Score:            85,
		CorrectAnswers:   5,
		TotalQuestions:   6,
		SkillBreakdown:   map[string]float64{"goroutines": 50, "slices": 100},
		RecommendedPaths: []string{"concurrency-deep-dive"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	res, err = repo.ByAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("by attempt: %v", err)
	}
	if res == nil {
		t.Fatal("expected non-nil result")
	}
	if res.Score != 85 {
		t.Errorf("score = %d, want 85", res.Score)
	}
	if res.SkillBreakdown["goroutines"] != 50 {
		t.Errorf("goroutines = %v, want 50", res.SkillBreakdown["goroutines"])
	}
	if len(res.RecommendedPaths) != 1 || res.RecommendedPaths[0] != "concurrency-deep-dive" {
		t.Errorf("recommended paths = %v", res.RecommendedPaths)
	}
}

func TestResultDuplicateAttemptRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	data := ResultData{
		AttemptID:       "a1",
		AssessmentID:    "go-fundamentals",
		AssessmentTitle: "Go Fundamentals",
		Score:           70,
		TotalQuestions:  6,
	}
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, data); err == nil {
		t.Fatal("expected duplicate attempt save to fail")
	}
}

func TestResultRecentAndBestScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	scores := []int{60, 90, 75}
	for i, sc := range scores {
		err := repo.Save(ctx, ResultData{
			AttemptID:       "a" + string(rune('1'+i)),
			AssessmentID:    "sql-essentials",
			AssessmentTitle: "SQL Essentials",
			Score:           sc,
			TotalQuestions:  4,
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}
	if recent[0].Score != 75 {
		t.Errorf("newest score = %d, want 75", recent[0].Score)
	}

	best, err := repo.BestScore(ctx, "sql-essentials")
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if best != 90 {
		t.Errorf("best = %d, want 90", best)
	}

	best, err = repo.BestScore(ctx, "never-taken")
	if err != nil {
		t.Fatalf("best score (none): %v", err)
	}
	if best != -1 {
		t.Errorf("best for untaken assessment = %d, want -1", best)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	start, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	for i := 1; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != start+int64(i) {
			t.Errorf("seq = %d, want %d", seq, start+int64(i))
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"attempt_events", "result_records"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
