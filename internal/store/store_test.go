package store

import (
	"context"
	"testing"
	"time"

	"github.com/szymonw/studylog/ent/studytask"
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

func testTaskRecord(order int) TaskRecord {
	base := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	return TaskRecord{
		TaskID:             "task-" + string(rune('a'+order)),
		SessionID:          "sess-1",
		Name:               "Zadanie 00" + string(rune('0'+order)),
		Categories:         []string{"Równania"},
		CorrectlyCompleted: order%2 == 0,
		Order:              order,
		Subject:            "Matematyka",
		Location:           "W domu",
		StartTime:          base,
		EndTime:            base.Add(3 * time.Minute),
	}
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
		// so journal_mode is only meaningful with file-based DBs.
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

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"study_tasks", "study_sessions"} {
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

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestLedgerWriteTask(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ledger, err := s.Ledger()
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}

	rec := testTaskRecord(1)
	if err := ledger.WriteTask(ctx, rec); err != nil {
		t.Fatalf("write task: %v", err)
	}

	got, err := s.Client().StudyTask.Query().
		Where(studytask.TaskID(rec.TaskID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.TaskName != rec.Name {
		t.Errorf("task_name = %q, want %q", got.TaskName, rec.Name)
	}
	if got.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", got.Sequence)
	}
	if len(got.Categories) != 1 || got.Categories[0] != "Równania" {
		t.Errorf("categories = %v, want [Równania]", got.Categories)
	}
	if got.Description != "" {
		t.Errorf("description = %q, want empty", got.Description)
	}
}

func TestLedgerSequenceInterleavesRecordTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ledger, err := s.Ledger()
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}

	for i := 1; i <= 2; i++ {
		if err := ledger.WriteTask(ctx, testTaskRecord(i)); err != nil {
			t.Fatalf("write task %d: %v", i, err)
		}
	}

	summary := SessionRecord{
		SessionID:       "sess-1",
		Subject:         "Matematyka",
		Location:        "W domu",
		StartTime:       time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 3, 14, 16, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		TotalTasks:      2,
		CorrectTasks:    1,
		AccuracyPercent: 50,
	}
	if err := ledger.WriteSessionSummary(ctx, summary); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	// The roll-up is written last, so it must sort after both tasks.
	sess, err := s.Client().StudySession.Query().Only(ctx)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if sess.Sequence != 3 {
		t.Errorf("summary sequence = %d, want 3", sess.Sequence)
	}
}

func TestPurge(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ledger, err := s.Ledger()
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if err := ledger.WriteTask(ctx, testTaskRecord(1)); err != nil {
		t.Fatalf("write task: %v", err)
	}

	if err := s.Purge(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}

	count, err := s.Client().StudyTask.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("tasks after purge = %d, want 0", count)
	}

	// A fresh ledger restarts the sequence from 1.
	ledger, err = s.Ledger()
	if err != nil {
		t.Fatalf("ledger after purge: %v", err)
	}
	if err := ledger.WriteTask(ctx, testTaskRecord(2)); err != nil {
		t.Fatalf("write after purge: %v", err)
	}
	got, err := s.Client().StudyTask.Query().Only(ctx)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Sequence != 1 {
		t.Errorf("sequence after purge = %d, want 1", got.Sequence)
	}
}

func TestSubjectBreakdown(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ledger, err := s.Ledger()
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}

	base := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	records := []SessionRecord{
		{SessionID: "s1", Subject: "Matematyka", Location: "W domu", StartTime: base, EndTime: base.Add(30 * time.Minute), DurationMinutes: 30, TotalTasks: 4, CorrectTasks: 3, AccuracyPercent: 75},
		{SessionID: "s2", Subject: "Fizyka", Location: "W szkole", StartTime: base.Add(time.Hour), EndTime: base.Add(90 * time.Minute), DurationMinutes: 30, TotalTasks: 2, CorrectTasks: 2, AccuracyPercent: 100},
		{SessionID: "s3", Subject: "Matematyka", Location: "W domu", StartTime: base.Add(2 * time.Hour), EndTime: base.Add(150 * time.Minute), DurationMinutes: 30, TotalTasks: 2, CorrectTasks: 0, AccuracyPercent: 0},
	}
	for _, rec := range records {
		if err := ledger.WriteSessionSummary(ctx, rec); err != nil {
			t.Fatalf("write %s: %v", rec.SessionID, err)
		}
	}

	stats, err := s.SubjectBreakdown(ctx)
	if err != nil {
		t.Fatalf("subject breakdown: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("subjects = %d, want 2", len(stats))
	}

	// Sorted by subject name.
	if stats[0].Subject != "Fizyka" || stats[1].Subject != "Matematyka" {
		t.Fatalf("order = [%s, %s], want [Fizyka, Matematyka]", stats[0].Subject, stats[1].Subject)
	}

	math := stats[1]
	if math.Sessions != 2 {
		t.Errorf("sessions = %d, want 2", math.Sessions)
	}
	if math.TotalTasks != 6 || math.CorrectTasks != 3 {
		t.Errorf("tasks = %d/%d, want 3/6 correct", math.CorrectTasks, math.TotalTasks)
	}
	if math.AccuracyPercent != 50 {
		t.Errorf("accuracy = %d, want 50", math.AccuracyPercent)
	}
	if math.StudyMinutes != 60 {
		t.Errorf("minutes = %d, want 60", math.StudyMinutes)
	}
	if !math.LastStudied.Equal(base.Add(150 * time.Minute)) {
		t.Errorf("last studied = %v, want %v", math.LastStudied, base.Add(150*time.Minute))
	}
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ledger, err := s.Ledger()
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}

	base := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := SessionRecord{
			SessionID:       "s" + string(rune('1'+i)),
			Subject:         "Matematyka",
			Location:        "W domu",
			StartTime:       base.Add(time.Duration(i) * time.Hour),
			EndTime:         base.Add(time.Duration(i)*time.Hour + 30*time.Minute),
			DurationMinutes: 30,
		}
		if err := ledger.WriteSessionSummary(ctx, rec); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	recent, err := s.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].SessionID != "s3" || recent[1].SessionID != "s2" {
		t.Errorf("order = [%s, %s], want [s3, s2]", recent[0].SessionID, recent[1].SessionID)
	}
}
