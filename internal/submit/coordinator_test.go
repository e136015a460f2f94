package submit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/store"
)

// mockWriter records every call and fails the task writes whose order
// appears in failTaskOrders.
type mockWriter struct {
	mu             sync.Mutex
	tasks          []store.TaskRecord
	summaries      []store.SessionRecord
	failTaskOrders map[int]bool
	failSummary    bool

	// blockTask, when set, is received from before the first task write
	// returns. Used to hold a submission in flight.
	blockTask chan struct{}
}

func (m *mockWriter) WriteTask(ctx context.Context, rec store.TaskRecord) error {
	if m.blockTask != nil {
		<-m.blockTask
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTaskOrders[rec.Order] {
		return errors.New("store rejected write")
	}
	m.tasks = append(m.tasks, rec)
	return nil
}

func (m *mockWriter) WriteSessionSummary(ctx context.Context, rec store.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSummary {
		return errors.New("store rejected write")
	}
	m.summaries = append(m.summaries, rec)
	return nil
}

func (m *mockWriter) taskCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func finishedSession(t *testing.T, correct ...bool) session.Session {
	t.Helper()
	start := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	sess, err := session.NewSession("Matematyka", "W domu", "")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	sess.StartTime = start
	for i, c := range correct {
		at := start.Add(time.Duration(i+1) * 5 * time.Minute)
		_, err := sess.AppendTask("Zadanie 1", "", []string{"Równania"}, c, at)
		if err != nil {
			t.Fatalf("append task %d: %v", i, err)
		}
	}
	sess.EndTime = start.Add(30 * time.Minute)
	sess.Paused = 5 * time.Minute
	return *sess
}

func TestSubmitSuccess(t *testing.T) {
	w := &mockWriter{}
	c := NewCoordinator(w)
	sess := finishedSession(t, true, false, true)

	out, err := c.Submit(context.Background(), sess)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Success {
		t.Fatalf("success = false, want true (err: %v)", out.Err)
	}
	if out.TasksPersisted != 3 {
		t.Errorf("tasks persisted = %d, want 3", out.TasksPersisted)
	}
	if !out.SummaryPersisted {
		t.Error("summary persisted = false, want true")
	}
	if len(w.tasks) != 3 || len(w.summaries) != 1 {
		t.Fatalf("writes = %d tasks, %d summaries; want 3 and 1", len(w.tasks), len(w.summaries))
	}

	// Tasks go out in recording order, after which the roll-up follows.
	for i, rec := range w.tasks {
		if rec.Order != i+1 {
			t.Errorf("write %d order = %d, want %d", i, rec.Order, i+1)
		}
	}

	sum := w.summaries[0]
	if sum.TotalTasks != 3 || sum.CorrectTasks != 2 {
		t.Errorf("summary counts = %d/%d, want 2/3 correct", sum.CorrectTasks, sum.TotalTasks)
	}
	if sum.AccuracyPercent != 67 {
		t.Errorf("accuracy = %d, want 67", sum.AccuracyPercent)
	}
	if sum.DurationMinutes != 25 {
		t.Errorf("duration = %d min, want 25 (30 total minus 5 paused)", sum.DurationMinutes)
	}
}

func TestSubmitTaskTimeWindows(t *testing.T) {
	w := &mockWriter{}
	c := NewCoordinator(w)
	sess := finishedSession(t, true, true)

	if _, err := c.Submit(context.Background(), sess); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// First task spans from session start; each later task starts where
	// the previous one ended.
	if !w.tasks[0].StartTime.Equal(sess.StartTime) {
		t.Errorf("task 1 start = %v, want session start %v", w.tasks[0].StartTime, sess.StartTime)
	}
	if !w.tasks[1].StartTime.Equal(w.tasks[0].EndTime) {
		t.Errorf("task 2 start = %v, want task 1 end %v", w.tasks[1].StartTime, w.tasks[0].EndTime)
	}
	if !w.tasks[1].EndTime.Equal(sess.Tasks[1].CreatedAt) {
		t.Errorf("task 2 end = %v, want %v", w.tasks[1].EndTime, sess.Tasks[1].CreatedAt)
	}
}

func TestSubmitStopsAtFirstFailedTask(t *testing.T) {
	w := &mockWriter{failTaskOrders: map[int]bool{2: true}}
	c := NewCoordinator(w)
	sess := finishedSession(t, true, true, true)

	out, err := c.Submit(context.Background(), sess)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Success {
		t.Error("success = true, want false")
	}
	if out.TasksPersisted != 1 {
		t.Errorf("tasks persisted = %d, want 1", out.TasksPersisted)
	}
	if len(w.tasks) != 1 {
		t.Errorf("acknowledged task writes = %d, want 1", len(w.tasks))
	}

	var rwe *RemoteWriteError
	if !errors.As(out.Err, &rwe) {
		t.Fatalf("err = %v, want RemoteWriteError", out.Err)
	}
	if rwe.Order != 2 {
		t.Errorf("failed order = %d, want 2", rwe.Order)
	}

	// The roll-up is still attempted after the failure.
	if len(w.summaries) != 1 {
		t.Errorf("summary writes = %d, want 1", len(w.summaries))
	}
	if !out.SummaryPersisted {
		t.Error("summary persisted = false, want true")
	}
}

func TestSubmitSummaryFailureKeepsSuccess(t *testing.T) {
	w := &mockWriter{failSummary: true}
	c := NewCoordinator(w)
	sess := finishedSession(t, true)

	out, err := c.Submit(context.Background(), sess)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Success {
		t.Error("success = false, want true")
	}
	if out.SummaryPersisted {
		t.Error("summary persisted = true, want false")
	}
	if out.Err == nil {
		t.Error("expected summary write error in outcome")
	}
}

func TestSubmitValidationWritesNothing(t *testing.T) {
	w := &mockWriter{}
	c := NewCoordinator(w)
	sess := finishedSession(t, true, true)
	sess.Tasks[1].Categories = nil

	out, err := c.Submit(context.Background(), sess)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Success {
		t.Error("success = true, want false")
	}
	if len(out.Violations) != 1 {
		t.Fatalf("violations = %v, want one", out.Violations)
	}
	if v := out.Violations[0]; v.Order != 2 || v.Field != "categories" {
		t.Errorf("violation = %+v, want order 2, field categories", v)
	}
	if len(w.tasks) != 0 || len(w.summaries) != 0 {
		t.Errorf("writes = %d tasks, %d summaries; want zero", len(w.tasks), len(w.summaries))
	}
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	w := &mockWriter{blockTask: make(chan struct{})}
	c := NewCoordinator(w)
	sess := finishedSession(t, true, true)

	done := make(chan Outcome, 1)
	go func() {
		out, _ := c.Submit(context.Background(), sess)
		done <- out
	}()

	// Let the first submission reach its first write, then hold it there.
	w.blockTask <- struct{}{}

	if _, err := c.Submit(context.Background(), sess); !errors.Is(err, ErrInProgress) {
		t.Fatalf("second submit err = %v, want ErrInProgress", err)
	}

	// Release the remaining write and wait for the first submission.
	w.blockTask <- struct{}{}
	out := <-done

	if !out.Success {
		t.Fatalf("first submission success = false (err: %v)", out.Err)
	}
	if got := w.taskCalls(); got != 2 {
		t.Errorf("task writes = %d, want 2 (no duplicates)", got)
	}
}

func TestSubmitDifferentSessionsRunIndependently(t *testing.T) {
	w := &mockWriter{}
	c := NewCoordinator(w)

	for _, subj := range []string{"Matematyka", "Fizyka"} {
		sess := finishedSession(t, true)
		sess.Subject = subj
		out, err := c.Submit(context.Background(), sess)
		if err != nil {
			t.Fatalf("submit %s: %v", subj, err)
		}
		if !out.Success {
			t.Fatalf("submit %s failed: %v", subj, out.Err)
		}
	}
	if len(w.summaries) != 2 {
		t.Errorf("summaries = %d, want 2", len(w.summaries))
	}
}
