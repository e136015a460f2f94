package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/store"
	"github.com/szymonw/studylog/internal/submit"
)

type fakeWriter struct {
	tasks     []store.TaskRecord
	summaries []store.SessionRecord
	failTasks bool
}

func (w *fakeWriter) WriteTask(_ context.Context, rec store.TaskRecord) error {
	if w.failTasks {
		return errors.New("sheet unavailable")
	}
	w.tasks = append(w.tasks, rec)
	return nil
}

func (w *fakeWriter) WriteSessionSummary(_ context.Context, rec store.SessionRecord) error {
	w.summaries = append(w.summaries, rec)
	return nil
}

func finishedTracker(t *testing.T) *session.Tracker {
	t.Helper()
	tracker := session.NewTracker(session.Hooks{})
	if err := tracker.OpenSetup(); err != nil {
		t.Fatalf("OpenSetup: %v", err)
	}
	if err := tracker.Configure("Fizyka", "Biblioteka", ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if _, err := tracker.RecordTask("Zadanie 1", "", []string{"Kinematyka"}, true); err != nil {
		t.Fatalf("RecordTask: %v", err)
	}
	if _, err := tracker.RecordTask("Zadanie 2", "", []string{"Kinematyka"}, false); err != nil {
		t.Fatalf("RecordTask: %v", err)
	}
	if err := tracker.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return tracker
}

func testScreen(t *testing.T, w store.Writer) (*Screen, *session.Tracker) {
	t.Helper()
	tracker := finishedTracker(t)
	return New(tracker, submit.NewCoordinator(w)), tracker
}

func pressEnter(s *Screen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestSubmitSuccessMarksSessionSubmitted(t *testing.T) {
	w := &fakeWriter{}
	s, tracker := testScreen(t, w)

	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if s.phase != phaseSending {
		t.Fatalf("phase = %d, want %d", s.phase, phaseSending)
	}

	s.Update(cmd())
	if s.phase != phaseDone {
		t.Fatalf("phase = %d, want %d", s.phase, phaseDone)
	}
	if len(w.tasks) != 2 || len(w.summaries) != 1 {
		t.Errorf("wrote %d tasks, %d summaries, want 2 and 1", len(w.tasks), len(w.summaries))
	}
	if got := tracker.State(); got != session.StateSubmitted {
		t.Errorf("tracker state = %v, want %v", got, session.StateSubmitted)
	}
}

func TestSubmitFailureKeepsSessionForRetry(t *testing.T) {
	w := &fakeWriter{failTasks: true}
	s, tracker := testScreen(t, w)

	cmd := pressEnter(s)
	s.Update(cmd())

	if s.phase != phaseReview {
		t.Fatalf("phase = %d, want %d", s.phase, phaseReview)
	}
	if !s.failed {
		t.Error("expected the failure flag")
	}
	if got := tracker.State(); got != session.StateFinished {
		t.Errorf("tracker state = %v, want %v", got, session.StateFinished)
	}
}

func TestSubmitRetrySucceedsAfterFailure(t *testing.T) {
	w := &fakeWriter{failTasks: true}
	s, tracker := testScreen(t, w)

	s.Update(pressEnter(s)())
	w.failTasks = false
	s.Update(pressEnter(s)())

	if s.phase != phaseDone {
		t.Fatalf("phase = %d, want %d", s.phase, phaseDone)
	}
	if got := tracker.State(); got != session.StateSubmitted {
		t.Errorf("tracker state = %v, want %v", got, session.StateSubmitted)
	}
}

func TestEnterAfterSuccessPopsToRoot(t *testing.T) {
	s, _ := testScreen(t, &fakeWriter{})

	s.Update(pressEnter(s)())
	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("cmd message = %T, want router.PopToRootMsg", cmd())
	}
}

func TestDiscardRequiresConfirmation(t *testing.T) {
	s, tracker := testScreen(t, &fakeWriter{})

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	pressEnter(s)
	if s.phase != phaseConfirmDiscard {
		t.Fatalf("phase = %d, want %d", s.phase, phaseConfirmDiscard)
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.phase != phaseReview {
		t.Fatal("declining should return to review")
	}
	if got := tracker.State(); got != session.StateFinished {
		t.Errorf("tracker state = %v, want %v", got, session.StateFinished)
	}
}

func TestDiscardConfirmedDropsSession(t *testing.T) {
	s, tracker := testScreen(t, &fakeWriter{})

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	pressEnter(s)
	cmd := func() tea.Cmd {
		_, c := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
		return c
	}()
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("cmd message = %T, want router.PopToRootMsg", cmd())
	}
	if got := tracker.State(); got != session.StateDiscarded {
		t.Errorf("tracker state = %v, want %v", got, session.StateDiscarded)
	}
}

func TestInProgressOutcomeKeepsReview(t *testing.T) {
	s, _ := testScreen(t, &fakeWriter{})

	s.Update(outcomeMsg{err: submit.ErrInProgress})
	if s.phase != phaseReview {
		t.Errorf("phase = %d, want %d", s.phase, phaseReview)
	}
}

func TestSummaryViewRenders(t *testing.T) {
	s, _ := testScreen(t, &fakeWriter{})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty summary view")
	}
	if s.sess.Subject != "Fizyka" {
		t.Errorf("snapshot subject = %q, want %q", s.sess.Subject, "Fizyka")
	}
}

func TestSnapshotDurationExcludesPause(t *testing.T) {
	clock := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	tracker := session.NewTrackerWithClock(session.Hooks{}, func() time.Time { return clock })

	tracker.OpenSetup()
	tracker.Configure("Matematyka", "W domu", "")
	clock = clock.Add(10 * time.Minute)
	tracker.Pause()
	clock = clock.Add(5 * time.Minute)
	tracker.Resume()
	clock = clock.Add(10 * time.Minute)
	tracker.RecordTask("Zadanie 1", "", []string{"Funkcje"}, true)
	tracker.Finish()

	s := New(tracker, submit.NewCoordinator(&fakeWriter{}))
	if got := s.sess.ActiveDuration(); got != 20*time.Minute {
		t.Errorf("ActiveDuration = %v, want %v", got, 20*time.Minute)
	}
}
