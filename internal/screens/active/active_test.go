package active

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/config"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/submit"
)

func testScreen(t *testing.T) (*Screen, *session.Tracker) {
	t.Helper()
	tracker := session.NewTracker(session.Hooks{})
	if err := tracker.OpenSetup(); err != nil {
		t.Fatalf("OpenSetup: %v", err)
	}
	if err := tracker.Configure("Matematyka", "W domu", ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	cat := catalog.Load(config.Defaults())
	s := New(tracker, submit.NewCoordinator(nil), cat, "Matematyka")
	s.Init()
	return s, tracker
}

func press(s *Screen, code rune) {
	s.Update(tea.KeyPressMsg{Code: code, Text: string(code)})
}

func pressKey(s *Screen, key tea.Key) {
	s.Update(tea.KeyPressMsg(key))
}

func typeText(s *Screen, text string) {
	for _, r := range text {
		press(s, r)
	}
}

func TestRecordTaskAddsToSession(t *testing.T) {
	s, tracker := testScreen(t)

	typeText(s, "Zadanie 1")
	pressKey(s, tea.Key{Code: tea.KeyTab}) // description
	pressKey(s, tea.Key{Code: tea.KeyTab}) // categories
	press(s, ' ')                          // toggle first category
	pressKey(s, tea.Key{Code: tea.KeyTab}) // correctness
	typeText(s, "tak")
	pressKey(s, tea.Key{Code: tea.KeyEnter})

	counters := tracker.Counters()
	if counters.Total != 1 {
		t.Fatalf("Total = %d, want 1", counters.Total)
	}
	if counters.Correct != 1 {
		t.Errorf("Correct = %d, want 1", counters.Correct)
	}
	if s.statusIsError {
		t.Errorf("unexpected error status %q", s.status)
	}
}

func TestRecordTaskPrefillsIncrementedName(t *testing.T) {
	s, _ := testScreen(t)

	typeText(s, "Zadanie 1")
	pressKey(s, tea.Key{Code: tea.KeyTab})
	pressKey(s, tea.Key{Code: tea.KeyTab})
	press(s, ' ')
	pressKey(s, tea.Key{Code: tea.KeyTab})
	typeText(s, "tak")
	pressKey(s, tea.Key{Code: tea.KeyEnter})

	if got := s.name.Value(); got != "Zadanie 2" {
		t.Errorf("prefilled name = %q, want %q", got, "Zadanie 2")
	}
	if got := s.correctness.Value(); got != "" {
		t.Errorf("correctness not cleared, got %q", got)
	}
	if s.focus != fieldName {
		t.Errorf("focus = %d, want %d", s.focus, fieldName)
	}
}

func TestRecordTaskRejectsMissingCategories(t *testing.T) {
	s, tracker := testScreen(t)

	typeText(s, "Zadanie 1")
	pressKey(s, tea.Key{Code: tea.KeyTab})
	pressKey(s, tea.Key{Code: tea.KeyTab})
	pressKey(s, tea.Key{Code: tea.KeyTab}) // skip categories
	typeText(s, "tak")
	pressKey(s, tea.Key{Code: tea.KeyEnter})

	if got := tracker.Counters().Total; got != 0 {
		t.Fatalf("Total = %d, want 0", got)
	}
	if !s.statusIsError {
		t.Error("expected a validation error status")
	}
}

func TestPauseResumeToggle(t *testing.T) {
	s, tracker := testScreen(t)

	s.Update(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if got := tracker.State(); got != session.StatePaused {
		t.Fatalf("state = %v, want %v", got, session.StatePaused)
	}
	s.Update(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if got := tracker.State(); got != session.StateActive {
		t.Errorf("state = %v, want %v", got, session.StateActive)
	}
}

func TestTickKeepsRunningWhileActive(t *testing.T) {
	s, _ := testScreen(t)

	_, cmd := s.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected the tick to reschedule while active")
	}
}

func TestTickStopsWhenFinished(t *testing.T) {
	s, tracker := testScreen(t)

	if err := tracker.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	_, cmd := s.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected the tick to stop after finish")
	}
}

func TestEscConfirmsThenFinishes(t *testing.T) {
	s, tracker := testScreen(t)

	pressKey(s, tea.Key{Code: tea.KeyEscape})
	if !s.confirmFinish {
		t.Fatal("expected the finish confirmation")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("cmd message = %T, want router.ReplaceScreenMsg", cmd())
	}
	if got := tracker.State(); got != session.StateFinished {
		t.Errorf("state = %v, want %v", got, session.StateFinished)
	}
}

func TestEscConfirmationCanBeDeclined(t *testing.T) {
	s, tracker := testScreen(t)

	pressKey(s, tea.Key{Code: tea.KeyEscape})
	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.confirmFinish {
		t.Error("confirmation should be dismissed")
	}
	if got := tracker.State(); got != session.StateActive {
		t.Errorf("state = %v, want %v", got, session.StateActive)
	}
}

func TestActiveViewRenders(t *testing.T) {
	s, _ := testScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty active view")
	}
}
