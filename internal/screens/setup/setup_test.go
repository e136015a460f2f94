package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/config"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/submit"
)

func testScreen() (*Screen, *session.Tracker) {
	tracker := session.NewTracker(session.Hooks{})
	coordinator := submit.NewCoordinator(nil)
	cat := catalog.Load(config.Defaults())
	s := New(tracker, coordinator, cat, []string{"W domu", "W szkole"})
	s.Init()
	return s, tracker
}

func pressEnter(s *Screen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func pressEsc(s *Screen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	return cmd
}

func TestSetupInitOpensConfiguring(t *testing.T) {
	_, tracker := testScreen()
	if got := tracker.State(); got != session.StateConfiguring {
		t.Errorf("state after Init = %v, want %v", got, session.StateConfiguring)
	}
}

func TestSetupWalksStepsAndStartsSession(t *testing.T) {
	s, tracker := testScreen()

	pressEnter(s) // subject
	if s.step != stepLocation {
		t.Fatalf("step after subject = %d, want %d", s.step, stepLocation)
	}
	pressEnter(s) // location
	if s.step != stepNotes {
		t.Fatalf("step after location = %d, want %d", s.step, stepNotes)
	}
	cmd := pressEnter(s) // notes, starts the session
	if cmd == nil {
		t.Fatal("expected a replace command after the last step")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("cmd message = %T, want router.ReplaceScreenMsg", cmd())
	}
	if got := tracker.State(); got != session.StateActive {
		t.Errorf("state after setup = %v, want %v", got, session.StateActive)
	}
}

func TestSetupSelectedSubjectIsRecorded(t *testing.T) {
	s, tracker := testScreen()

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	pressEnter(s)
	pressEnter(s)
	pressEnter(s)

	snap, ok := tracker.Snapshot()
	if !ok {
		t.Fatal("expected a session snapshot")
	}
	if snap.Subject != s.subjectNames[1] {
		t.Errorf("subject = %q, want %q", snap.Subject, s.subjectNames[1])
	}
}

func TestSetupEscSteppingBack(t *testing.T) {
	s, _ := testScreen()

	pressEnter(s)
	pressEsc(s)
	if s.step != stepSubject {
		t.Errorf("step after esc = %d, want %d", s.step, stepSubject)
	}
}

func TestSetupEscOnFirstStepCancels(t *testing.T) {
	s, tracker := testScreen()

	cmd := pressEsc(s)
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("cmd message = %T, want router.PopScreenMsg", cmd())
	}
	if got := tracker.State(); got != session.StateUnconfigured {
		t.Errorf("state after cancel = %v, want %v", got, session.StateUnconfigured)
	}
}

func TestSetupViewRenders(t *testing.T) {
	s, _ := testScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty setup view")
	}
}
