package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/config"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/submit"
)

func testScreen() *Screen {
	tracker := session.NewTracker(session.Hooks{})
	coordinator := submit.NewCoordinator(nil)
	cat := catalog.Load(config.Defaults())
	return New(tracker, coordinator, cat, nil, []string{"W domu"})
}

func TestHomeEnterPushesSetup(t *testing.T) {
	s := testScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("cmd message = %T, want router.PushScreenMsg", cmd())
	}
}

func TestHomeQuitItem(t *testing.T) {
	s := testScreen()

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd message = %T, want tea.QuitMsg", cmd())
	}
}

func TestHomeViewRenders(t *testing.T) {
	s := testScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty home view")
	}
}
