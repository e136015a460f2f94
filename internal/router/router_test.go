package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/screen"
)

// stubScreen is a minimal Screen for router tests.
type stubScreen struct {
	name    string
	inited  bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	setup := &stubScreen{name: "setup"}
	r.Update(PushScreenMsg{Screen: setup})

	if r.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", r.Depth())
	}
	if !setup.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active() != screen.Screen(setup) {
		t.Error("active screen is not the pushed one")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != screen.Screen(home) {
		t.Error("pop did not restore previous screen")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active() != screen.Screen(home) {
		t.Error("home screen lost after pops")
	}
}

func TestReplace(t *testing.T) {
	home := &stubScreen{name: "home"}
	setup := &stubScreen{name: "setup"}
	active := &stubScreen{name: "active"}

	r := New(home)
	r.Update(PushScreenMsg{Screen: setup})
	r.Update(ReplaceScreenMsg{Screen: active})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 (replace must not grow the stack)", r.Depth())
	}
	if !active.inited {
		t.Error("replacement screen was not initialized")
	}
	if r.Active() != screen.Screen(active) {
		t.Error("active screen is not the replacement")
	}

	// Popping lands back on home, not setup.
	r.Update(PopScreenMsg{})
	if r.Active() != screen.Screen(home) {
		t.Error("pop after replace should land on home")
	}
}

func TestPopToRoot(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "a"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "b"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "c"}})

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active() != screen.Screen(home) {
		t.Error("root is not home")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{name: "home"}
	top := &stubScreen{name: "top"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: top})

	type customMsg struct{}
	r.Update(customMsg{})

	if _, ok := top.lastMsg.(customMsg); !ok {
		t.Error("message was not forwarded to the active screen")
	}
	if home.lastMsg != nil {
		t.Error("message leaked to an inactive screen")
	}
}
