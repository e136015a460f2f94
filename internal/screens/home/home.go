// Package home is the root menu.
package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/i18n"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/screen"
	"github.com/szymonw/studylog/internal/screens/setup"
	"github.com/szymonw/studylog/internal/screens/stats"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/store"
	"github.com/szymonw/studylog/internal/submit"
	"github.com/szymonw/studylog/internal/ui/components"
	"github.com/szymonw/studylog/internal/ui/layout"
	"github.com/szymonw/studylog/internal/ui/theme"
)

// Screen is the landing menu.
type Screen struct {
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New builds the menu. The dependencies are captured by the menu
// actions so each pushed screen gets what it needs.
func New(tracker *session.Tracker, coordinator *submit.Coordinator, cat *catalog.Catalog, st *store.Store, locations []string) *Screen {
	items := []components.MenuItem{
		{
			Label: i18n.T("HomeNewSession"),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(tracker, coordinator, cat, locations)}
				}
			},
		},
		{
			Label: i18n.T("HomeStats"),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(st)}
				}
			},
		},
		{
			Label:  i18n.T("HomeQuit"),
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
	return &Screen{menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return i18n.T("AppTitle") }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	title := theme.Title.Render(i18n.T("AppTitle"))
	content := title + "\n\n" + s.menu.View()
	return layout.Center(theme.Card.Render(content), width, height)
}
