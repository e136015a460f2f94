// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/i18n"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/screen"
	"github.com/szymonw/studylog/internal/screens/home"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/store"
	"github.com/szymonw/studylog/internal/submit"
	"github.com/szymonw/studylog/internal/ui/layout"
)

// Options carries the assembled dependencies into the TUI.
type Options struct {
	Tracker     *session.Tracker
	Coordinator *submit.Coordinator
	Catalog     *catalog.Catalog
	Store       *store.Store
	Locations   []string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *session.Tracker
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Tracker, opts.Coordinator, opts.Catalog, opts.Store, opts.Locations)
	return AppModel{
		router:  router.New(homeScreen),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update forwards everything except ctrl+c to the active screen. Esc
// is screen-local so that confirm dialogs cannot be skipped past.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStatus shows the running clock and tally while a session is
// live, so they stay visible on every screen.
func (m AppModel) headerStatus() string {
	st := m.tracker.State()
	if st != session.StateActive && st != session.StatePaused {
		return ""
	}

	counters := m.tracker.Counters()
	status := layout.FormatClock(m.tracker.Elapsed()) +
		"  ✓" + strconv.Itoa(counters.Correct) +
		" ✗" + strconv.Itoa(counters.Incorrect)
	if st == session.StatePaused {
		status += "  " + i18n.T("ActivePaused")
	}
	return status
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
