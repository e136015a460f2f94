// Package active is the live recording screen: elapsed clock, counters,
// and the task entry form pre-filled from the defaults resolver.
package active

import (
	"errors"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/i18n"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/screen"
	"github.com/szymonw/studylog/internal/screens/summary"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/submit"
	"github.com/szymonw/studylog/internal/ui/components"
	"github.com/szymonw/studylog/internal/ui/layout"
	"github.com/szymonw/studylog/internal/ui/theme"
)

// tickMsg drives the 1 Hz clock while recording.
type tickMsg time.Time

// form fields, in tab order
const (
	fieldName = iota
	fieldDescription
	fieldCategories
	fieldCorrectness
	fieldCount
)

// Screen is the active recording view.
type Screen struct {
	tracker     *session.Tracker
	coordinator *submit.Coordinator
	cat         *catalog.Catalog

	name        components.TextInput
	description components.TextInput
	categories  components.MultiSelect
	correctness components.TextInput

	focus         int
	status        string
	statusIsError bool
	confirmFinish bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the recording screen for an already-configured session.
func New(tracker *session.Tracker, coordinator *submit.Coordinator, cat *catalog.Catalog, subject string) *Screen {
	var catNames []string
	for _, c := range cat.CategoriesFor(subject) {
		catNames = append(catNames, c.Name)
	}

	s := &Screen{
		tracker:     tracker,
		coordinator: coordinator,
		cat:         cat,
		name:        components.NewTextInput(i18n.T("ActiveTaskName"), 120),
		description: components.NewTextInput(i18n.T("ActiveDescription"), 300),
		categories:  components.NewMultiSelect(catNames),
		correctness: components.NewTextInput(i18n.T("ActiveCorrect")+" / "+i18n.T("ActiveIncorrect"), 20),
	}
	s.applyDefaults()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.name.Focus(), tickCmd())
}

func (s *Screen) Title() string {
	snap, ok := s.tracker.Snapshot()
	if !ok {
		return i18n.T("AppTitle")
	}
	return snap.Subject + " · " + snap.Location
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmFinish {
		return []layout.KeyHint{
			{Key: "Y", Description: i18n.T("Yes")},
			{Key: "N", Description: i18n.T("No")},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Record"},
	}
	if s.tracker.State() == session.StatePaused {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Resume"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Pause"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Finish"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s.forward(msg)
}

func (s *Screen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	st := s.tracker.State()
	if st != session.StateActive && st != session.StatePaused {
		// Session ended elsewhere; let the tick die.
		return s, nil
	}
	s.tracker.Tick(time.Time(msg))
	return s, tickCmd()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmFinish {
		switch key {
		case "y", "Y", "enter":
			return s.finish()
		case "n", "N", "esc":
			s.confirmFinish = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmFinish = true
		return s, nil
	case "ctrl+p":
		if s.tracker.State() == session.StatePaused {
			s.tracker.Resume()
		} else {
			s.tracker.Pause()
		}
		return s, nil
	case "tab":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if s.focus == fieldCorrectness {
			return s.recordTask()
		}
		return s, s.setFocus(s.focus + 1)
	}

	return s.forward(msg)
}

// forward routes a message to the focused form component.
func (s *Screen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldDescription:
		s.description, cmd = s.description.Update(msg)
	case fieldCategories:
		s.categories, cmd = s.categories.Update(msg)
	case fieldCorrectness:
		s.correctness, cmd = s.correctness.Update(msg)
	}
	return s, cmd
}

func (s *Screen) setFocus(f int) tea.Cmd {
	s.name.Blur()
	s.description.Blur()
	s.categories.Blur()
	s.correctness.Blur()

	s.focus = f
	switch f {
	case fieldName:
		return s.name.Focus()
	case fieldDescription:
		return s.description.Focus()
	case fieldCategories:
		s.categories.Focus()
	case fieldCorrectness:
		return s.correctness.Focus()
	}
	return nil
}

// recordTask submits the form to the tracker and re-arms it for the
// next entry.
func (s *Screen) recordTask() (screen.Screen, tea.Cmd) {
	correct := submit.ParseCorrectness(s.correctness.Value())

	_, err := s.tracker.RecordTask(
		s.name.Value(),
		s.description.Value(),
		s.categories.Values(),
		correct,
	)
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			s.status = verr.Error()
		} else {
			s.status = err.Error()
		}
		s.statusIsError = true
		return s, nil
	}

	s.status = i18n.T("ActiveRecorded")
	s.statusIsError = false
	defaults := s.tracker.Defaults()
	if defaults.Hint != nil {
		s.status += " · " + i18n.Td("ActiveAutoIncrement", map[string]any{"To": defaults.Hint.To})
	}

	s.correctness.Reset()
	s.applyDefaults()
	return s, s.setFocus(fieldName)
}

// applyDefaults pre-fills the form from the tracker's defaults. The
// category selection stays as the user left it, matching the defaults'
// carried categories.
func (s *Screen) applyDefaults() {
	defaults := s.tracker.Defaults()
	if defaults.Name != "" {
		s.name.SetValue(defaults.Name)
	}
	if defaults.Description != "" {
		s.description.SetValue(defaults.Description)
	}
}

func (s *Screen) finish() (screen.Screen, tea.Cmd) {
	s.confirmFinish = false
	if err := s.tracker.Finish(); err != nil {
		s.status = err.Error()
		s.statusIsError = true
		return s, nil
	}
	next := summary.New(s.tracker, s.coordinator)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *Screen) View(width, height int) string {
	if s.confirmFinish {
		box := theme.Card.Render(theme.Body.Render(i18n.T("ConfirmFinish")))
		return layout.Center(box, width, height)
	}

	counters := s.tracker.Counters()
	clock := theme.Title.Render(layout.FormatClock(s.tracker.Elapsed()))
	if s.tracker.State() == session.StatePaused {
		clock += "  " + theme.Paused.Render(i18n.T("ActivePaused"))
	}

	tally := theme.Correct.Render("✓ "+strconv.Itoa(counters.Correct)) + "  " +
		theme.Incorrect.Render("✗ "+strconv.Itoa(counters.Incorrect))

	field := func(f int, key, view string) string {
		label := i18n.T(key)
		if s.focus == f {
			return theme.Label.Render(label) + "\n" + view
		}
		return theme.Hint.Render(label) + "\n" + view
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		field(fieldName, "ActiveTaskName", "  "+s.name.View()),
		"",
		field(fieldDescription, "ActiveDescription", "  "+s.description.View()),
		"",
		field(fieldCategories, "ActiveCategories", s.categories.View()),
		field(fieldCorrectness, "ActiveCorrect", "  "+s.correctness.View()),
	)

	var statusLine string
	if s.status != "" {
		if s.statusIsError {
			statusLine = theme.Incorrect.Render(s.status)
		} else {
			statusLine = theme.Correct.Render(s.status)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		clock,
		tally,
		"",
		theme.Card.Render(form),
		statusLine,
	)
	return layout.Center(content, width, height)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
