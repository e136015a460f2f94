// Package setup is the session configuration form: subject, location,
// optional notes.
package setup

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/i18n"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/screen"
	"github.com/szymonw/studylog/internal/screens/active"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/submit"
	"github.com/szymonw/studylog/internal/ui/components"
	"github.com/szymonw/studylog/internal/ui/layout"
	"github.com/szymonw/studylog/internal/ui/theme"
)

// form steps
const (
	stepSubject = iota
	stepLocation
	stepNotes
)

// Screen collects the session parameters before the timer starts.
type Screen struct {
	tracker     *session.Tracker
	coordinator *submit.Coordinator
	cat         *catalog.Catalog

	subjects  components.Menu
	locations components.Menu
	notes     components.TextInput

	subjectNames []string
	locationList []string
	subject      string
	location     string
	step         int
	errMsg       string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the setup form.
func New(tracker *session.Tracker, coordinator *submit.Coordinator, cat *catalog.Catalog, locations []string) *Screen {
	var subjectNames []string
	var subjectItems []components.MenuItem
	for _, s := range cat.Subjects() {
		subjectNames = append(subjectNames, s.Name)
		subjectItems = append(subjectItems, components.MenuItem{Label: s.Icon + "  " + s.Name})
	}

	var locationItems []components.MenuItem
	for _, l := range locations {
		locationItems = append(locationItems, components.MenuItem{Label: l})
	}

	return &Screen{
		tracker:      tracker,
		coordinator:  coordinator,
		cat:          cat,
		subjects:     components.NewMenu(subjectItems),
		locations:    components.NewMenu(locationItems),
		notes:        components.NewTextInput(i18n.T("SetupNotes"), 200),
		subjectNames: subjectNames,
		locationList: locations,
	}
}

func (s *Screen) Init() tea.Cmd {
	if err := s.tracker.OpenSetup(); err != nil {
		s.errMsg = err.Error()
	}
	return nil
}

func (s *Screen) Title() string {
	return i18n.T("SetupTitle")
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.step == stepNotes {
		return []layout.KeyHint{
			{Key: "Enter", Description: i18n.T("SetupBegin")},
			{Key: "Esc", Description: i18n.T("SetupCancel")},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: i18n.T("SetupCancel")},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "esc":
			return s.stepBack()
		case "enter":
			return s.advance()
		}
	}

	var cmd tea.Cmd
	switch s.step {
	case stepSubject:
		s.subjects, cmd = s.subjects.Update(msg)
	case stepLocation:
		s.locations, cmd = s.locations.Update(msg)
	case stepNotes:
		s.notes, cmd = s.notes.Update(msg)
	}
	return s, cmd
}

// advance moves the form forward one step, starting the session once
// the last step confirms.
func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepSubject:
		if len(s.subjectNames) == 0 {
			s.errMsg = "no subjects configured"
			return s, nil
		}
		s.subject = s.subjectNames[s.subjects.Selected]
		s.step = stepLocation
	case stepLocation:
		if len(s.locationList) == 0 {
			s.errMsg = "no locations configured"
			return s, nil
		}
		s.location = s.locationList[s.locations.Selected]
		s.step = stepNotes
		return s, s.notes.Focus()
	case stepNotes:
		if err := s.tracker.Configure(s.subject, s.location, s.notes.Value()); err != nil {
			var verr *session.ValidationError
			if errors.As(err, &verr) {
				s.errMsg = verr.Error()
				return s, nil
			}
			s.errMsg = err.Error()
			return s, nil
		}
		next := active.New(s.tracker, s.coordinator, s.cat, s.subject)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

// stepBack walks the form backwards, cancelling setup from the first step.
func (s *Screen) stepBack() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepSubject:
		s.tracker.CancelSetup()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case stepLocation:
		s.step = stepSubject
	case stepNotes:
		s.notes.Blur()
		s.step = stepLocation
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b []string

	b = append(b, theme.Title.Render(i18n.T("SetupTitle")), "")

	label := func(step int, key string) string {
		text := i18n.T(key)
		if s.step == step {
			return theme.Label.Render(text)
		}
		return theme.Hint.Render(text)
	}

	b = append(b, label(stepSubject, "SetupSubject"))
	if s.step == stepSubject {
		b = append(b, s.subjects.View())
	} else {
		b = append(b, theme.Body.Render("  "+s.subject), "")
	}

	if s.step >= stepLocation {
		b = append(b, label(stepLocation, "SetupLocation"))
		if s.step == stepLocation {
			b = append(b, s.locations.View())
		} else {
			b = append(b, theme.Body.Render("  "+s.location), "")
		}
	}

	if s.step >= stepNotes {
		b = append(b, label(stepNotes, "SetupNotes"), "  "+s.notes.View())
	}

	if s.errMsg != "" {
		b = append(b, "", theme.Incorrect.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, b...)
	return layout.Center(theme.Card.Render(content), width, height)
}
