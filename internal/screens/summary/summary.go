// Package summary shows the finished session's numbers and drives
// submission to the remote sheet.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/internal/i18n"
	"github.com/szymonw/studylog/internal/router"
	"github.com/szymonw/studylog/internal/screen"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/submit"
	"github.com/szymonw/studylog/internal/ui/layout"
	"github.com/szymonw/studylog/internal/ui/theme"
)

// submittimeout bounds one submission attempt end to end.
const submitTimeout = 60 * time.Second

// outcomeMsg carries the result of an asynchronous submission.
type outcomeMsg struct {
	outcome submit.Outcome
	err     error
}

type phase int

const (
	phaseReview phase = iota
	phaseConfirmDiscard
	phaseSending
	phaseDone
)

// Screen is the post-session review and submission view.
type Screen struct {
	tracker     *session.Tracker
	coordinator *submit.Coordinator

	sess    session.Session
	phase   phase
	cursor  int
	status  string
	failed  bool
	outcome submit.Outcome
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New snapshots the finished session from the tracker.
func New(tracker *session.Tracker, coordinator *submit.Coordinator) *Screen {
	sess, _ := tracker.Snapshot()
	return &Screen{
		tracker:     tracker,
		coordinator: coordinator,
		sess:        sess,
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return i18n.T("SummaryTitle") }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseConfirmDiscard:
		return []layout.KeyHint{
			{Key: "Y", Description: i18n.T("Yes")},
			{Key: "N", Description: i18n.T("No")},
		}
	case phaseSending:
		return nil
	case phaseDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		return s.handleOutcome(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseSending:
		return s, nil

	case phaseDone:
		if key == "enter" || key == "esc" {
			return s, popToRoot()
		}
		return s, nil

	case phaseConfirmDiscard:
		switch key {
		case "y", "Y", "enter":
			s.tracker.Discard()
			return s, popToRoot()
		case "n", "N", "esc":
			s.phase = phaseReview
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < 1 {
			s.cursor++
		}
	case "enter":
		if s.cursor == 0 {
			s.phase = phaseSending
			s.status = i18n.T("SubmitSending")
			return s, s.submitCmd()
		}
		s.phase = phaseConfirmDiscard
	}
	return s, nil
}

// submitCmd runs the coordinator off the UI loop. The coordinator
// rejects a second attempt for the same session while one is in
// flight.
func (s *Screen) submitCmd() tea.Cmd {
	coordinator := s.coordinator
	sess := s.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		outcome, err := coordinator.Submit(ctx, sess)
		return outcomeMsg{outcome: outcome, err: err}
	}
}

func (s *Screen) handleOutcome(msg outcomeMsg) (screen.Screen, tea.Cmd) {
	if errors.Is(msg.err, submit.ErrInProgress) {
		s.phase = phaseReview
		s.status = i18n.T("SubmitInProgress")
		return s, nil
	}

	s.outcome = msg.outcome
	if msg.outcome.Success {
		s.tracker.CompleteSubmission(s.sess.ID, true)
		s.phase = phaseDone
		s.failed = false
		if msg.outcome.SummaryPersisted {
			s.status = i18n.T("SubmitSuccess")
		} else {
			s.status = i18n.T("SubmitSummaryFailed")
		}
		return s, nil
	}

	s.tracker.CompleteSubmission(s.sess.ID, false)
	s.phase = phaseReview
	s.failed = true
	s.status = i18n.T("SubmitFailed")
	if len(msg.outcome.Violations) > 0 {
		var parts []string
		for _, v := range msg.outcome.Violations {
			parts = append(parts, v.String())
		}
		s.status += ": " + strings.Join(parts, "; ")
	} else if msg.outcome.Err != nil {
		s.status += ": " + msg.outcome.Err.Error()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.phase == phaseConfirmDiscard {
		box := theme.Card.Render(theme.Body.Render(i18n.T("ConfirmDiscard")))
		return layout.Center(box, width, height)
	}

	counters := s.sess.Counters()
	lines := []string{
		theme.Title.Render(s.sess.Subject),
		theme.Subtitle.Render(s.sess.Location),
		"",
		theme.Body.Render(i18n.Tp("SummaryTasks", counters.Total)),
		theme.Body.Render(fmt.Sprintf("%s: %d%%", i18n.T("SummaryAccuracy"), counters.AccuracyPercent)),
		theme.Body.Render(fmt.Sprintf("%s: %s", i18n.T("SummaryDuration"), layout.FormatClock(s.sess.ActiveDuration()))),
		"",
		theme.Correct.Render("✓ "+fmt.Sprint(counters.Correct)) + "  " +
			theme.Incorrect.Render("✗ "+fmt.Sprint(counters.Incorrect)),
	}

	if s.phase == phaseReview {
		submitLabel := i18n.T("SummarySubmit")
		if s.failed {
			submitLabel = i18n.T("SummaryRetry")
		}
		lines = append(lines, "", s.menuItem(0, submitLabel), s.menuItem(1, i18n.T("SummaryDiscard")))
	}

	if s.status != "" {
		style := theme.Body
		switch {
		case s.failed:
			style = theme.Incorrect
		case s.phase == phaseDone:
			style = theme.Correct
		}
		lines = append(lines, "", style.Render(s.status))
	}

	content := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return layout.Center(content, width, height)
}

func (s *Screen) menuItem(idx int, label string) string {
	if s.cursor == idx {
		return theme.Selected.Render("▸ " + label)
	}
	return theme.Unselected.Render("  " + label)
}

func popToRoot() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}
