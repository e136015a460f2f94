// Package stats renders the local history: per-subject totals and the
// most recent sessions.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/szymonw/studylog/ent"
	"github.com/szymonw/studylog/internal/i18n"
	"github.com/szymonw/studylog/internal/screen"
	"github.com/szymonw/studylog/internal/store"
	"github.com/szymonw/studylog/internal/ui/layout"
	"github.com/szymonw/studylog/internal/ui/theme"
)

const recentLimit = 8

// loadedMsg carries the query results into the UI loop.
type loadedMsg struct {
	subjects []store.SubjectStats
	recent   []*ent.StudySession
	err      error
}

// Screen shows aggregated study history from the local store.
type Screen struct {
	st *store.Store

	loaded   bool
	subjects []store.SubjectStats
	recent   []*ent.StudySession
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(st *store.Store) *Screen {
	return &Screen{st: st}
}

func (s *Screen) Init() tea.Cmd {
	st := s.st
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		subjects, err := st.SubjectBreakdown(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		recent, err := st.RecentSessions(ctx, recentLimit)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{subjects: subjects, recent: recent}
	}
}

func (s *Screen) Title() string { return i18n.T("HomeStats") }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.subjects = msg.subjects
		s.recent = msg.recent
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading..."), width, height)
	}
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if len(s.subjects) == 0 {
		return layout.Center(theme.Hint.Render(i18n.T("StatsEmpty")), width, height)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Label.Render(i18n.T("StatsBySubject")),
		s.subjectTable(),
		"",
		theme.Label.Render(i18n.T("StatsRecent")),
		s.recentList(),
	)
	return layout.Center(theme.Card.Render(content), width, height)
}

func (s *Screen) subjectTable() string {
	var b strings.Builder
	header := fmt.Sprintf("%-20s %8s %7s %5s %7s  %s",
		"Subject", "Sessions", "Tasks", "Acc", "Min", "Last")
	b.WriteString(theme.Hint.Render(header))
	b.WriteString("\n")
	for _, row := range s.subjects {
		last := "-"
		if !row.LastStudied.IsZero() {
			last = row.LastStudied.Local().Format("2006-01-02")
		}
		line := fmt.Sprintf("%-20s %8d %7d %4d%% %7d  %s",
			truncate(row.Subject, 20), row.Sessions, row.TotalTasks,
			row.AccuracyPercent, row.StudyMinutes, last)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Screen) recentList() string {
	if len(s.recent) == 0 {
		return theme.Hint.Render("-")
	}
	var b strings.Builder
	for _, se := range s.recent {
		line := fmt.Sprintf("%s  %-20s %3d %s, %d%%, %d min",
			se.EndTime.Local().Format("01-02 15:04"),
			truncate(se.Subject, 20),
			se.TotalTasks,
			i18n.T("StatsTasksShort"),
			se.AccuracyPercentage,
			se.DurationMinutes)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
