package stats

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/szymonw/studylog/ent"
	"github.com/szymonw/studylog/internal/store"
)

func TestStatsShowsLoadingBeforeData(t *testing.T) {
	s := New(nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "Loading") {
		t.Errorf("expected a loading indicator, got %q", view)
	}
}

func TestStatsRendersSubjectRows(t *testing.T) {
	s := New(nil)
	s.Update(loadedMsg{
		subjects: []store.SubjectStats{
			{
				Subject:         "Matematyka",
				Sessions:        3,
				TotalTasks:      24,
				CorrectTasks:    18,
				AccuracyPercent: 75,
				StudyMinutes:    90,
				LastStudied:     time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC),
			},
		},
		recent: []*ent.StudySession{
			{
				Subject:            "Matematyka",
				TotalTasks:         8,
				AccuracyPercentage: 75,
				DurationMinutes:    30,
				EndTime:            time.Date(2026, 3, 14, 16, 30, 0, 0, time.UTC),
			},
		},
	})

	view := s.View(100, 30)
	if !strings.Contains(view, "Matematyka") {
		t.Error("expected the subject row")
	}
	if !strings.Contains(view, "75%") {
		t.Error("expected the accuracy column")
	}
}

func TestStatsEmptyState(t *testing.T) {
	s := New(nil)
	s.Update(loadedMsg{})
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for the empty state")
	}
}

func TestStatsLoadErrorIsShown(t *testing.T) {
	s := New(nil)
	s.Update(loadedMsg{err: errors.New("database locked")})
	view := s.View(80, 24)
	if !strings.Contains(view, "database locked") {
		t.Errorf("expected the error message, got %q", view)
	}
}
