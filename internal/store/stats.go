package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/szymonw/studylog/ent"
	"github.com/szymonw/studylog/ent/studysession"
)

// SubjectStats aggregates every recorded session for one subject.
type SubjectStats struct {
	Subject         string
	Sessions        int
	TotalTasks      int
	CorrectTasks    int
	AccuracyPercent int
	StudyMinutes    int
	LastStudied     time.Time
}

// SubjectBreakdown folds all session records into per-subject totals,
// sorted by subject name.
func (s *Store) SubjectBreakdown(ctx context.Context) ([]SubjectStats, error) {
	sessions, err := s.client.StudySession.Query().
		Order(ent.Asc(studysession.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	bySubject := make(map[string]*SubjectStats)
	for _, se := range sessions {
		st, ok := bySubject[se.Subject]
		if !ok {
			st = &SubjectStats{Subject: se.Subject}
			bySubject[se.Subject] = st
		}
		st.Sessions++
		st.TotalTasks += se.TotalTasks
		st.CorrectTasks += se.CorrectTasks
		st.StudyMinutes += se.DurationMinutes
		if se.EndTime.After(st.LastStudied) {
			st.LastStudied = se.EndTime
		}
	}

	out := make([]SubjectStats, 0, len(bySubject))
	for _, st := range bySubject {
		if st.TotalTasks > 0 {
			st.AccuracyPercent = int(float64(st.CorrectTasks)/float64(st.TotalTasks)*100 + 0.5)
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out, nil
}

// RecentSessions returns the latest n session records, newest first.
func (s *Store) RecentSessions(ctx context.Context, n int) ([]*ent.StudySession, error) {
	sessions, err := s.client.StudySession.Query().
		Order(ent.Desc(studysession.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	return sessions, nil
}
