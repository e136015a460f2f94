// Package session holds the study-session engine: the session aggregate,
// the task-defaults resolver, and the lifecycle tracker that orchestrates
// configure/record/pause/finish/submit flows.
package session

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is one recorded practice item. Correctness is fixed at creation and
// never re-derived.
type Task struct {
	ID          string
	Name        string
	Description string
	Categories  []string
	Correct     bool
	// Order is the 1-based position within the session, assigned at append
	// time. No gaps, no reuse.
	Order     int
	CreatedAt time.Time
}

// TaskDefaults holds the pre-fill values offered for the next task. They are
// overwritten on every append and cleared on reset; they are never persisted
// remotely.
type TaskDefaults struct {
	Name        string
	Description string
	Categories  []string
	Hint        *IncrementHint
}

// Counters are the derived running statistics of a session.
type Counters struct {
	Total     int
	Correct   int
	Incorrect int
	// AccuracyPercent is Correct/Total rounded half-up; 0 for an empty
	// session.
	AccuracyPercent int
}

// Session is the mutable record of one study session. Subject, location and
// notes are fixed once the session starts; all tasks inherit them.
type Session struct {
	ID       string
	Subject  string
	Location string
	Notes    string

	StartTime time.Time
	// EndTime is zero until the session is finished.
	EndTime time.Time
	// Paused is the total time excluded from the elapsed clock, fixed when
	// the session finishes.
	Paused time.Duration

	Tasks    []Task
	Defaults TaskDefaults
}

// NewSession validates the configuration and creates a session. The start
// time is stamped by the tracker when recording actually begins.
func NewSession(subject, location, notes string) (*Session, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, requiredErr("subject")
	}
	if strings.TrimSpace(location) == "" {
		return nil, requiredErr("location")
	}
	return &Session{
		ID:       uuid.New().String(),
		Subject:  strings.TrimSpace(subject),
		Location: strings.TrimSpace(location),
		Notes:    notes,
	}, nil
}

// AppendTask validates and records one task, assigns its order, and
// recomputes the task defaults from the appended values before returning,
// so the next pre-fill read already sees them. The whole operation is
// all-or-nothing.
func (s *Session) AppendTask(name, description string, categories []string, correct bool, now time.Time) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, requiredErr("task name")
	}
	if len(categories) == 0 {
		return Task{}, &ValidationError{Field: "categories", Reason: "select at least one"}
	}

	task := Task{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Categories:  append([]string(nil), categories...),
		Correct:     correct,
		Order:       len(s.Tasks) + 1,
		CreatedAt:   now,
	}
	s.Tasks = append(s.Tasks, task)

	next := ComputeNextName(task.Name)
	s.Defaults = TaskDefaults{
		Name:        next.Name,
		Description: description,
		Categories:  append([]string(nil), categories...),
		Hint:        next.Hint,
	}

	return task, nil
}

// Counters derives the running statistics. Pure read.
func (s *Session) Counters() Counters {
	c := Counters{Total: len(s.Tasks)}
	for _, t := range s.Tasks {
		if t.Correct {
			c.Correct++
		} else {
			c.Incorrect++
		}
	}
	if c.Total > 0 {
		c.AccuracyPercent = int(math.Round(float64(c.Correct) / float64(c.Total) * 100))
	}
	return c
}

// Duration returns the closed session's wall-clock length, zero if not
// finished yet.
func (s *Session) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// ActiveDuration is the closed session's length with paused time excluded.
func (s *Session) ActiveDuration() time.Duration {
	d := s.Duration() - s.Paused
	if d < 0 {
		return 0
	}
	return d
}

// Reset clears all recorded state, the task defaults included. The
// identity and configuration fields stay so the caller can still tell
// what was discarded.
func (s *Session) Reset() {
	s.Tasks = nil
	s.Defaults = TaskDefaults{}
	s.EndTime = time.Time{}
	s.Paused = 0
}
