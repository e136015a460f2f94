package submit

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/store"
)

// Coordinator writes a finished session to the remote store, one task at
// a time in recording order, then the session roll-up. At most one
// submission per session may be in flight.
type Coordinator struct {
	writer store.Writer

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCoordinator returns a Coordinator backed by w.
func NewCoordinator(w store.Writer) *Coordinator {
	return &Coordinator{
		writer:   w,
		inflight: make(map[string]struct{}),
	}
}

// Submit drains sess to the remote store and reports what persisted.
// A second call for the same session while one is pending returns
// ErrInProgress without touching the store.
//
// Task writes stop at the first rejected write; TasksPersisted counts
// only acknowledged writes. The summary write is attempted afterwards
// either way, but a summary failure alone does not mark the submission
// failed.
func (c *Coordinator) Submit(ctx context.Context, sess session.Session) (Outcome, error) {
	c.mu.Lock()
	if _, pending := c.inflight[sess.ID]; pending {
		c.mu.Unlock()
		return Outcome{}, ErrInProgress
	}
	c.inflight[sess.ID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, sess.ID)
		c.mu.Unlock()
	}()

	out := Outcome{SessionID: sess.ID}

	if out.Violations = validate(sess); len(out.Violations) > 0 {
		return out, nil
	}

	tasks := make([]session.Task, len(sess.Tasks))
	copy(tasks, sess.Tasks)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })

	prevEnd := sess.StartTime
	for _, t := range tasks {
		if err := c.writer.WriteTask(ctx, taskRecord(sess, t, prevEnd)); err != nil {
			out.Err = &RemoteWriteError{Op: "write task", Order: t.Order, Err: err}
			out.SummaryPersisted = c.writeSummary(ctx, sess) == nil
			return out, nil
		}
		out.TasksPersisted++
		prevEnd = t.CreatedAt
	}

	out.Success = true
	if err := c.writeSummary(ctx, sess); err != nil {
		out.Err = &RemoteWriteError{Op: "write session summary", Err: err}
	} else {
		out.SummaryPersisted = true
	}
	return out, nil
}

func (c *Coordinator) writeSummary(ctx context.Context, sess session.Session) error {
	counters := sess.Counters()
	return c.writer.WriteSessionSummary(ctx, store.SessionRecord{
		SessionID:       sess.ID,
		Subject:         sess.Subject,
		Location:        sess.Location,
		Notes:           sess.Notes,
		StartTime:       sess.StartTime,
		EndTime:         sess.EndTime,
		DurationMinutes: int(math.Round(sess.ActiveDuration().Minutes())),
		TotalTasks:      counters.Total,
		CorrectTasks:    counters.Correct,
		AccuracyPercent: counters.AccuracyPercent,
	})
}

// taskRecord maps one task to its wire shape. A task's recorded time
// window runs from the previous task's completion (the session start for
// the first task) to its own completion.
func taskRecord(sess session.Session, t session.Task, prevEnd time.Time) store.TaskRecord {
	return store.TaskRecord{
		TaskID:             t.ID,
		SessionID:          sess.ID,
		Name:               t.Name,
		Description:        t.Description,
		Categories:         t.Categories,
		CorrectlyCompleted: t.Correct,
		Order:              t.Order,
		Subject:            sess.Subject,
		Location:           sess.Location,
		StartTime:          prevEnd,
		EndTime:            t.CreatedAt,
	}
}

// validate checks every task before any remote call. A failed check
// means zero writes happen.
func validate(sess session.Session) []Violation {
	var violations []Violation
	for _, t := range sess.Tasks {
		if strings.TrimSpace(t.Name) == "" {
			violations = append(violations, Violation{Order: t.Order, Field: "name"})
		}
		if len(t.Categories) == 0 {
			violations = append(violations, Violation{Order: t.Order, Field: "categories"})
		}
	}
	return violations
}
