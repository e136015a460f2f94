package store

import (
	"context"
	"fmt"

	"github.com/szymonw/studylog/ent"
)

// Ledger appends task and session records to the local SQLite store.
// Every record carries a globally ordered sequence number so the two
// record types interleave in write order.
type Ledger struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ Writer = (*Ledger)(nil)

// WriteTask appends one task record.
func (l *Ledger) WriteTask(ctx context.Context, rec TaskRecord) error {
	seqNum, err := l.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := l.client.StudyTask.Create().
		SetSequence(seqNum).
		SetTaskID(rec.TaskID).
		SetSessionID(rec.SessionID).
		SetTaskName(rec.Name).
		SetCategories(rec.Categories).
		SetCorrectlyCompleted(rec.CorrectlyCompleted).
		SetTaskOrder(rec.Order).
		SetSubject(rec.Subject).
		SetLocation(rec.Location).
		SetStartTime(rec.StartTime).
		SetEndTime(rec.EndTime)

	if rec.Description != "" {
		builder = builder.SetDescription(rec.Description)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save task record: %w", err)
	}
	return nil
}

// WriteSessionSummary appends the session roll-up record.
func (l *Ledger) WriteSessionSummary(ctx context.Context, rec SessionRecord) error {
	seqNum, err := l.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := l.client.StudySession.Create().
		SetSequence(seqNum).
		SetSessionID(rec.SessionID).
		SetSubject(rec.Subject).
		SetLocation(rec.Location).
		SetStartTime(rec.StartTime).
		SetEndTime(rec.EndTime).
		SetDurationMinutes(rec.DurationMinutes).
		SetTotalTasks(rec.TotalTasks).
		SetCorrectTasks(rec.CorrectTasks).
		SetAccuracyPercentage(rec.AccuracyPercent)

	if rec.Notes != "" {
		builder = builder.SetNotes(rec.Notes)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}
