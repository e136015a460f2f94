package store

import (
	"context"
	"time"
)

// TaskRecord is the logical payload of one task write. Field names mirror
// the StudyTasks sheet of the original spreadsheet store.
type TaskRecord struct {
	TaskID             string
	SessionID          string
	Name               string
	Description        string
	Categories         []string
	CorrectlyCompleted bool
	Order              int
	Subject            string
	Location           string
	StartTime          time.Time
	EndTime            time.Time
}

// SessionRecord is the logical payload of the session roll-up write.
type SessionRecord struct {
	SessionID       string
	Subject         string
	Location        string
	Notes           string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	TotalTasks      int
	CorrectTasks    int
	AccuracyPercent int
}

// Writer is the append-only remote-store boundary: fire-and-forget writes,
// no read-back, no transactions. An error means the store rejected the
// write at call time; nil means it acknowledged it.
type Writer interface {
	WriteTask(ctx context.Context, rec TaskRecord) error
	WriteSessionSummary(ctx context.Context, rec SessionRecord) error
}
