// Package submit drains a finished session to the remote store and
// reports the result. It never mutates the session it is given.
package submit

import (
	"errors"
	"fmt"
)

// ErrInProgress rejects a second submit call for a session that already
// has one in flight. The caller surfaces it without retrying.
var ErrInProgress = errors.New("submission already in progress")

// Violation names a task field that failed pre-submit validation.
type Violation struct {
	Order int
	Field string
}

func (v Violation) String() string {
	return fmt.Sprintf("task %d: missing %s", v.Order, v.Field)
}

// RemoteWriteError wraps a write the remote store rejected.
type RemoteWriteError struct {
	Op    string
	Order int
	Err   error
}

func (e *RemoteWriteError) Error() string {
	if e.Order > 0 {
		return fmt.Sprintf("%s (task %d): %v", e.Op, e.Order, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

// Outcome reports what a submission actually persisted.
//
// Success covers the task writes only. A failed summary write leaves
// Success true with SummaryPersisted false; the session data itself made
// it to the store.
type Outcome struct {
	SessionID        string
	Success          bool
	TasksPersisted   int
	SummaryPersisted bool
	Violations       []Violation
	Err              error
}
