package session

import (
	"errors"
	"fmt"
)

// ErrSessionActive is returned when configuring a new session is attempted
// while one is already active or paused.
var ErrSessionActive = errors.New("a session is already active")

// ErrNoSession is returned by operations that need an active session when
// none exists.
var ErrNoSession = errors.New("no active session")

// ValidationError reports a required-field violation on user input. The
// offending operation is rejected and no state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func requiredErr(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must not be empty"}
}
