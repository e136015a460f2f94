// Package timer tracks wall-clock elapsed time for a study session with
// pause/resume support. It performs no scheduling of its own: callers pass
// the current time into every method, and the host drives the 1 Hz display
// tick. This keeps the type trivially testable with a fake clock.
package timer

import "time"

// Timer accumulates elapsed wall-clock time, excluding paused intervals.
// The zero value is a stopped timer reading zero.
type Timer struct {
	startedAt   time.Time
	pauseStart  time.Time
	pausedAccum time.Duration
	final       time.Duration
	running     bool
	paused      bool
	stopped     bool
}

// Start begins timing from now. Starting an already-running timer restarts
// it from scratch.
func (t *Timer) Start(now time.Time) {
	t.startedAt = now
	t.pauseStart = time.Time{}
	t.pausedAccum = 0
	t.final = 0
	t.running = true
	t.paused = false
	t.stopped = false
}

// Pause freezes the elapsed clock. No-op if already paused or not running.
func (t *Timer) Pause(now time.Time) {
	if !t.running || t.paused {
		return
	}
	t.paused = true
	t.pauseStart = now
}

// Resume unfreezes the elapsed clock, adding the paused interval to the
// excluded total. No-op if not paused.
func (t *Timer) Resume(now time.Time) {
	if !t.running || !t.paused {
		return
	}
	t.pausedAccum += now.Sub(t.pauseStart)
	t.pauseStart = time.Time{}
	t.paused = false
}

// Stop ends timing and freezes the reading. A timer stopped while paused
// folds the final paused interval into the excluded total like any other.
func (t *Timer) Stop(now time.Time) {
	if !t.running {
		return
	}
	if t.paused {
		t.Resume(now)
	}
	t.final = t.elapsedAt(now)
	t.running = false
	t.stopped = true
}

// Excluded returns the total time spent paused.
func (t *Timer) Excluded() time.Duration {
	return t.pausedAccum
}

// Elapsed returns time spent running, excluding all paused intervals.
// After Stop it returns the frozen final reading.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if t.stopped {
		return t.final
	}
	if !t.running {
		return 0
	}
	return t.elapsedAt(now)
}

func (t *Timer) elapsedAt(now time.Time) time.Duration {
	e := now.Sub(t.startedAt) - t.pausedAccum
	if t.paused {
		e -= now.Sub(t.pauseStart)
	}
	if e < 0 {
		return 0
	}
	return e
}

// Running reports whether the timer has been started and not stopped.
func (t *Timer) Running() bool {
	return t.running
}

// Paused reports whether the timer is currently paused.
func (t *Timer) Paused() bool {
	return t.paused
}
