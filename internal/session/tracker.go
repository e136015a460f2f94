package session

import (
	"sync"
	"time"

	"github.com/szymonw/studylog/internal/timer"
)

// State is the lifecycle state of the tracker.
type State int

const (
	StateUnconfigured State = iota
	StateConfiguring
	StateActive
	StatePaused
	StateFinished
	StateSubmitted
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfiguring:
		return "configuring"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	case StateSubmitted:
		return "submitted"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Hooks are optional host callbacks fired on tracker events. Nil fields are
// skipped. Callbacks run synchronously under the tracker's lock, so they
// must not call back into the tracker.
type Hooks struct {
	OnTick            func(elapsed time.Duration)
	OnCountersChanged func(Counters)
	OnStateChanged    func(State)
}

// Tracker owns the session aggregate and its timer, and enforces the
// lifecycle: Unconfigured → Configuring → Active ⇄ Paused → Finished →
// Submitted or Discarded. At most one session exists at a time. The mutex
// guards against the submission command completing on another goroutine.
type Tracker struct {
	mu    sync.Mutex
	clock func() time.Time
	hooks Hooks

	state State
	sess  *Session
	clk   timer.Timer
}

// NewTracker creates a tracker in the Unconfigured state using the real
// clock.
func NewTracker(hooks Hooks) *Tracker {
	return &Tracker{clock: time.Now, hooks: hooks}
}

// NewTrackerWithClock creates a tracker with an injected clock for tests.
func NewTrackerWithClock(hooks Hooks, clock func() time.Time) *Tracker {
	return &Tracker{clock: clock, hooks: hooks}
}

// OpenSetup moves to Configuring. Rejected while a session is active,
// paused, or finished-but-unsubmitted.
func (tr *Tracker) OpenSetup() error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	switch tr.state {
	case StateActive, StatePaused, StateFinished:
		return ErrSessionActive
	}
	tr.setState(StateConfiguring)
	return nil
}

// CancelSetup abandons configuration without creating a session.
func (tr *Tracker) CancelSetup() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state == StateConfiguring {
		tr.setState(StateUnconfigured)
	}
}

// Configure validates the session configuration, creates the aggregate and
// starts the clock. On a validation error nothing changes and the tracker
// stays in Configuring.
func (tr *Tracker) Configure(subject, location, notes string) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	switch tr.state {
	case StateActive, StatePaused, StateFinished:
		return ErrSessionActive
	}

	sess, err := NewSession(subject, location, notes)
	if err != nil {
		tr.setState(StateConfiguring)
		return err
	}

	now := tr.clock()
	sess.StartTime = now
	tr.sess = sess
	tr.clk = timer.Timer{}
	tr.clk.Start(now)
	tr.setState(StateActive)
	return nil
}

// RecordTask appends one task to the active session. Rejected while paused:
// correctness input is closed until the session resumes.
func (tr *Tracker) RecordTask(name, description string, categories []string, correct bool) (Task, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state != StateActive {
		return Task{}, ErrNoSession
	}

	task, err := tr.sess.AppendTask(name, description, categories, correct, tr.clock())
	if err != nil {
		return Task{}, err
	}
	if tr.hooks.OnCountersChanged != nil {
		tr.hooks.OnCountersChanged(tr.sess.Counters())
	}
	return task, nil
}

// Pause freezes the clock. No-op unless active.
func (tr *Tracker) Pause() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state != StateActive {
		return
	}
	tr.clk.Pause(tr.clock())
	tr.setState(StatePaused)
}

// Resume unfreezes the clock. No-op unless paused.
func (tr *Tracker) Resume() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state != StatePaused {
		return
	}
	tr.clk.Resume(tr.clock())
	tr.setState(StateActive)
}

// Finish closes the session: the clock stops and the end time is fixed.
// Zero-task sessions are allowed; their summary is degenerate.
func (tr *Tracker) Finish() error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state != StateActive && tr.state != StatePaused {
		return ErrNoSession
	}
	now := tr.clock()
	tr.clk.Stop(now)
	tr.sess.EndTime = now
	tr.sess.Paused = tr.clk.Excluded()
	tr.setState(StateFinished)
	return nil
}

// Discard abandons the session from any state. No remote writes happen; an
// in-flight submission's outcome is ignored once the session is gone.
func (tr *Tracker) Discard() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.clk.Stop(tr.clock())
	if tr.sess != nil {
		tr.sess.Reset()
	}
	tr.sess = nil
	tr.setState(StateDiscarded)
}

// CompleteSubmission applies a submission outcome. The sessionID token
// guards against stale outcomes: results for a session that has since been
// discarded or replaced are dropped. Returns whether the outcome was
// applied.
func (tr *Tracker) CompleteSubmission(sessionID string, success bool) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state != StateFinished || tr.sess == nil || tr.sess.ID != sessionID {
		return false
	}
	if !success {
		// Session stays Finished so the user can retry or edit.
		return true
	}
	tr.sess = nil
	tr.setState(StateSubmitted)
	return true
}

// Tick advances the display clock. Leaked ticks that fire after the session
// ended are no-ops.
func (tr *Tracker) Tick(now time.Time) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.state != StateActive {
		return
	}
	if tr.hooks.OnTick != nil {
		tr.hooks.OnTick(tr.clk.Elapsed(now))
	}
}

// State returns the current lifecycle state.
func (tr *Tracker) State() State {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.state
}

// Counters returns the running statistics, zero when no session exists.
func (tr *Tracker) Counters() Counters {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.sess == nil {
		return Counters{}
	}
	return tr.sess.Counters()
}

// Defaults returns the pre-fill values for the next task form.
func (tr *Tracker) Defaults() TaskDefaults {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.sess == nil {
		return TaskDefaults{}
	}
	return tr.sess.Defaults
}

// Elapsed returns the current clock reading.
func (tr *Tracker) Elapsed() time.Duration {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.clk.Elapsed(tr.clock())
}

// Snapshot returns a copy of the current session for rendering or
// submission. ok is false when no session exists.
func (tr *Tracker) Snapshot() (Session, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.sess == nil {
		return Session{}, false
	}
	snap := *tr.sess
	snap.Tasks = append([]Task(nil), tr.sess.Tasks...)
	return snap, true
}

func (tr *Tracker) setState(s State) {
	if tr.state == s {
		return
	}
	tr.state = s
	if tr.hooks.OnStateChanged != nil {
		tr.hooks.OnStateChanged(s)
	}
}
