package session

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually-advanced clock for tracker tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 14, 17, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func activeTracker(t *testing.T, clk *fakeClock, hooks Hooks) *Tracker {
	t.Helper()
	tr := NewTrackerWithClock(hooks, clk.Now)
	if err := tr.OpenSetup(); err != nil {
		t.Fatalf("OpenSetup: %v", err)
	}
	if err := tr.Configure("Matematyka", "library", ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return tr
}

func TestTracker_Lifecycle(t *testing.T) {
	var states []State
	clk := newFakeClock()
	hooks := Hooks{OnStateChanged: func(s State) { states = append(states, s) }}

	tr := activeTracker(t, clk, hooks)
	if tr.State() != StateActive {
		t.Fatalf("state = %v, want active", tr.State())
	}

	tr.Pause()
	tr.Resume()
	if err := tr.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := []State{StateConfiguring, StateActive, StatePaused, StateActive, StateFinished}
	if len(states) != len(want) {
		t.Fatalf("state transitions = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestTracker_ConfigureValidation(t *testing.T) {
	tr := NewTrackerWithClock(Hooks{}, newFakeClock().Now)
	if err := tr.OpenSetup(); err != nil {
		t.Fatal(err)
	}

	err := tr.Configure("", "home", "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if tr.State() != StateConfiguring {
		t.Errorf("state = %v, want configuring (unchanged)", tr.State())
	}
}

func TestTracker_ReentrancyGuard(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})
	if _, err := tr.RecordTask("Task 1", "", []string{"algebra"}, true); err != nil {
		t.Fatal(err)
	}

	if err := tr.OpenSetup(); !errors.Is(err, ErrSessionActive) {
		t.Errorf("OpenSetup while active: err = %v, want ErrSessionActive", err)
	}
	if err := tr.Configure("Fizyka", "school", ""); !errors.Is(err, ErrSessionActive) {
		t.Errorf("Configure while active: err = %v, want ErrSessionActive", err)
	}

	// The existing session must be untouched.
	snap, ok := tr.Snapshot()
	if !ok {
		t.Fatal("expected a session snapshot")
	}
	if snap.Subject != "Matematyka" || len(snap.Tasks) != 1 {
		t.Errorf("session altered by rejected configure: %+v", snap)
	}
}

func TestTracker_PauseExcludesElapsed(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})

	clk.Advance(10 * time.Second)
	tr.Pause()
	clk.Advance(5 * time.Second)
	tr.Resume()
	clk.Advance(5 * time.Second)
	if err := tr.Finish(); err != nil {
		t.Fatal(err)
	}

	if got := tr.Elapsed(); got != 15*time.Second {
		t.Errorf("Elapsed = %v, want 15s", got)
	}
}

func TestTracker_RecordWhilePausedRejected(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})
	tr.Pause()

	if _, err := tr.RecordTask("Task 1", "", []string{"algebra"}, true); err == nil {
		t.Error("expected error recording while paused")
	}
	if tr.Counters().Total != 0 {
		t.Error("paused record must not mutate the session")
	}
}

func TestTracker_CountersHook(t *testing.T) {
	var got []Counters
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{OnCountersChanged: func(c Counters) { got = append(got, c) }})

	for i := 0; i < 3; i++ {
		if _, err := tr.RecordTask("Task 1", "", []string{"algebra"}, i != 1); err != nil {
			t.Fatal(err)
		}
	}

	if len(got) != 3 {
		t.Fatalf("counters hook fired %d times, want 3", len(got))
	}
	last := got[2]
	if last.Total != 3 || last.Correct != 2 || last.Incorrect != 1 {
		t.Errorf("last counters = %+v", last)
	}
}

func TestTracker_ZeroTaskFinish(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})

	if err := tr.Finish(); err != nil {
		t.Fatalf("zero-task finish must be allowed: %v", err)
	}
	c := tr.Counters()
	if c.Total != 0 || c.AccuracyPercent != 0 {
		t.Errorf("degenerate counters = %+v", c)
	}
}

func TestTracker_FinishFixesEndTime(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})
	clk.Advance(90 * time.Second)
	if err := tr.Finish(); err != nil {
		t.Fatal(err)
	}

	snap, _ := tr.Snapshot()
	if snap.EndTime.IsZero() {
		t.Fatal("EndTime not set")
	}
	if got := snap.EndTime.Sub(snap.StartTime); got != 90*time.Second {
		t.Errorf("end - start = %v, want 90s", got)
	}
}

func TestTracker_LeakedTickIsNoop(t *testing.T) {
	ticks := 0
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{OnTick: func(time.Duration) { ticks++ }})

	tr.Tick(clk.Now())
	if ticks != 1 {
		t.Fatalf("tick while active: hook fired %d times, want 1", ticks)
	}

	tr.Pause()
	tr.Tick(clk.Now())
	if err := tr.Finish(); err != nil {
		t.Fatalf("Finish from paused: %v", err)
	}
	tr.Tick(clk.Now())
	tr.Discard()
	tr.Tick(clk.Now())

	if ticks != 1 {
		t.Errorf("leaked ticks fired the hook: %d calls, want 1", ticks)
	}
}

func TestTracker_CompleteSubmission(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})
	if err := tr.Finish(); err != nil {
		t.Fatal(err)
	}
	snap, _ := tr.Snapshot()

	// Failed outcome: stays Finished for retry.
	if !tr.CompleteSubmission(snap.ID, false) {
		t.Error("expected failed outcome to be applied")
	}
	if tr.State() != StateFinished {
		t.Errorf("state = %v, want finished after failed submit", tr.State())
	}

	// Successful outcome: Submitted, aggregate released.
	if !tr.CompleteSubmission(snap.ID, true) {
		t.Error("expected successful outcome to be applied")
	}
	if tr.State() != StateSubmitted {
		t.Errorf("state = %v, want submitted", tr.State())
	}
	if _, ok := tr.Snapshot(); ok {
		t.Error("expected session to be released after submit")
	}
}

func TestTracker_StaleOutcomeIgnoredAfterDiscard(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})
	if err := tr.Finish(); err != nil {
		t.Fatal(err)
	}
	snap, _ := tr.Snapshot()

	tr.Discard()

	if tr.CompleteSubmission(snap.ID, true) {
		t.Error("outcome for a discarded session must be ignored")
	}
	if tr.State() != StateDiscarded {
		t.Errorf("state = %v, want discarded", tr.State())
	}
}

func TestTracker_ReusableAfterDiscard(t *testing.T) {
	clk := newFakeClock()
	tr := activeTracker(t, clk, Hooks{})
	tr.Discard()

	if err := tr.OpenSetup(); err != nil {
		t.Fatalf("OpenSetup after discard: %v", err)
	}
	if err := tr.Configure("Fizyka", "school", ""); err != nil {
		t.Fatalf("Configure after discard: %v", err)
	}
	if tr.State() != StateActive {
		t.Errorf("state = %v, want active", tr.State())
	}
}
