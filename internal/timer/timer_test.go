package timer

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

func at(secs int) time.Time {
	return t0.Add(time.Duration(secs) * time.Second)
}

func TestElapsed_NoPauses(t *testing.T) {
	var tm Timer
	tm.Start(at(0))

	if got := tm.Elapsed(at(42)); got != 42*time.Second {
		t.Errorf("Elapsed = %v, want 42s", got)
	}
}

func TestElapsed_ExcludesPausedInterval(t *testing.T) {
	// Start at t=0, pause at t=10, resume at t=15, stop at t=20.
	// Reported elapsed must be 15s: the 10..15 window is excluded.
	var tm Timer
	tm.Start(at(0))
	tm.Pause(at(10))
	tm.Resume(at(15))
	tm.Stop(at(20))

	if got := tm.Elapsed(at(20)); got != 15*time.Second {
		t.Errorf("Elapsed = %v, want 15s", got)
	}
}

func TestElapsed_WhilePaused(t *testing.T) {
	var tm Timer
	tm.Start(at(0))
	tm.Pause(at(10))

	// Clock is frozen at 10s no matter how much later we read it.
	for _, now := range []int{10, 11, 60, 3600} {
		if got := tm.Elapsed(at(now)); got != 10*time.Second {
			t.Errorf("Elapsed at t=%d = %v, want 10s", now, got)
		}
	}
}

func TestPause_Idempotent(t *testing.T) {
	var tm Timer
	tm.Start(at(0))
	tm.Pause(at(10))
	tm.Pause(at(12)) // second pause must not move the pause start
	tm.Resume(at(15))

	if got := tm.Elapsed(at(20)); got != 15*time.Second {
		t.Errorf("Elapsed = %v, want 15s", got)
	}
}

func TestResume_WithoutPauseIsNoop(t *testing.T) {
	var tm Timer
	tm.Start(at(0))
	tm.Resume(at(5))

	if got := tm.Elapsed(at(10)); got != 10*time.Second {
		t.Errorf("Elapsed = %v, want 10s", got)
	}
}

func TestStop_FreezesReading(t *testing.T) {
	var tm Timer
	tm.Start(at(0))
	tm.Stop(at(30))

	if got := tm.Elapsed(at(90)); got != 30*time.Second {
		t.Errorf("Elapsed after stop = %v, want 30s", got)
	}
	if tm.Running() {
		t.Error("expected Running() == false after Stop")
	}
}

func TestStop_WhilePaused(t *testing.T) {
	var tm Timer
	tm.Start(at(0))
	tm.Pause(at(10))
	tm.Stop(at(25))

	if got := tm.Elapsed(at(25)); got != 10*time.Second {
		t.Errorf("Elapsed = %v, want 10s", got)
	}
	if tm.Paused() {
		t.Error("expected Paused() == false after Stop")
	}
}

func TestMultiplePauseWindows(t *testing.T) {
	var tm Timer
	tm.Start(at(0))
	tm.Pause(at(5))
	tm.Resume(at(10))
	tm.Pause(at(20))
	tm.Resume(at(30))

	// 40s wall time minus 5s and 10s paused windows.
	if got := tm.Elapsed(at(40)); got != 25*time.Second {
		t.Errorf("Elapsed = %v, want 25s", got)
	}
}

func TestZeroValue(t *testing.T) {
	var tm Timer
	if got := tm.Elapsed(at(100)); got != 0 {
		t.Errorf("Elapsed on zero value = %v, want 0", got)
	}
	tm.Pause(at(0))
	tm.Stop(at(0))
	if tm.Running() || tm.Paused() {
		t.Error("zero value must stay stopped")
	}
}
