package session

import (
	"errors"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var taskTime = time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("Matematyka", "home", "evening review")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSession_Validation(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		location string
		field    string
	}{
		{"empty subject", "", "home", "subject"},
		{"blank subject", "   ", "home", "subject"},
		{"empty location", "Fizyka", "", "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.subject, tt.location, "")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestAppendTask_Validation(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.AppendTask("", "", []string{"algebra"}, true, taskTime); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := s.AppendTask("Task 1", "", nil, true, taskTime); err == nil {
		t.Error("expected error for empty categories")
	}
	if len(s.Tasks) != 0 {
		t.Errorf("rejected appends must not mutate: len(Tasks) = %d", len(s.Tasks))
	}
}

func TestAppendTask_OrderAndFields(t *testing.T) {
	s := newTestSession(t)

	for i := 1; i <= 3; i++ {
		task, err := s.AppendTask("Zadanie 1", "limits", []string{"analiza"}, i%2 == 1, taskTime)
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if task.Order != i {
			t.Errorf("task %d: Order = %d, want %d", i, task.Order, i)
		}
		if task.ID == "" {
			t.Error("expected non-empty task ID")
		}
		if !task.CreatedAt.Equal(taskTime) {
			t.Errorf("CreatedAt = %v, want %v", task.CreatedAt, taskTime)
		}
	}
}

func TestAppendTask_UpdatesDefaultsBeforeReturning(t *testing.T) {
	s := newTestSession(t)

	_, err := s.AppendTask("Zadanie 007", "trig identities", []string{"trygonometria"}, true, taskTime)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	d := s.Defaults
	if d.Name != "Zadanie 008" {
		t.Errorf("Defaults.Name = %q, want %q", d.Name, "Zadanie 008")
	}
	if d.Description != "trig identities" {
		t.Errorf("Defaults.Description = %q", d.Description)
	}
	if len(d.Categories) != 1 || d.Categories[0] != "trygonometria" {
		t.Errorf("Defaults.Categories = %v", d.Categories)
	}
	if d.Hint == nil || d.Hint.From != "Zadanie 007" || d.Hint.To != "Zadanie 008" {
		t.Errorf("Defaults.Hint = %+v", d.Hint)
	}
}

func TestCounters_AccuracyRounding(t *testing.T) {
	s := newTestSession(t)

	// 1 correct of 3 -> 33.33 rounds to 33.
	results := []bool{true, false, false}
	for _, correct := range results {
		if _, err := s.AppendTask("x", "", []string{"c"}, correct, taskTime); err != nil {
			t.Fatal(err)
		}
	}

	c := s.Counters()
	if c.AccuracyPercent != 33 {
		t.Errorf("AccuracyPercent = %d, want 33", c.AccuracyPercent)
	}

	// 2 of 3 -> 66.67 rounds to 67.
	if _, err := s.AppendTask("x", "", []string{"c"}, true, taskTime); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppendTask("x", "", []string{"c"}, true, taskTime); err != nil {
		t.Fatal(err)
	}
	// Now 3 of 5 = 60.
	if got := s.Counters().AccuracyPercent; got != 60 {
		t.Errorf("AccuracyPercent = %d, want 60", got)
	}
}

func TestCounters_EmptySession(t *testing.T) {
	s := newTestSession(t)
	c := s.Counters()
	if c.Total != 0 || c.AccuracyPercent != 0 {
		t.Errorf("Counters = %+v, want all zero", c)
	}
}

// Counter invariant: for any sequence of appends, total equals the number of
// tasks and correct+incorrect equals total.
func TestReset_ClearsTasksAndDefaults(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AppendTask("Zadanie 7", "", []string{"Funkcje"}, true, taskTime); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}
	s.EndTime = taskTime.Add(30 * time.Minute)
	s.Paused = 5 * time.Minute

	s.Reset()

	if len(s.Tasks) != 0 {
		t.Errorf("Tasks not cleared, %d left", len(s.Tasks))
	}
	if s.Defaults.Name != "" || s.Defaults.Description != "" ||
		len(s.Defaults.Categories) != 0 || s.Defaults.Hint != nil {
		t.Errorf("Defaults not cleared: %+v", s.Defaults)
	}
	if !s.EndTime.IsZero() || s.Paused != 0 {
		t.Error("end time and paused total should be cleared")
	}
	if s.Subject != "Matematyka" {
		t.Error("configuration fields should survive a reset")
	}
}

func TestCounters_Invariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, err := NewSession("Polski", "school", "")
		if err != nil {
			t.Fatal(err)
		}

		results := rapid.SliceOfN(rapid.Bool(), 0, 50).Draw(t, "results")
		for _, correct := range results {
			if _, err := s.AppendTask("t", "", []string{"c"}, correct, taskTime); err != nil {
				t.Fatal(err)
			}
		}

		c := s.Counters()
		if c.Total != len(s.Tasks) {
			t.Fatalf("Total = %d, len(Tasks) = %d", c.Total, len(s.Tasks))
		}
		if c.Correct+c.Incorrect != c.Total {
			t.Fatalf("Correct(%d) + Incorrect(%d) != Total(%d)", c.Correct, c.Incorrect, c.Total)
		}
		if c.Total > 0 && (c.AccuracyPercent < 0 || c.AccuracyPercent > 100) {
			t.Fatalf("AccuracyPercent out of range: %d", c.AccuracyPercent)
		}
	})
}
