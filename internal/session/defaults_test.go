package session

import "testing"

func TestComputeNextName(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		want     string
		wantFrom string
		wantTo   string
		wantHint bool
	}{
		{"pure number", "12", "13", "12", "13", true},
		{"leading zeros preserved", "007", "008", "007", "008", true},
		{"natural growth not padded", "099", "100", "099", "100", true},
		{"nine to ten", "9", "10", "9", "10", true},
		{"trailing number", "Task 9", "Task 10", "Task 9", "Task 10", true},
		{"trailing number with zeros", "Zadanie 007", "Zadanie 008", "Zadanie 007", "Zadanie 008", true},
		{"trailing whitespace dropped", "Task 9  ", "Task 10", "Task 9", "Task 10", true},
		{"number mid-name only", "Algebra Review", "Algebra Review", "", "", false},
		{"digits then letters", "2b or not 2b", "2b or not 2b", "", "", false},
		{"empty", "", "", "", "", false},
		{"whitespace only", "   ", "   ", "", "", false},
		{"surrounding whitespace", "  7  ", "8", "7", "8", true},
		{"hyphenated", "Matura-2024", "Matura-2025", "Matura-2024", "Matura-2025", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeNextName(tt.previous)
			if got.Name != tt.want {
				t.Errorf("ComputeNextName(%q).Name = %q, want %q", tt.previous, got.Name, tt.want)
			}
			if tt.wantHint {
				if got.Hint == nil {
					t.Fatalf("ComputeNextName(%q).Hint = nil, want {%q -> %q}", tt.previous, tt.wantFrom, tt.wantTo)
				}
				if got.Hint.From != tt.wantFrom || got.Hint.To != tt.wantTo {
					t.Errorf("Hint = {%q -> %q}, want {%q -> %q}", got.Hint.From, got.Hint.To, tt.wantFrom, tt.wantTo)
				}
			} else if got.Hint != nil {
				t.Errorf("ComputeNextName(%q).Hint = {%q -> %q}, want nil", tt.previous, got.Hint.From, got.Hint.To)
			}
		})
	}
}

func TestComputeNextName_OverflowFailsSoft(t *testing.T) {
	// A digit run too large for uint64 must come back unchanged, not error.
	huge := "Task 99999999999999999999999999"
	got := ComputeNextName(huge)
	if got.Name != huge {
		t.Errorf("Name = %q, want unchanged", got.Name)
	}
	if got.Hint != nil {
		t.Error("expected nil hint on overflow")
	}
}
