package submit

import "testing"

func TestParseCorrectness(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Tak", true},
		{"poprawnie", true},
		{"prawda", true},
		{"  tak  ", true},
		{"1", true},
		{"false", false},
		{"no", false},
		{"nie", false},
		{"niepoprawnie", false},
		{"fałsz", false},
		{"0", false},
		// Unrecognized values count as incorrect.
		{"", false},
		{"maybe", false},
		{"ja", false},
	}

	for _, tt := range tests {
		if got := ParseCorrectness(tt.raw); got != tt.want {
			t.Errorf("ParseCorrectness(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
