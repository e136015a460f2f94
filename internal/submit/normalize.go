package submit

import (
	"log/slog"
	"strings"
)

// Correctness values accepted as free text, case-insensitively. The
// Polish forms match what the study sheets historically contained.
var correctWords = map[string]bool{
	"true":      true,
	"yes":       true,
	"y":         true,
	"correct":   true,
	"1":         true,
	"tak":       true,
	"t":         true,
	"poprawnie": true,
	"prawda":    true,
}

var incorrectWords = map[string]bool{
	"false":        true,
	"no":           true,
	"n":            true,
	"incorrect":    true,
	"0":            true,
	"nie":          true,
	"niepoprawnie": true,
	"fałsz":        true,
	"falsz":        true,
}

// ParseCorrectness normalizes a free-text correctness value to a bool.
// Unrecognized input counts as incorrect and logs a warning rather than
// failing the record.
func ParseCorrectness(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case correctWords[v]:
		return true
	case incorrectWords[v]:
		return false
	default:
		slog.Warn("unrecognized correctness value, recording as incorrect", "value", raw)
		return false
	}
}
