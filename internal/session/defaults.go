package session

import (
	"regexp"
	"strconv"
	"strings"
)

// trailingDigits matches a non-greedy prefix followed by a digit run at the
// end of the name, with optional trailing whitespace. A pure number is the
// degenerate case with an empty prefix.
var trailingDigits = regexp.MustCompile(`^(.*?)(\d+)\s*$`)

// IncrementHint describes the numeric transformation applied to derive the
// next task name from the previous one.
type IncrementHint struct {
	From string
	To   string
}

// NextName is the result of resolving defaults for the next task's name.
type NextName struct {
	Name string
	// Hint is nil when no numeric increment was applied.
	Hint *IncrementHint
}

// ComputeNextName derives the pre-filled name for the next task from the
// previous task's name. Names ending in a digit run have that run
// incremented; leading zeros are preserved ("007" becomes "008") unless the
// increment naturally grows the number ("099" becomes "100"). Anything that
// cannot be incremented, including digit runs too large to parse, comes back
// unchanged: default propagation must never get in the user's way.
func ComputeNextName(previous string) NextName {
	trimmed := strings.TrimSpace(previous)
	if trimmed == "" {
		return NextName{Name: previous}
	}

	m := trailingDigits.FindStringSubmatch(trimmed)
	if m == nil {
		return NextName{Name: previous}
	}
	prefix, digits := m[1], m[2]

	incremented, ok := incrementRun(digits)
	if !ok {
		return NextName{Name: previous}
	}

	next := prefix + incremented
	return NextName{
		Name: next,
		Hint: &IncrementHint{From: trimmed, To: next},
	}
}

// incrementRun increments a decimal digit run, left-padding with zeros when
// the result would otherwise be shorter than the original run.
func incrementRun(digits string) (string, bool) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Overflow or malformed run: fail soft.
		return "", false
	}
	s := strconv.FormatUint(n+1, 10)
	if pad := len(digits) - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s, true
}
