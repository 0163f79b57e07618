// Package numparse reads numbers typed into free-text form fields.
package numparse

import (
	"errors"
	"strconv"
	"strings"
)

// Int reads a leading base-10 integer the way a lenient form field does:
// surrounding space is ignored, an optional sign is honored and parsing stops
// at the first non-digit. Input without a leading integer yields 0, and
// values out of range saturate.
func Int(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}

// NonNegative is Int clamped at zero.
func NonNegative(raw string) int {
	n := Int(raw)
	if n < 0 {
		return 0
	}
	return n
}

// Bounded is Int clamped to [-limit, limit].
func Bounded(raw string, limit int) int {
	return max(-limit, min(Int(raw), limit))
}
