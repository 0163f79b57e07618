package numparse_test

import (
	"testing"

	"studyhub/internal/platform/numparse"
)

func TestIntReadsLeadingInteger(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"12":    12,
		" 7 ":   7,
		"12abc": 12,
		"-3":    -3,
		"+4":    4,
		"abc":   0,
		"":      0,
		"-":     0,
		"3.9":   3,
	}
	for in, want := range cases {
		if got := numparse.Int(in); got != want {
			t.Fatalf("Int(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNonNegativeClamps(t *testing.T) {
	t.Parallel()
	if got := numparse.NonNegative("-5"); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := numparse.NonNegative("45 min"); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
}

func TestBoundedClampsBothWays(t *testing.T) {
	t.Parallel()
	for raw, want := range map[string]int{"5000": 1000, "-5000": -1000, "42": 42, "x": 0, "99999999999999999999": 1000, "-99999999999999999999": -1000} {
		if got := numparse.Bounded(raw, 1000); got != want {
			t.Fatalf("Bounded(%q) = %d, want %d", raw, got, want)
		}
	}
}
