package domain_test

import (
	"testing"
	"time"

	"studyhub/internal/modules/dashboard/domain"
)

var exam = time.Date(2026, 5, 4, 14, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

func TestDaysUntilRoundsUpAndFloorsAtZero(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"exactly one day", exam.Add(-24 * time.Hour), 1},
		{"one day and a second", exam.Add(-24*time.Hour - time.Second), 2},
		{"one minute", exam.Add(-time.Minute), 1},
		{"at the instant", exam, 0},
		{"after", exam.Add(72 * time.Hour), 0},
	}
	for _, tc := range cases {
		if got := domain.DaysUntil(exam, tc.now); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestCountdownSplitsRemainder(t *testing.T) {
	t.Parallel()
	now := exam.Add(-(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second + 700*time.Millisecond))
	c := domain.CountdownTo(exam, now)
	if c.Days != 3 || c.Hours != 4 || c.Minutes != 5 || c.Seconds != 6 || c.Passed() {
		t.Fatalf("unexpected countdown %+v", c)
	}

	if done := domain.CountdownTo(exam, exam.Add(time.Second)); done != (domain.Countdown{}) || !done.Passed() {
		t.Fatalf("expected zero countdown after the exam, got %+v", done)
	}
}

func TestFirstName(t *testing.T) {
	t.Parallel()
	if got := domain.FirstName("  Riya Sharma "); got != "Riya" {
		t.Fatalf("got %q", got)
	}
	if got := domain.FirstName(""); got != "Aspirant" {
		t.Fatalf("got %q", got)
	}
}
