package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"studyhub/internal/modules/reminder/domain"
	apperrors "studyhub/internal/platform/errors"
)

func TestDailySpec(t *testing.T) {
	t.Parallel()
	got, err := domain.DailySpec(" 07:30 ")
	if err != nil || got != "0 30 7 * * *" {
		t.Fatalf("got %q %v", got, err)
	}
	for _, bad := range []string{"7", "24:00", "07:60", "aa:10"} {
		if _, err := domain.DailySpec(bad); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", bad, err)
		}
	}
}

func TestIntervalSpec(t *testing.T) {
	t.Parallel()
	got, err := domain.IntervalSpec(90*time.Minute + 500*time.Millisecond)
	if err != nil || got != "@every 5400s" {
		t.Fatalf("got %q %v", got, err)
	}
	if _, err := domain.IntervalSpec(time.Millisecond); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestDigestLines(t *testing.T) {
	t.Parallel()
	lines := domain.Digest{DaysUntilExam: 12, PendingGoals: []string{"Mock 4"}, GoalsTotal: 2}.Lines()
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"12 days until the exam", "1 of 2 goals pending:", "  - Mock 4", "No study log yet today"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in:\n%s", want, joined)
		}
	}
	done := strings.Join(domain.Digest{GoalsTotal: 3, LoggedToday: true}.Lines(), "\n")
	if !strings.Contains(done, "All 3 goals done") || !strings.Contains(done, "Study log written for today") {
		t.Fatalf("unexpected digest:\n%s", done)
	}
}
