package calendar_test

import (
	"testing"
	"time"

	"studyhub/internal/platform/calendar"
)

func TestSameDayUsesReferenceZone(t *testing.T) {
	t.Parallel()
	ist := time.FixedZone("IST", 5*3600+1800)
	ref := time.Date(2025, 1, 10, 1, 0, 0, 0, ist)
	// 20:00 UTC on the 9th is 01:30 on the 10th in IST.
	created := time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC)
	if !calendar.SameDay(created, ref) {
		t.Fatalf("expected same local day")
	}
	if calendar.SameDay(created.Add(-2*time.Hour), ref) {
		t.Fatalf("expected previous local day")
	}
}

func TestShiftDay(t *testing.T) {
	t.Parallel()
	got, err := calendar.ShiftDay("2025-03-01", -1, time.UTC)
	if err != nil {
		t.Fatalf("shift: %v", err)
	}
	if got != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s", got)
	}
	if _, err := calendar.ShiftDay("bad", 1, time.UTC); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestStampRoundTrip(t *testing.T) {
	t.Parallel()
	ist := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2025, 1, 10, 13, 30, 0, 0, ist)
	s := calendar.Stamp(at)
	if s != "2025-01-10T08:00:00.000Z" {
		t.Fatalf("unexpected stamp %s", s)
	}
	back, err := calendar.ParseStamp(s)
	if err != nil || !back.Equal(at) {
		t.Fatalf("round trip failed: %v %v", back, err)
	}
	if _, err := calendar.ParseStamp("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}
