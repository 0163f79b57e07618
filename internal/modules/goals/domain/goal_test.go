package domain_test

import (
	"testing"
	"time"

	"studyhub/internal/modules/goals/domain"
)

func TestPartitionByLocalDay(t *testing.T) {
	t.Parallel()
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, ist)
	goals := []domain.Goal{
		{ID: "late-utc", CreatedAt: "2025-01-09T19:00:00.000Z"}, // 00:30 on the 10th in IST
		{ID: "yesterday", CreatedAt: "2025-01-09T10:00:00.000Z"},
		{ID: "broken", CreatedAt: "not a time"},
		{ID: "today", CreatedAt: "2025-01-10T02:00:00.000Z"},
	}
	today, others := domain.Partition(goals, now)
	if len(today) != 2 || today[0].ID != "late-utc" || today[1].ID != "today" {
		t.Fatalf("unexpected today partition %+v", today)
	}
	if len(others) != 2 || others[0].ID != "yesterday" || others[1].ID != "broken" {
		t.Fatalf("unexpected other partition %+v", others)
	}
}

func TestReplaceDayKeepsOtherDaysFirst(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	stored := []domain.Goal{
		{ID: "t1", CreatedAt: "2025-01-10T08:00:00.000Z"},
		{ID: "y1", CreatedAt: "2025-01-09T08:00:00.000Z"},
	}
	out := domain.ReplaceDay(stored, []domain.Goal{{ID: "t2", CreatedAt: "2025-01-10T08:30:00.000Z"}}, now)
	if len(out) != 2 || out[0].ID != "y1" || out[1].ID != "t2" {
		t.Fatalf("unexpected merged goals %+v", out)
	}
}
