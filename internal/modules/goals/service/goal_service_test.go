package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	goalsout "studyhub/internal/modules/goals/adapter/out"
	"studyhub/internal/modules/goals/service"
	"studyhub/internal/platform/recordstore"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("goal-%d", s.n)
}

const yesterdayGoal = `{"id":"y1","text":"Revise notes","completed":true,"createdAt":"2025-01-09T10:00:00Z"}`

func TestSaveTodayLeavesOtherDaysByteIdentical(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	if err := medium.Set(ctx, recordstore.KeyDailyGoals, []byte("["+yesterdayGoal+"]")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	clk := fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewGoalService(clk, &seqID{}, goalsout.NewRecordGoalStore(medium, nil))

	if today, err := svc.LoadForToday(ctx); err != nil || len(today) != 0 {
		t.Fatalf("expected no goals today, got %+v", today)
	}
	goal, added, err := svc.Add(ctx, "  Solve 20 TSD questions ")
	if err != nil || !added {
		t.Fatalf("add: %v", err)
	}
	if goal.Text != "Solve 20 TSD questions" || goal.CreatedAt != "2025-01-10T09:00:00.000Z" {
		t.Fatalf("unexpected goal %+v", goal)
	}
	if _, found, err := svc.Toggle(ctx, goal.ID); err != nil || !found {
		t.Fatalf("toggle: %v", err)
	}

	raw, _, _ := medium.Get(ctx, recordstore.KeyDailyGoals)
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decode stored goals: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected two stored goals, got %d", len(records))
	}
	if string(records[0]) != yesterdayGoal {
		t.Fatalf("yesterday goal changed:\n got %s\nwant %s", records[0], yesterdayGoal)
	}
}

func TestTodayOnlyOperations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	if err := medium.Set(ctx, recordstore.KeyDailyGoals, []byte("["+yesterdayGoal+"]")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	clk := fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewGoalService(clk, &seqID{}, goalsout.NewRecordGoalStore(medium, nil))

	if _, added, err := svc.Add(ctx, "   "); err != nil || added {
		t.Fatalf("blank goal must be a silent no-op")
	}
	if _, found, _ := svc.Toggle(ctx, "y1"); found {
		t.Fatalf("goals from other days are not toggleable from today")
	}
	if deleted, _ := svc.Delete(ctx, "y1"); deleted {
		t.Fatalf("goals from other days are not deletable from today")
	}
	goal, _, _ := svc.Add(ctx, "Read editorial")
	if deleted, err := svc.Delete(ctx, goal.ID); err != nil || !deleted {
		t.Fatalf("delete today goal: %v", err)
	}
	raw, _, _ := medium.Get(ctx, recordstore.KeyDailyGoals)
	if string(raw) != "["+yesterdayGoal+"]" {
		t.Fatalf("expected only yesterday goal left, got %s", raw)
	}
}
