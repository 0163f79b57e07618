package usecase_test

import (
	"context"
	"testing"
	"time"

	goalsout "studyhub/internal/modules/goals/adapter/out"
	"studyhub/internal/modules/goals/service"
	"studyhub/internal/modules/goals/usecase"
	"studyhub/internal/platform/recordstore"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct{}

func (fakeID) New() string { return "goal-1" }

func TestTodayCountsCompleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewGoalService(clk, fakeID{}, goalsout.NewRecordGoalStore(recordstore.NewMemoryMedium(), nil)))

	added, err := uc.Add(ctx, "Mock test")
	if err != nil || !added.Added {
		t.Fatalf("add: %+v %v", added, err)
	}
	toggled, err := uc.Toggle(ctx, "goal-1")
	if err != nil || !toggled.Found || !toggled.Goal.Completed {
		t.Fatalf("toggle: %+v %v", toggled, err)
	}
	today, err := uc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today.Total != 1 || today.Done != 1 {
		t.Fatalf("unexpected counts %+v", today)
	}
}
