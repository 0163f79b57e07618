package usecase_test

import (
	"context"
	"errors"
	"testing"

	progressout "studyhub/internal/modules/progress/adapter/out"
	progressdto "studyhub/internal/modules/progress/dto"
	progressin "studyhub/internal/modules/progress/port/in"
	"studyhub/internal/modules/progress/service"
	"studyhub/internal/modules/progress/usecase"
	"studyhub/internal/platform/recordstore"
)

func newUsecase(medium recordstore.Medium) progressin.Usecase {
	return usecase.NewInteractor(service.NewProgressService(progressout.NewRecordItemStore(medium, nil)))
}

func TestSeedToggleAndSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	uc := newUsecase(medium)

	items, err := uc.List(ctx, progressdto.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 50 {
		t.Fatalf("expected seeded items, got %d", len(items))
	}

	out, err := uc.Toggle(ctx, "v1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !out.Found || !out.Item.Completed {
		t.Fatalf("expected v1 completed, got %+v", out)
	}

	summary, err := uc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Done != 1 || summary.Verbal != 13 || summary.Quants != 0 || summary.Overall != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	if _, ok, _ := medium.Get(ctx, recordstore.KeyProgress); !ok {
		t.Fatalf("toggle should persist the full collection")
	}
}

// lockedMedium fails reads the way a busy database does.
type lockedMedium struct {
	*recordstore.MemoryMedium
	locked bool
}

var errLocked = errors.New("database is locked (5) (SQLITE_BUSY)")

func (m *lockedMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.locked {
		return nil, false, errLocked
	}
	return m.MemoryMedium.Get(ctx, key)
}

func TestFailedReadNeverOverwritesTicks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := &lockedMedium{MemoryMedium: recordstore.NewMemoryMedium()}
	uc := newUsecase(medium)
	if _, err := uc.Toggle(ctx, "q1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	before, _, _ := medium.MemoryMedium.Get(ctx, recordstore.KeyProgress)

	medium.locked = true
	if _, err := uc.Toggle(ctx, "v1"); !errors.Is(err, errLocked) {
		t.Fatalf("expected the read failure, got %v", err)
	}
	if _, err := uc.Summary(ctx); !errors.Is(err, errLocked) {
		t.Fatalf("expected the read failure from summary, got %v", err)
	}
	after, _, _ := medium.MemoryMedium.Get(ctx, recordstore.KeyProgress)
	if string(after) != string(before) {
		t.Fatalf("stored progress changed after a failed read")
	}

	medium.locked = false
	items, err := uc.List(ctx, progressdto.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, item := range items {
		if item.ID == "q1" && !item.Completed {
			t.Fatalf("q1 tick was lost")
		}
	}
}

func TestToggleMissingIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	uc := newUsecase(medium)
	out, err := uc.Toggle(ctx, "nope")
	if err != nil || out.Found {
		t.Fatalf("expected silent no-op, got %+v %v", out, err)
	}
	if _, ok, _ := medium.Get(ctx, recordstore.KeyProgress); ok {
		t.Fatalf("no-op toggle must not write")
	}
}

func TestListFiltersAndReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(recordstore.NewMemoryMedium())

	lrdi, err := uc.List(ctx, progressdto.ListInput{Unit: "lrdi"})
	if err != nil {
		t.Fatalf("list lrdi: %v", err)
	}
	if len(lrdi) != 5 {
		t.Fatalf("expected 5 lrdi topics, got %d", len(lrdi))
	}
	verbal, err := uc.List(ctx, progressdto.ListInput{Category: "verbal"})
	if err != nil || len(verbal) != 8 {
		t.Fatalf("expected 8 verbal topics, got %d %v", len(verbal), err)
	}
	if _, err := uc.List(ctx, progressdto.ListInput{Category: "science"}); err == nil {
		t.Fatalf("expected invalid category error")
	}

	if _, err := uc.Toggle(ctx, "q1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := uc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	summary, _ := uc.Summary(ctx)
	if summary.Done != 0 {
		t.Fatalf("reset should clear completion, got %d done", summary.Done)
	}
}
