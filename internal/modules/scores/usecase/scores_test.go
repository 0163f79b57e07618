package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	scoresout "studyhub/internal/modules/scores/adapter/out"
	scoresdto "studyhub/internal/modules/scores/dto"
	scoresin "studyhub/internal/modules/scores/port/in"
	"studyhub/internal/modules/scores/service"
	"studyhub/internal/modules/scores/usecase"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/recordstore"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("score-%d", s.n)
}

func newUsecase(medium recordstore.Medium) scoresin.Usecase {
	return usecase.NewInteractor(service.NewScoreService(&seqID{}, scoresout.NewRecordScoreStore(medium, nil)))
}

func TestAddListDeleteAndStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(recordstore.NewMemoryMedium())

	first, err := uc.Add(ctx, scoresdto.AddInput{MockName: "Mock 1", ExamType: "INDORE", Date: "2025-01-01", SA: "10", MCQ: "8", VA: "5"})
	if err != nil {
		t.Fatalf("add indore: %v", err)
	}
	if !first.Added || first.Score.TotalScore != 23 || first.Score.Sections["mcq"] != 8 {
		t.Fatalf("unexpected indore score %+v", first)
	}
	if _, ok := first.Score.Sections["qa"]; ok {
		t.Fatalf("indore score should not expose qa")
	}
	second, err := uc.Add(ctx, scoresdto.AddInput{MockName: "Mock 2", ExamType: "ROHTAK", Date: "2025-01-03", QA: "12", LR: "6", VA: "7"})
	if err != nil || second.Score.TotalScore != 25 {
		t.Fatalf("add rohtak: %+v %v", second, err)
	}

	list, err := uc.List(ctx, scoresdto.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].MockName != "Mock 2" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 2 || stats.Best != 25 || stats.Average != 24 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.ByExam[0].ExamType != "INDORE" || stats.ByExam[0].Best != 23 || stats.ByExam[2].Count != 0 {
		t.Fatalf("unexpected per-exam stats %+v", stats.ByExam)
	}

	deleted, err := uc.Delete(ctx, "missing")
	if err != nil || deleted {
		t.Fatalf("deleting a missing id must be a no-op")
	}
	if list, _ := uc.List(ctx, scoresdto.ListInput{}); len(list) != 2 {
		t.Fatalf("collection changed by no-op delete")
	}
	deleted, err = uc.Delete(ctx, first.Score.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: %v", err)
	}
	if list, _ := uc.List(ctx, scoresdto.ListInput{}); len(list) != 1 {
		t.Fatalf("expected one score after delete")
	}
}

func TestAddValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(recordstore.NewMemoryMedium())

	out, err := uc.Add(ctx, scoresdto.AddInput{MockName: "  ", ExamType: "JIPMAT", Date: "2025-01-01"})
	if err != nil || out.Added {
		t.Fatalf("blank name should be a silent no-op, got %+v %v", out, err)
	}
	if _, err := uc.Add(ctx, scoresdto.AddInput{MockName: "M", ExamType: "CAT", Date: "2025-01-01"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid exam type, got %v", err)
	}
	if _, err := uc.Add(ctx, scoresdto.AddInput{MockName: "M", ExamType: "JIPMAT", Date: "01/02/2025"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if list, _ := uc.List(ctx, scoresdto.ListInput{}); len(list) != 0 {
		t.Fatalf("refused adds must not write")
	}
}
