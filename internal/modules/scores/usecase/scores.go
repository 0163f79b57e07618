package usecase

import (
	"context"
	"fmt"

	"studyhub/internal/modules/scores/domain"
	scoresdto "studyhub/internal/modules/scores/dto"
	scoresin "studyhub/internal/modules/scores/port/in"
	"studyhub/internal/modules/scores/service"
	apperrors "studyhub/internal/platform/errors"
)

type Interactor struct {
	svc *service.ScoreService
}

func NewInteractor(svc *service.ScoreService) scoresin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input scoresdto.AddInput) (scoresdto.AddOutput, error) {
	score, added, err := i.svc.Add(ctx, input.MockName, domain.ExamType(input.ExamType), input.Date, domain.Sections{
		SA:  input.SA,
		MCQ: input.MCQ,
		QA:  input.QA,
		VA:  input.VA,
		LR:  input.LR,
	})
	if err != nil || !added {
		return scoresdto.AddOutput{}, err
	}
	return scoresdto.AddOutput{Score: toOutput(score), Added: true}, nil
}

func (i *Interactor) Delete(ctx context.Context, id string) (bool, error) {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) List(ctx context.Context, input scoresdto.ListInput) ([]scoresdto.ScoreOutput, error) {
	order := domain.Order{Field: domain.SortField(input.SortField), Direction: domain.Direction(input.Direction)}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	all, err := i.svc.All(ctx)
	if err != nil {
		return nil, err
	}
	sorted := domain.Sorted(all, order)
	out := make([]scoresdto.ScoreOutput, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context) (scoresdto.StatsOutput, error) {
	all, err := i.svc.All(ctx)
	if err != nil {
		return scoresdto.StatsOutput{}, err
	}
	out := scoresdto.StatsOutput{
		Count:   len(all),
		Average: domain.Average(all),
		Best:    domain.Max(all),
	}
	for _, exam := range domain.ExamTypes {
		subset := domain.FilterByExam(all, exam)
		out.ByExam = append(out.ByExam, scoresdto.ExamStats{
			ExamType: string(exam),
			Count:    len(subset),
			Average:  domain.Average(subset),
			Best:     domain.Max(subset),
		})
	}
	return out, nil
}

func toOutput(score domain.Score) scoresdto.ScoreOutput {
	sections := map[string]int{"va": score.Breakdown.VA}
	for name, v := range map[string]*int{"sa": score.Breakdown.SA, "mcq": score.Breakdown.MCQ, "qa": score.Breakdown.QA, "lr": score.Breakdown.LR} {
		if v != nil {
			sections[name] = *v
		}
	}
	return scoresdto.ScoreOutput{
		ID:         score.ID,
		MockName:   score.MockName,
		ExamType:   string(score.ExamType),
		Date:       score.Date,
		Sections:   sections,
		TotalScore: score.TotalScore,
	}
}
