package usecase

import (
	"context"
	"fmt"

	"studyhub/internal/modules/progress/domain"
	progressdto "studyhub/internal/modules/progress/dto"
	progressin "studyhub/internal/modules/progress/port/in"
	"studyhub/internal/modules/progress/service"
	apperrors "studyhub/internal/platform/errors"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input progressdto.ListInput) ([]progressdto.ItemOutput, error) {
	items, err := i.svc.Items(ctx)
	if err != nil {
		return nil, err
	}
	if input.Category != "" {
		category := domain.Category(input.Category)
		if err := category.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		items = domain.FilterByCategory(items, category)
	}
	out := make([]progressdto.ItemOutput, 0, len(items))
	for _, item := range items {
		row := toOutput(item)
		if input.Unit != "" && row.Unit != input.Unit {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (i *Interactor) Toggle(ctx context.Context, id string) (progressdto.ToggleOutput, error) {
	item, found, err := i.svc.Toggle(ctx, id)
	if err != nil {
		return progressdto.ToggleOutput{}, err
	}
	if !found {
		return progressdto.ToggleOutput{}, nil
	}
	return progressdto.ToggleOutput{Item: toOutput(item), Found: true}, nil
}

func (i *Interactor) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	items, err := i.svc.Items(ctx)
	if err != nil {
		return progressdto.SummaryOutput{}, err
	}
	out := progressdto.SummaryOutput{
		Overall: domain.PercentComplete(items),
		Quants:  domain.PercentByCategory(items, domain.CategoryQuants),
		Verbal:  domain.PercentByCategory(items, domain.CategoryVerbal),
		Total:   len(items),
	}
	for _, item := range items {
		if item.Completed {
			out.Done++
		}
	}
	for _, unit := range domain.PercentByUnit(items) {
		out.Units = append(out.Units, progressdto.UnitOutput{
			Unit:    string(unit.Unit),
			Done:    unit.Done,
			Total:   unit.Total,
			Percent: unit.Percent,
		})
	}
	return out, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func toOutput(item domain.Item) progressdto.ItemOutput {
	return progressdto.ItemOutput{
		ID:        item.ID,
		Label:     item.Label,
		Completed: item.Completed,
		Category:  string(item.Category),
		Unit:      string(domain.Categorize(item.Label)),
	}
}
