package in

import (
	"context"

	"studyhub/internal/modules/progress/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.ItemOutput, error)
	Toggle(ctx context.Context, id string) (dto.ToggleOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Reset(ctx context.Context) error
}
