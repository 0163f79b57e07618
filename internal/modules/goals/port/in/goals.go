package in

import (
	"context"

	"studyhub/internal/modules/goals/dto"
)

type Usecase interface {
	Today(ctx context.Context) (dto.TodayOutput, error)
	Add(ctx context.Context, text string) (dto.AddOutput, error)
	Toggle(ctx context.Context, id string) (dto.ToggleOutput, error)
	Delete(ctx context.Context, id string) (bool, error)
}
