package in

import (
	"context"

	"studyhub/internal/modules/scores/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.ScoreOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
}
