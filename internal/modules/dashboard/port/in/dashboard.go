package in

import (
	"context"

	"studyhub/internal/modules/dashboard/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Countdown(ctx context.Context) (dto.CountdownOutput, error)
}
