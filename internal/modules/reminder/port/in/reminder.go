package in

import (
	"context"

	"studyhub/internal/modules/reminder/dto"
)

type Usecase interface {
	Digest(ctx context.Context) (dto.DigestOutput, error)
	Schedule(ctx context.Context, input dto.ScheduleInput) (dto.ScheduleOutput, error)
}
