package in

import (
	"context"

	"studyhub/internal/modules/journal/dto"
)

type Usecase interface {
	Day(ctx context.Context, date string) (dto.DayOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.LogOutput, error)
	Week(ctx context.Context) (dto.WeekOutput, error)
	Export(ctx context.Context) (dto.ExportOutput, error)
}
