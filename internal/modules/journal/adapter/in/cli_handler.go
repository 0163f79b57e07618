package in

import (
	"context"

	journaldto "studyhub/internal/modules/journal/dto"
	journalin "studyhub/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Day(ctx context.Context, date string) (journaldto.DayOutput, error) {
	return h.usecase.Day(ctx, date)
}

func (h CLIHandler) Save(ctx context.Context, date, content, hours, minutes string) (journaldto.LogOutput, error) {
	return h.usecase.Save(ctx, journaldto.SaveInput{Date: date, Content: content, Hours: hours, Minutes: minutes})
}

func (h CLIHandler) Week(ctx context.Context) (journaldto.WeekOutput, error) {
	return h.usecase.Week(ctx)
}

func (h CLIHandler) Export(ctx context.Context) (journaldto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}
