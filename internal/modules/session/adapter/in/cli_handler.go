package in

import (
	"context"

	sessiondto "studyhub/internal/modules/session/dto"
	sessionin "studyhub/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Enter(ctx context.Context, name string) (sessiondto.EnterOutput, error) {
	return h.usecase.Enter(ctx, sessiondto.EnterInput{Name: name})
}

func (h CLIHandler) Current(ctx context.Context) (sessiondto.UserOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}
