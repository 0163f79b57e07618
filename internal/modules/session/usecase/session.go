package usecase

import (
	"context"

	"studyhub/internal/modules/session/domain"
	sessiondto "studyhub/internal/modules/session/dto"
	sessionin "studyhub/internal/modules/session/port/in"
	"studyhub/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Enter(ctx context.Context, input sessiondto.EnterInput) (sessiondto.EnterOutput, error) {
	user, entered, err := i.svc.Enter(ctx, input.Name)
	if err != nil {
		return sessiondto.EnterOutput{}, err
	}
	return sessiondto.EnterOutput{User: toOutput(user), Entered: entered}, nil
}

func (i *Interactor) Current(ctx context.Context) (sessiondto.UserOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return sessiondto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func toOutput(user domain.User) sessiondto.UserOutput {
	return sessiondto.UserOutput{Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt}
}
