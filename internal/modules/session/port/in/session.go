package in

import (
	"context"

	"studyhub/internal/modules/session/dto"
)

type Usecase interface {
	Enter(ctx context.Context, input dto.EnterInput) (dto.EnterOutput, error)
	Current(ctx context.Context) (dto.UserOutput, error)
	Logout(ctx context.Context) error
}
