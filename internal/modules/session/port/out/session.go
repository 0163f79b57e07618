package out

import (
	"context"

	"studyhub/internal/modules/session/domain"
)

type UserStore interface {
	Load(ctx context.Context) (domain.User, bool, error)
	Save(ctx context.Context, user domain.User) error
	Clear(ctx context.Context) error
}
