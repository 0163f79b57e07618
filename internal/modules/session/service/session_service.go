package service

import (
	"context"
	"fmt"
	"strings"

	"studyhub/internal/modules/session/domain"
	sessionout "studyhub/internal/modules/session/port/out"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/validate"
)

type SessionService struct {
	clock clock.Clock
	store sessionout.UserStore
}

func NewSessionService(clock clock.Clock, store sessionout.UserStore) *SessionService {
	return &SessionService{clock: clock, store: store}
}

// Enter replaces the current user. A blank name is refused without touching
// the store and reports false.
func (s *SessionService) Enter(ctx context.Context, name string) (domain.User, bool, error) {
	user := domain.User{Name: strings.TrimSpace(name), CreatedAt: s.clock.Now()}
	if err := validate.Struct(user); err != nil {
		return domain.User{}, false, nil
	}
	if err := s.store.Save(ctx, user); err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

func (s *SessionService) Current(ctx context.Context) (domain.User, error) {
	user, ok, err := s.store.Load(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	if !ok || strings.TrimSpace(user.Name) == "" {
		return domain.User{}, apperrors.ErrNoActiveUser
	}
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}
