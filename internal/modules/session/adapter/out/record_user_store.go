package out

import (
	"context"

	"go.uber.org/zap"

	"studyhub/internal/modules/session/domain"
	sessionout "studyhub/internal/modules/session/port/out"
	"studyhub/internal/platform/recordstore"
)

type RecordUserStore struct {
	users recordstore.Collection[*domain.User]
}

func NewRecordUserStore(medium recordstore.Medium, logger *zap.Logger) sessionout.UserStore {
	return &RecordUserStore{
		users: recordstore.NewCollection(medium, recordstore.KeyUser, func() *domain.User { return nil }, logger),
	}
}

func (s *RecordUserStore) Load(ctx context.Context) (domain.User, bool, error) {
	user, err := s.users.Get(ctx)
	if err != nil || user == nil {
		return domain.User{}, false, err
	}
	return *user, true, nil
}

func (s *RecordUserStore) Save(ctx context.Context, user domain.User) error {
	return s.users.Set(ctx, &user)
}

func (s *RecordUserStore) Clear(ctx context.Context) error {
	return s.users.Clear(ctx)
}
