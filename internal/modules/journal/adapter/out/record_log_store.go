package out

import (
	"context"

	"go.uber.org/zap"

	"studyhub/internal/modules/journal/domain"
	journalout "studyhub/internal/modules/journal/port/out"
	"studyhub/internal/platform/recordstore"
)

type RecordLogStore struct {
	logs recordstore.Collection[[]domain.Log]
}

func NewRecordLogStore(medium recordstore.Medium, logger *zap.Logger) journalout.LogStore {
	return &RecordLogStore{
		logs: recordstore.NewCollection(medium, recordstore.KeyDailyLogs, recordstore.List[domain.Log](), logger),
	}
}

func (s *RecordLogStore) Load(ctx context.Context) ([]domain.Log, error) {
	return s.logs.Get(ctx)
}

func (s *RecordLogStore) Save(ctx context.Context, logs []domain.Log) error {
	if logs == nil {
		logs = []domain.Log{}
	}
	return s.logs.Set(ctx, logs)
}
