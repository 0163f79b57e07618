package out

import (
	"context"

	"go.uber.org/zap"

	"studyhub/internal/modules/progress/domain"
	progressout "studyhub/internal/modules/progress/port/out"
	"studyhub/internal/platform/recordstore"
)

type RecordItemStore struct {
	items recordstore.Collection[[]domain.Item]
}

// NewRecordItemStore seeds the syllabus checklist when nothing is stored yet.
func NewRecordItemStore(medium recordstore.Medium, logger *zap.Logger) progressout.ItemStore {
	return &RecordItemStore{
		items: recordstore.NewCollection(medium, recordstore.KeyProgress, domain.DefaultItems, logger),
	}
}

func (s *RecordItemStore) Load(ctx context.Context) ([]domain.Item, error) {
	return s.items.Get(ctx)
}

func (s *RecordItemStore) Save(ctx context.Context, items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	return s.items.Set(ctx, items)
}
