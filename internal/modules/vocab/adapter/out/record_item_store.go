package out

import (
	"context"

	"go.uber.org/zap"

	"studyhub/internal/modules/vocab/domain"
	vocabout "studyhub/internal/modules/vocab/port/out"
	"studyhub/internal/platform/recordstore"
)

type RecordItemStore struct {
	items recordstore.Collection[[]domain.Item]
}

func NewRecordItemStore(medium recordstore.Medium, logger *zap.Logger) vocabout.ItemStore {
	return &RecordItemStore{
		items: recordstore.NewCollection(medium, recordstore.KeyVocab, recordstore.List[domain.Item](), logger),
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
