package service

import (
	"context"
	"fmt"

	"studyhub/internal/modules/progress/domain"
	progressout "studyhub/internal/modules/progress/port/out"
)

type ProgressService struct {
	store progressout.ItemStore
}

func NewProgressService(store progressout.ItemStore) *ProgressService {
	return &ProgressService{store: store}
}

func (s *ProgressService) Items(ctx context.Context) ([]domain.Item, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return items, nil
}

// Toggle rewrites the collection only when an item matched.
func (s *ProgressService) Toggle(ctx context.Context, id string) (domain.Item, bool, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return domain.Item{}, false, err
	}
	items, found := domain.Toggle(items, id)
	if !found {
		return domain.Item{}, false, nil
	}
	if err := s.store.Save(ctx, items); err != nil {
		return domain.Item{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return domain.Item{}, false, nil
}

func (s *ProgressService) Reset(ctx context.Context) error {
	return s.store.Save(ctx, domain.DefaultItems())
}
