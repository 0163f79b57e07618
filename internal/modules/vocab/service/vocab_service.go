package service

import (
	"context"
	"fmt"
	"strings"

	"studyhub/internal/modules/vocab/domain"
	vocabout "studyhub/internal/modules/vocab/port/out"
	"studyhub/internal/platform/calendar"
	"studyhub/internal/platform/clock"
	"studyhub/internal/platform/id"
	"studyhub/internal/platform/validate"
)

type VocabService struct {
	clock      clock.Clock
	idGen      id.Generator
	store      vocabout.ItemStore
	catalog    vocabout.Catalog
	dictionary vocabout.Dictionary
}

func NewVocabService(clock clock.Clock, idGen id.Generator, store vocabout.ItemStore, catalog vocabout.Catalog, dictionary vocabout.Dictionary) *VocabService {
	return &VocabService{clock: clock, idGen: idGen, store: store, catalog: catalog, dictionary: dictionary}
}

func (s *VocabService) Items(ctx context.Context) ([]domain.Item, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return items, nil
}

// Rows merges built-ins with user entries for each requested category.
func (s *VocabService) Rows(ctx context.Context, categories []domain.Category) ([]domain.Row, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	rows := []domain.Row{}
	for _, c := range categories {
		rows = append(rows, domain.Merge(s.catalog.Entries(c), items, c)...)
	}
	return rows, nil
}

// Add appends a user entry. A blank term or meaning is refused without error;
// an unknown category is an invalid input.
func (s *VocabService) Add(ctx context.Context, term, meaning, example, origin string, category domain.Category) (domain.Item, bool, error) {
	if err := category.Validate(); err != nil {
		return domain.Item{}, false, err
	}
	item := domain.Item{
		ID:        s.idGen.New(),
		Term:      strings.TrimSpace(term),
		Meaning:   strings.TrimSpace(meaning),
		Example:   strings.TrimSpace(example),
		Origin:    strings.TrimSpace(origin),
		Category:  category,
		CreatedAt: calendar.Stamp(s.clock.Now()),
	}
	if err := validate.Struct(item); err != nil {
		return domain.Item{}, false, nil
	}
	items, err := s.Items(ctx)
	if err != nil {
		return domain.Item{}, false, err
	}
	if err := s.store.Save(ctx, append(items, item)); err != nil {
		return domain.Item{}, false, err
	}
	return item, true, nil
}

func (s *VocabService) Remove(ctx context.Context, id string) (bool, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return false, err
	}
	items, found := domain.Remove(items, id)
	if !found {
		return false, nil
	}
	if err := s.store.Save(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

func (s *VocabService) Lookup(ctx context.Context, term string) (domain.Definition, error) {
	return s.dictionary.Lookup(ctx, term)
}
