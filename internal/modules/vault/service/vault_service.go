package service

import (
	"fmt"

	"studyhub/internal/modules/vault/domain"
	vaultout "studyhub/internal/modules/vault/port/out"
	apperrors "studyhub/internal/platform/errors"
)

type VaultService struct {
	catalog vaultout.Catalog
}

func NewVaultService(catalog vaultout.Catalog) *VaultService {
	return &VaultService{catalog: catalog}
}

func (s *VaultService) Search(query string) ([]domain.Category, int) {
	all := s.catalog.Categories()
	return domain.Search(all, query), domain.Count(all)
}

func (s *VaultService) Topics() []domain.Topic {
	return domain.Topics(s.catalog.Categories())
}

func (s *VaultService) Topic(id string) (domain.Topic, []domain.Formula, error) {
	topic, formulas, ok := domain.FindTopic(s.catalog.Categories(), id)
	if !ok {
		return domain.Topic{}, nil, fmt.Errorf("topic %q: %w", id, apperrors.ErrNotFound)
	}
	return topic, formulas, nil
}

// Cards lists flashcards for a topic, or for the whole vault when topicID is
// empty.
func (s *VaultService) Cards(topicID string) ([]domain.Card, error) {
	if topicID != "" {
		topic, formulas, err := s.Topic(topicID)
		if err != nil {
			return nil, err
		}
		return cardsFor(topic.Name, formulas), nil
	}
	cards := []domain.Card{}
	for _, c := range s.catalog.Categories() {
		for _, sub := range c.Subtopics {
			cards = append(cards, cardsFor(sub.Name, sub.Formulas)...)
		}
	}
	return cards, nil
}

func cardsFor(topic string, formulas []domain.Formula) []domain.Card {
	cards := make([]domain.Card, 0, len(formulas))
	for _, f := range formulas {
		cards = append(cards, domain.Card{Topic: topic, Name: f.Name, Latex: f.Latex, Description: f.Description})
	}
	return cards
}
