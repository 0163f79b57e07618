package usecase

import (
	"context"

	"studyhub/internal/modules/vault/domain"
	vaultdto "studyhub/internal/modules/vault/dto"
	vaultin "studyhub/internal/modules/vault/port/in"
	"studyhub/internal/modules/vault/service"
	"studyhub/internal/platform/slug"
)

type Interactor struct {
	svc *service.VaultService
}

func NewInteractor(svc *service.VaultService) vaultin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Search(_ context.Context, query string) (vaultdto.SearchOutput, error) {
	categories, total := i.svc.Search(query)
	out := vaultdto.SearchOutput{Categories: []vaultdto.CategoryOutput{}, Total: total}
	for _, c := range categories {
		cat := vaultdto.CategoryOutput{ID: c.ID, Title: c.Title}
		for _, s := range c.Subtopics {
			cat.Subtopics = append(cat.Subtopics, vaultdto.SubtopicOutput{
				ID:       slug.Make(s.Name),
				Name:     s.Name,
				Formulas: formulaOutputs(s.Formulas),
			})
			out.Matches += len(s.Formulas)
		}
		out.Categories = append(out.Categories, cat)
	}
	return out, nil
}

func (i *Interactor) Topics(_ context.Context) ([]vaultdto.TopicOutput, error) {
	out := []vaultdto.TopicOutput{}
	for _, t := range i.svc.Topics() {
		out = append(out, topicOutput(t))
	}
	return out, nil
}

func (i *Interactor) Topic(_ context.Context, id string) (vaultdto.TopicDetailOutput, error) {
	topic, formulas, err := i.svc.Topic(id)
	if err != nil {
		return vaultdto.TopicDetailOutput{}, err
	}
	return vaultdto.TopicDetailOutput{Topic: topicOutput(topic), Formulas: formulaOutputs(formulas)}, nil
}

func (i *Interactor) Cards(_ context.Context, topicID string) ([]vaultdto.CardOutput, error) {
	cards, err := i.svc.Cards(topicID)
	if err != nil {
		return nil, err
	}
	out := make([]vaultdto.CardOutput, 0, len(cards))
	for _, c := range cards {
		out = append(out, vaultdto.CardOutput{Topic: c.Topic, Name: c.Name, Latex: c.Latex, Description: c.Description})
	}
	return out, nil
}

func topicOutput(t domain.Topic) vaultdto.TopicOutput {
	return vaultdto.TopicOutput{
		ID:            t.ID,
		Name:          t.Name,
		CategoryID:    t.CategoryID,
		CategoryTitle: t.CategoryTitle,
		Count:         t.Count,
	}
}

func formulaOutputs(formulas []domain.Formula) []vaultdto.FormulaOutput {
	out := make([]vaultdto.FormulaOutput, 0, len(formulas))
	for _, f := range formulas {
		out = append(out, vaultdto.FormulaOutput{Name: f.Name, Latex: f.Latex, Description: f.Description})
	}
	return out
}
