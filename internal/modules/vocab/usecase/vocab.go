package usecase

import (
	"context"

	"studyhub/internal/modules/vocab/domain"
	vocabdto "studyhub/internal/modules/vocab/dto"
	vocabin "studyhub/internal/modules/vocab/port/in"
	"studyhub/internal/modules/vocab/service"
)

type Interactor struct {
	svc *service.VocabService
}

func NewInteractor(svc *service.VocabService) vocabin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input vocabdto.ListInput) (vocabdto.ListOutput, error) {
	categories := domain.Categories
	if input.Category != "" {
		c := domain.Category(input.Category)
		if err := c.Validate(); err != nil {
			return vocabdto.ListOutput{}, err
		}
		categories = []domain.Category{c}
	}
	rows, err := i.svc.Rows(ctx, categories)
	if err != nil {
		return vocabdto.ListOutput{}, err
	}
	out := vocabdto.ListOutput{Rows: []vocabdto.RowOutput{}}
	for _, r := range domain.Search(input.Query, rows) {
		out.Rows = append(out.Rows, toOutput(r))
		if r.UserAdded {
			out.UserCount++
		}
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, input vocabdto.AddInput) (vocabdto.AddOutput, error) {
	item, added, err := i.svc.Add(ctx, input.Term, input.Meaning, input.Example, input.Origin, domain.Category(input.Category))
	if err != nil || !added {
		return vocabdto.AddOutput{}, err
	}
	row := domain.Row{
		ID:        item.ID,
		Term:      item.Term,
		Meaning:   item.Meaning,
		Example:   item.Example,
		Origin:    item.Origin,
		Category:  item.Category,
		UserAdded: true,
	}
	return vocabdto.AddOutput{Row: toOutput(row), Added: true}, nil
}

func (i *Interactor) Remove(ctx context.Context, id string) (bool, error) {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) Lookup(ctx context.Context, term string) (vocabdto.DefinitionOutput, error) {
	def, err := i.svc.Lookup(ctx, term)
	if err != nil {
		return vocabdto.DefinitionOutput{}, err
	}
	return vocabdto.DefinitionOutput{Term: domain.CleanTerm(term), Definition: def.Definition, Example: def.Example}, nil
}

func toOutput(r domain.Row) vocabdto.RowOutput {
	return vocabdto.RowOutput{
		ID:        r.ID,
		Term:      r.Term,
		Meaning:   r.Meaning,
		Example:   r.Example,
		Origin:    r.Origin,
		Category:  string(r.Category),
		UserAdded: r.UserAdded,
	}
}
