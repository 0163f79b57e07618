package out

import (
	"context"

	"studyhub/internal/modules/vocab/domain"
)

type ItemStore interface {
	Load(ctx context.Context) ([]domain.Item, error)
	Save(ctx context.Context, items []domain.Item) error
}

// Catalog serves the built-in entries of a category in their fixed order.
type Catalog interface {
	Entries(category domain.Category) []domain.Entry
}

// Dictionary answers ErrLookupNotFound when the term has no entry and
// ErrLookupUnavailable when the service could not be reached.
type Dictionary interface {
	Lookup(ctx context.Context, term string) (domain.Definition, error)
}
