package out

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"studyhub/internal/modules/vocab/domain"
	vocabout "studyhub/internal/modules/vocab/port/out"
)

//go:embed builtin_vocab.yaml
var builtinVocab []byte

type EmbeddedCatalog struct {
	entries map[domain.Category][]domain.Entry
}

func NewEmbeddedCatalog() (vocabout.Catalog, error) {
	raw := map[domain.Category][]domain.Entry{}
	if err := yaml.Unmarshal(builtinVocab, &raw); err != nil {
		return nil, fmt.Errorf("decode builtin vocabulary: %w", err)
	}
	for c := range raw {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("builtin vocabulary: %w", err)
		}
	}
	return &EmbeddedCatalog{entries: raw}, nil
}

func (c *EmbeddedCatalog) Entries(category domain.Category) []domain.Entry {
	return append([]domain.Entry(nil), c.entries[category]...)
}
