package out

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"studyhub/internal/modules/vault/domain"
	vaultout "studyhub/internal/modules/vault/port/out"
)

//go:embed formulas.yaml
var formulasYAML []byte

type EmbeddedCatalog struct {
	categories []domain.Category
}

func NewEmbeddedCatalog() (vaultout.Catalog, error) {
	doc := struct {
		Categories []domain.Category `yaml:"categories"`
	}{}
	if err := yaml.Unmarshal(formulasYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode formula vault: %w", err)
	}
	return &EmbeddedCatalog{categories: doc.Categories}, nil
}

func (c *EmbeddedCatalog) Categories() []domain.Category {
	return c.categories
}
