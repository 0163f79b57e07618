package out

import "studyhub/internal/modules/vault/domain"

type Catalog interface {
	Categories() []domain.Category
}
