package in

import (
	"context"

	vaultdto "studyhub/internal/modules/vault/dto"
	vaultin "studyhub/internal/modules/vault/port/in"
)

type CLIHandler struct {
	usecase vaultin.Usecase
}

func NewCLIHandler(usecase vaultin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, query string) (vaultdto.SearchOutput, error) {
	return h.usecase.Search(ctx, query)
}

func (h CLIHandler) Topics(ctx context.Context) ([]vaultdto.TopicOutput, error) {
	return h.usecase.Topics(ctx)
}

func (h CLIHandler) Show(ctx context.Context, id string) (vaultdto.TopicDetailOutput, error) {
	return h.usecase.Topic(ctx, id)
}

func (h CLIHandler) Cards(ctx context.Context, topicID string) ([]vaultdto.CardOutput, error) {
	return h.usecase.Cards(ctx, topicID)
}
