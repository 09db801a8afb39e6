package knowledge

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
)

type KnowledgeUsecase interface {
	CreateItem(ctx context.Context, req *entity.CreateKnowledgeItemRequest) (*entity.KnowledgeBaseItem, error)
	GetItem(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error)
	ListItems(ctx context.Context, req *entity.ListKnowledgeItemsRequest) ([]*entity.KnowledgeBaseItem, error)
	UpdateItem(ctx context.Context, req *entity.UpdateKnowledgeItemRequest) (*entity.KnowledgeBaseItem, error)
	DeleteItem(ctx context.Context, id string) error
}
