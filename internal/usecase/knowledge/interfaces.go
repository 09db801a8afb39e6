package knowledge

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error)
	Get(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error)
	List(ctx context.Context, skip, limit int, activeOnly bool) ([]*entity.KnowledgeBaseItem, error)
	ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error)
	Update(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
