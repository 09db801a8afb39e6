package proposal

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal entity.Proposal) (*entity.Proposal, error)
	Get(ctx context.Context, id string) (*entity.Proposal, error)
	ListByRFP(ctx context.Context, rfpID string) ([]*entity.Proposal, error)
	Delete(ctx context.Context, id string) error
}

type RFPRepository interface {
	Get(ctx context.Context, id string) (*entity.RFPDocument, error)
}

type KnowledgeRepository interface {
	ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error)
}
