package proposal

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
)

type ProposalUsecase interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) *entity.GeneratedProposal
	Create(ctx context.Context, req *entity.CreateProposalRequest) (*entity.Proposal, error)
	Get(ctx context.Context, id string) (*entity.Proposal, error)
	ListByRFP(ctx context.Context, rfpID string) ([]*entity.Proposal, error)
	Delete(ctx context.Context, id string) error
}
