package proposal

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/generator"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ProposalUsecase implements proposal business logic
type ProposalUsecase struct {
	proposalRepo  ProposalRepository
	rfpRepo       RFPRepository
	knowledgeRepo KnowledgeRepository
	logger        *zap.Logger
}

func NewUsecase(
	proposalRepo ProposalRepository,
	rfpRepo RFPRepository,
	knowledgeRepo KnowledgeRepository,
	logger *zap.Logger,
) *ProposalUsecase {
	return &ProposalUsecase{
		proposalRepo:  proposalRepo,
		rfpRepo:       rfpRepo,
		knowledgeRepo: knowledgeRepo,
		logger:        logger,
	}
}

// Generate builds a proposal from a caller-supplied analysis and knowledge base without storing it
func (uc *ProposalUsecase) Generate(ctx context.Context, req *entity.GenerateRequest) *entity.GeneratedProposal {
	proposal := generator.GenerateProposalFromRFP(
		req.Analysis,
		req.KnowledgeItems,
		req.ProjectTitle,
		req.ClientName,
		req.AdditionalContext,
	)

	logGenerated(ctx, proposal)
	return proposal
}

// Create generates a proposal for a stored RFP from the active knowledge base and stores it
func (uc *ProposalUsecase) Create(ctx context.Context, req *entity.CreateProposalRequest) (*entity.Proposal, error) {
	doc, err := uc.rfpRepo.Get(ctx, req.RFPID)
	if err != nil {
		return nil, err
	}

	active, err := uc.knowledgeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	items := make([]entity.KnowledgeBaseItem, 0, len(active))
	for _, item := range active {
		items = append(items, *item)
	}

	ctxzap.Debug(ctx, "generating proposal",
		zap.String("rfp_id", doc.ID),
		zap.Int("knowledge_items", len(items)),
	)

	projectTitle := strings.TrimSpace(req.ProjectTitle)
	clientName := strings.TrimSpace(req.ClientName)

	content := generator.GenerateProposalFromRFP(doc.Analysis, items, projectTitle, clientName, req.AdditionalContext)
	logGenerated(ctx, content)

	proposal, err := uc.proposalRepo.Create(ctx, entity.Proposal{
		ID:                uuid.New().String(),
		RFPID:             doc.ID,
		ProjectTitle:      projectTitle,
		ClientName:        clientName,
		AdditionalContext: req.AdditionalContext,
		Content:           content,
	})
	if err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	ctxzap.Info(ctx, "proposal created", zap.String("proposal_id", proposal.ID))

	return proposal, nil
}

func (uc *ProposalUsecase) Get(ctx context.Context, id string) (*entity.Proposal, error) {
	if err := validator.ValidateID("proposal_id", id); err != nil {
		return nil, err
	}
	return uc.proposalRepo.Get(ctx, id)
}

// ListByRFP fails with ErrRFPNotFound for unknown documents rather than returning an empty list
func (uc *ProposalUsecase) ListByRFP(ctx context.Context, rfpID string) ([]*entity.Proposal, error) {
	if err := validator.ValidateID("rfp_id", rfpID); err != nil {
		return nil, err
	}
	if _, err := uc.rfpRepo.Get(ctx, rfpID); err != nil {
		return nil, err
	}
	return uc.proposalRepo.ListByRFP(ctx, rfpID)
}

func (uc *ProposalUsecase) Delete(ctx context.Context, id string) error {
	if err := validator.ValidateID("proposal_id", id); err != nil {
		return err
	}
	if err := uc.proposalRepo.Delete(ctx, id); err != nil {
		return err
	}

	ctxzap.Info(ctx, "proposal deleted", zap.String("proposal_id", id))
	return nil
}

func logGenerated(ctx context.Context, p *entity.GeneratedProposal) {
	ctxzap.Info(ctx, "proposal generated",
		zap.Int("sections", len(p.Sections)),
		zap.Int("questions_addressed", p.QuestionsAddressed()),
		zap.Int("total_questions", p.TotalQuestions),
		zap.Float64("coverage_percentage", p.CoveragePercentage()),
	)
}
