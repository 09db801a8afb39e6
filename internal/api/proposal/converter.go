package proposal

import (
	"time"

	"github.com/futig/rfp-backend/internal/entity"
)

// toProposalSummary converts Proposal entity to ProposalSummary DTO
func toProposalSummary(p *entity.Proposal) *entity.ProposalSummary {
	summary := &entity.ProposalSummary{
		ID:           p.ID,
		RFPID:        p.RFPID,
		ProjectTitle: p.ProjectTitle,
		ClientName:   p.ClientName,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.Content != nil {
		summary.CoveragePercentage = p.Content.CoveragePercentage()
	}
	return summary
}
