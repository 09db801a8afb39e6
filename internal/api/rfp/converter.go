package rfp

import (
	"time"

	"github.com/futig/rfp-backend/internal/entity"
)

// toRFPSummary converts RFPDocument entity to RFPSummary DTO
func toRFPSummary(doc *entity.RFPDocument) *entity.RFPSummary {
	summary := &entity.RFPSummary{
		ID:        doc.ID,
		Title:     doc.Title,
		Filename:  doc.Filename,
		PageCount: doc.PageCount,
		CreatedAt: doc.CreatedAt.UTC().Format(time.RFC3339),
	}
	if doc.Analysis != nil {
		summary.SectionCount = len(doc.Analysis.Sections)
		summary.TotalQuestions = doc.Analysis.TotalQuestions()
	}
	return summary
}
