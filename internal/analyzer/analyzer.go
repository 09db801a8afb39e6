// Package analyzer turns unstructured RFP text into a structured analysis.
// Every function here is pure and safe for concurrent use.
package analyzer

import "github.com/futig/rfp-backend/internal/entity"

// Metadata carries optional facts about the source document
type Metadata struct {
	PageCount int
}

// AnalyzeRFP normalizes text, splits it into sections, extracts and classifies questions,
// and pulls the flat requirement lists from the whole document.
func AnalyzeRFP(text string, meta Metadata) *entity.RFPAnalysis {
	clean := Normalize(text)

	sections := extractSections(clean)
	for i := range sections {
		sections[i].Questions = extractQuestions(sections[i])
	}

	analysis := &entity.RFPAnalysis{
		TotalPages:             EstimatePages(text, meta.PageCount),
		Sections:               sections,
		KeyRequirements:        keyRequirementRule.extract(clean),
		TechnicalRequirements:  technicalRequirementRule.extract(clean),
		CommercialTerms:        commercialTermRule.extract(clean),
		ComplianceItems:        complianceItemRule.extract(clean),
		Deadlines:              deadlineRule.extract(clean),
		EvaluationCriteria:     evaluationCriteriaRule.extract(clean),
		SubmissionRequirements: submissionRequirementRule.extract(clean),
	}
	analysis.Summary = summarize(analysis)

	return analysis
}
