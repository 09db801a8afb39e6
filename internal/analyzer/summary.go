package analyzer

import (
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

var typeLabels = map[entity.QuestionType]string{
	entity.QuestionTypeTechnical:  "Technical",
	entity.QuestionTypeCommercial: "Commercial",
	entity.QuestionTypeCompliance: "Compliance",
	entity.QuestionTypeExperience: "Experience",
	entity.QuestionTypeGeneral:    "General",
}

func summarize(a *entity.RFPAnalysis) string {
	counts := a.CountByType()

	var b strings.Builder
	fmt.Fprintf(&b, "This RFP contains %d main sections with %d identified questions and requirements.\n",
		len(a.Sections), a.TotalQuestions())
	fmt.Fprintf(&b, "%d questions are marked as high priority and require immediate attention.\n\n",
		a.CountByPriority(entity.PriorityHigh))

	b.WriteString("Question breakdown:\n")
	for _, t := range entity.QuestionTypes {
		fmt.Fprintf(&b, "- %s: %d questions\n", typeLabels[t], counts[t])
	}

	fmt.Fprintf(&b, "\nKey areas identified: %d key requirements, %d technical specifications.\n\n",
		len(a.KeyRequirements), len(a.TechnicalRequirements))
	b.WriteString("This comprehensive analysis ensures all RFP requirements are captured and addressed in your proposal response.")

	return b.String()
}
