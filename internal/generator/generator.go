// Package generator assembles a draft proposal from an RFP analysis and a knowledge base.
// Generation is deterministic and never fails: missing knowledge degrades to boilerplate text.
package generator

import (
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

const (
	companyExcerptLength     = 300
	keyRequirementLength     = 200
	maxSummaryRequirements   = 3
	lowConfidenceThreshold   = 0.5
	technicalDiagramsTrigger = 10
)

var (
	companyKeywords        = []string{"company", "overview", "capabilities"}
	requiredKnowledgeTypes = []entity.KnowledgeType{
		entity.KnowledgeTypeCompanyInfo,
		entity.KnowledgeTypeCaseStudy,
		entity.KnowledgeTypeTechnicalSpec,
		entity.KnowledgeTypePricing,
	}
)

// Generator holds the snapshot of active knowledge items one generation draws from
type Generator struct {
	knowledge []entity.KnowledgeBaseItem
}

// New captures the active items; later changes to items do not affect the generator
func New(items []entity.KnowledgeBaseItem) *Generator {
	active := make([]entity.KnowledgeBaseItem, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}
	return &Generator{knowledge: active}
}

// GenerateProposalFromRFP is a one-shot Generate over a fresh snapshot of items
func GenerateProposalFromRFP(
	analysis *entity.RFPAnalysis,
	items []entity.KnowledgeBaseItem,
	projectTitle, clientName, additionalContext string,
) *entity.GeneratedProposal {
	return New(items).Generate(analysis, projectTitle, clientName, additionalContext)
}

func (g *Generator) Generate(analysis *entity.RFPAnalysis, projectTitle, clientName, additionalContext string) *entity.GeneratedProposal {
	if analysis == nil {
		analysis = &entity.RFPAnalysis{}
	}

	sections := make([]entity.ProposalSection, 0, len(analysis.Sections)+3)
	for _, rfpSection := range analysis.Sections {
		if len(rfpSection.Questions) == 0 {
			continue
		}
		sections = append(sections, g.responseSection(rfpSection, len(sections)+1))
	}
	sections = append(sections, g.standardSections()...)

	return &entity.GeneratedProposal{
		Title:              projectTitle,
		ExecutiveSummary:   g.executiveSummary(analysis, projectTitle, clientName, additionalContext),
		Sections:           sections,
		TotalQuestions:     analysis.TotalQuestions(),
		Recommendations:    recommendations(analysis, sections),
		MissingInformation: g.missingInformation(analysis, sections),
	}
}

func (g *Generator) executiveSummary(analysis *entity.RFPAnalysis, projectTitle, clientName, additionalContext string) string {
	approach := "Our experienced team brings proven expertise in delivering complex software solutions that drive business growth and digital transformation."
	if item, ok := firstMatching(g.knowledge, companyKeywords); ok {
		approach = excerpt(item.Content, companyExcerptLength)
	}

	total := analysis.TotalQuestions()

	var b strings.Builder
	b.WriteString("# Executive Summary\n\n")
	fmt.Fprintf(&b, "We are pleased to submit our comprehensive proposal for %s to %s. ", projectTitle, clientName)
	fmt.Fprintf(&b, "Our team has thoroughly analyzed your RFP requirements and identified %d specific questions and requirements across %d key areas.\n\n",
		total, len(analysis.Sections))

	b.WriteString("## Our Understanding\n")
	b.WriteString(analysis.Summary)
	b.WriteString("\n\n## Our Approach\n")
	b.WriteString(approach)

	b.WriteString("\n\n## Key Differentiators\n")
	fmt.Fprintf(&b, "- Comprehensive coverage of all %d RFP requirements\n", total)
	b.WriteString("- Proven track record with similar projects\n")
	b.WriteString("- Dedicated project team with relevant expertise\n")
	b.WriteString("- Agile development methodology ensuring timely delivery\n")
	b.WriteString("- 24/7 support and maintenance capabilities\n\n")

	b.WriteString("## Value Proposition\n")
	fmt.Fprintf(&b, "We understand that %s requires a solution that not only meets your technical specifications but also delivers measurable business value. ", clientName)
	b.WriteString("Our proposal addresses each of your requirements with detailed solutions, timelines, and pricing.\n\n")

	if ctx := strings.TrimSpace(additionalContext); ctx != "" {
		b.WriteString("## Additional Context\n")
		b.WriteString(ctx)
		b.WriteString("\n\n")
	}

	if reqs := analysis.KeyRequirements; len(reqs) > 0 {
		b.WriteString("## Key Requirements Addressed\n")
		for i, req := range reqs[:min(len(reqs), maxSummaryRequirements)] {
			fmt.Fprintf(&b, "%d. %s\n", i+1, excerpt(req, keyRequirementLength))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "We look forward to discussing how our solution can help %s achieve its objectives and deliver exceptional results.", clientName)
	return b.String()
}

func recommendations(analysis *entity.RFPAnalysis, sections []entity.ProposalSection) []string {
	recs := make([]string, 0)

	var weak []string
	for _, s := range sections {
		if s.Confidence < lowConfidenceThreshold {
			weak = append(weak, s.Title)
		}
	}
	if len(weak) > 0 {
		recs = append(recs, "Consider adding more specific information for: "+strings.Join(weak, ", "))
	}

	if n := analysis.CountByPriority(entity.PriorityHigh); n > 0 {
		recs = append(recs, fmt.Sprintf("Ensure detailed responses to %d high-priority requirements", n))
	}

	counts := analysis.CountByType()
	if n := counts[entity.QuestionTypeCompliance]; n > 0 {
		recs = append(recs, fmt.Sprintf("Include compliance documentation and certifications for %d compliance requirements", n))
	}
	if counts[entity.QuestionTypeTechnical] > technicalDiagramsTrigger {
		recs = append(recs, "Consider adding technical architecture diagrams and detailed specifications")
	}
	if counts[entity.QuestionTypeCommercial] > 0 {
		recs = append(recs, "Include detailed pricing breakdown and commercial terms")
	}

	return recs
}

// missingInformation reports unaddressed questions and knowledge gaps.
// A question counts as addressed only when its exact text is listed by some section.
func (g *Generator) missingInformation(analysis *entity.RFPAnalysis, sections []entity.ProposalSection) []string {
	missing := make([]string, 0)

	addressed := make(map[string]struct{})
	for _, s := range sections {
		for _, q := range s.RFPQuestions {
			addressed[q] = struct{}{}
		}
	}
	unanswered := 0
	for _, q := range analysis.Questions() {
		if _, ok := addressed[q.Question]; !ok {
			unanswered++
		}
	}
	if unanswered > 0 {
		missing = append(missing, fmt.Sprintf("%d questions require additional attention", unanswered))
	}

	available := make(map[entity.KnowledgeType]struct{})
	for _, item := range g.knowledge {
		available[item.Type] = struct{}{}
	}
	var gaps []string
	for _, kt := range requiredKnowledgeTypes {
		if _, ok := available[kt]; !ok {
			gaps = append(gaps, string(kt))
		}
	}
	if len(gaps) > 0 {
		missing = append(missing, "Consider adding knowledge base content for: "+strings.Join(gaps, ", "))
	}

	if _, ok := available[entity.KnowledgeTypeTechnicalSpec]; !ok && len(analysis.TechnicalRequirements) > 0 {
		missing = append(missing, "Technical specifications and capabilities documentation")
	}
	if len(analysis.ComplianceItems) > 0 {
		missing = append(missing, "Compliance certifications and documentation")
	}

	return missing
}
