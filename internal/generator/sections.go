package generator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

const (
	capabilitiesExcerptLength = 400
	experienceExcerptLength   = 500
)

type technologyGroup struct {
	name     string
	keywords []string
}

// technologyGroups buckets technical questions; the first group with a hit wins
var technologyGroups = []technologyGroup{
	{"Architecture & Design", []string{"architecture", "design", "pattern"}},
	{"Development & Implementation", []string{"development", "implementation", "coding"}},
	{"Security & Compliance", []string{"security", "compliance", "audit"}},
	{"Performance & Scalability", []string{"performance", "scalability", "load"}},
	{"Integration & APIs", []string{"integration", "api", "interface"}},
}

const generalTechnicalGroup = "General Technical"

var techTags = []string{"technical", "technology", "architecture", "development"}

// responseSection builds the proposal section answering one RFP section's questions
func (g *Generator) responseSection(rfpSection entity.RFPSection, number int) entity.ProposalSection {
	relevant := rank(g.knowledge, sectionKeywords(rfpSection), sectionRelevanceThreshold, maxSectionKnowledge)

	var technical, commercial, other []entity.RFPQuestion
	highPriority := 0
	for _, q := range rfpSection.Questions {
		if q.Priority == entity.PriorityHigh {
			highPriority++
		}
		switch q.Type {
		case entity.QuestionTypeTechnical:
			technical = append(technical, q)
		case entity.QuestionTypeCommercial:
			commercial = append(commercial, q)
		default:
			other = append(other, q)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %d. %s\n\n", number, rfpSection.Title)
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "This section addresses %d specific requirements from your RFP, including %d high-priority items.\n\n",
		len(rfpSection.Questions), highPriority)

	if len(technical) > 0 {
		b.WriteString("## Technical Approach\n")
		writeTechnicalResponses(&b, technical, technicalKnowledge(relevant))
	}
	if len(commercial) > 0 {
		b.WriteString("## Commercial Considerations\n")
		writeCommercialResponses(&b, commercial, pricingKnowledge(relevant))
	}
	if len(other) > 0 {
		b.WriteString("## Additional Requirements\n")
		writeAnswers(&b, other, relevant)
	}
	if caseStudies := ofType(relevant, entity.KnowledgeTypeCaseStudy); len(caseStudies) > 0 {
		b.WriteString("## Relevant Experience\n")
		b.WriteString(excerpt(caseStudies[0].Content, experienceExcerptLength))
		b.WriteString("\n\n")
	}

	questions := make([]string, len(rfpSection.Questions))
	for i, q := range rfpSection.Questions {
		questions[i] = q.Question
	}
	used := make([]string, len(relevant))
	for i, item := range relevant {
		used[i] = item.Title
	}

	return entity.ProposalSection{
		ID:            fmt.Sprintf("section-%d", number),
		Title:         rfpSection.Title,
		Content:       strings.TrimRight(b.String(), "\n"),
		RFPQuestions:  questions,
		KnowledgeUsed: used,
		Confidence:    sectionConfidence(rfpSection.Questions, relevant),
	}
}

func writeTechnicalResponses(b *strings.Builder, questions []entity.RFPQuestion, knowledge []entity.KnowledgeBaseItem) {
	for _, group := range groupByTechnology(questions) {
		fmt.Fprintf(b, "### %s\n", group.name)
		writeAnswers(b, group.questions, knowledge)
	}
	if len(knowledge) > 0 {
		b.WriteString("### Our Technical Capabilities\n")
		b.WriteString(excerpt(knowledge[0].Content, capabilitiesExcerptLength))
		b.WriteString("\n\n")
	}
}

func writeCommercialResponses(b *strings.Builder, questions []entity.RFPQuestion, knowledge []entity.KnowledgeBaseItem) {
	writeAnswers(b, questions, knowledge)
	if len(knowledge) > 0 {
		b.WriteString("### Our Pricing Approach\n")
		b.WriteString(excerpt(knowledge[0].Content, capabilitiesExcerptLength))
		b.WriteString("\n\n")
	}
}

func writeAnswers(b *strings.Builder, questions []entity.RFPQuestion, knowledge []entity.KnowledgeBaseItem) {
	for i, q := range questions {
		fmt.Fprintf(b, "**%d. %s**\n\n", i+1, q.Question)
		b.WriteString(answer(q, backing(q, knowledge, maxAnswerKnowledge)))
		b.WriteString("\n\n")
	}
}

// backing returns the items sharing at least one keyword with the question, best first
func backing(q entity.RFPQuestion, knowledge []entity.KnowledgeBaseItem, limit int) []entity.KnowledgeBaseItem {
	return rank(knowledge, q.Keywords, 0, limit)
}

// sectionConfidence averages min(backing items x confidencePerItem, maxConfidence) over the questions
func sectionConfidence(questions []entity.RFPQuestion, relevant []entity.KnowledgeBaseItem) float64 {
	if len(questions) == 0 {
		return 0
	}
	var total float64
	for _, q := range questions {
		total += min(float64(len(backing(q, relevant, 0)))*confidencePerItem, maxConfidence)
	}
	return total / float64(len(questions))
}

func technicalKnowledge(items []entity.KnowledgeBaseItem) []entity.KnowledgeBaseItem {
	var tech []entity.KnowledgeBaseItem
	for _, item := range items {
		if item.Type == entity.KnowledgeTypeTechnicalSpec || hasTag(item, techTags...) {
			tech = append(tech, item)
		}
	}
	return tech
}

func pricingKnowledge(items []entity.KnowledgeBaseItem) []entity.KnowledgeBaseItem {
	var pricing []entity.KnowledgeBaseItem
	for _, item := range items {
		if item.Type == entity.KnowledgeTypePricing || hasTag(item, "pricing") {
			pricing = append(pricing, item)
		}
	}
	return pricing
}

func hasTag(item entity.KnowledgeBaseItem, tags ...string) bool {
	return slices.ContainsFunc(item.Tags, func(tag string) bool {
		return slices.Contains(tags, strings.ToLower(tag))
	})
}

type questionGroup struct {
	name      string
	questions []entity.RFPQuestion
}

// groupByTechnology returns the non-empty technology groups in their fixed order
func groupByTechnology(questions []entity.RFPQuestion) []questionGroup {
	buckets := make([][]entity.RFPQuestion, len(technologyGroups)+1)
	for _, q := range questions {
		lower := strings.ToLower(q.Question)
		idx := len(technologyGroups)
		for i, group := range technologyGroups {
			if slices.ContainsFunc(group.keywords, func(kw string) bool { return strings.Contains(lower, kw) }) {
				idx = i
				break
			}
		}
		buckets[idx] = append(buckets[idx], q)
	}

	var groups []questionGroup
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		name := generalTechnicalGroup
		if i < len(technologyGroups) {
			name = technologyGroups[i].name
		}
		groups = append(groups, questionGroup{name: name, questions: bucket})
	}
	return groups
}
