package generator

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/futig/rfp-backend/internal/analyzer"
	"github.com/futig/rfp-backend/internal/entity"
)

func newQuestion(id, text string, qt entity.QuestionType, p entity.Priority, keywords ...string) entity.RFPQuestion {
	return entity.RFPQuestion{ID: id, Question: text, Type: qt, Priority: p, Keywords: keywords}
}

func cloudItem(title string) entity.KnowledgeBaseItem {
	return entity.KnowledgeBaseItem{
		Title:    title,
		Type:     entity.KnowledgeTypeTechnicalSpec,
		Content:  "Managed cloud hosting across two regions with automated failover.",
		Tags:     []string{"hosting"},
		IsActive: true,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRelevance_CompanyOverview(t *testing.T) {
	item := entity.KnowledgeBaseItem{
		Title:    "Company Overview",
		Type:     entity.KnowledgeTypeCompanyInfo,
		Tags:     []string{"company", "overview"},
		Content:  "We build digital services for public sector organisations.",
		IsActive: true,
	}

	got := Relevance(item, []string{"company", "overview", "capabilities"})
	if !almostEqual(got, 3.0) {
		t.Errorf("Expected relevance 3.0, got %v", got)
	}
}

func TestRelevance_SingleKeywordHit(t *testing.T) {
	item := entity.KnowledgeBaseItem{
		Title:   "Company Profile",
		Tags:    []string{"company"},
		Content: "Founded in 2012 with offices in three cities.",
	}

	// one keyword: 1 substring + 2 title + 1.5 tag, divided by three keywords
	got := Relevance(item, []string{"company", "overview", "capabilities"})
	if !almostEqual(got, 1.5) {
		t.Errorf("Expected relevance 1.5, got %v", got)
	}
}

func TestRelevance_NoKeywords(t *testing.T) {
	if got := Relevance(cloudItem("Cloud Hosting"), nil); got != 0 {
		t.Errorf("Expected relevance 0, got %v", got)
	}
}

func TestGenerate_ZeroQuestions(t *testing.T) {
	proposal := GenerateProposalFromRFP(&entity.RFPAnalysis{}, nil, "Portal", "City", "")

	if len(proposal.Sections) != 3 {
		t.Fatalf("Expected 3 standard sections, got %d", len(proposal.Sections))
	}

	wantIDs := []string{"timeline", "team", "risk-management"}
	wantConfidence := []float64{0.8, 0.9, 0.7}
	for i, s := range proposal.Sections {
		if s.ID != wantIDs[i] {
			t.Errorf("Expected section %d id %q, got %q", i, wantIDs[i], s.ID)
		}
		if s.Confidence != wantConfidence[i] {
			t.Errorf("Expected section %q confidence %v, got %v", s.ID, wantConfidence[i], s.Confidence)
		}
		if len(s.RFPQuestions) != 0 {
			t.Errorf("Expected standard section %q to address no questions", s.ID)
		}
	}

	if proposal.CoveragePercentage() != 0 {
		t.Errorf("Expected 0%% coverage, got %v", proposal.CoveragePercentage())
	}
}

func TestGenerate_NilAnalysis(t *testing.T) {
	proposal := New(nil).Generate(nil, "Portal", "City", "")

	if len(proposal.Sections) != 3 {
		t.Errorf("Expected 3 standard sections, got %d", len(proposal.Sections))
	}
}

func TestGenerate_FullCoverage(t *testing.T) {
	text := `Technical Requirements
1. Describe your cloud architecture for the portal?
2. How will you integrate with the existing CRM API?
Pricing
3. What is the total cost of the first year?
4. Do you hold ISO 27001 certification?`

	analysis := analyzer.AnalyzeRFP(text, analyzer.Metadata{})
	if analysis.TotalQuestions() != 4 {
		t.Fatalf("Expected 4 analyzed questions, got %d", analysis.TotalQuestions())
	}

	proposal := GenerateProposalFromRFP(analysis, nil, "Portal", "City", "")

	if proposal.QuestionsAddressed() != 4 {
		t.Errorf("Expected 4 addressed questions, got %d", proposal.QuestionsAddressed())
	}
	if proposal.TotalQuestions != 4 {
		t.Errorf("Expected 4 total questions, got %d", proposal.TotalQuestions)
	}
	if !almostEqual(proposal.CoveragePercentage(), 100) {
		t.Errorf("Expected 100%% coverage, got %v", proposal.CoveragePercentage())
	}
	if len(proposal.Sections) != 5 {
		t.Errorf("Expected 2 response sections and 3 standard sections, got %d", len(proposal.Sections))
	}
	for _, m := range proposal.MissingInformation {
		if strings.Contains(m, "require additional attention") {
			t.Errorf("Expected every question addressed, got %q", m)
		}
	}
}

func TestGenerate_ConfidenceSaturates(t *testing.T) {
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		ID:    "section-1",
		Title: "Hosting",
		Questions: []entity.RFPQuestion{
			newQuestion("q1", "Where will the cloud platform be hosted?", entity.QuestionTypeTechnical, entity.PriorityLow, "cloud"),
		},
	}}}

	tests := []struct {
		name  string
		items int
		want  float64
	}{
		{"no knowledge", 0, 0},
		{"two items", 2, 0.6},
		{"four items", 4, 1.0},
		{"five items", 5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []entity.KnowledgeBaseItem
			for i := 0; i < tt.items; i++ {
				items = append(items, cloudItem("Cloud Hosting "+string(rune('A'+i))))
			}

			proposal := GenerateProposalFromRFP(analysis, items, "Portal", "City", "")
			if got := proposal.Sections[0].Confidence; !almostEqual(got, tt.want) {
				t.Errorf("Expected confidence %v, got %v", tt.want, got)
			}
			if got := len(proposal.Sections[0].KnowledgeUsed); got != tt.items {
				t.Errorf("Expected %d knowledge items used, got %d", tt.items, got)
			}
		})
	}
}

func TestGenerate_SectionKnowledgeCap(t *testing.T) {
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		ID:    "section-1",
		Title: "Hosting",
		Questions: []entity.RFPQuestion{
			newQuestion("q1", "Where will the cloud platform be hosted?", entity.QuestionTypeTechnical, entity.PriorityLow, "cloud"),
		},
	}}}

	var items []entity.KnowledgeBaseItem
	for i := 0; i < 7; i++ {
		items = append(items, cloudItem("Cloud Hosting "+string(rune('A'+i))))
	}

	proposal := GenerateProposalFromRFP(analysis, items, "Portal", "City", "")
	if got := len(proposal.Sections[0].KnowledgeUsed); got != maxSectionKnowledge {
		t.Errorf("Expected %d knowledge items used, got %d", maxSectionKnowledge, got)
	}
}

func TestGenerate_InactiveKnowledgeIgnored(t *testing.T) {
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		ID:    "section-1",
		Title: "Hosting",
		Questions: []entity.RFPQuestion{
			newQuestion("q1", "Where will the cloud platform be hosted?", entity.QuestionTypeTechnical, entity.PriorityLow, "cloud"),
		},
	}}}
	item := cloudItem("Cloud Hosting")
	item.IsActive = false

	proposal := GenerateProposalFromRFP(analysis, []entity.KnowledgeBaseItem{item}, "Portal", "City", "")

	if len(proposal.Sections[0].KnowledgeUsed) != 0 {
		t.Errorf("Expected inactive item to be ignored, got %v", proposal.Sections[0].KnowledgeUsed)
	}
	if !strings.Contains(proposal.Sections[0].Content, technicalFallback) {
		t.Error("Expected boilerplate technical answer without knowledge")
	}
}

func TestGenerate_TechnicalAnswerUsesKnowledge(t *testing.T) {
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		ID:    "section-1",
		Title: "Hosting",
		Questions: []entity.RFPQuestion{
			newQuestion("q1", "Where will the cloud platform be hosted?", entity.QuestionTypeTechnical, entity.PriorityHigh, "cloud"),
		},
	}}}

	proposal := GenerateProposalFromRFP(analysis, []entity.KnowledgeBaseItem{cloudItem("Cloud Hosting")}, "Portal", "City", "")
	content := proposal.Sections[0].Content

	for _, want := range []string{
		"# 1. Hosting",
		"including 1 high-priority items",
		"## Technical Approach",
		"### General Technical",
		"**1. Where will the cloud platform be hosted?**",
		"Our technical approach leverages industry best practices and proven technologies. Managed cloud hosting",
		"### Our Technical Capabilities",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected content to contain %q, got:\n%s", want, content)
		}
	}
}

func TestGenerate_ExperienceSection(t *testing.T) {
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		ID:    "section-1",
		Title: "References",
		Questions: []entity.RFPQuestion{
			newQuestion("q1", "Describe a comparable client project you delivered?", entity.QuestionTypeExperience, entity.PriorityLow, "client", "project"),
		},
	}}}
	caseStudy := entity.KnowledgeBaseItem{
		Title:    "Client Project: Regional Transit App",
		Type:     entity.KnowledgeTypeCaseStudy,
		Content:  "Delivered a journey planner used by 2 million riders.",
		IsActive: true,
	}

	proposal := GenerateProposalFromRFP(analysis, []entity.KnowledgeBaseItem{caseStudy}, "Portal", "City", "")
	content := proposal.Sections[0].Content

	if !strings.Contains(content, "## Additional Requirements") {
		t.Error("Expected experience question under additional requirements")
	}
	if !strings.Contains(content, "Our team has extensive experience in similar projects. Delivered a journey planner") {
		t.Errorf("Expected case study answer, got:\n%s", content)
	}
	if !strings.Contains(content, "## Relevant Experience\nDelivered a journey planner") {
		t.Errorf("Expected relevant experience block, got:\n%s", content)
	}
}

func TestGroupByTechnology(t *testing.T) {
	questions := []entity.RFPQuestion{
		{Question: "What platform do you use?"},
		{Question: "How do you handle peak load on the platform?"},
		{Question: "What is your API integration approach?"},
		{Question: "Describe your system architecture?"},
	}

	var got []string
	for _, g := range groupByTechnology(questions) {
		got = append(got, g.name)
	}

	want := []string{"Architecture & Design", "Performance & Scalability", "Integration & APIs", "General Technical"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected groups %v, got %v", want, got)
	}
}

func TestRecommendations(t *testing.T) {
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		ID:    "section-1",
		Title: "Security",
		Questions: []entity.RFPQuestion{
			newQuestion("q1", "Do you support GDPR compliance?", entity.QuestionTypeCompliance, entity.PriorityHigh, "compliance", "gdpr"),
			newQuestion("q2", "What is your total cost?", entity.QuestionTypeCommercial, entity.PriorityLow, "cost"),
		},
	}}}

	proposal := GenerateProposalFromRFP(analysis, nil, "Portal", "City", "")

	want := []string{
		"Consider adding more specific information for: Security",
		"Ensure detailed responses to 1 high-priority requirements",
		"Include compliance documentation and certifications for 1 compliance requirements",
		"Include detailed pricing breakdown and commercial terms",
	}
	if !reflect.DeepEqual(proposal.Recommendations, want) {
		t.Errorf("Expected recommendations %v, got %v", want, proposal.Recommendations)
	}
}

func TestRecommendations_ManyTechnicalQuestions(t *testing.T) {
	var questions []entity.RFPQuestion
	for i := 0; i < 11; i++ {
		questions = append(questions, newQuestion("q", "Describe component number "+string(rune('a'+i))+"?", entity.QuestionTypeTechnical, entity.PriorityLow))
	}
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{ID: "section-1", Title: "Systems", Questions: questions}}}

	proposal := GenerateProposalFromRFP(analysis, nil, "Portal", "City", "")

	found := false
	for _, r := range proposal.Recommendations {
		if r == "Consider adding technical architecture diagrams and detailed specifications" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected diagrams recommendation, got %v", proposal.Recommendations)
	}
}

func TestMissingInformation(t *testing.T) {
	analysis := &entity.RFPAnalysis{
		TechnicalRequirements: []string{"The platform must scale to 10k users."},
		ComplianceItems:       []string{"ISO 27001 certification is required."},
	}

	proposal := GenerateProposalFromRFP(analysis, nil, "Portal", "City", "")

	want := []string{
		"Consider adding knowledge base content for: company-info, case-study, technical-spec, pricing",
		"Technical specifications and capabilities documentation",
		"Compliance certifications and documentation",
	}
	if !reflect.DeepEqual(proposal.MissingInformation, want) {
		t.Errorf("Expected missing information %v, got %v", want, proposal.MissingInformation)
	}
}

func TestMissingInformation_UnlistedQuestion(t *testing.T) {
	g := New(nil)
	analysis := &entity.RFPAnalysis{Sections: []entity.RFPSection{{
		Title:     "Scope",
		Questions: []entity.RFPQuestion{newQuestion("q1", "What is the expected go-live date?", entity.QuestionTypeGeneral, entity.PriorityLow)},
	}}}

	missing := g.missingInformation(analysis, g.standardSections())
	if len(missing) == 0 || missing[0] != "1 questions require additional attention" {
		t.Errorf("Expected unlisted question to be reported, got %v", missing)
	}
}

func TestExecutiveSummary(t *testing.T) {
	analysis := &entity.RFPAnalysis{
		Summary:         "This RFP contains 0 main sections.",
		KeyRequirements: []string{"must provide SSO.", "must provide audit logs.", "must provide backups.", "must provide training."},
	}
	company := entity.KnowledgeBaseItem{
		Title:    "Company Overview",
		Type:     entity.KnowledgeTypeCompanyInfo,
		Content:  "Acme Digital has delivered citizen-facing services since 2009.",
		IsActive: true,
	}

	proposal := GenerateProposalFromRFP(analysis, []entity.KnowledgeBaseItem{company}, "Citizen Portal", "Springfield", "Phased rollout preferred.")
	summary := proposal.ExecutiveSummary

	for _, want := range []string{
		"We are pleased to submit our comprehensive proposal for Citizen Portal to Springfield.",
		"## Our Understanding\nThis RFP contains 0 main sections.",
		"## Our Approach\nAcme Digital has delivered citizen-facing services since 2009.",
		"## Additional Context\nPhased rollout preferred.",
		"3. must provide backups.",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, summary)
		}
	}
	if strings.Contains(summary, "must provide training") {
		t.Error("Expected only the top 3 key requirements")
	}
}

func TestTeamSectionUsesKnowledge(t *testing.T) {
	team := entity.KnowledgeBaseItem{
		Title:    "Delivery Team",
		Type:     entity.KnowledgeTypeTeamProfile,
		Content:  "Twelve engineers with public sector clearance.",
		IsActive: true,
	}

	proposal := GenerateProposalFromRFP(&entity.RFPAnalysis{}, []entity.KnowledgeBaseItem{team}, "Portal", "City", "")
	section := proposal.Sections[1]

	if !strings.Contains(section.Content, "## Team Qualifications\nTwelve engineers") {
		t.Errorf("Expected team knowledge in qualifications, got:\n%s", section.Content)
	}
	if !reflect.DeepEqual(section.KnowledgeUsed, []string{"Delivery Team"}) {
		t.Errorf("Expected knowledge used [Delivery Team], got %v", section.KnowledgeUsed)
	}
}

func TestNew_SnapshotsKnowledge(t *testing.T) {
	items := []entity.KnowledgeBaseItem{cloudItem("Cloud Hosting")}
	g := New(items)
	items[0].Title = "Changed"

	if g.knowledge[0].Title != "Cloud Hosting" {
		t.Errorf("Expected snapshot to be unaffected, got %q", g.knowledge[0].Title)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	analysis := analyzer.AnalyzeRFP("Pricing\nWhat is the price per licence seat?\nWe need hosting in the EU.", analyzer.Metadata{})
	items := []entity.KnowledgeBaseItem{cloudItem("Cloud Hosting")}

	first := GenerateProposalFromRFP(analysis, items, "Portal", "City", "")
	second := GenerateProposalFromRFP(analysis, items, "Portal", "City", "")

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical proposals for identical input")
	}
}

func TestExcerpt(t *testing.T) {
	if got := excerpt("  short  ", 10); got != "short" {
		t.Errorf("Expected %q, got %q", "short", got)
	}
	if got := excerpt("привет мир", 6); got != "привет..." {
		t.Errorf("Expected rune-safe truncation, got %q", got)
	}
}
