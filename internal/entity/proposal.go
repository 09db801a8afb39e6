package entity

import "encoding/json"

// ProposalSection is one assembled response section
type ProposalSection struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	RFPQuestions  []string `json:"rfp_questions"`
	KnowledgeUsed []string `json:"knowledge_used"`
	Confidence    float64  `json:"confidence"`
}

// GeneratedProposal is the draft proposal assembled from an analysis.
// Addressed questions and coverage are derived from the sections.
type GeneratedProposal struct {
	Title              string            `json:"title"`
	ExecutiveSummary   string            `json:"executive_summary"`
	Sections           []ProposalSection `json:"sections"`
	TotalQuestions     int               `json:"total_questions"`
	Recommendations    []string          `json:"recommendations"`
	MissingInformation []string          `json:"missing_information"`
}

// QuestionsAddressed returns the number of RFP questions listed by the sections
func (p GeneratedProposal) QuestionsAddressed() int {
	total := 0
	for _, s := range p.Sections {
		total += len(s.RFPQuestions)
	}
	return total
}

// CoveragePercentage returns addressed/total as a percentage in [0, 100]; zero questions is 0%
func (p GeneratedProposal) CoveragePercentage() float64 {
	if p.TotalQuestions <= 0 {
		return 0
	}
	coverage := float64(p.QuestionsAddressed()) / float64(p.TotalQuestions) * 100
	return min(max(coverage, 0), 100)
}

// FlattenedText joins the title and all section contents, the form handed to document renderers
func (p GeneratedProposal) FlattenedText() string {
	text := p.Title + "\n\n" + p.ExecutiveSummary
	for _, s := range p.Sections {
		text += "\n\n" + s.Content
	}
	return text
}

func (p GeneratedProposal) MarshalJSON() ([]byte, error) {
	type plain GeneratedProposal
	return json.Marshal(struct {
		plain
		QuestionsAddressed int     `json:"questions_addressed"`
		CoveragePercentage float64 `json:"coverage_percentage"`
	}{
		plain:              plain(p),
		QuestionsAddressed: p.QuestionsAddressed(),
		CoveragePercentage: p.CoveragePercentage(),
	})
}
