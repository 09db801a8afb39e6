package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeAnalysisText(w io.Writer, name string, a *entity.RFPAnalysis) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", name, strings.Repeat("=", len(name)))
	fmt.Fprintf(&b, "Pages:     %d\n", a.TotalPages)
	fmt.Fprintf(&b, "Sections:  %d\n", len(a.Sections))
	fmt.Fprintf(&b, "Questions: %d (high priority: %d)\n", a.TotalQuestions(), a.CountByPriority(entity.PriorityHigh))

	for _, s := range a.Sections {
		fmt.Fprintf(&b, "\n## %s (pages %s)\n", s.Title, joinInts(s.PageNumbers))
		for _, q := range s.Questions {
			marker := " "
			if q.RequiresAttention {
				marker = "!"
			}
			fmt.Fprintf(&b, "%s [%s/%s] %s\n", marker, q.Type, q.Priority, q.Question)
		}
	}

	writeTextList(&b, "Key requirements", a.KeyRequirements)
	writeTextList(&b, "Deadlines", a.Deadlines)
	writeTextList(&b, "Evaluation criteria", a.EvaluationCriteria)
	writeTextList(&b, "Submission requirements", a.SubmissionRequirements)

	fmt.Fprintf(&b, "\n%s\n", a.Summary)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeProposalText(w io.Writer, p *entity.GeneratedProposal) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	b.WriteString(p.ExecutiveSummary)
	b.WriteString("\n")

	for _, s := range p.Sections {
		fmt.Fprintf(&b, "\n%s\n\n_Confidence: %.0f%%_\n", strings.TrimRight(s.Content, "\n"), s.Confidence*100)
	}

	fmt.Fprintf(&b, "\n---\nCoverage: %.1f%% (%d of %d questions)\n",
		p.CoveragePercentage(), p.QuestionsAddressed(), p.TotalQuestions)
	writeTextList(&b, "Recommendations", p.Recommendations)
	writeTextList(&b, "Missing information", p.MissingInformation)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
