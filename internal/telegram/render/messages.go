package render

import (
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

// Telegram rejects messages longer than 4096 characters
const maxMessageLength = 4000

const (
	maxRenderedSections  = 10
	maxRenderedDeadlines = 3
	maxRenderedItems     = 5
)

const (
	MsgWelcome = `👋 Hi! I analyze RFP documents and draft proposals from your knowledge base.

Send me an RFP as a document or use /analyze to paste its text.`

	MsgHelp = `🤖 Commands:

/analyze <text> - analyze RFP text and store it
/propose <rfp id> | <project title> | <client> - draft a proposal for a stored RFP
/kb - show active knowledge base items by type
/help - show this help

You can also send an RFP as a document (.txt, .md, .html, .htm, .pdf, .docx).`

	MsgAnalyzeUsage = `Usage: /analyze <RFP text>

Or send the RFP as a document.`

	MsgProposeUsage = `Usage: /propose <rfp id> | <project title> | <client>

The RFP id is shown after an analysis.`

	MsgProcessingDocument = `⏳ Analyzing %s...`

	MsgSendCommand = `Send an RFP document or use /help to see the commands.`

	MsgKnowledgeEmpty = `📚 The knowledge base has no active items yet.`

	// Errors
	ErrGeneric            = `❌ Something went wrong. Please try again.`
	ErrUnknownCommand     = `❌ Unknown command. Use /help`
	ErrRFPNotFound        = `❌ RFP not found. Check the id from the analysis reply.`
	ErrInvalidFile        = `❌ Unsupported file. Send .txt, .md, .html, .htm, .pdf or .docx.`
	ErrFileTooLarge       = `❌ The file is too large.`
	ErrEmptyDocument      = `❌ The document contains no readable text.`
	ErrExtractionFailed   = `❌ Could not extract text from the document. Try another format.`
	ErrNetworkIssue       = `❌ Connection problem. Please try later.`
	ErrServiceUnavailable = `❌ The service is temporarily unavailable. Try again in a few minutes.`
	ErrTimeout            = `❌ The operation took too long. Please try again.`
	ErrRateLimited        = `⚠️ Too many requests. Please wait a little.`
)

// RenderAnalysis summarizes a stored RFP document
func RenderAnalysis(doc *entity.RFPDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📄 %s\n", doc.Title)
	fmt.Fprintf(&b, "ID: %s\n\n", doc.ID)

	if doc.Analysis == nil {
		return b.String()
	}
	a := doc.Analysis

	fmt.Fprintf(&b, "Pages: %d\nSections: %d\nQuestions: %d (high priority: %d)\n",
		a.TotalPages, len(a.Sections), a.TotalQuestions(), a.CountByPriority(entity.PriorityHigh))

	counts := a.CountByType()
	var parts []string
	for _, qt := range entity.QuestionTypes {
		if n := counts[qt]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", qt, n))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, "By type: %s\n", strings.Join(parts, ", "))
	}

	if len(a.Sections) > 0 {
		b.WriteString("\nSections:\n")
		for _, s := range a.Sections[:min(len(a.Sections), maxRenderedSections)] {
			fmt.Fprintf(&b, "• %s (%d questions)\n", s.Title, len(s.Questions))
		}
		if rest := len(a.Sections) - maxRenderedSections; rest > 0 {
			fmt.Fprintf(&b, "…and %d more\n", rest)
		}
	}

	if len(a.Deadlines) > 0 {
		b.WriteString("\nDeadlines:\n")
		for _, d := range a.Deadlines[:min(len(a.Deadlines), maxRenderedDeadlines)] {
			fmt.Fprintf(&b, "• %s\n", d)
		}
	}

	fmt.Fprintf(&b, "\nDraft a proposal with:\n/propose %s | <project title> | <client>", doc.ID)

	return Truncate(b.String())
}

// RenderProposal reports coverage and follow-ups of a stored proposal
func RenderProposal(p *entity.Proposal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📝 Proposal for %s: %s\n", p.ClientName, p.ProjectTitle)
	fmt.Fprintf(&b, "ID: %s\n\n", p.ID)

	if p.Content == nil {
		return b.String()
	}
	c := p.Content

	fmt.Fprintf(&b, "Sections: %d\nCoverage: %.1f%% (%d of %d questions)\n",
		len(c.Sections), c.CoveragePercentage(), c.QuestionsAddressed(), c.TotalQuestions)

	writeList(&b, "Recommendations", c.Recommendations)
	writeList(&b, "Missing information", c.MissingInformation)

	return Truncate(b.String())
}

// RenderKnowledgeCounts lists active knowledge items per type
func RenderKnowledgeCounts(counts map[entity.KnowledgeType]int) string {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return MsgKnowledgeEmpty
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Active knowledge items: %d\n\n", total)
	for _, kt := range entity.KnowledgeTypes {
		fmt.Fprintf(&b, "• %s: %d\n", kt, counts[kt])
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items[:min(len(items), maxRenderedItems)] {
		fmt.Fprintf(b, "• %s\n", item)
	}
}

// Truncate cuts text to fit a single Telegram message
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxMessageLength {
		return text
	}
	return string(runes[:maxMessageLength-1]) + "…"
}
