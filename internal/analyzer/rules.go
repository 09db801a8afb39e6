package analyzer

import (
	"regexp"

	"github.com/futig/rfp-backend/internal/entity"
)

// questionRule captures a candidate question in group 1
type questionRule struct {
	name    string
	pattern *regexp.Regexp
}

// questionRules are applied in order; earlier rules win on duplicates
var questionRules = []questionRule{
	{"direct-question", regexp.MustCompile(`(?m)^[ \t]*(?:\d+\.?[ \t]*)?([^\n]{0,200}?\?)`)},
	{"please", regexp.MustCompile(`(?im)\bplease\s+(?:provide|describe|explain|detail|list|specify|include)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"we-require", regexp.MustCompile(`(?im)\bwe\s+(?:require|need|request|expect)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"must-provide", regexp.MustCompile(`(?im)\b(?:must|shall|should)\s+(?:provide|include|demonstrate|show)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"vendor", regexp.MustCompile(`(?im)\bvendor\s+(?:must|shall|should|will)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"proposal", regexp.MustCompile(`(?im)\bproposal\s+(?:must|shall|should)\s+(?:include|contain|address)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"response", regexp.MustCompile(`(?im)\bresponse\s+(?:must|shall|should)\s+(?:include|contain|address)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"bidder", regexp.MustCompile(`(?im)\bbidder\s+(?:must|shall|should|will)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"contractor", regexp.MustCompile(`(?im)\bcontractor\s+(?:must|shall|should|will)\s+([^\n]{0,300}?)(?:\.|$)`)},
	{"supplier", regexp.MustCompile(`(?im)\bsupplier\s+(?:must|shall|should|will)\s+([^\n]{0,300}?)(?:\.|$)`)},
}

// numberedQuestionPattern is the dedicated "N. ...?" pass merged after questionRules
var numberedQuestionPattern = regexp.MustCompile(`(?m)^[ \t]*(\d+\.?[ \t]+[^\n]{10,500}?\?)`)

// enumerationPrefix strips "1.", "2)" or "A." style numbering
var enumerationPrefix = regexp.MustCompile(`^(?:\d+[.)]?|[A-Za-z][.)])\s+`)

const (
	minQuestionLength = 10
	maxQuestionLength = 500
	maxHeaderLength   = 100
	linesPerPage      = 50
	charsPerPage      = 2000
)

// Header rules, checked in this order
var (
	explicitHeaderPattern = regexp.MustCompile(`(?i)^(?:\d+\.?\s*)?(?:section|part|chapter)\s+(?:\d+(?:\.\d+)*|[ivxlc]+|[a-z])\b[.:)\-]?\s*(.{0,100})$`)
	numberedHeaderPattern = regexp.MustCompile(`^\d+\.?\s+[A-Z][^.\n]{5,80}$`)
	letteredHeaderPattern = regexp.MustCompile(`^[A-Z][.)]\s+[A-Z][^.\n]{5,80}$`)
)

// canonicalSections are standalone lines recognized as section headers
var canonicalSections = []string{
	"executive summary",
	"technical requirements",
	"commercial terms",
	"scope of work",
	"project overview",
	"evaluation criteria",
	"submission requirements",
	"terms and conditions",
	"pricing",
	"timeline",
	"deliverables",
	"compliance",
	"experience",
	"qualifications",
	"proposal format",
	"contract terms",
	"service level agreement",
}

// typeVocabulary pairs a question type with the keywords that select it
type typeVocabulary struct {
	questionType entity.QuestionType
	keywords     []string
}

// typeVocabularies is in classification priority order
var typeVocabularies = []typeVocabulary{
	{entity.QuestionTypeTechnical, []string{
		"technology", "architecture", "platform", "framework", "database", "api", "integration",
		"security", "performance", "scalability", "cloud", "infrastructure", "development",
		"programming", "software", "system", "application", "solution", "technical", "specification",
	}},
	{entity.QuestionTypeCommercial, []string{
		"price", "cost", "budget", "payment", "commercial", "financial", "pricing", "rate",
		"fee", "invoice", "billing", "contract", "terms", "conditions", "warranty",
	}},
	{entity.QuestionTypeCompliance, []string{
		"compliance", "regulation", "standard", "certification", "audit", "policy", "procedure",
		"requirement", "mandatory", "must", "shall", "legal", "regulatory", "gdpr", "iso",
	}},
	{entity.QuestionTypeExperience, []string{
		"experience", "portfolio", "case study", "reference", "client", "project", "track record",
		"qualification", "expertise", "capability", "team", "resource", "skill", "background",
	}},
}

var (
	highPriorityWords   = []string{"must", "shall", "required", "mandatory", "critical", "essential", "key"}
	mediumPriorityWords = []string{"should", "preferred", "desired", "important", "significant"}
	attentionWords      = []string{
		"compliance", "regulation", "legal", "audit", "certification", "security",
		"gdpr", "privacy", "data protection", "iso", "soc", "hipaa",
	}
)

// listRule extracts one flat list from the whole normalized document.
// A match is kept when its trimmed length lies in [minLen, maxLen].
type listRule struct {
	patterns []*regexp.Regexp
	minLen   int
	maxLen   int
}

const dateExpr = `(?:\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\d{1,2}\s+\w+\s+\d{2,4})`

var (
	keyRequirementRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:key|main|primary)\s+requirements?(?s:.){0,500}?(?:\n\n|\.\s)`),
			regexp.MustCompile(`(?i)\bmust\s+(?:have|include|provide|support)(?s:.){0,200}?(?:\.|$)`),
			regexp.MustCompile(`(?i)\bshall\s+(?:have|include|provide|support)(?s:.){0,200}?(?:\.|$)`),
		},
		minLen: 20, maxLen: 300,
	}
	technicalRequirementRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\btechnical\s+(?:requirements?|specifications?)(?s:.){0,500}?(?:\n\n|\.\s)`),
			regexp.MustCompile(`(?i)\bsystem\s+(?:requirements?|specifications?)(?s:.){0,500}?(?:\n\n|\.\s)`),
			regexp.MustCompile(`(?i)\b(?:platform|technology|framework|database|api|integration)(?s:.){0,200}?(?:\.|$)`),
		},
		minLen: 20, maxLen: 300,
	}
	commercialTermRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:commercial\s+terms|pricing|payment\s+terms|contract\s+terms)(?s:.){0,500}?(?:\n\n|\.\s)`),
			regexp.MustCompile(`(?i)\b(?:price|cost|budget|fee|rate)(?s:.){0,200}?(?:\.|$)`),
		},
		minLen: 20, maxLen: 300,
	}
	complianceItemRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:compliance|regulatory|certification|audit|standard)(?s:.){0,200}?(?:\.|$)`),
			regexp.MustCompile(`(?i)\b(?:gdpr|iso|soc|hipaa|pci|sox)\b(?s:.){0,200}?(?:\.|$)`),
		},
		minLen: 20, maxLen: 300,
	}
	deadlineRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:deadline|due\s+date|submission\s+date|closing\s+date)(?s:.){0,100}?` + dateExpr),
			regexp.MustCompile(`(?i)\b(?:by|before|no\s+later\s+than)\b(?s:.){0,50}?` + dateExpr),
		},
		minLen: 10, maxLen: 200,
	}
	evaluationCriteriaRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:evaluation\s+criteria|selection\s+criteria|scoring|weighting)(?s:.){0,500}?(?:\n\n|\.\s)`),
			regexp.MustCompile(`(?i)\b(?:will\s+be\s+evaluated|assessment\s+based\s+on)(?s:.){0,300}?(?:\.|$)`),
		},
		minLen: 20, maxLen: 400,
	}
	submissionRequirementRule = listRule{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:submission\s+requirements?|proposal\s+format|document\s+requirements?)(?s:.){0,500}?(?:\n\n|\.\s)`),
			regexp.MustCompile(`(?i)\b(?:proposals?\s+must\s+include|responses?\s+must\s+contain)(?s:.){0,300}?(?:\.|$)`),
		},
		minLen: 20, maxLen: 400,
	}
)
