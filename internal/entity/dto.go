package entity

import "mime/multipart"

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ListRequest is the pagination shared by list endpoints
type ListRequest struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Normalize sets default values for pagination
func (r *ListRequest) Normalize() {
	if r.Skip < 0 {
		r.Skip = 0
	}
	if r.Limit <= 0 {
		r.Limit = DefaultListLimit
	}
	if r.Limit > MaxListLimit {
		r.Limit = MaxListLimit
	}
}

// StatusResponse answers deletes and accepted async requests
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Knowledge base

type CreateKnowledgeItemRequest struct {
	Title    string        `json:"title"`
	Category string        `json:"category"`
	Type     KnowledgeType `json:"type"`
	Content  string        `json:"content"`
	Tags     []string      `json:"tags"`
	IsActive *bool         `json:"is_active,omitempty"`
}

// UpdateKnowledgeItemRequest replaces only the fields that are set
type UpdateKnowledgeItemRequest struct {
	ID       string         `json:"-"`
	Title    *string        `json:"title,omitempty"`
	Category *string        `json:"category,omitempty"`
	Type     *KnowledgeType `json:"type,omitempty"`
	Content  *string        `json:"content,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	IsActive *bool          `json:"is_active,omitempty"`
}

type ListKnowledgeItemsRequest struct {
	ListRequest
	ActiveOnly bool `json:"active_only"`
}

type ListKnowledgeItemsResponse struct {
	Items []*KnowledgeBaseItem `json:"items"`
}

// RFP documents

// AnalyzeRequest is the body of the stateless analysis endpoint
type AnalyzeRequest struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count,omitempty"`
}

type CreateRFPRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Filename  string `json:"filename,omitempty"`
	PageCount int    `json:"page_count,omitempty"`
}

type UploadRFPRequest struct {
	Title       string
	CallbackURL string
	File        *multipart.FileHeader
}

type RFPSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Filename       string `json:"filename,omitempty"`
	PageCount      int    `json:"page_count"`
	SectionCount   int    `json:"section_count"`
	TotalQuestions int    `json:"total_questions"`
	CreatedAt      string `json:"created_at"`
}

type ListRFPsResponse struct {
	Documents []*RFPSummary `json:"documents"`
}

// Proposals

// GenerateRequest is the body of the stateless generation endpoint
type GenerateRequest struct {
	Analysis          *RFPAnalysis        `json:"analysis"`
	KnowledgeItems    []KnowledgeBaseItem `json:"knowledge_items"`
	ProjectTitle      string              `json:"project_title"`
	ClientName        string              `json:"client_name"`
	AdditionalContext string              `json:"additional_context,omitempty"`
}

type CreateProposalRequest struct {
	RFPID             string `json:"-"`
	ProjectTitle      string `json:"project_title"`
	ClientName        string `json:"client_name"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

type ProposalSummary struct {
	ID                 string  `json:"id"`
	RFPID              string  `json:"rfp_id"`
	ProjectTitle       string  `json:"project_title"`
	ClientName         string  `json:"client_name"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	CreatedAt          string  `json:"created_at"`
}

type ListProposalsResponse struct {
	Proposals []*ProposalSummary `json:"proposals"`
}
