package entity

import "time"

// RFPDocument is an uploaded RFP together with its analysis
type RFPDocument struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Filename   string       `json:"filename,omitempty"`
	PageCount  int          `json:"page_count"`
	SourceText string       `json:"-"`
	Analysis   *RFPAnalysis `json:"analysis,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Proposal is a generated proposal stored against its RFP document
type Proposal struct {
	ID                string             `json:"id"`
	RFPID             string             `json:"rfp_id"`
	ProjectTitle      string             `json:"project_title"`
	ClientName        string             `json:"client_name"`
	AdditionalContext string             `json:"additional_context,omitempty"`
	Content           *GeneratedProposal `json:"content"`
	CreatedAt         time.Time          `json:"created_at"`
}
