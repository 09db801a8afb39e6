package entity

// ExtractionResult is the text recovered from an uploaded document
type ExtractionResult struct {
	Text      string            `json:"text"`
	PageCount int               `json:"page_count"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
