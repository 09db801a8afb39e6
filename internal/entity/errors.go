package entity

import "errors"

// Domain errors
var (
	// Knowledge base errors
	ErrKnowledgeItemNotFound = errors.New("knowledge item not found")
	ErrInvalidKnowledgeType  = errors.New("invalid knowledge type")

	// RFP errors
	ErrRFPNotFound      = errors.New("rfp document not found")
	ErrEmptyDocument    = errors.New("document contains no text")
	ErrInvalidAnalysis  = errors.New("invalid analysis")
	ErrExtractionFailed = errors.New("text extraction failed")

	// Proposal errors
	ErrProposalNotFound = errors.New("proposal not found")

	// File errors
	ErrInvalidFile       = errors.New("invalid file")
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Integration errors
	ErrServiceUnavailable = errors.New("upstream service unavailable")
)
