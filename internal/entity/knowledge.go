package entity

import (
	"fmt"
	"time"
)

type KnowledgeType string

const (
	KnowledgeTypeCompanyInfo   KnowledgeType = "company-info"
	KnowledgeTypeCaseStudy     KnowledgeType = "case-study"
	KnowledgeTypeTechnicalSpec KnowledgeType = "technical-spec"
	KnowledgeTypePricing       KnowledgeType = "pricing"
	KnowledgeTypeTeamProfile   KnowledgeType = "team-profile"
	KnowledgeTypeProcess       KnowledgeType = "process"
	KnowledgeTypeFAQ           KnowledgeType = "faq"
)

// KnowledgeTypes lists every knowledge type in reporting order
var KnowledgeTypes = []KnowledgeType{
	KnowledgeTypeCompanyInfo,
	KnowledgeTypeCaseStudy,
	KnowledgeTypeTechnicalSpec,
	KnowledgeTypePricing,
	KnowledgeTypeTeamProfile,
	KnowledgeTypeProcess,
	KnowledgeTypeFAQ,
}

func (kt KnowledgeType) Validate() error {
	switch kt {
	case KnowledgeTypeCompanyInfo, KnowledgeTypeCaseStudy, KnowledgeTypeTechnicalSpec,
		KnowledgeTypePricing, KnowledgeTypeTeamProfile, KnowledgeTypeProcess, KnowledgeTypeFAQ:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidKnowledgeType, kt)
	}
}

// KnowledgeBaseItem is a reusable piece of company content proposals draw from
type KnowledgeBaseItem struct {
	ID        string        `json:"id" yaml:"id,omitempty"`
	Title     string        `json:"title" yaml:"title"`
	Category  string        `json:"category" yaml:"category"`
	Type      KnowledgeType `json:"type" yaml:"type"`
	Content   string        `json:"content" yaml:"content"`
	Tags      []string      `json:"tags" yaml:"tags"`
	IsActive  bool          `json:"is_active" yaml:"is_active"`
	CreatedAt time.Time     `json:"created_at" yaml:"-"`
	UpdatedAt time.Time     `json:"updated_at" yaml:"-"`
}
