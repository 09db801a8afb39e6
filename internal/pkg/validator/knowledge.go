package validator

import (
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

const (
	maxTitleLength   = 200
	maxContentLength = 50000
	maxTags          = 30
)

func (v *Validator) ValidateCreateKnowledgeItem(req *entity.CreateKnowledgeItemRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: content", entity.ErrMissingField)
	}
	if req.Type == "" {
		return fmt.Errorf("%w: type", entity.ErrMissingField)
	}
	if err := req.Type.Validate(); err != nil {
		return err
	}

	return validateKnowledgeFields(req.Title, req.Content, req.Tags)
}

func (v *Validator) ValidateUpdateKnowledgeItem(req *entity.UpdateKnowledgeItemRequest) error {
	if err := ValidateID("item_id", req.ID); err != nil {
		return err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", entity.ErrInvalidParameter)
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return fmt.Errorf("%w: content must not be empty", entity.ErrInvalidParameter)
	}
	if req.Type != nil {
		if err := req.Type.Validate(); err != nil {
			return err
		}
	}

	var title, content string
	if req.Title != nil {
		title = *req.Title
	}
	if req.Content != nil {
		content = *req.Content
	}
	return validateKnowledgeFields(title, content, req.Tags)
}

func validateKnowledgeFields(title, content string, tags []string) error {
	if len([]rune(title)) > maxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", entity.ErrInvalidParameter, maxTitleLength)
	}
	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("%w: content is longer than %d characters", entity.ErrInvalidParameter, maxContentLength)
	}
	if len(tags) > maxTags {
		return fmt.Errorf("%w: at most %d tags allowed, got %d", entity.ErrInvalidParameter, maxTags, len(tags))
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tags must not be empty", entity.ErrInvalidParameter)
		}
	}
	return nil
}
