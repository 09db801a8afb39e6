package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
	"gopkg.in/yaml.v3"
)

// knowledgeFileItem mirrors entity.KnowledgeBaseItem; items are active unless is_active is false
type knowledgeFileItem struct {
	ID       string               `yaml:"id"`
	Title    string               `yaml:"title"`
	Category string               `yaml:"category"`
	Type     entity.KnowledgeType `yaml:"type"`
	Content  string               `yaml:"content"`
	Tags     []string             `yaml:"tags"`
	IsActive *bool                `yaml:"is_active"`
}

// loadKnowledgeBase reads a YAML list of knowledge items. An empty path means no knowledge.
func loadKnowledgeBase(path string) ([]entity.KnowledgeBaseItem, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var raw []knowledgeFileItem
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}

	items := make([]entity.KnowledgeBaseItem, 0, len(raw))
	for i, r := range raw {
		if err := r.Type.Validate(); err != nil {
			return nil, fmt.Errorf("knowledge base item %d (%q): %w", i+1, r.Title, err)
		}
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Content) == "" {
			return nil, fmt.Errorf("knowledge base item %d: %w: title and content", i+1, entity.ErrMissingField)
		}

		id := r.ID
		if id == "" {
			id = fmt.Sprintf("kb-%d", i+1)
		}
		items = append(items, entity.KnowledgeBaseItem{
			ID:       id,
			Title:    r.Title,
			Category: r.Category,
			Type:     r.Type,
			Content:  r.Content,
			Tags:     r.Tags,
			IsActive: r.IsActive == nil || *r.IsActive,
		})
	}

	return items, nil
}
