package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/futig/rfp-backend/internal/entity"
)

type knowledgeSeed struct {
	Items []entity.KnowledgeBaseItem `json:"items"`
}

// LoadKnowledgeSeed reads the items imported into an empty knowledge base.
// A missing file is not an error and yields no items.
func LoadKnowledgeSeed(path string) ([]entity.KnowledgeBaseItem, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("Warning: knowledge seed file not found at %s, starting with an empty knowledge base\n", path)
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge seed file: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("knowledge seed file is empty: %s", path)
	}

	var seed knowledgeSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse knowledge seed JSON: %w", err)
	}

	if len(seed.Items) == 0 {
		return nil, fmt.Errorf("knowledge seed file contains no items: %s", path)
	}

	return seed.Items, nil
}
