package repository

import (
	"encoding/json"
	"fmt"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// knowledgeRow mirrors a knowledge_items row
type knowledgeRow struct {
	ID        pgtype.UUID
	Title     string
	Category  string
	Type      string
	Content   string
	Tags      []string
	IsActive  bool
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// rfpRow mirrors an rfp_documents row; SourceText stays empty for list queries
type rfpRow struct {
	ID         pgtype.UUID
	Title      string
	Filename   string
	PageCount  int32
	SourceText string
	Analysis   []byte
	CreatedAt  pgtype.Timestamptz
}

// proposalRow mirrors a proposals row
type proposalRow struct {
	ID                pgtype.UUID
	RFPID             pgtype.UUID
	ProjectTitle      string
	ClientName        string
	AdditionalContext string
	Content           []byte
	CreatedAt         pgtype.Timestamptz
}

func toPgUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func toEntityKnowledgeItem(row *knowledgeRow) *entity.KnowledgeBaseItem {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.KnowledgeBaseItem{
		ID:        uuid.UUID(row.ID.Bytes).String(),
		Title:     row.Title,
		Category:  row.Category,
		Type:      entity.KnowledgeType(row.Type),
		Content:   row.Content,
		Tags:      tags,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func toEntityRFPDocument(row *rfpRow) (*entity.RFPDocument, error) {
	doc := &entity.RFPDocument{
		ID:         uuid.UUID(row.ID.Bytes).String(),
		Title:      row.Title,
		Filename:   row.Filename,
		PageCount:  int(row.PageCount),
		SourceText: row.SourceText,
		CreatedAt:  row.CreatedAt.Time,
	}

	if len(row.Analysis) > 0 {
		var analysis entity.RFPAnalysis
		if err := json.Unmarshal(row.Analysis, &analysis); err != nil {
			return nil, fmt.Errorf("decode analysis of rfp %s: %w", doc.ID, err)
		}
		doc.Analysis = &analysis
	}

	return doc, nil
}

func toEntityProposal(row *proposalRow) (*entity.Proposal, error) {
	proposal := &entity.Proposal{
		ID:                uuid.UUID(row.ID.Bytes).String(),
		RFPID:             uuid.UUID(row.RFPID.Bytes).String(),
		ProjectTitle:      row.ProjectTitle,
		ClientName:        row.ClientName,
		AdditionalContext: row.AdditionalContext,
		CreatedAt:         row.CreatedAt.Time,
	}

	if len(row.Content) > 0 {
		var content entity.GeneratedProposal
		if err := json.Unmarshal(row.Content, &content); err != nil {
			return nil, fmt.Errorf("decode content of proposal %s: %w", proposal.ID, err)
		}
		proposal.Content = &content
	}

	return proposal, nil
}
