package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RFPRepository defines the interface for RFP document persistence
type RFPRepository interface {
	Create(ctx context.Context, doc entity.RFPDocument) (*entity.RFPDocument, error)
	Get(ctx context.Context, id string) (*entity.RFPDocument, error)
	List(ctx context.Context, skip, limit int) ([]*entity.RFPDocument, error)
	Delete(ctx context.Context, id string) error
}

var _ RFPRepository = &RFPPostgres{}

// RFPPostgres implements RFPRepository using PostgreSQL; analyses are stored as JSONB
type RFPPostgres struct {
	db *pgxpool.Pool
}

func NewRFPPostgres(db *pgxpool.Pool) *RFPPostgres {
	return &RFPPostgres{db: db}
}

func (r *RFPPostgres) Create(ctx context.Context, doc entity.RFPDocument) (*entity.RFPDocument, error) {
	docID, err := toPgUUID(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("parse rfp ID: %w", err)
	}

	analysis, err := json.Marshal(doc.Analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	var row rfpRow
	err = r.db.QueryRow(ctx, `
		INSERT INTO rfp_documents (id, title, filename, page_count, source_text, analysis)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, filename, page_count, source_text, analysis, created_at`,
		docID, doc.Title, doc.Filename, int32(doc.PageCount), doc.SourceText, analysis,
	).Scan(&row.ID, &row.Title, &row.Filename, &row.PageCount, &row.SourceText, &row.Analysis, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create rfp document: %w", err)
	}

	return toEntityRFPDocument(&row)
}

func (r *RFPPostgres) Get(ctx context.Context, id string) (*entity.RFPDocument, error) {
	docID, err := toPgUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse rfp ID: %w", err)
	}

	var row rfpRow
	err = r.db.QueryRow(ctx, `
		SELECT id, title, filename, page_count, source_text, analysis, created_at
		FROM rfp_documents WHERE id = $1`, docID,
	).Scan(&row.ID, &row.Title, &row.Filename, &row.PageCount, &row.SourceText, &row.Analysis, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrRFPNotFound
		}
		return nil, fmt.Errorf("get rfp document: %w", err)
	}

	return toEntityRFPDocument(&row)
}

// List omits the source text
func (r *RFPPostgres) List(ctx context.Context, skip, limit int) ([]*entity.RFPDocument, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, filename, page_count, analysis, created_at
		FROM rfp_documents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list rfp documents: %w", err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.RFPDocument, error) {
		var dr rfpRow
		if err := row.Scan(&dr.ID, &dr.Title, &dr.Filename, &dr.PageCount, &dr.Analysis, &dr.CreatedAt); err != nil {
			return nil, err
		}
		return toEntityRFPDocument(&dr)
	})
	if err != nil {
		return nil, fmt.Errorf("list rfp documents: %w", err)
	}

	return docs, nil
}

// Delete removes the document and, by cascade, its proposals
func (r *RFPPostgres) Delete(ctx context.Context, id string) error {
	docID, err := toPgUUID(id)
	if err != nil {
		return fmt.Errorf("parse rfp ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM rfp_documents WHERE id = $1`, docID)
	if err != nil {
		return fmt.Errorf("delete rfp document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrRFPNotFound
	}

	return nil
}
