package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KnowledgeRepository defines the interface for knowledge base persistence
type KnowledgeRepository interface {
	Create(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error)
	Get(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error)
	List(ctx context.Context, skip, limit int, activeOnly bool) ([]*entity.KnowledgeBaseItem, error)
	ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error)
	Update(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

var _ KnowledgeRepository = &KnowledgePostgres{}

const knowledgeColumns = `id, title, category, type, content, tags, is_active, created_at, updated_at`

// KnowledgePostgres implements KnowledgeRepository using PostgreSQL
type KnowledgePostgres struct {
	db *pgxpool.Pool
}

func NewKnowledgePostgres(db *pgxpool.Pool) *KnowledgePostgres {
	return &KnowledgePostgres{db: db}
}

func scanKnowledge(row pgx.Row) (*entity.KnowledgeBaseItem, error) {
	var r knowledgeRow
	if err := row.Scan(&r.ID, &r.Title, &r.Category, &r.Type, &r.Content, &r.Tags, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return toEntityKnowledgeItem(&r), nil
}

func (r *KnowledgePostgres) Create(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error) {
	itemID, err := toPgUUID(item.ID)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge item ID: %w", err)
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	result, err := scanKnowledge(r.db.QueryRow(ctx, `
		INSERT INTO knowledge_items (id, title, category, type, content, tags, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+knowledgeColumns,
		itemID, item.Title, item.Category, string(item.Type), item.Content, tags, item.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("create knowledge item: %w", err)
	}

	return result, nil
}

func (r *KnowledgePostgres) Get(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error) {
	itemID, err := toPgUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge item ID: %w", err)
	}

	result, err := scanKnowledge(r.db.QueryRow(ctx,
		`SELECT `+knowledgeColumns+` FROM knowledge_items WHERE id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrKnowledgeItemNotFound
		}
		return nil, fmt.Errorf("get knowledge item: %w", err)
	}

	return result, nil
}

func (r *KnowledgePostgres) List(ctx context.Context, skip, limit int, activeOnly bool) ([]*entity.KnowledgeBaseItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+knowledgeColumns+` FROM knowledge_items
		WHERE NOT $1 OR is_active
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		activeOnly, limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list knowledge items: %w", err)
	}

	items, err := collectKnowledge(rows)
	if err != nil {
		return nil, fmt.Errorf("list knowledge items: %w", err)
	}

	return items, nil
}

// ListActive returns every active item oldest first so generation sees a stable order
func (r *KnowledgePostgres) ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+knowledgeColumns+` FROM knowledge_items WHERE is_active ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list active knowledge items: %w", err)
	}

	items, err := collectKnowledge(rows)
	if err != nil {
		return nil, fmt.Errorf("list active knowledge items: %w", err)
	}

	return items, nil
}

func collectKnowledge(rows pgx.Rows) ([]*entity.KnowledgeBaseItem, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.KnowledgeBaseItem, error) {
		return scanKnowledge(row)
	})
}

func (r *KnowledgePostgres) Update(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error) {
	itemID, err := toPgUUID(item.ID)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge item ID: %w", err)
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	result, err := scanKnowledge(r.db.QueryRow(ctx, `
		UPDATE knowledge_items
		SET title = $2, category = $3, type = $4, content = $5, tags = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+knowledgeColumns,
		itemID, item.Title, item.Category, string(item.Type), item.Content, tags, item.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrKnowledgeItemNotFound
		}
		return nil, fmt.Errorf("update knowledge item: %w", err)
	}

	return result, nil
}

func (r *KnowledgePostgres) Delete(ctx context.Context, id string) error {
	itemID, err := toPgUUID(id)
	if err != nil {
		return fmt.Errorf("parse knowledge item ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM knowledge_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete knowledge item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrKnowledgeItemNotFound
	}

	return nil
}

func (r *KnowledgePostgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM knowledge_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count knowledge items: %w", err)
	}
	return count, nil
}
