package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProposalRepository defines the interface for proposal persistence
type ProposalRepository interface {
	Create(ctx context.Context, proposal entity.Proposal) (*entity.Proposal, error)
	Get(ctx context.Context, id string) (*entity.Proposal, error)
	ListByRFP(ctx context.Context, rfpID string) ([]*entity.Proposal, error)
	Delete(ctx context.Context, id string) error
}

var _ ProposalRepository = &ProposalPostgres{}

const (
	proposalColumns = `id, rfp_id, project_title, client_name, additional_context, content, created_at`

	foreignKeyViolation = "23503"
)

// ProposalPostgres implements ProposalRepository using PostgreSQL
type ProposalPostgres struct {
	db *pgxpool.Pool
}

func NewProposalPostgres(db *pgxpool.Pool) *ProposalPostgres {
	return &ProposalPostgres{db: db}
}

func scanProposal(row pgx.Row) (*entity.Proposal, error) {
	var r proposalRow
	if err := row.Scan(&r.ID, &r.RFPID, &r.ProjectTitle, &r.ClientName, &r.AdditionalContext, &r.Content, &r.CreatedAt); err != nil {
		return nil, err
	}
	return toEntityProposal(&r)
}

func (r *ProposalPostgres) Create(ctx context.Context, proposal entity.Proposal) (*entity.Proposal, error) {
	proposalID, err := toPgUUID(proposal.ID)
	if err != nil {
		return nil, fmt.Errorf("parse proposal ID: %w", err)
	}
	rfpID, err := toPgUUID(proposal.RFPID)
	if err != nil {
		return nil, fmt.Errorf("parse rfp ID: %w", err)
	}

	content, err := json.Marshal(proposal.Content)
	if err != nil {
		return nil, fmt.Errorf("encode proposal content: %w", err)
	}

	var coverage float64
	if proposal.Content != nil {
		coverage = proposal.Content.CoveragePercentage()
	}

	result, err := scanProposal(r.db.QueryRow(ctx, `
		INSERT INTO proposals (id, rfp_id, project_title, client_name, additional_context, content, coverage_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+proposalColumns,
		proposalID, rfpID, proposal.ProjectTitle, proposal.ClientName, proposal.AdditionalContext, content, coverage,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, entity.ErrRFPNotFound
		}
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	return result, nil
}

func (r *ProposalPostgres) Get(ctx context.Context, id string) (*entity.Proposal, error) {
	proposalID, err := toPgUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse proposal ID: %w", err)
	}

	result, err := scanProposal(r.db.QueryRow(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE id = $1`, proposalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProposalNotFound
		}
		return nil, fmt.Errorf("get proposal: %w", err)
	}

	return result, nil
}

func (r *ProposalPostgres) ListByRFP(ctx context.Context, rfpID string) ([]*entity.Proposal, error) {
	docID, err := toPgUUID(rfpID)
	if err != nil {
		return nil, fmt.Errorf("parse rfp ID: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE rfp_id = $1 ORDER BY created_at DESC`, docID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}

	proposals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Proposal, error) {
		return scanProposal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}

	return proposals, nil
}

func (r *ProposalPostgres) Delete(ctx context.Context, id string) error {
	proposalID, err := toPgUUID(id)
	if err != nil {
		return fmt.Errorf("parse proposal ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM proposals WHERE id = $1`, proposalID)
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrProposalNotFound
	}

	return nil
}
