package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	"github.com/SscSPs/cc_reco_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReconciliationRunRepository struct {
	BaseRepository
}

func newPgxReconciliationRunRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRunRepositoryWithTx {
	return &PgxReconciliationRunRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReconciliationRunRepositoryWithTx = (*PgxReconciliationRunRepository)(nil)

// CreateRun inserts a run and claims unclaimed transactions for it in one transaction.
func (r *PgxReconciliationRunRepository) CreateRun(ctx context.Context, run domain.ReconciliationRun, referenceIDs []string) error {
	payload, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result for run %s: %w", run.RecoID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO reconciliation_runs (reco_id, batch_id, grace_days, result, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		run.RecoID, run.BatchID, run.GraceDays, payload,
		run.CreatedAt, run.CreatedBy, run.LastUpdatedAt, run.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: run %s", apperrors.ErrDuplicate, run.RecoID)
		}
		return fmt.Errorf("failed to create run %s: %w", run.RecoID, err)
	}

	if err := claimTransactions(ctx, tx, run.RecoID, referenceIDs); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateRun stores a recomputed result for an existing run.
func (r *PgxReconciliationRunRepository) UpdateRun(ctx context.Context, run domain.ReconciliationRun, referenceIDs []string) error {
	payload, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result for run %s: %w", run.RecoID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE reconciliation_runs
		SET grace_days = $2, result = $3, last_updated_at = $4, last_updated_by = $5
		WHERE reco_id = $1;`,
		run.RecoID, run.GraceDays, payload, run.LastUpdatedAt, run.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update run %s: %w", run.RecoID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: run %s", apperrors.ErrNotFound, run.RecoID)
	}

	if err := claimTransactions(ctx, tx, run.RecoID, referenceIDs); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// claimTransactions stamps recoID on the given transactions that no run owns yet.
func claimTransactions(ctx context.Context, tx pgx.Tx, recoID string, referenceIDs []string) error {
	if len(referenceIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		UPDATE cc_transactions SET reco_id = $1
		WHERE reference_id = ANY($2) AND (reco_id IS NULL OR reco_id = '');`,
		recoID, referenceIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to claim transactions for run %s: %w", recoID, err)
	}
	return nil
}

// FindRunByID loads a persisted run.
func (r *PgxReconciliationRunRepository) FindRunByID(ctx context.Context, recoID string) (*domain.ReconciliationRun, error) {
	var m models.ReconciliationRun
	err := r.Pool.QueryRow(ctx, `
		SELECT reco_id, batch_id, grace_days, result, created_at, created_by, last_updated_at, last_updated_by
		FROM reconciliation_runs WHERE reco_id = $1;`, recoID,
	).Scan(&m.RecoID, &m.BatchID, &m.GraceDays, &m.Result, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find run %s: %w", recoID, err)
	}

	run := domain.ReconciliationRun{
		RecoID:    m.RecoID,
		BatchID:   m.BatchID,
		GraceDays: m.GraceDays,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if err := json.Unmarshal(m.Result, &run.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result for run %s: %w", recoID, err)
	}
	return &run, nil
}

// DeleteRun rolls a run back: the run row goes and its transactions become unclaimed.
func (r *PgxReconciliationRunRepository) DeleteRun(ctx context.Context, recoID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM reconciliation_runs WHERE reco_id = $1;`, recoID)
	if err != nil {
		return fmt.Errorf("failed to delete run %s: %w", recoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `UPDATE cc_transactions SET reco_id = NULL WHERE reco_id = $1;`, recoID); err != nil {
		return fmt.Errorf("failed to release transactions of run %s: %w", recoID, err)
	}
	return r.Commit(ctx, tx)
}
