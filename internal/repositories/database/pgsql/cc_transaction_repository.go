package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	"github.com/SscSPs/cc_reco_app/internal/models"
	"github.com/SscSPs/cc_reco_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCCTransactionRepository struct {
	BaseRepository
}

func newPgxCCTransactionRepository(pool *pgxpool.Pool) *PgxCCTransactionRepository {
	return &PgxCCTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.CCTransactionRepositoryFacade = (*PgxCCTransactionRepository)(nil)
	_ portsrepo.OverrideRepositoryFacade      = (*PgxCCTransactionRepository)(nil)
)

// SaveTransactions inserts a batch of charges atomically.
func (r *PgxCCTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.CCTransaction, createdBy string) error {
	if len(txns) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO cc_transactions (reference_id, txn_date, description, amount, batch_id, card_last4, reco_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8);
	`
	batch := &pgx.Batch{}
	for _, d := range txns {
		m := mapping.ToModelCCTransaction(d)
		batch.Queue(query, m.ReferenceID, m.TxnDate, m.Description, m.Amount, m.BatchID, m.CardLast4, m.RecoID, createdBy)
	}
	br := tx.SendBatch(ctx, batch)
	for _, d := range txns {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, d.ReferenceID)
			}
			return fmt.Errorf("failed to insert transaction %s: %w", d.ReferenceID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close transaction batch: %w", err)
	}
	return r.Commit(ctx, tx)
}

// ListTransactionsByBatch returns the charges of one batch (or all) in import order.
func (r *PgxCCTransactionRepository) ListTransactionsByBatch(ctx context.Context, batchID string) ([]domain.CCTransaction, error) {
	query := `
		SELECT reference_id, txn_date, description, amount, batch_id, card_last4, reco_id, created_at, created_by
		FROM cc_transactions
		WHERE $1 = '' OR batch_id = $1
		ORDER BY created_at, reference_id;
	`
	rows, err := r.Pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for batch %s: %w", batchID, err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CCTransaction, error) {
		var m models.CCTransaction
		err := row.Scan(&m.ReferenceID, &m.TxnDate, &m.Description, &m.Amount, &m.BatchID, &m.CardLast4, &m.RecoID, &m.CreatedAt, &m.CreatedBy)
		return mapping.ToDomainCCTransaction(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for batch %s: %w", batchID, err)
	}
	return txns, nil
}

// DeleteTransactionsByBatch removes an imported batch. A batch any row of which is claimed
// by a reconciliation run is left untouched.
func (r *PgxCCTransactionRepository) DeleteTransactionsByBatch(ctx context.Context, batchID string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT COALESCE(reco_id, '') FROM cc_transactions WHERE batch_id = $1 FOR UPDATE;`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock transaction batch %s: %w", batchID, err)
	}
	recoIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, fmt.Errorf("failed to scan transaction batch %s: %w", batchID, err)
	}
	if len(recoIDs) == 0 {
		return 0, fmt.Errorf("%w: transaction batch %s", apperrors.ErrNotFound, batchID)
	}
	for _, id := range recoIDs {
		if id != "" {
			return 0, apperrors.NewConflictError(fmt.Sprintf("transaction batch %s is claimed by run %s", batchID, id))
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cc_transactions WHERE batch_id = $1;`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transaction batch %s: %w", batchID, err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListOverrides returns every stored override.
func (r *PgxCCTransactionRepository) ListOverrides(ctx context.Context) ([]domain.ManualOverride, error) {
	query := `
		SELECT reference_id, channel, created_at, created_by, last_updated_at, last_updated_by
		FROM manual_overrides
		ORDER BY last_updated_at, reference_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	overrides, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ManualOverride, error) {
		var m models.ManualOverride
		err := row.Scan(&m.ReferenceID, &m.Channel, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return mapping.ToDomainOverride(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan overrides: %w", err)
	}
	return overrides, nil
}

// SaveOverrides upserts overrides by reference id in one transaction.
func (r *PgxCCTransactionRepository) SaveOverrides(ctx context.Context, overrides []domain.ManualOverride) error {
	if len(overrides) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO manual_overrides (reference_id, channel, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (reference_id) DO UPDATE SET
			channel = EXCLUDED.channel,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	batch := &pgx.Batch{}
	for _, o := range overrides {
		batch.Queue(query, o.ReferenceID, string(o.Channel), o.CreatedAt, o.CreatedBy, o.LastUpdatedAt, o.LastUpdatedBy)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save overrides: %w", err)
	}
	return r.Commit(ctx, tx)
}
