package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	"github.com/SscSPs/cc_reco_app/internal/models"
	"github.com/SscSPs/cc_reco_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const poColumns = `po_number, po_date, vendor_prefix, channel, base_amount, cc_fee_rate, import_batch_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepositoryFacade {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseOrderRepositoryFacade = (*PgxPurchaseOrderRepository)(nil)

func scanPurchaseOrder(row pgx.CollectableRow) (models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := row.Scan(
		&po.PONumber,
		&po.PODate,
		&po.VendorPrefix,
		&po.Channel,
		&po.BaseAmount,
		&po.CCFeeRate,
		&po.ImportBatchID,
		&po.CreatedAt,
		&po.CreatedBy,
		&po.LastUpdatedAt,
		&po.LastUpdatedBy,
	)
	return po, err
}

// SavePurchaseOrders inserts all POs in a single transaction using a pgx batch.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrders(ctx context.Context, pos []domain.PurchaseOrder) error {
	if len(pos) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, d := range pos {
		m := mapping.ToModelPurchaseOrder(d)
		batch.Queue(query, m.PONumber, m.PODate, m.VendorPrefix, m.Channel, m.BaseAmount, m.CCFeeRate, m.ImportBatchID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for _, d := range pos {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: purchase order %s", apperrors.ErrDuplicate, d.PONumber)
			}
			return fmt.Errorf("failed to insert purchase order %s: %w", d.PONumber, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close purchase order batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// ListPurchaseOrders returns all POs ordered by number.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+poColumns+` FROM purchase_orders ORDER BY po_number;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	modelPOs, err := pgx.CollectRows(rows, scanPurchaseOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to scan purchase orders: %w", err)
	}
	out := make([]domain.PurchaseOrder, len(modelPOs))
	for i, m := range modelPOs {
		out[i] = mapping.ToDomainPurchaseOrder(m)
	}
	return out, nil
}

// FindPurchaseOrderByNumber retrieves one PO.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByNumber(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+poColumns+` FROM purchase_orders WHERE po_number = $1;`, poNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase order %s: %w", poNumber, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanPurchaseOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan purchase order %s: %w", poNumber, err)
	}
	po := mapping.ToDomainPurchaseOrder(m)
	return &po, nil
}

// DeletePurchaseOrdersByBatch removes every PO of one import batch. The batch is locked first;
// a batch with ledger deductions against any of its POs is left untouched.
func (r *PgxPurchaseOrderRepository) DeletePurchaseOrdersByBatch(ctx context.Context, batchID string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT po_number FROM purchase_orders WHERE import_batch_id = $1 FOR UPDATE;`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock purchase order batch %s: %w", batchID, err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, fmt.Errorf("failed to scan purchase order batch %s: %w", batchID, err)
	}
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: purchase order batch %s", apperrors.ErrNotFound, batchID)
	}

	var deducted string
	err = tx.QueryRow(ctx, `SELECT po_number FROM deductions WHERE po_number = ANY($1) LIMIT 1;`, numbers).Scan(&deducted)
	if err == nil {
		return 0, apperrors.NewConflictError(fmt.Sprintf("purchase order batch %s has deductions against %s", batchID, deducted))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to check deductions for batch %s: %w", batchID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM purchase_orders WHERE import_batch_id = $1;`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchase order batch %s: %w", batchID, err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
