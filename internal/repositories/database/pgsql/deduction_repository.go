package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	"github.com/SscSPs/cc_reco_app/internal/models"
	"github.com/SscSPs/cc_reco_app/internal/recon"
	"github.com/SscSPs/cc_reco_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const deductionColumns = `deduction_id, po_number, amount, batch_id, deduction_date, reason, created_at`

type PgxDeductionRepository struct {
	BaseRepository
}

func newPgxDeductionRepository(pool *pgxpool.Pool) portsrepo.DeductionRepositoryWithTx {
	return &PgxDeductionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DeductionRepositoryWithTx = (*PgxDeductionRepository)(nil)

func scanDeduction(row pgx.CollectableRow) (domain.Deduction, error) {
	var m models.Deduction
	err := row.Scan(&m.DeductionID, &m.PONumber, &m.Amount, &m.BatchID, &m.DeductionDate, &m.Reason, &m.CreatedAt)
	return mapping.ToDomainDeduction(m), err
}

// ListDeductions returns the full ledger in append order.
func (r *PgxDeductionRepository) ListDeductions(ctx context.Context) ([]domain.Deduction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+deductionColumns+` FROM deductions ORDER BY created_at, deduction_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, scanDeduction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan deductions: %w", err)
	}
	return out, nil
}

// ListDeductionsByPO returns the ledger rows of one PO.
func (r *PgxDeductionRepository) ListDeductionsByPO(ctx context.Context, poNumber string) ([]domain.Deduction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+deductionColumns+` FROM deductions WHERE po_number = $1 ORDER BY created_at, deduction_id;`, poNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions for %s: %w", poNumber, err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, scanDeduction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan deductions for %s: %w", poNumber, err)
	}
	return out, nil
}

// ApplyDeduction is the validate-then-write step for one ledger item. The PO row lock
// serializes concurrent submissions against the same PO, including from other processes,
// so the ledger rebuilt below cannot go stale before the insert commits.
func (r *PgxDeductionRepository) ApplyDeduction(ctx context.Context, d domain.Deduction) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	po := domain.PurchaseOrder{PONumber: d.PONumber}
	err = tx.QueryRow(ctx, `SELECT base_amount FROM purchase_orders WHERE po_number = $1 FOR UPDATE;`, d.PONumber).Scan(&po.BaseAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: %s", recon.ErrUnknownPO, d.PONumber)
		}
		return decimal.Zero, fmt.Errorf("failed to lock purchase order %s: %w", d.PONumber, err)
	}

	rows, err := tx.Query(ctx, `SELECT `+deductionColumns+` FROM deductions WHERE po_number = $1 ORDER BY created_at, deduction_id;`, d.PONumber)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query deductions for %s: %w", d.PONumber, err)
	}
	existing, err := pgx.CollectRows(rows, scanDeduction)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan deductions for %s: %w", d.PONumber, err)
	}

	entry, balance, err := recon.NewLedger([]domain.PurchaseOrder{po}, existing).Append(d)
	if err != nil {
		return balance, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO deductions (`+deductionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		entry.DeductionID, entry.PONumber, entry.Amount, entry.BatchID, entry.Date, entry.Reason, entry.Timestamp,
	)
	if err != nil {
		return balance.Add(entry.Amount), fmt.Errorf("failed to insert deduction for %s: %w", d.PONumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return balance.Add(entry.Amount), err
	}
	return balance, nil
}
