package repositories

import (
	"context"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CCTransactionRepositoryFacade stores imported card charges.
type CCTransactionRepositoryFacade interface {
	// SaveTransactions inserts a batch. Returns apperrors.ErrDuplicate if any reference id exists.
	SaveTransactions(ctx context.Context, txns []domain.CCTransaction, createdBy string) error

	// ListTransactionsByBatch returns the batch in import order. An empty batchID lists every row.
	ListTransactionsByBatch(ctx context.Context, batchID string) ([]domain.CCTransaction, error)
	// DeleteTransactionsByBatch removes one batch and returns the number of rows deleted.
	// Returns apperrors.ErrNotFound for an unknown batch and apperrors.ErrConflict when a run
	// has claimed any of its rows.
	DeleteTransactionsByBatch(ctx context.Context, batchID string) (int64, error)
}

// OverrideRepositoryFacade is the durable override store.
type OverrideRepositoryFacade interface {
	ListOverrides(ctx context.Context) ([]domain.ManualOverride, error)

	// SaveOverrides upserts by reference id; a later assignment replaces an earlier one.
	SaveOverrides(ctx context.Context, overrides []domain.ManualOverride) error
}

// DeductionReader defines read operations for the deduction ledger
type DeductionReader interface {
	ListDeductions(ctx context.Context) ([]domain.Deduction, error)
	ListDeductionsByPO(ctx context.Context, poNumber string) ([]domain.Deduction, error)
}

// DeductionWriter defines the single write path into the ledger.
type DeductionWriter interface {
	// ApplyDeduction locks the PO row, re-reads its balance, validates and appends the row in one
	// database transaction. Returns the new balance, or the recon ledger errors on rejection.
	ApplyDeduction(ctx context.Context, d domain.Deduction) (decimal.Decimal, error)
}

// DeductionRepositoryFacade combines all deduction repository interfaces
type DeductionRepositoryFacade interface {
	DeductionReader
	DeductionWriter
}

// ReconciliationRunRepositoryFacade persists run results.
type ReconciliationRunRepositoryFacade interface {
	// CreateRun inserts a new run and stamps reco_id on the given transactions that have none.
	// Returns apperrors.ErrDuplicate if the reco id is taken.
	CreateRun(ctx context.Context, run domain.ReconciliationRun, referenceIDs []string) error

	// UpdateRun replaces the result of an existing run and claims any still-unclaimed transactions.
	// Returns apperrors.ErrNotFound if the run does not exist.
	UpdateRun(ctx context.Context, run domain.ReconciliationRun, referenceIDs []string) error
	FindRunByID(ctx context.Context, recoID string) (*domain.ReconciliationRun, error)

	// DeleteRun removes the run and clears reco_id on its transactions.
	DeleteRun(ctx context.Context, recoID string) error
}

// DeductionRepositoryWithTx extends DeductionRepositoryFacade with transaction capabilities
type DeductionRepositoryWithTx interface {
	DeductionRepositoryFacade
	TransactionManager
}

// ReconciliationRunRepositoryWithTx extends ReconciliationRunRepositoryFacade with transaction capabilities
type ReconciliationRunRepositoryWithTx interface {
	ReconciliationRunRepositoryFacade
	TransactionManager
}
