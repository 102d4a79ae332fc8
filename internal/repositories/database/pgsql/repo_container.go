package pgsql

import (
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	vendorRepo := newPgxVendorRepository(dbPool)
	txnRepo := newPgxCCTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		VendorRepo:        vendorRepo,
		MappingRepo:       vendorRepo,
		PurchaseOrderRepo: newPgxPurchaseOrderRepository(dbPool),
		TransactionRepo:   txnRepo,
		OverrideRepo:      txnRepo,
		DeductionRepo:     newPgxDeductionRepository(dbPool),
		RunRepo:           newPgxReconciliationRunRepository(dbPool),
	}
}
