package services

import (
	"context"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/SscSPs/cc_reco_app/internal/dto"
)

// ReconciliationReaderSvc defines read operations for reconciliation runs
type ReconciliationReaderSvc interface {
	GetRun(ctx context.Context, recoID string) (*domain.ReconciliationRun, error)

	// ExportRun renders a run as an XLSX workbook.
	ExportRun(ctx context.Context, recoID string) ([]byte, error)
	// VendorDetail returns the groups, matched POs and transactions of one vendor prefix in a run.
	VendorDetail(ctx context.Context, recoID, prefix string) (*domain.VendorDetail, error)
}

// ReconciliationWriterSvc defines the operations that recompute or remove a run
type ReconciliationWriterSvc interface {
	// RunReconciliation recomputes a batch from the stored tables and persists the result.
	// When the batch is already claimed by a run, that run is returned and created is false.
	RunReconciliation(ctx context.Context, req dto.RunReconciliationRequest, userID string) (run *domain.ReconciliationRun, created bool, err error)

	// AssignChannel records a manual channel for every charge of a pending description group
	// and recomputes the run in place.
	AssignChannel(ctx context.Context, recoID string, req dto.AssignChannelRequest, userID string) (*domain.ReconciliationRun, error)

	// AssignUnmapped maps an unmapped description to a vendor and recomputes the run in place.
	AssignUnmapped(ctx context.Context, recoID string, req dto.AssignUnmappedRequest, userID string) (*domain.ReconciliationRun, error)

	// RollbackRun deletes the run and releases its transactions.
	RollbackRun(ctx context.Context, recoID string) error
}

// ReconciliationSvcFacade combines all reconciliation service interfaces
type ReconciliationSvcFacade interface {
	ReconciliationReaderSvc
	ReconciliationWriterSvc
}

// DeductionSvcFacade applies ledger deductions.
type DeductionSvcFacade interface {
	// ApplyDeductions applies each item independently; one rejected item never aborts the others.
	ApplyDeductions(ctx context.Context, req dto.ApplyDeductionsRequest, userID string) (*dto.ApplyDeductionsResponse, error)
}
