package services

import (
	"context"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/SscSPs/cc_reco_app/internal/dto"
)

// VendorReaderSvc defines read operations for the vendor master
type VendorReaderSvc interface {
	ListVendors(ctx context.Context) ([]domain.VendorMasterEntry, error)
}

// VendorWriterSvc defines write operations for the vendor master
type VendorWriterSvc interface {
	// CreateVendor validates and stores one vendor master row.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.VendorMasterEntry, error)
	// UpdateVendor edits the (prefix, channel) row; an empty channel addresses the channel-less row.
	UpdateVendor(ctx context.Context, prefix, channel string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.VendorMasterEntry, error)
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}

// MappingSvcFacade manages description-to-prefix mappings.
type MappingSvcFacade interface {
	ListMappings(ctx context.Context) ([]domain.DescriptionMapping, error)

	// AssignVendor appends a mapping row for a description. It never rewrites existing rows.
	AssignVendor(ctx context.Context, description, prefix, creatorUserID string) (*domain.DescriptionMapping, error)
}

// PurchaseOrderSvcFacade imports POs and reports their ledger balance.
type PurchaseOrderSvcFacade interface {
	// ImportPurchaseOrders stores the POs under one import batch id, generated when the request has none.
	ImportPurchaseOrders(ctx context.Context, req dto.CreatePurchaseOrdersRequest, creatorUserID string) (batchID string, imported int, err error)
	GetBalance(ctx context.Context, poNumber string) (*domain.POBalance, error)
	// RollbackBatch deletes an import batch unless deductions were booked against it.
	RollbackBatch(ctx context.Context, batchID string) (int64, error)
}

// TransactionSvcFacade imports card charges.
type TransactionSvcFacade interface {
	ImportTransactions(ctx context.Context, req dto.ImportTransactionsRequest, creatorUserID string) (int, error)
	// RollbackBatch deletes an imported batch unless a reconciliation run has claimed it.
	RollbackBatch(ctx context.Context, batchID string) (int64, error)
}
