package repositories

import (
	"context"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
)

// VendorReader defines read operations for the vendor master
type VendorReader interface {
	// ListVendors returns every vendor master row in storage order.
	ListVendors(ctx context.Context) ([]domain.VendorMasterEntry, error)

	// FindVendorsByPrefix returns the rows for one prefix (one per channel at most).
	FindVendorsByPrefix(ctx context.Context, prefix string) ([]domain.VendorMasterEntry, error)
}

// VendorWriter defines write operations for the vendor master
type VendorWriter interface {
	// SaveVendor inserts a vendor row. Returns apperrors.ErrDuplicate if (prefix, channel) exists.
	SaveVendor(ctx context.Context, vendor domain.VendorMasterEntry) error
	// UpdateVendor rewrites the row identified by (prefix, channel) and returns it with its
	// creation audit. Returns apperrors.ErrNotFound if no such row exists.
	UpdateVendor(ctx context.Context, vendor domain.VendorMasterEntry) (*domain.VendorMasterEntry, error)
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

// MappingRepositoryFacade manages description-to-prefix mapping rows.
type MappingRepositoryFacade interface {
	// ListMappings returns all rows ordered by storage sequence.
	ListMappings(ctx context.Context) ([]domain.DescriptionMapping, error)

	// SaveMapping appends a row and returns it with its sequence number.
	// An existing (description, prefix) pair is returned unchanged.
	SaveMapping(ctx context.Context, m domain.DescriptionMapping) (*domain.DescriptionMapping, error)
}

// PurchaseOrderReader defines read operations for purchase orders
type PurchaseOrderReader interface {
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	FindPurchaseOrderByNumber(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase orders
type PurchaseOrderWriter interface {
	// SavePurchaseOrders inserts POs in one batch. Returns apperrors.ErrDuplicate if any number exists.
	SavePurchaseOrders(ctx context.Context, pos []domain.PurchaseOrder) error
	// DeletePurchaseOrdersByBatch removes one import batch and returns the number of POs deleted.
	// Returns apperrors.ErrNotFound for an unknown batch and apperrors.ErrConflict when any of
	// its POs has deductions.
	DeletePurchaseOrdersByBatch(ctx context.Context, batchID string) (int64, error)
}

// PurchaseOrderRepositoryFacade combines all purchase order repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}
