package services_test

import (
	"context"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]domain.VendorMasterEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorMasterEntry), args.Error(1)
}

func (m *MockVendorRepository) FindVendorsByPrefix(ctx context.Context, prefix string) ([]domain.VendorMasterEntry, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorMasterEntry), args.Error(1)
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.VendorMasterEntry) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.VendorMasterEntry) (*domain.VendorMasterEntry, error) {
	args := m.Called(ctx, vendor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorMasterEntry), args.Error(1)
}

// --- Mock MappingRepository ---
type MockMappingRepository struct {
	mock.Mock
}

func (m *MockMappingRepository) ListMappings(ctx context.Context) ([]domain.DescriptionMapping, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DescriptionMapping), args.Error(1)
}

func (m *MockMappingRepository) SaveMapping(ctx context.Context, dm domain.DescriptionMapping) (*domain.DescriptionMapping, error) {
	args := m.Called(ctx, dm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DescriptionMapping), args.Error(1)
}

// --- Mock PurchaseOrderRepository ---
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByNumber(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) SavePurchaseOrders(ctx context.Context, pos []domain.PurchaseOrder) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) DeletePurchaseOrdersByBatch(ctx context.Context, batchID string) (int64, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CCTransactionRepository ---
type MockCCTransactionRepository struct {
	mock.Mock
}

func (m *MockCCTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.CCTransaction, createdBy string) error {
	args := m.Called(ctx, txns, createdBy)
	return args.Error(0)
}

func (m *MockCCTransactionRepository) ListTransactionsByBatch(ctx context.Context, batchID string) ([]domain.CCTransaction, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CCTransaction), args.Error(1)
}

func (m *MockCCTransactionRepository) DeleteTransactionsByBatch(ctx context.Context, batchID string) (int64, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock OverrideRepository ---
type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) ListOverrides(ctx context.Context) ([]domain.ManualOverride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualOverride), args.Error(1)
}

func (m *MockOverrideRepository) SaveOverrides(ctx context.Context, overrides []domain.ManualOverride) error {
	args := m.Called(ctx, overrides)
	return args.Error(0)
}

// --- Mock DeductionRepository ---
type MockDeductionRepository struct {
	mock.Mock
}

func (m *MockDeductionRepository) ListDeductions(ctx context.Context) ([]domain.Deduction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) ListDeductionsByPO(ctx context.Context, poNumber string) ([]domain.Deduction, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) ApplyDeduction(ctx context.Context, d domain.Deduction) (decimal.Decimal, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReconciliationRunRepository ---
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) CreateRun(ctx context.Context, run domain.ReconciliationRun, referenceIDs []string) error {
	args := m.Called(ctx, run, referenceIDs)
	return args.Error(0)
}

func (m *MockRunRepository) UpdateRun(ctx context.Context, run domain.ReconciliationRun, referenceIDs []string) error {
	args := m.Called(ctx, run, referenceIDs)
	return args.Error(0)
}

func (m *MockRunRepository) FindRunByID(ctx context.Context, recoID string) (*domain.ReconciliationRun, error) {
	args := m.Called(ctx, recoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationRun), args.Error(1)
}

func (m *MockRunRepository) DeleteRun(ctx context.Context, recoID string) error {
	args := m.Called(ctx, recoID)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(i int) *int { return &i }
