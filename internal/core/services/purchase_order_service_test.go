package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/core/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseOrderServiceTestSuite struct {
	suite.Suite
	poRepo        *MockPurchaseOrderRepository
	deductionRepo *MockDeductionRepository
	service       portssvc.PurchaseOrderSvcFacade
}

func (suite *PurchaseOrderServiceTestSuite) SetupTest() {
	suite.poRepo = new(MockPurchaseOrderRepository)
	suite.deductionRepo = new(MockDeductionRepository)
	suite.service = services.NewPurchaseOrderService(suite.poRepo, suite.deductionRepo)
}

func (suite *PurchaseOrderServiceTestSuite) TestImportPurchaseOrders_Success() {
	ctx := context.Background()
	req := dto.CreatePurchaseOrdersRequest{BatchID: " BATCH-X ", PurchaseOrders: []dto.PurchaseOrderInput{
		{PONumber: "PO-1", PODate: "2024-03-05", VendorPrefix: "acme", Channel: "a", BaseAmount: dec("1000"), CCFeeRate: dec("0.02")},
		{PONumber: "PO-2", VendorPrefix: "ACME", Channel: "M", BaseAmount: dec("10")},
	}}

	suite.poRepo.On("SavePurchaseOrders", ctx, mock.MatchedBy(func(pos []domain.PurchaseOrder) bool {
		return len(pos) == 2 &&
			pos[0].VendorPrefix == "ACME" && pos[0].Channel == domain.ChannelA && pos[0].PODate != nil &&
			pos[0].PODate.Day() == 5 && pos[0].CreatedBy == "u1" &&
			pos[1].PODate == nil && pos[1].Channel == domain.ChannelM &&
			pos[0].ImportBatchID == "BATCH-X" && pos[1].ImportBatchID == "BATCH-X"
	})).Return(nil).Once()

	batchID, n, err := suite.service.ImportPurchaseOrders(ctx, req, "u1")
	suite.Require().NoError(err)
	suite.Equal("BATCH-X", batchID)
	suite.Equal(2, n)
	suite.poRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestImportPurchaseOrders_GeneratesBatchID() {
	ctx := context.Background()
	req := dto.CreatePurchaseOrdersRequest{PurchaseOrders: []dto.PurchaseOrderInput{
		{PONumber: "PO-1", VendorPrefix: "ACME", Channel: "A", BaseAmount: dec("1")},
	}}
	suite.poRepo.On("SavePurchaseOrders", ctx, mock.MatchedBy(func(pos []domain.PurchaseOrder) bool {
		return len(pos) == 1 && strings.HasPrefix(pos[0].ImportBatchID, "BATCH-")
	})).Return(nil).Once()

	batchID, _, err := suite.service.ImportPurchaseOrders(ctx, req, "u1")
	suite.Require().NoError(err)
	suite.Regexp(`^BATCH-\d{8}-\d{6}$`, batchID)
}

func (suite *PurchaseOrderServiceTestSuite) TestImportPurchaseOrders_Rejects() {
	tests := []struct {
		name string
		pos  []dto.PurchaseOrderInput
	}{
		{"duplicate number in request", []dto.PurchaseOrderInput{
			{PONumber: "PO-1", VendorPrefix: "ACME", Channel: "A", BaseAmount: dec("1")},
			{PONumber: "PO-1", VendorPrefix: "ACME", Channel: "A", BaseAmount: dec("1")},
		}},
		{"bad date", []dto.PurchaseOrderInput{{PONumber: "PO-1", PODate: "05/03/2024", VendorPrefix: "ACME", Channel: "A", BaseAmount: dec("1")}}},
		{"zero base", []dto.PurchaseOrderInput{{PONumber: "PO-1", VendorPrefix: "ACME", Channel: "A", BaseAmount: dec("0")}}},
		{"unknown channel", []dto.PurchaseOrderInput{{PONumber: "PO-1", VendorPrefix: "ACME", Channel: "Q", BaseAmount: dec("1")}}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, _, err := suite.service.ImportPurchaseOrders(context.Background(), dto.CreatePurchaseOrdersRequest{PurchaseOrders: tt.pos}, "u1")
			suite.True(errors.Is(err, apperrors.ErrValidation))
		})
	}
	suite.poRepo.AssertNotCalled(suite.T(), "SavePurchaseOrders", mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestGetBalance() {
	ctx := context.Background()
	suite.poRepo.On("FindPurchaseOrderByNumber", ctx, "PO-1").
		Return(&domain.PurchaseOrder{PONumber: "PO-1", BaseAmount: dec("1000")}, nil).Once()
	suite.deductionRepo.On("ListDeductionsByPO", ctx, "PO-1").Return([]domain.Deduction{
		{PONumber: "PO-1", Amount: dec("400")},
		{PONumber: "PO-1", Amount: dec("100.50")},
	}, nil).Once()

	bal, err := suite.service.GetBalance(ctx, "PO-1")
	suite.Require().NoError(err)
	suite.True(bal.TotalDeducted.Equal(dec("500.50")))
	suite.True(bal.Balance.Equal(dec("499.50")))
	suite.Require().Len(bal.Deductions, 2)
	suite.True(bal.Deductions[1].Amount.Equal(dec("100.50")))
}

func (suite *PurchaseOrderServiceTestSuite) TestGetBalance_NotFound() {
	ctx := context.Background()
	suite.poRepo.On("FindPurchaseOrderByNumber", ctx, "PO-X").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBalance(ctx, "PO-X")
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.deductionRepo.AssertNotCalled(suite.T(), "ListDeductionsByPO", mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestRollbackBatch() {
	ctx := context.Background()

	suite.Run("deletes the batch", func() {
		suite.poRepo.On("DeletePurchaseOrdersByBatch", ctx, "BATCH-1").Return(int64(3), nil).Once()
		n, err := suite.service.RollbackBatch(ctx, " BATCH-1 ")
		suite.Require().NoError(err)
		suite.Equal(int64(3), n)
	})

	suite.Run("deductions block the rollback", func() {
		suite.poRepo.On("DeletePurchaseOrdersByBatch", ctx, "BATCH-2").
			Return(int64(0), apperrors.NewConflictError("purchase order batch BATCH-2 has deductions against PO-1")).Once()
		_, err := suite.service.RollbackBatch(ctx, "BATCH-2")
		suite.True(errors.Is(err, apperrors.ErrConflict))
	})

	suite.Run("blank batch id", func() {
		_, err := suite.service.RollbackBatch(ctx, "  ")
		suite.True(errors.Is(err, apperrors.ErrValidation))
	})

	suite.poRepo.AssertExpectations(suite.T())
}

func TestPurchaseOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceTestSuite))
}

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCCTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCCTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestImportTransactions() {
	ctx := context.Background()
	req := dto.ImportTransactionsRequest{BatchID: " B1 ", Transactions: []dto.TransactionInput{
		{ReferenceID: "T1", TxnDate: "2024-03-10", Description: " ACME SUPPLIES ", Amount: dec("500"), CardLast4: "1234"},
		{ReferenceID: "T2", Description: "undated", Amount: dec("5")},
	}}

	suite.mockRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.CCTransaction) bool {
		return len(txns) == 2 && txns[0].BatchID == "B1" && txns[0].Description == "ACME SUPPLIES" &&
			txns[0].TxnDate != nil && txns[1].TxnDate == nil
	}), "u1").Return(nil).Once()

	n, err := suite.service.ImportTransactions(ctx, req, "u1")
	suite.Require().NoError(err)
	suite.Equal(2, n)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestImportTransactions_DuplicateReference() {
	ctx := context.Background()
	req := dto.ImportTransactionsRequest{BatchID: "B1", Transactions: []dto.TransactionInput{
		{ReferenceID: "T1", Description: "a", Amount: dec("1")},
		{ReferenceID: "T1", Description: "b", Amount: dec("2")},
	}}

	_, err := suite.service.ImportTransactions(ctx, req, "u1")
	suite.True(errors.Is(err, apperrors.ErrValidation))

	suite.mockRepo.On("SaveTransactions", ctx, mock.Anything, "u1").Return(apperrors.ErrDuplicate).Once()
	req.Transactions = req.Transactions[:1]
	_, err = suite.service.ImportTransactions(ctx, req, "u1")
	suite.True(errors.Is(err, apperrors.ErrDuplicate), "reference ids are unique across batches")
}

func (suite *TransactionServiceTestSuite) TestRollbackBatch() {
	ctx := context.Background()

	suite.Run("deletes the batch", func() {
		suite.mockRepo.On("DeleteTransactionsByBatch", ctx, "B1").Return(int64(4), nil).Once()
		n, err := suite.service.RollbackBatch(ctx, "B1")
		suite.Require().NoError(err)
		suite.Equal(int64(4), n)
	})

	suite.Run("claimed batch", func() {
		suite.mockRepo.On("DeleteTransactionsByBatch", ctx, "B2").
			Return(int64(0), apperrors.NewConflictError("transaction batch B2 is claimed by run RECO-1")).Once()
		_, err := suite.service.RollbackBatch(ctx, "B2")
		suite.True(errors.Is(err, apperrors.ErrConflict))
	})

	suite.Run("unknown batch", func() {
		suite.mockRepo.On("DeleteTransactionsByBatch", ctx, "B3").Return(int64(0), apperrors.ErrNotFound).Once()
		_, err := suite.service.RollbackBatch(ctx, "B3")
		suite.True(errors.Is(err, apperrors.ErrNotFound))
	})

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

type MappingServiceTestSuite struct {
	suite.Suite
	mappingRepo *MockMappingRepository
	vendorRepo  *MockVendorRepository
	service     portssvc.MappingSvcFacade
}

func (suite *MappingServiceTestSuite) SetupTest() {
	suite.mappingRepo = new(MockMappingRepository)
	suite.vendorRepo = new(MockVendorRepository)
	suite.service = services.NewMappingService(suite.mappingRepo, suite.vendorRepo)
}

func (suite *MappingServiceTestSuite) TestAssignVendor_UnknownPrefix() {
	ctx := context.Background()
	suite.vendorRepo.On("FindVendorsByPrefix", ctx, "NOPE").Return([]domain.VendorMasterEntry{}, nil).Once()

	_, err := suite.service.AssignVendor(ctx, "mystery", "nope", "u1")
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mappingRepo.AssertNotCalled(suite.T(), "SaveMapping", mock.Anything, mock.Anything)
}

func (suite *MappingServiceTestSuite) TestAssignVendor_Appends() {
	ctx := context.Background()
	suite.vendorRepo.On("FindVendorsByPrefix", ctx, "ACME").Return([]domain.VendorMasterEntry{{Prefix: "ACME"}}, nil).Once()
	suite.mappingRepo.On("SaveMapping", ctx, mock.MatchedBy(func(m domain.DescriptionMapping) bool {
		return m.Description == "mystery" && m.Prefix == "ACME" && m.CreatedBy == "u1"
	})).Return(&domain.DescriptionMapping{Seq: 9, Description: "mystery", Prefix: "ACME"}, nil).Once()

	m, err := suite.service.AssignVendor(ctx, "  mystery ", "acme", "u1")
	suite.Require().NoError(err)
	suite.Equal(int64(9), m.Seq)
}

func TestMappingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MappingServiceTestSuite))
}
