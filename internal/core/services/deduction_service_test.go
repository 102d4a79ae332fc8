package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/core/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/recon"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DeductionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDeductionRepository
	service  portssvc.DeductionSvcFacade
}

func (suite *DeductionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDeductionRepository)
	suite.service = services.NewDeductionService(suite.mockRepo)
}

func forPO(number string) interface{} {
	return mock.MatchedBy(func(d domain.Deduction) bool { return d.PONumber == number })
}

func (suite *DeductionServiceTestSuite) TestApplyDeductions_ItemsAreIndependent() {
	ctx := context.Background()
	req := dto.ApplyDeductionsRequest{
		BatchID: "B1",
		Items: []dto.DeductionItem{
			{PONumber: "PO-1", Amount: dec("400"), Reason: "partial receipt"},
			{PONumber: "PO-2", Amount: dec("900")},
			{PONumber: "PO-3", Amount: dec("0")},
			{PONumber: "PO-4", Amount: dec("10")},
			{PONumber: "PO-5", Amount: dec("10")},
			{PONumber: "PO-6", Amount: dec("10")},
		},
	}

	suite.mockRepo.On("ApplyDeduction", ctx, mock.MatchedBy(func(d domain.Deduction) bool {
		return d.PONumber == "PO-1" && d.BatchID == "B1" && d.Reason == "partial receipt" && d.DeductionID != "" &&
			d.Amount.Equal(dec("400")) && d.Date.Equal(domain.DateOnly(d.Timestamp))
	})).Return(dec("600"), nil).Once()
	suite.mockRepo.On("ApplyDeduction", ctx, forPO("PO-2")).
		Return(dec("500"), fmt.Errorf("%w: amount 900, balance 500", recon.ErrInsufficientBalance)).Once()
	suite.mockRepo.On("ApplyDeduction", ctx, forPO("PO-4")).Return(decimal.Zero, recon.ErrDepletedPO).Once()
	suite.mockRepo.On("ApplyDeduction", ctx, forPO("PO-5")).Return(decimal.Zero, fmt.Errorf("%w: PO-5", recon.ErrUnknownPO)).Once()
	suite.mockRepo.On("ApplyDeduction", ctx, forPO("PO-6")).Return(decimal.Zero, errors.New("connection reset")).Once()

	resp, err := suite.service.ApplyDeductions(ctx, req, "u1")
	suite.Require().NoError(err)
	suite.Require().Len(resp.Outcomes, 6)
	suite.Equal(1, resp.Applied)
	suite.Equal(5, resp.Rejected)

	first := resp.Outcomes[0]
	suite.True(first.Applied)
	suite.NotEmpty(first.DeductionID)
	suite.Require().NotNil(first.NewBalance)
	suite.True(first.NewBalance.Equal(dec("600")))

	codes := make([]string, 0, 5)
	for _, o := range resp.Outcomes[1:] {
		suite.False(o.Applied)
		suite.Nil(o.NewBalance)
		codes = append(codes, o.ErrorCode)
	}
	suite.Equal([]string{
		dto.DeductionInsufficientBalance,
		dto.DeductionInvalidAmount,
		dto.DeductionDepletedPO,
		dto.DeductionUnknownPO,
		dto.DeductionInternal,
	}, codes)
	suite.NotContains(resp.Outcomes[5].Error, "connection reset")

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyDeduction", ctx, forPO("PO-3"))
}

func (suite *DeductionServiceTestSuite) TestApplyDeductions_BlankBatch() {
	_, err := suite.service.ApplyDeductions(context.Background(), dto.ApplyDeductionsRequest{BatchID: " "}, "u1")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func TestDeductionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeductionServiceTestSuite))
}
