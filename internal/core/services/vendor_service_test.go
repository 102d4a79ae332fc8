package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/core/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVendorRepository
	service  portssvc.VendorSvcFacade
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVendorRepository)
	suite.service = services.NewVendorService(suite.mockRepo)
}

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	creator := uuid.NewString()
	req := dto.CreateVendorRequest{
		Prefix:       "  acme   co ",
		VendorName:   "Acme Co",
		Category:     "ONLY_A",
		PaymentTerms: "Net 10",
		CCFeeRate:    dec("0.02"),
	}

	suite.mockRepo.On("FindVendorsByPrefix", ctx, "ACME CO").Return([]domain.VendorMasterEntry{}, nil).Once()
	suite.mockRepo.On("SaveVendor", ctx, mock.MatchedBy(func(v domain.VendorMasterEntry) bool {
		return v.Prefix == "ACME CO" && v.Channel == domain.ChannelA && v.PaymentTermsDays != nil &&
			*v.PaymentTermsDays == 10 && v.CreatedBy == creator
	})).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req, creator)

	suite.Require().NoError(err)
	suite.Equal("ACME CO", vendor.Prefix)
	suite.Equal(domain.CategoryOnlyA, vendor.Category)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_SecondChannelOfCommonVendor() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{Prefix: "DUAL", VendorName: "Dual", Category: "COMMON", Channel: "m", PaymentTerms: "pre_payment"}

	suite.mockRepo.On("FindVendorsByPrefix", ctx, "DUAL").Return([]domain.VendorMasterEntry{
		{Prefix: "DUAL", Category: domain.CategoryCommon, Channel: domain.ChannelA, PaymentTermsDays: intPtr(15)},
	}, nil).Once()
	suite.mockRepo.On("SaveVendor", ctx, mock.MatchedBy(func(v domain.VendorMasterEntry) bool {
		return v.Channel == domain.ChannelM && *v.PaymentTermsDays == 0
	})).Return(nil).Once()

	_, err := suite.service.CreateVendor(ctx, req, "u1")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_Duplicate() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{Prefix: "ACME", VendorName: "Acme", Category: "ONLY_A", PaymentTerms: "10"}

	suite.mockRepo.On("FindVendorsByPrefix", ctx, "ACME").Return([]domain.VendorMasterEntry{
		{Prefix: "ACME", Category: domain.CategoryOnlyA, Channel: domain.ChannelA},
	}, nil).Once()

	_, err := suite.service.CreateVendor(ctx, req, "u1")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVendor", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestCreateVendor_NotAvailableNeedsNoTerms() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{Prefix: "GONE", VendorName: "Gone Ltd", Category: "NOT_AVAILABLE", Channel: "A"}

	suite.mockRepo.On("FindVendorsByPrefix", ctx, "GONE").Return([]domain.VendorMasterEntry{}, nil).Once()
	suite.mockRepo.On("SaveVendor", ctx, mock.MatchedBy(func(v domain.VendorMasterEntry) bool {
		return v.Channel == "" && v.PaymentTermsDays == nil
	})).Return(nil).Once()

	_, err := suite.service.CreateVendor(ctx, req, "u1")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_ValidationErrors() {
	tests := []struct {
		name string
		req  dto.CreateVendorRequest
	}{
		{"prefix with punctuation", dto.CreateVendorRequest{Prefix: "AC-ME", VendorName: "x", Category: "ONLY_A", PaymentTerms: "10"}},
		{"blank prefix", dto.CreateVendorRequest{Prefix: "   ", VendorName: "x", Category: "ONLY_A", PaymentTerms: "10"}},
		{"channel contradicts category", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "x", Category: "ONLY_A", Channel: "M", PaymentTerms: "10"}},
		{"unparseable terms", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "x", Category: "ONLY_A", PaymentTerms: "soon"}},
		{"missing terms", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "x", Category: "ONLY_M"}},
		{"fee above one", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "x", Category: "ONLY_A", PaymentTerms: "10", CCFeeRate: dec("1.5")}},
		{"unknown category", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "x", Category: "SOMETIMES", PaymentTerms: "10"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateVendor(context.Background(), tt.req, "u1")
			suite.Require().Error(err)
			suite.True(errors.Is(err, apperrors.ErrValidation), err.Error())
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVendor", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_Success() {
	ctx := context.Background()
	req := dto.UpdateVendorRequest{VendorName: "Dual Renamed", Category: "COMMON", PaymentTerms: "Net 45", CCFeeRate: dec("0.01")}
	stored := &domain.VendorMasterEntry{Prefix: "DUAL", VendorName: "Dual Renamed", Category: domain.CategoryCommon, Channel: domain.ChannelM,
		PaymentTermsDays: intPtr(45), AuditFields: domain.AuditFields{CreatedBy: "u1", LastUpdatedBy: "u2"}}

	suite.mockRepo.On("UpdateVendor", ctx, mock.MatchedBy(func(v domain.VendorMasterEntry) bool {
		return v.Prefix == "DUAL" && v.Channel == domain.ChannelM && *v.PaymentTermsDays == 45 &&
			v.LastUpdatedBy == "u2" && v.CreatedBy == ""
	})).Return(stored, nil).Once()

	vendor, err := suite.service.UpdateVendor(ctx, " dual ", "m", req, "u2")
	suite.Require().NoError(err)
	suite.Equal("u1", vendor.CreatedBy)
	suite.Equal("Dual Renamed", vendor.VendorName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_ChannelLessRow() {
	ctx := context.Background()
	req := dto.UpdateVendorRequest{VendorName: "Gone Ltd", Category: "NOT_AVAILABLE"}

	suite.mockRepo.On("UpdateVendor", ctx, mock.MatchedBy(func(v domain.VendorMasterEntry) bool {
		return v.Prefix == "GONE" && v.Channel == "" && v.PaymentTermsDays == nil
	})).Return(&domain.VendorMasterEntry{Prefix: "GONE", Category: domain.CategoryNotAvailable}, nil).Once()

	_, err := suite.service.UpdateVendor(ctx, "GONE", "", req, "u2")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_Rejects() {
	tests := []struct {
		name    string
		prefix  string
		channel string
		req     dto.UpdateVendorRequest
	}{
		{"unknown channel", "ACME", "Q", dto.UpdateVendorRequest{VendorName: "x", Category: "COMMON", PaymentTerms: "10"}},
		{"category moves the row to another channel", "ACME", "M", dto.UpdateVendorRequest{VendorName: "x", Category: "ONLY_A", PaymentTerms: "10"}},
		{"not available on a channel row", "ACME", "A", dto.UpdateVendorRequest{VendorName: "x", Category: "NOT_AVAILABLE"}},
		{"only category on the channel-less row", "ACME", "", dto.UpdateVendorRequest{VendorName: "x", Category: "ONLY_M", PaymentTerms: "10"}},
		{"missing terms", "ACME", "A", dto.UpdateVendorRequest{VendorName: "x", Category: "ONLY_A"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.UpdateVendor(context.Background(), tt.prefix, tt.channel, tt.req, "u2")
			suite.Require().Error(err)
			suite.True(errors.Is(err, apperrors.ErrValidation), err.Error())
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVendor", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateVendor", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateVendor(ctx, "NOPE", "A", dto.UpdateVendorRequest{VendorName: "x", Category: "ONLY_A", PaymentTerms: "10"}, "u2")
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *VendorServiceTestSuite) TestListVendors_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListVendors", ctx).Return(nil, nil).Once()

	vendors, err := suite.service.ListVendors(ctx)
	suite.Require().NoError(err)
	suite.NotNil(vendors)
	suite.Empty(vendors)
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
