package dto

import (
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every date-only field.
const DateLayout = "2006-01-02"

// CreateVendorRequest defines the data needed to add a vendor master row.
type CreateVendorRequest struct {
	Prefix       string          `json:"prefix" binding:"required,max=64"`
	VendorName   string          `json:"vendorName" binding:"required"`
	Category     string          `json:"category" binding:"required,category"`
	Channel      string          `json:"channel" binding:"omitempty,channel"`
	PaymentTerms string          `json:"paymentTerms"` // "pre_payment", "Net 10" or "10"
	CCFeeRate    decimal.Decimal `json:"ccFeeRate"`
}

// UpdateVendorRequest replaces the editable fields of a vendor master row.
type UpdateVendorRequest struct {
	VendorName   string          `json:"vendorName" binding:"required"`
	Category     string          `json:"category" binding:"required,category"`
	PaymentTerms string          `json:"paymentTerms"`
	CCFeeRate    decimal.Decimal `json:"ccFeeRate"`
}

// VendorResponse defines the data returned for a vendor master row.
type VendorResponse struct {
	Prefix           string          `json:"prefix"`
	VendorName       string          `json:"vendorName"`
	Category         string          `json:"category"`
	Channel          string          `json:"channel,omitempty"`
	PaymentTermsDays *int            `json:"paymentTermsDays"`
	CCFeeRate        decimal.Decimal `json:"ccFeeRate"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

func ToVendorResponse(v domain.VendorMasterEntry) VendorResponse {
	return VendorResponse{
		Prefix:           v.Prefix,
		VendorName:       v.VendorName,
		Category:         string(v.Category),
		Channel:          string(v.Channel),
		PaymentTermsDays: v.PaymentTermsDays,
		CCFeeRate:        v.CCFeeRate,
		CreatedAt:        v.CreatedAt,
		CreatedBy:        v.CreatedBy,
		LastUpdatedAt:    v.LastUpdatedAt,
		LastUpdatedBy:    v.LastUpdatedBy,
	}
}

func ToListVendorResponse(vendors []domain.VendorMasterEntry) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		res[i] = ToVendorResponse(v)
	}
	return res
}

// CreateMappingRequest maps a card description to a vendor prefix.
type CreateMappingRequest struct {
	Description string `json:"description" binding:"required"`
	Prefix      string `json:"prefix" binding:"required"`
}

// MappingResponse defines the data returned for a description mapping row.
type MappingResponse struct {
	Seq         int64  `json:"seq"`
	Description string `json:"description"`
	Prefix      string `json:"prefix"`
}

func ToListMappingResponse(mappings []domain.DescriptionMapping) []MappingResponse {
	res := make([]MappingResponse, len(mappings))
	for i, m := range mappings {
		res[i] = MappingResponse{Seq: m.Seq, Description: m.Description, Prefix: m.Prefix}
	}
	return res
}

// PurchaseOrderInput is one PO of an import request.
type PurchaseOrderInput struct {
	PONumber     string          `json:"poNumber" binding:"required"`
	PODate       string          `json:"poDate" binding:"omitempty,datetime=2006-01-02"`
	VendorPrefix string          `json:"vendorPrefix" binding:"required"`
	Channel      string          `json:"channel" binding:"required,channel"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	CCFeeRate    decimal.Decimal `json:"ccFeeRate"`
}

// CreatePurchaseOrdersRequest imports a set of POs.
type CreatePurchaseOrdersRequest struct {
	BatchID        string               `json:"batchID" binding:"omitempty,max=64"` // Generated as BATCH-YYYYMMDD-HHMMSS when empty
	PurchaseOrders []PurchaseOrderInput `json:"purchaseOrders" binding:"required,min=1,dive"`
}

// TransactionInput is one already-parsed card charge of an import request.
type TransactionInput struct {
	ReferenceID string          `json:"referenceID" binding:"required"`
	TxnDate     string          `json:"txnDate" binding:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CardLast4   string          `json:"cardLast4" binding:"omitempty,max=4,numeric"`
}

// ImportTransactionsRequest imports one CC batch.
type ImportTransactionsRequest struct {
	BatchID      string             `json:"batchID" binding:"required"`
	Transactions []TransactionInput `json:"transactions" binding:"required,min=1,dive"`
}

// ImportResponse reports how many rows an import stored.
type ImportResponse struct {
	BatchID  string `json:"batchID,omitempty"`
	Imported int    `json:"imported"`
}

// RollbackResponse reports how many rows a batch rollback deleted.
type RollbackResponse struct {
	BatchID string `json:"batchID"`
	Deleted int64  `json:"deleted"`
}

// ParseDate parses an optional date-only wire value.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
