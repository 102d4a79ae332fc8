package dto

import (
	"github.com/shopspring/decimal"
)

// DeductionItem is one requested partial consumption of a PO.
type DeductionItem struct {
	PONumber string          `json:"poNumber" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason" binding:"max=500"`
}

// ApplyDeductionsRequest submits deductions for one batch. Items are applied independently.
type ApplyDeductionsRequest struct {
	BatchID string          `json:"batchID" binding:"required"`
	Items   []DeductionItem `json:"items" binding:"required,min=1,dive"`
}

// Per-item rejection codes.
const (
	DeductionInvalidAmount       = "INVALID_AMOUNT"
	DeductionDepletedPO          = "DEPLETED_PO"
	DeductionInsufficientBalance = "INSUFFICIENT_BALANCE"
	DeductionUnknownPO           = "UNKNOWN_PO"
	DeductionInternal            = "INTERNAL"
)

// DeductionOutcome reports what happened to one item.
type DeductionOutcome struct {
	PONumber    string           `json:"poNumber"`
	Amount      decimal.Decimal  `json:"amount"`
	Applied     bool             `json:"applied"`
	DeductionID string           `json:"deductionID,omitempty"`
	NewBalance  *decimal.Decimal `json:"newBalance,omitempty"`
	ErrorCode   string           `json:"errorCode,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// ApplyDeductionsResponse lists per-item outcomes in request order.
type ApplyDeductionsResponse struct {
	BatchID  string             `json:"batchID"`
	Applied  int                `json:"applied"`
	Rejected int                `json:"rejected"`
	Outcomes []DeductionOutcome `json:"outcomes"`
}
