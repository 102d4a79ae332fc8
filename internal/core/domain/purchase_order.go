package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is an imported PO. CCFeeRate is a snapshot of the vendor fee at import time.
type PurchaseOrder struct {
	PONumber      string          `json:"poNumber"`
	PODate        *time.Time      `json:"poDate"` // Nullable: undated POs never match
	VendorPrefix  string          `json:"vendorPrefix"`
	Channel       Channel         `json:"channel"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	CCFeeRate     decimal.Decimal `json:"ccFeeRate"`
	ImportBatchID string          `json:"importBatchID"`
	AuditFields
}

// FeeAdjustedAmount returns BaseAmount × (1 + CCFeeRate).
func (p PurchaseOrder) FeeAdjustedAmount() decimal.Decimal {
	return p.BaseAmount.Mul(decimal.NewFromInt(1).Add(p.CCFeeRate))
}

// POBalance is the ledger view of a single PO.
type POBalance struct {
	PONumber      string          `json:"poNumber"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	TotalDeducted decimal.Decimal `json:"totalDeducted"`
	Balance       decimal.Decimal `json:"balance"`
	Deductions    []Deduction     `json:"deductions"` // Ledger rows in append order
}
