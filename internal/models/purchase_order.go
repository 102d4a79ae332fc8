package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is a row of the purchase_orders table.
type PurchaseOrder struct {
	PONumber      string          `db:"po_number"`
	PODate        sql.NullTime    `db:"po_date"`
	VendorPrefix  string          `db:"vendor_prefix"`
	Channel       string          `db:"channel"`
	BaseAmount    decimal.Decimal `db:"base_amount"`
	CCFeeRate     decimal.Decimal `db:"cc_fee_rate"`
	ImportBatchID string          `db:"import_batch_id"`
	AuditFields
}

// Deduction is a row of the append-only deductions table.
type Deduction struct {
	DeductionID   string          `db:"deduction_id"`
	PONumber      string          `db:"po_number"`
	Amount        decimal.Decimal `db:"amount"`
	BatchID       string          `db:"batch_id"`
	DeductionDate sql.NullTime    `db:"deduction_date"`
	Reason        string          `db:"reason"`
	CreatedAt     sql.NullTime    `db:"created_at"`
}
