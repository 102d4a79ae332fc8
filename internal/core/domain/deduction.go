package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deduction is an append-only partial consumption of a PO. Rows are never updated or deleted.
type Deduction struct {
	DeductionID string          `json:"deductionID"`
	PONumber    string          `json:"poNumber"`
	Amount      decimal.Decimal `json:"amount"` // > 0
	BatchID     string          `json:"batchID"`
	Date        time.Time       `json:"date"`
	Reason      string          `json:"reason"`
	Timestamp   time.Time       `json:"timestamp"`
}
