package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CCTransaction is a row of the cc_transactions table.
type CCTransaction struct {
	ReferenceID string          `db:"reference_id"`
	TxnDate     sql.NullTime    `db:"txn_date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	BatchID     string          `db:"batch_id"`
	CardLast4   string          `db:"card_last4"`
	RecoID      sql.NullString  `db:"reco_id"`
	CreatedAt   time.Time       `db:"created_at"`
	CreatedBy   string          `db:"created_by"`
}

// ManualOverride is a row of the manual_overrides table.
type ManualOverride struct {
	ReferenceID string `db:"reference_id"`
	Channel     string `db:"channel"`
	AuditFields
}

// ReconciliationRun is a row of the reconciliation_runs table. Result holds the JSON-encoded result.
type ReconciliationRun struct {
	RecoID    string `db:"reco_id"`
	BatchID   string `db:"batch_id"`
	GraceDays int    `db:"grace_days"`
	Result    []byte `db:"result"`
	AuditFields
}
