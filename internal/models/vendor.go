package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// VendorMaster is a row of the vendor_master table.
type VendorMaster struct {
	VendorID         int64           `db:"vendor_id"`
	Prefix           string          `db:"prefix"`
	VendorName       string          `db:"vendor_name"`
	Category         string          `db:"category"`
	Channel          sql.NullString  `db:"channel"`            // Null for channel-less COMMON and NOT_AVAILABLE rows
	PaymentTermsDays sql.NullInt32   `db:"payment_terms_days"` // Null when terms are not on file
	CCFeeRate        decimal.Decimal `db:"cc_fee_rate"`
	AuditFields
}

// DescriptionMapping is a row of the description_mappings table.
type DescriptionMapping struct {
	Seq         int64  `db:"seq"`
	Description string `db:"description"`
	Prefix      string `db:"prefix"`
	AuditFields
}
