package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CCTransaction is one imported credit-card charge. The core never mutates it.
type CCTransaction struct {
	ReferenceID string          `json:"referenceID"` // Unique across batches
	TxnDate     *time.Time      `json:"txnDate"`     // Nullable: undated rows are excluded from matching
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	BatchID     string          `json:"batchID"`
	CardLast4   string          `json:"cardLast4"`
	RecoID      string          `json:"recoID"` // Empty until a reconciliation run claims the row
}

// Resolution is the vendor assignment computed for one transaction.
type Resolution struct {
	VendorPrefix     string          `json:"vendorPrefix"`
	VendorName       string          `json:"vendorName"`
	Category         Category        `json:"category"`
	Channel          *Channel        `json:"channel"`          // Nil while COMMON/UNMAPPED
	PaymentTermsDays *int            `json:"paymentTermsDays"` // Nil while COMMON/UNMAPPED
	CCFeeRate        decimal.Decimal `json:"ccFeeRate"`

	// Ambiguous is true when the vendor has rows for both channels, whether or not an override settled it.
	Ambiguous  bool `json:"ambiguous"`
	Overridden bool `json:"overridden"`
}

// ResolvedTransaction is a transaction annotated with its resolution and matching window.
type ResolvedTransaction struct {
	CCTransaction
	Resolution
	EffectiveReferenceID string   `json:"effectiveReferenceID"`
	MergedReferenceIDs   []string `json:"mergedReferenceIDs,omitempty"`
	AutoAssigned         bool     `json:"autoAssigned"`
	Window               *Window  `json:"window,omitempty"`
}

// Window is the inclusive PO-date range eligible to match a charge.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls within the window, inclusive on both ends.
func (w Window) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(w.Start) && !d.After(w.End)
}
