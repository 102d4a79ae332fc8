package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flag signals whether a group's card charges are covered by matched POs.
type Flag string

const (
	FlagRed   Flag = "RED"
	FlagGreen Flag = "GREEN"
)

// ReconciliationGroup aggregates charges and POs sharing date, vendor, channel and payment terms.
type ReconciliationGroup struct {
	TxnDate            time.Time       `json:"txnDate"`
	VendorPrefix       string          `json:"vendorPrefix"`
	VendorName         string          `json:"vendorName"`
	Channel            Channel         `json:"channel"`
	PaymentTermsDays   int             `json:"paymentTermsDays"`
	TotalCCAmount      decimal.Decimal `json:"totalCCAmount"`
	CCTransactionCount int             `json:"ccTransactionCount"`
	TotalPOAmount      decimal.Decimal `json:"totalPOAmount"` // Fee- and deduction-adjusted
	POCount            int             `json:"poCount"`
	TotalDeductions    decimal.Decimal `json:"totalDeductions"`
	TotalCCFeeCharge   decimal.Decimal `json:"totalCCFeeCharge"` // On pre-deduction base amounts
	Flag               Flag            `json:"flag"`
	ReferenceIDs       []string        `json:"referenceIDs"`
	PONumbers          []string        `json:"poNumbers"`
}

// Snapshot is the full set of input tables for one reconciliation run.
// A nil slice means the table is absent; an empty slice means it is present but has no rows.
// Overrides and Deductions are optional.
type Snapshot struct {
	VendorMaster   []VendorMasterEntry  `json:"vendorMaster"`
	Mappings       []DescriptionMapping `json:"mappings"`
	PurchaseOrders []PurchaseOrder      `json:"purchaseOrders"`
	Transactions   []CCTransaction      `json:"transactions"`
	Overrides      []ManualOverride     `json:"overrides"`
	Deductions     []Deduction          `json:"deductions"`
}

// ExclusionReason explains why a row was left out of matching.
type ExclusionReason string

const (
	ExclusionMissingTxnDate      ExclusionReason = "MISSING_TXN_DATE"
	ExclusionMissingPODate       ExclusionReason = "MISSING_PO_DATE"
	ExclusionInvalidVendorRow    ExclusionReason = "INVALID_VENDOR_ROW"
	ExclusionDuplicateReference  ExclusionReason = "DUPLICATE_REFERENCE"
	ExclusionInvalidWindowInputs ExclusionReason = "INVALID_WINDOW_INPUTS"
)

// Exclusion reports a row dropped from matching without failing the run.
type Exclusion struct {
	Table  string          `json:"table"`
	Key    string          `json:"key"`
	Reason ExclusionReason `json:"reason"`
}

// ConsolidationGroup is a set of channel-ambiguous transactions sharing one normalized description.
type ConsolidationGroup struct {
	NormalizedDescription string          `json:"normalizedDescription"`
	Description           string          `json:"description"`
	ReferenceIDs          []string        `json:"referenceIDs"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	TransactionCount      int             `json:"transactionCount"`
	Channel               *Channel        `json:"channel"` // Nil while pending manual assignment
	AutoAssigned          bool            `json:"autoAssigned"`
	FromHistory           bool            `json:"fromHistory"`
}

// ReconciliationResult is the full recomputed output of one run.
type ReconciliationResult struct {
	RecoID               string                `json:"recoID"`
	BatchID              string                `json:"batchID"`
	GraceDays            int                   `json:"graceDays"`
	Groups               []ReconciliationGroup `json:"groups"`
	Transactions         []ResolvedTransaction `json:"transactions"`
	PendingConsolidation []ConsolidationGroup  `json:"pendingConsolidation"`
	AppliedConsolidation []ConsolidationGroup  `json:"appliedConsolidation"`
	NewOverrides         []ManualOverride      `json:"newOverrides"`
	Exclusions           []Exclusion           `json:"exclusions"`
}

// CountByCategory tallies distinct effective reference ids per category.
func (r ReconciliationResult) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, t := range r.Transactions {
		counts[t.Category]++
	}
	return counts
}

// ReconciliationRun is a persisted reconciliation result.
type ReconciliationRun struct {
	RecoID    string               `json:"recoID"`
	BatchID   string               `json:"batchID"`
	GraceDays int                  `json:"graceDays"`
	Result    ReconciliationResult `json:"result"`
	AuditFields
}

// MatchedPO is a purchase order counted into a group, with the window it was matched in.
type MatchedPO struct {
	PurchaseOrder
	TxnDate time.Time `json:"txnDate"`
	Window  Window    `json:"window"`
}

// VendorDetail is the drill-down of one vendor prefix within a run.
type VendorDetail struct {
	RecoID         string                `json:"recoID"`
	VendorPrefix   string                `json:"vendorPrefix"`
	VendorName     string                `json:"vendorName"`
	Groups         []ReconciliationGroup `json:"groups"`
	PurchaseOrders []MatchedPO           `json:"purchaseOrders"`
	Transactions   []ResolvedTransaction `json:"transactions"`
	TotalCCAmount  decimal.Decimal       `json:"totalCCAmount"`
	TotalPOAmount  decimal.Decimal       `json:"totalPOAmount"`
}
