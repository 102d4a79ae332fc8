package recon

import (
	"fmt"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckDeduction validates amount against a freshly read balance.
func CheckDeduction(balance, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount.String())
	}
	if balance.LessThanOrEqual(decimal.Zero) {
		return ErrDepletedPO
	}
	if amount.GreaterThan(balance) {
		return fmt.Errorf("%w: amount %s, balance %s", ErrInsufficientBalance, amount.String(), balance.String())
	}
	return nil
}

// Ledger is an append-only deduction ledger over a fixed set of purchase orders.
// It is not safe for concurrent use; a run applies deductions one PO at a time.
type Ledger struct {
	baseAmounts map[string]decimal.Decimal
	entries     []domain.Deduction
	now         func() time.Time
}

// NewLedger seeds a ledger with PO base amounts and the existing deduction rows.
func NewLedger(pos []domain.PurchaseOrder, deductions []domain.Deduction) *Ledger {
	l := &Ledger{
		baseAmounts: make(map[string]decimal.Decimal, len(pos)),
		entries:     make([]domain.Deduction, 0, len(deductions)),
		now:         time.Now,
	}
	for _, po := range pos {
		l.baseAmounts[po.PONumber] = po.BaseAmount
	}
	l.entries = append(l.entries, deductions...)
	return l
}

// AvailableBalance returns the total deducted so far and the remaining balance of a PO.
// The ledger is re-summed on every call so no stale totals are ever served.
func (l *Ledger) AvailableBalance(poNumber string) (decimal.Decimal, decimal.Decimal, error) {
	base, ok := l.baseAmounts[poNumber]
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownPO, poNumber)
	}
	deducted := decimal.Zero
	for _, d := range l.entries {
		if d.PONumber == poNumber {
			deducted = deducted.Add(d.Amount)
		}
	}
	return deducted, base.Sub(deducted), nil
}

// ApplyDeduction appends a new deduction row for poNumber and returns the new balance.
// On error the ledger is unchanged.
func (l *Ledger) ApplyDeduction(poNumber string, amount decimal.Decimal, batchID, reason string) (decimal.Decimal, error) {
	_, balance, err := l.Append(domain.Deduction{PONumber: poNumber, Amount: amount, BatchID: batchID, Reason: reason})
	return balance, err
}

// Append re-validates the balance of d's PO and appends d, stamping the id, date and timestamp
// when they are unset. It returns the stored row and the new balance; on error the ledger is
// unchanged and the balance is the current one.
func (l *Ledger) Append(d domain.Deduction) (domain.Deduction, decimal.Decimal, error) {
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return d, decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidAmount, d.Amount.String())
	}
	_, balance, err := l.AvailableBalance(d.PONumber)
	if err != nil {
		return d, decimal.Zero, err
	}
	if err := CheckDeduction(balance, d.Amount); err != nil {
		return d, balance, err
	}

	if d.DeductionID == "" {
		d.DeductionID = uuid.NewString()
	}
	if d.Timestamp.IsZero() {
		d.Timestamp = l.now().UTC()
	}
	if d.Date.IsZero() {
		d.Date = domain.DateOnly(d.Timestamp)
	}
	l.entries = append(l.entries, d)
	return d, balance.Sub(d.Amount), nil
}

// Entries returns a copy of all ledger rows in append order.
func (l *Ledger) Entries() []domain.Deduction {
	out := make([]domain.Deduction, len(l.entries))
	copy(out, l.entries)
	return out
}
