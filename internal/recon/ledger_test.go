package recon

import (
	"testing"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_DeductionSequence(t *testing.T) {
	l := NewLedger([]domain.PurchaseOrder{{PONumber: "PO-1", BaseAmount: dec("1000")}}, nil)

	deducted, balance, err := l.AvailableBalance("PO-1")
	require.NoError(t, err)
	assert.True(t, deducted.IsZero())
	assert.True(t, balance.Equal(dec("1000")))

	balance, err = l.ApplyDeduction("PO-1", dec("400"), "B1", "partial")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("600")))

	_, err = l.ApplyDeduction("PO-1", dec("700"), "B1", "too much")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	_, balance, _ = l.AvailableBalance("PO-1")
	assert.True(t, balance.Equal(dec("600")), "rejected deduction must leave the ledger unchanged")
	assert.Len(t, l.Entries(), 1)

	balance, err = l.ApplyDeduction("PO-1", dec("600"), "B1", "rest")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	_, err = l.ApplyDeduction("PO-1", dec("0.01"), "B2", "after depletion")
	assert.ErrorIs(t, err, ErrDepletedPO)
	assert.Len(t, l.Entries(), 2)
}

func TestLedger_InvalidAmount(t *testing.T) {
	l := NewLedger([]domain.PurchaseOrder{{PONumber: "PO-1", BaseAmount: dec("50")}}, nil)

	_, err := l.ApplyDeduction("PO-1", decimal.Zero, "B1", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.ApplyDeduction("PO-1", dec("-5"), "B1", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, l.Entries())
}

func TestLedger_UnknownPO(t *testing.T) {
	l := NewLedger(nil, nil)
	_, _, err := l.AvailableBalance("nope")
	assert.ErrorIs(t, err, ErrUnknownPO)
}

func TestLedger_SeededDeductions(t *testing.T) {
	l := NewLedger(
		[]domain.PurchaseOrder{{PONumber: "PO-1", BaseAmount: dec("300")}},
		[]domain.Deduction{
			{PONumber: "PO-1", Amount: dec("100")},
			{PONumber: "PO-2", Amount: dec("999")},
			{PONumber: "PO-1", Amount: dec("50.50")},
		},
	)
	deducted, balance, err := l.AvailableBalance("PO-1")
	require.NoError(t, err)
	assert.True(t, deducted.Equal(dec("150.50")))
	assert.True(t, balance.Equal(dec("149.50")))
}

func TestLedger_BalanceNeverNegative(t *testing.T) {
	l := NewLedger([]domain.PurchaseOrder{{PONumber: "PO-1", BaseAmount: dec("100")}}, nil)
	attempts := []string{"30", "80", "45", "25", "1", "0.5", "100"}
	for _, a := range attempts {
		_, _ = l.ApplyDeduction("PO-1", dec(a), "B", "")
		deducted, balance, err := l.AvailableBalance("PO-1")
		require.NoError(t, err)
		assert.False(t, balance.IsNegative())
		assert.True(t, deducted.LessThanOrEqual(dec("100")))
	}
}

func TestLedger_AppendKeepsCallerStamps(t *testing.T) {
	l := NewLedger([]domain.PurchaseOrder{{PONumber: "PO-1", BaseAmount: dec("100")}},
		[]domain.Deduction{{DeductionID: "d-0", PONumber: "PO-1", Amount: dec("40")}})
	ts := time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)

	entry, balance, err := l.Append(domain.Deduction{DeductionID: "d-1", PONumber: "PO-1", Amount: dec("60"), BatchID: "B1", Timestamp: ts})
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.Equal(t, "d-1", entry.DeductionID)
	assert.Equal(t, ts, entry.Timestamp)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), entry.Date)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "d-0", entries[0].DeductionID)
	assert.Equal(t, entry, entries[1])

	_, balance, err = l.Append(domain.Deduction{PONumber: "PO-1", Amount: dec("1")})
	assert.ErrorIs(t, err, ErrDepletedPO)
	assert.True(t, balance.IsZero(), "rejections report the current balance")
	assert.Len(t, l.Entries(), 2)
}

func TestLedger_AppendStampsMissingFields(t *testing.T) {
	l := NewLedger([]domain.PurchaseOrder{{PONumber: "PO-1", BaseAmount: dec("10")}}, nil)
	fixed := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	entry, _, err := l.Append(domain.Deduction{PONumber: "PO-1", Amount: dec("5")})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.DeductionID)
	assert.Equal(t, fixed, entry.Timestamp)
	assert.Equal(t, domain.DateOnly(fixed), entry.Date)
}

func TestCheckDeduction(t *testing.T) {
	assert.NoError(t, CheckDeduction(dec("10"), dec("10")))
	assert.ErrorIs(t, CheckDeduction(dec("10"), dec("10.01")), ErrInsufficientBalance)
	assert.ErrorIs(t, CheckDeduction(dec("0"), dec("1")), ErrDepletedPO)
	assert.ErrorIs(t, CheckDeduction(dec("-1"), dec("1")), ErrDepletedPO)
	assert.ErrorIs(t, CheckDeduction(dec("10"), dec("0")), ErrInvalidAmount)
}
