package exporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testRun() domain.ReconciliationRun {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	ch := domain.ChannelA
	terms := 10
	return domain.ReconciliationRun{
		RecoID:  "RECO-20240315-093005-1234",
		BatchID: "B1",
		Result: domain.ReconciliationResult{
			RecoID: "RECO-20240315-093005-1234",
			Groups: []domain.ReconciliationGroup{{
				TxnDate:            day,
				VendorPrefix:       "ACME",
				VendorName:         "ACME Inc",
				Channel:            domain.ChannelA,
				PaymentTermsDays:   10,
				TotalCCAmount:      decimal.RequireFromString("500"),
				CCTransactionCount: 1,
				TotalPOAmount:      decimal.RequireFromString("450"),
				POCount:            1,
				TotalDeductions:    decimal.Zero,
				TotalCCFeeCharge:   decimal.Zero,
				Flag:               domain.FlagRed,
				ReferenceIDs:       []string{"T1"},
				PONumbers:          []string{"PO-1"},
			}},
			Transactions: []domain.ResolvedTransaction{
				{
					CCTransaction:        domain.CCTransaction{ReferenceID: "T1", TxnDate: &day, Description: "acme", Amount: decimal.RequireFromString("500")},
					Resolution:           domain.Resolution{VendorPrefix: "ACME", Category: domain.CategoryOnlyA, Channel: &ch, PaymentTermsDays: &terms},
					EffectiveReferenceID: "T1",
					Window:               &domain.Window{Start: day.AddDate(0, 0, -15), End: day},
				},
				{
					CCTransaction:        domain.CCTransaction{ReferenceID: "T2", Description: "mystery", Amount: decimal.RequireFromString("5")},
					Resolution:           domain.Resolution{Category: domain.CategoryUnmapped},
					EffectiveReferenceID: "T2",
				},
			},
			PendingConsolidation: []domain.ConsolidationGroup{{
				Description: "dual store", NormalizedDescription: "DUAL STORE", ReferenceIDs: []string{"T3", "T4"},
				TransactionCount: 2, TotalAmount: decimal.RequireFromString("250"),
			}},
			Exclusions: []domain.Exclusion{{Table: "cc_transactions", Key: "T9", Reason: domain.ExclusionMissingTxnDate}},
		},
	}
}

func TestExporter_ExportBytes(t *testing.T) {
	data, err := NewExporter().ExportBytes(testRun())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetGroups, SheetTransactions, SheetPending, SheetExclusions}, f.GetSheetList())

	groups, err := f.GetRows(SheetGroups)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Txn Date", groups[0][0])
	assert.Equal(t, []string{"2024-03-10", "ACME", "ACME Inc", "A", "10", "500", "1", "450", "1", "0", "0", "RED", "T1", "PO-1"}, groups[1])

	txns, err := f.GetRows(SheetTransactions)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "T1", txns[1][0])
	assert.Equal(t, "2024-02-24", txns[1][16])
	assert.Equal(t, "UNMAPPED", txns[2][11])
	assert.Equal(t, "", txns[2][3], "undated rows export an empty date")

	pending, err := f.GetRows(SheetPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "T3, T4", pending[1][2])

	excl, err := f.GetRows(SheetExclusions)
	require.NoError(t, err)
	require.Len(t, excl, 2)
	assert.Equal(t, []string{"cc_transactions", "T9", "MISSING_TXN_DATE"}, excl[1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "RECO-1.xlsx", FileName("RECO-1"))
}
