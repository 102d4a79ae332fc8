package recon

import (
	"testing"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		VendorMaster: []domain.VendorMasterEntry{
			vendor("ACME", domain.CategoryOnlyA, domain.ChannelA, 10, "0.02"),
			vendor("DUAL", domain.CategoryCommon, domain.ChannelA, 0, "0"),
			vendor("DUAL", domain.CategoryCommon, domain.ChannelM, 0, "0"),
			{Prefix: "BROKEN", Category: domain.CategoryOnlyM, Channel: domain.ChannelM},
		},
		Mappings: []domain.DescriptionMapping{
			mapping(1, "acme supplies", "ACME"),
			mapping(2, "dual store", "DUAL"),
		},
		PurchaseOrders: []domain.PurchaseOrder{
			po("PO-1", datePtr(2024, 3, 1), "ACME", domain.ChannelA, "1000", "0.02"),
			po("PO-1", datePtr(2024, 3, 2), "ACME", domain.ChannelA, "5", "0"),
			po("PO-M", datePtr(2024, 3, 10), "DUAL", domain.ChannelM, "80", "0"),
			po("PO-NODATE", nil, "ACME", domain.ChannelA, "10", "0"),
		},
		Transactions: []domain.CCTransaction{
			{ReferenceID: "T1", TxnDate: datePtr(2024, 3, 10), Description: "ACME SUPPLIES", Amount: dec("500"), BatchID: "B1", CardLast4: "1234"},
			{ReferenceID: "T1", TxnDate: datePtr(2024, 3, 10), Description: "ACME SUPPLIES", Amount: dec("500"), BatchID: "B1", CardLast4: "1234"},
			{ReferenceID: "T2", TxnDate: datePtr(2024, 3, 10), Description: "dual store", Amount: dec("60"), BatchID: "B1", CardLast4: "1234"},
			{ReferenceID: "T3", TxnDate: datePtr(2024, 3, 11), Description: "Dual Store", Amount: dec("27.50"), BatchID: "B1", CardLast4: "9999"},
			{ReferenceID: "T4", Description: "acme supplies", Amount: dec("5"), BatchID: "B1"},
			{ReferenceID: "T5", TxnDate: datePtr(2024, 3, 10), Description: "mystery", Amount: dec("5"), BatchID: "B1"},
			{ReferenceID: "OTHER", TxnDate: datePtr(2024, 3, 10), Description: "acme supplies", Amount: dec("5"), BatchID: "B2"},
		},
		Deductions: []domain.Deduction{{PONumber: "PO-1", Amount: dec("400")}},
	}
}

func testEngine() *Engine {
	e := NewEngine(DefaultConfig())
	e.now = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC) }
	return e
}

func TestEngine_Reconcile(t *testing.T) {
	res, err := testEngine().Reconcile("B1", testSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "RECO-20240315-093005-1234", res.RecoID)
	assert.Equal(t, "B1", res.BatchID)
	assert.Equal(t, DefaultGraceDays, res.GraceDays)

	assert.ElementsMatch(t, []domain.Exclusion{
		{Table: "vendor_master", Key: "BROKEN", Reason: domain.ExclusionInvalidVendorRow},
		{Table: "purchase_orders", Key: "PO-1", Reason: domain.ExclusionDuplicateReference},
		{Table: "purchase_orders", Key: "PO-NODATE", Reason: domain.ExclusionMissingPODate},
		{Table: "cc_transactions", Key: "T1", Reason: domain.ExclusionDuplicateReference},
		{Table: "cc_transactions", Key: "T4", Reason: domain.ExclusionMissingTxnDate},
	}, res.Exclusions)

	// T1, merged T2+T3, T4, T5
	require.Len(t, res.Transactions, 4)
	counts := res.CountByCategory()
	assert.Equal(t, 2, counts[domain.CategoryOnlyA])
	assert.Equal(t, 1, counts[domain.CategoryOnlyM])
	assert.Equal(t, 1, counts[domain.CategoryUnmapped])

	require.Len(t, res.AppliedConsolidation, 1)
	assert.True(t, res.AppliedConsolidation[0].AutoAssigned)
	assert.Len(t, res.NewOverrides, 2)
	assert.Empty(t, res.PendingConsolidation)

	require.Len(t, res.Groups, 2)
	acme := res.Groups[0]
	assert.Equal(t, "ACME", acme.VendorPrefix)
	assert.Equal(t, "ACME Inc", acme.VendorName)
	assert.True(t, acme.TotalCCAmount.Equal(dec("500")))
	assert.True(t, acme.TotalPOAmount.Equal(dec("612")), acme.TotalPOAmount.String())
	assert.Equal(t, domain.FlagGreen, acme.Flag)

	dual := res.Groups[1]
	assert.Equal(t, "DUAL", dual.VendorPrefix)
	assert.Equal(t, domain.ChannelM, dual.Channel)
	assert.Equal(t, []string{"T2"}, dual.ReferenceIDs)
	assert.True(t, dual.TotalCCAmount.Equal(dec("87.50")))
	assert.Equal(t, domain.FlagRed, dual.Flag)
}

func TestEngine_MissingTable(t *testing.T) {
	snap := testSnapshot()
	snap.Mappings = nil
	_, err := testEngine().Reconcile("B1", snap)
	assert.ErrorIs(t, err, ErrMissingTable)
	assert.Contains(t, err.Error(), "description_mappings")

	snap = testSnapshot()
	snap.Overrides = nil
	snap.Deductions = nil
	_, err = testEngine().Reconcile("B1", snap)
	assert.NoError(t, err, "overrides and deductions are optional")

	snap = testSnapshot()
	snap.PurchaseOrders = []domain.PurchaseOrder{}
	_, err = testEngine().Reconcile("B1", snap)
	assert.NoError(t, err, "an empty table is present")
}

func TestEngine_InvalidGrace(t *testing.T) {
	_, err := NewEngine(Config{GraceDays: -1}).Reconcile("B1", testSnapshot())
	assert.ErrorIs(t, err, ErrInvalidWindowInput)
}

func TestEngine_RecomputationIsStable(t *testing.T) {
	snap := testSnapshot()
	first, err := testEngine().Reconcile("B1", snap)
	require.NoError(t, err)

	snap.Overrides = append(snap.Overrides, first.NewOverrides...)
	second, err := testEngine().Reconcile("B1", snap)
	require.NoError(t, err)

	assert.Empty(t, second.NewOverrides)
	assert.Equal(t, len(first.Groups), len(second.Groups))
	for i := range first.Groups {
		assert.True(t, first.Groups[i].TotalCCAmount.Equal(second.Groups[i].TotalCCAmount))
		assert.True(t, first.Groups[i].TotalPOAmount.Equal(second.Groups[i].TotalPOAmount))
		assert.Equal(t, first.Groups[i].Flag, second.Groups[i].Flag)
	}
}

func TestNewRecoID(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name  string
		cards []string
		want  string
	}{
		{"no cards", nil, "RECO-20240102-030405-0000"},
		{"most frequent card", []string{"1111", "2222", "2222"}, "RECO-20240102-030405-2222"},
		{"tie goes to smallest", []string{"2222", "1111"}, "RECO-20240102-030405-1111"},
		{"long numbers are cut to last four", []string{"4111111111115678"}, "RECO-20240102-030405-5678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txns []domain.CCTransaction
			for _, c := range tt.cards {
				txns = append(txns, domain.CCTransaction{CardLast4: c})
			}
			assert.Equal(t, tt.want, NewRecoID(now, txns))
		})
	}
}
