package recon

import (
	"testing"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func vendor(prefix string, cat domain.Category, ch domain.Channel, terms int, rate string) domain.VendorMasterEntry {
	return domain.VendorMasterEntry{
		Prefix:           prefix,
		VendorName:       prefix + " Inc",
		Category:         cat,
		Channel:          ch,
		PaymentTermsDays: intPtr(terms),
		CCFeeRate:        dec(rate),
	}
}

func mapping(seq int64, desc, prefix string) domain.DescriptionMapping {
	return domain.DescriptionMapping{Seq: seq, Description: desc, Prefix: prefix}
}

func testResolver(overrides OverrideSet) *Resolver {
	vendors := []domain.VendorMasterEntry{
		vendor("ACME", domain.CategoryOnlyA, domain.ChannelA, 10, "0.02"),
		vendor("BOLT", domain.CategoryOnlyM, domain.ChannelM, 0, "0.03"),
		vendor("DUAL", domain.CategoryCommon, domain.ChannelA, 15, "0.01"),
		vendor("DUAL", domain.CategoryCommon, domain.ChannelM, 30, "0.02"),
		{Prefix: "GONE", VendorName: "Gone Ltd", Category: domain.CategoryNotAvailable},
	}
	mappings := []domain.DescriptionMapping{
		mapping(1, "acme supplies", "acme"),
		mapping(2, "BOLT  CO", "BOLT"),
		mapping(3, "dual store", "DUAL"),
		mapping(4, "multi", "GHOST"),
		mapping(5, "multi", "BOLT"),
		mapping(6, "multi", "ACME"),
		mapping(7, "nowhere", "GHOST"),
		mapping(8, "gone shop", "GONE"),
	}
	return NewResolver(vendors, mappings, overrides)
}

func TestResolver_Resolve(t *testing.T) {
	r := testResolver(nil)

	t.Run("unmapped description", func(t *testing.T) {
		res := r.Resolve("R1", "something else")
		assert.Equal(t, domain.CategoryUnmapped, res.Category)
		assert.Empty(t, res.VendorPrefix)
		assert.Nil(t, res.Channel)
	})

	t.Run("single channel vendor", func(t *testing.T) {
		res := r.Resolve("R1", "  Acme   SUPPLIES ")
		assert.Equal(t, domain.CategoryOnlyA, res.Category)
		assert.Equal(t, "ACME", res.VendorPrefix)
		assert.Equal(t, "ACME Inc", res.VendorName)
		require.NotNil(t, res.Channel)
		assert.Equal(t, domain.ChannelA, *res.Channel)
		require.NotNil(t, res.PaymentTermsDays)
		assert.Equal(t, 10, *res.PaymentTermsDays)
		assert.True(t, res.CCFeeRate.Equal(dec("0.02")))
		assert.False(t, res.Ambiguous)
	})

	t.Run("both channels without override is COMMON", func(t *testing.T) {
		res := r.Resolve("R1", "dual store")
		assert.Equal(t, domain.CategoryCommon, res.Category)
		assert.Equal(t, "DUAL", res.VendorPrefix)
		assert.Nil(t, res.Channel)
		assert.Nil(t, res.PaymentTermsDays)
		assert.True(t, res.Ambiguous)
	})

	t.Run("first candidate with a master row wins in storage order", func(t *testing.T) {
		res := r.Resolve("R1", "multi")
		assert.Equal(t, "BOLT", res.VendorPrefix)
		assert.Equal(t, domain.CategoryOnlyM, res.Category)
	})

	t.Run("no master row falls back to first candidate", func(t *testing.T) {
		res := r.Resolve("R1", "nowhere")
		assert.Equal(t, domain.CategoryNotAvailable, res.Category)
		assert.Equal(t, "GHOST", res.VendorPrefix)
		assert.Nil(t, res.Channel)
	})

	t.Run("not available vendor row", func(t *testing.T) {
		res := r.Resolve("R1", "gone shop")
		assert.Equal(t, domain.CategoryNotAvailable, res.Category)
		assert.Equal(t, "Gone Ltd", res.VendorName)
		assert.Nil(t, res.Channel)
	})
}

func TestResolver_Override(t *testing.T) {
	r := testResolver(OverrideSet{"R-M": domain.ChannelM, "R-A": domain.ChannelA, "R-X": domain.ChannelM})

	res := r.Resolve("R-M", "dual store")
	assert.Equal(t, domain.CategoryOnlyM, res.Category)
	require.NotNil(t, res.PaymentTermsDays)
	assert.Equal(t, 30, *res.PaymentTermsDays)
	assert.True(t, res.Overridden)
	assert.True(t, res.Ambiguous)

	res = r.Resolve("R-A", "dual store")
	assert.Equal(t, domain.CategoryOnlyA, res.Category)
	assert.Equal(t, 15, *res.PaymentTermsDays)

	// Override channel has no row for this vendor: normal resolution applies.
	res = r.Resolve("R-X", "acme supplies")
	assert.Equal(t, domain.CategoryOnlyA, res.Category)
	assert.False(t, res.Overridden)

	// Without an override the same description stays COMMON.
	res = r.Resolve("R-other", "dual store")
	assert.Equal(t, domain.CategoryCommon, res.Category)
}

func TestResolver_NotAvailableRowIsNotAChannel(t *testing.T) {
	vendors := []domain.VendorMasterEntry{
		vendor("ACME", domain.CategoryOnlyA, domain.ChannelA, 10, "0.02"),
		{Prefix: "ACME", VendorName: "ACME Inc", Category: domain.CategoryNotAvailable, Channel: domain.ChannelM},
	}
	r := NewResolver(vendors, []domain.DescriptionMapping{mapping(1, "acme", "ACME")}, nil)

	res := r.Resolve("R1", "acme")
	assert.Equal(t, domain.CategoryOnlyA, res.Category)
	assert.False(t, res.Ambiguous)
	require.NotNil(t, res.Channel)
	assert.Equal(t, domain.ChannelA, *res.Channel)

	_, ok := r.ResolveWithChannel("acme", domain.ChannelM)
	assert.False(t, ok)
}

func TestResolver_ResolveWithChannel(t *testing.T) {
	r := testResolver(nil)

	res, ok := r.ResolveWithChannel("DUAL STORE", domain.ChannelM)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryOnlyM, res.Category)

	_, ok = r.ResolveWithChannel("acme supplies", domain.ChannelM)
	assert.False(t, ok)
}

func TestValidVendorRow(t *testing.T) {
	tests := []struct {
		name  string
		row   domain.VendorMasterEntry
		valid bool
	}{
		{"complete row", vendor("A", domain.CategoryOnlyA, domain.ChannelA, 0, "0.02"), true},
		{"missing prefix", vendor(" ", domain.CategoryOnlyA, domain.ChannelA, 0, "0"), false},
		{"missing channel", vendor("A", domain.CategoryOnlyA, "", 0, "0"), false},
		{"fee above one", vendor("A", domain.CategoryOnlyA, domain.ChannelA, 0, "1.5"), false},
		{"negative terms", vendor("A", domain.CategoryOnlyA, domain.ChannelA, -1, "0"), false},
		{"missing terms", domain.VendorMasterEntry{Prefix: "A", Category: domain.CategoryOnlyA, Channel: domain.ChannelA}, false},
		{"unknown category", vendor("A", "WEIRD", domain.ChannelA, 0, "0"), false},
		{"not available needs nothing else", domain.VendorMasterEntry{Prefix: "A", Category: domain.CategoryNotAvailable}, true},
		{"channel-less common marker", domain.VendorMasterEntry{Prefix: "A", Category: domain.CategoryCommon}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validVendorRow(tt.row))
		})
	}
}
