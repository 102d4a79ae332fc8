package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Channel is one of the two fulfillment channels a vendor's items can be assigned to.
type Channel string

const (
	ChannelA Channel = "A"
	ChannelM Channel = "M"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c == ChannelA || c == ChannelM
}

// ParseChannel accepts "A"/"M" in any case, surrounded by whitespace.
func ParseChannel(s string) (Channel, bool) {
	c := Channel(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Category classifies a vendor (and, after resolution, a transaction).
type Category string

const (
	CategoryOnlyA        Category = "ONLY_A"
	CategoryOnlyM        Category = "ONLY_M"
	CategoryCommon       Category = "COMMON"
	CategoryNotAvailable Category = "NOT_AVAILABLE"
	// CategoryUnmapped is never stored in the vendor master; it marks a description with no mapping row.
	CategoryUnmapped Category = "UNMAPPED"
)

// Valid reports whether c may appear on a vendor master row.
func (c Category) Valid() bool {
	switch c {
	case CategoryOnlyA, CategoryOnlyM, CategoryCommon, CategoryNotAvailable:
		return true
	}
	return false
}

// Matchable reports whether transactions with this category take part in PO matching.
func (c Category) Matchable() bool {
	return c == CategoryOnlyA || c == CategoryOnlyM
}

// OnlyCategory returns the single-channel category for ch.
func OnlyCategory(ch Channel) Category {
	if ch == ChannelA {
		return CategoryOnlyA
	}
	return CategoryOnlyM
}

// VendorMasterEntry is one vendor master row. A prefix may have one row per channel.
type VendorMasterEntry struct {
	Prefix           string          `json:"prefix"`
	VendorName       string          `json:"vendorName"`
	Category         Category        `json:"category"`
	Channel          Channel         `json:"channel"`
	PaymentTermsDays *int            `json:"paymentTermsDays"` // Nullable: rows without terms are excluded from resolution
	CCFeeRate        decimal.Decimal `json:"ccFeeRate"`        // 0..1
	AuditFields
}
