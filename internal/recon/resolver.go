package recon

import (
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
)

// OverrideSet is the in-run view of the override store: reference id -> channel.
type OverrideSet map[string]domain.Channel

// NewOverrideSet indexes override rows. Later rows win for a repeated reference id.
func NewOverrideSet(rows []domain.ManualOverride) OverrideSet {
	set := make(OverrideSet, len(rows))
	for _, o := range rows {
		if o.Channel.Valid() && o.ReferenceID != "" {
			set[o.ReferenceID] = o.Channel
		}
	}
	return set
}

// Resolver maps transaction descriptions to vendors. It is a pure function of the tables it was
// built from; build a new one for every recomputation.
type Resolver struct {
	candidates map[string][]string                   // normalized description -> prefixes in storage order
	vendors    map[string][]domain.VendorMasterEntry // normalized prefix -> rows in storage order
	overrides  OverrideSet
}

// NewResolver indexes the mapping and vendor tables. Mapping rows must already be in storage
// order; vendor rows failing validVendorRow are expected to have been filtered by the caller.
func NewResolver(vendorMaster []domain.VendorMasterEntry, mappings []domain.DescriptionMapping, overrides OverrideSet) *Resolver {
	r := &Resolver{
		candidates: make(map[string][]string),
		vendors:    make(map[string][]domain.VendorMasterEntry),
		overrides:  overrides,
	}
	if r.overrides == nil {
		r.overrides = OverrideSet{}
	}

	for _, m := range mappings {
		desc := NormalizeKey(m.Description)
		prefix := NormalizeKey(m.Prefix)
		if desc == "" || prefix == "" || containsString(r.candidates[desc], prefix) {
			continue
		}
		r.candidates[desc] = append(r.candidates[desc], prefix)
	}
	for _, v := range vendorMaster {
		key := NormalizeKey(v.Prefix)
		r.vendors[key] = append(r.vendors[key], v)
	}
	return r
}

// Candidates returns the ordered candidate prefixes for a description.
func (r *Resolver) Candidates(description string) []string {
	return r.candidates[NormalizeKey(description)]
}

// VendorName returns the first known name for a prefix, or "".
func (r *Resolver) VendorName(prefix string) string {
	for _, v := range r.vendors[NormalizeKey(prefix)] {
		if v.VendorName != "" {
			return v.VendorName
		}
	}
	return ""
}

// Resolve assigns a vendor to one transaction.
func (r *Resolver) Resolve(referenceID, description string) domain.Resolution {
	cands := r.Candidates(description)
	if len(cands) == 0 {
		return domain.Resolution{Category: domain.CategoryUnmapped}
	}

	if ch, ok := r.overrides[referenceID]; ok {
		if res, found := r.resolveForChannel(cands, ch); found {
			res.Overridden = true
			return res
		}
	}

	for _, prefix := range cands {
		rows := r.vendors[prefix]
		if len(rows) == 0 {
			continue
		}
		if isAmbiguous(rows) {
			return domain.Resolution{
				VendorPrefix: prefix,
				VendorName:   r.VendorName(prefix),
				Category:     domain.CategoryCommon,
				Ambiguous:    true,
			}
		}
		return fromEntry(prefix, primaryRow(rows))
	}

	return domain.Resolution{
		VendorPrefix: cands[0],
		VendorName:   r.VendorName(cands[0]),
		Category:     domain.CategoryNotAvailable,
	}
}

// ResolveWithChannel re-resolves a description for a decided channel.
// The result category is ONLY_<channel> when a master row exists for that channel.
func (r *Resolver) ResolveWithChannel(description string, ch domain.Channel) (domain.Resolution, bool) {
	return r.resolveForChannel(r.Candidates(description), ch)
}

func (r *Resolver) resolveForChannel(cands []string, ch domain.Channel) (domain.Resolution, bool) {
	for _, prefix := range cands {
		rows := r.vendors[prefix]
		for _, row := range rows {
			if row.Channel == ch && row.Category != domain.CategoryNotAvailable {
				res := fromEntry(prefix, row)
				res.Ambiguous = isAmbiguous(rows)
				return res, true
			}
		}
	}
	return domain.Resolution{}, false
}

// primaryRow prefers the first row carrying a channel.
func primaryRow(rows []domain.VendorMasterEntry) domain.VendorMasterEntry {
	for _, row := range rows {
		if row.Category != domain.CategoryNotAvailable && row.Channel.Valid() {
			return row
		}
	}
	return rows[0]
}

func fromEntry(prefix string, e domain.VendorMasterEntry) domain.Resolution {
	category := domain.CategoryNotAvailable
	if e.Category != domain.CategoryNotAvailable && e.Channel.Valid() {
		category = domain.OnlyCategory(e.Channel)
	}
	ch := e.Channel
	res := domain.Resolution{
		VendorPrefix: prefix,
		VendorName:   e.VendorName,
		Category:     category,
		Channel:      &ch,
		CCFeeRate:    e.CCFeeRate,
	}
	if e.PaymentTermsDays != nil {
		days := *e.PaymentTermsDays
		res.PaymentTermsDays = &days
	}
	if category == domain.CategoryNotAvailable {
		res.Channel = nil
		res.PaymentTermsDays = nil
	}
	return res
}

// isAmbiguous reports whether a prefix needs a channel decision: usable rows for both
// channels, or a row explicitly categorized COMMON. NOT_AVAILABLE rows offer no channel.
func isAmbiguous(rows []domain.VendorMasterEntry) bool {
	seen := make(map[domain.Channel]bool, 2)
	for _, row := range rows {
		if row.Category == domain.CategoryNotAvailable {
			continue
		}
		if row.Category == domain.CategoryCommon {
			return true
		}
		if row.Channel.Valid() {
			seen[row.Channel] = true
		}
	}
	return len(seen) > 1
}

// validVendorRow reports whether a vendor master row carries every required field.
func validVendorRow(v domain.VendorMasterEntry) bool {
	if NormalizeKey(v.Prefix) == "" || !v.Category.Valid() {
		return false
	}
	if v.Category == domain.CategoryNotAvailable {
		return true
	}
	// A channel-less COMMON row only marks the prefix as ambiguous.
	if v.Category == domain.CategoryCommon && v.Channel == "" {
		return true
	}
	if !v.Channel.Valid() || v.PaymentTermsDays == nil || *v.PaymentTermsDays < 0 {
		return false
	}
	return !v.CCFeeRate.IsNegative() && v.CCFeeRate.LessThanOrEqual(decimal1)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
