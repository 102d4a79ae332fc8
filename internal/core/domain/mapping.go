package domain

// DescriptionMapping maps a normalized card description to a vendor prefix.
// A description may map to several prefixes; Seq keeps the storage order used for tie-breaks.
type DescriptionMapping struct {
	Seq         int64  `json:"seq"`
	Description string `json:"description"`
	Prefix      string `json:"prefix"`
	AuditFields
}
