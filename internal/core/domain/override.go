package domain

// ManualOverride pins a reference id to a channel until explicitly changed.
type ManualOverride struct {
	ReferenceID string  `json:"referenceID"`
	Channel     Channel `json:"channel"`
	AuditFields
}
