package mapping

import (
	"database/sql"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/SscSPs/cc_reco_app/internal/models"
)

// ToModelVendor converts a domain VendorMasterEntry to a model VendorMaster
func ToModelVendor(d domain.VendorMasterEntry) models.VendorMaster {
	m := models.VendorMaster{
		Prefix:      d.Prefix,
		VendorName:  d.VendorName,
		Category:    string(d.Category),
		Channel:     toNullString(string(d.Channel)),
		CCFeeRate:   d.CCFeeRate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentTermsDays != nil {
		m.PaymentTermsDays = sql.NullInt32{Int32: int32(*d.PaymentTermsDays), Valid: true}
	}
	return m
}

// ToDomainVendor converts a model VendorMaster to a domain VendorMasterEntry
func ToDomainVendor(m models.VendorMaster) domain.VendorMasterEntry {
	d := domain.VendorMasterEntry{
		Prefix:      m.Prefix,
		VendorName:  m.VendorName,
		Category:    domain.Category(m.Category),
		Channel:     domain.Channel(m.Channel.String),
		CCFeeRate:   m.CCFeeRate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentTermsDays.Valid {
		days := int(m.PaymentTermsDays.Int32)
		d.PaymentTermsDays = &days
	}
	return d
}

// ToDomainVendorSlice converts a slice of model VendorMaster rows
func ToDomainVendorSlice(ms []models.VendorMaster) []domain.VendorMasterEntry {
	ds := make([]domain.VendorMasterEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}

// ToDomainMapping converts a model DescriptionMapping to a domain DescriptionMapping
func ToDomainMapping(m models.DescriptionMapping) domain.DescriptionMapping {
	return domain.DescriptionMapping{
		Seq:         m.Seq,
		Description: m.Description,
		Prefix:      m.Prefix,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
