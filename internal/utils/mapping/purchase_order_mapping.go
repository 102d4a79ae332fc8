package mapping

import (
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/SscSPs/cc_reco_app/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PONumber:      d.PONumber,
		PODate:        toNullTime(d.PODate),
		VendorPrefix:  d.VendorPrefix,
		Channel:       string(d.Channel),
		BaseAmount:    d.BaseAmount,
		CCFeeRate:     d.CCFeeRate,
		ImportBatchID: d.ImportBatchID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PONumber:      m.PONumber,
		PODate:        fromNullTime(m.PODate),
		VendorPrefix:  m.VendorPrefix,
		Channel:       domain.Channel(m.Channel),
		BaseAmount:    m.BaseAmount,
		CCFeeRate:     m.CCFeeRate,
		ImportBatchID: m.ImportBatchID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDeduction converts a model Deduction to a domain Deduction
func ToDomainDeduction(m models.Deduction) domain.Deduction {
	d := domain.Deduction{
		DeductionID: m.DeductionID,
		PONumber:    m.PONumber,
		Amount:      m.Amount,
		BatchID:     m.BatchID,
		Reason:      m.Reason,
	}
	if m.DeductionDate.Valid {
		d.Date = m.DeductionDate.Time.UTC()
	}
	if m.CreatedAt.Valid {
		d.Timestamp = m.CreatedAt.Time.UTC()
	}
	return d
}
