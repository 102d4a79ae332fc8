package mapping

import (
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/SscSPs/cc_reco_app/internal/models"
)

// ToModelCCTransaction converts a domain CCTransaction to a model CCTransaction
func ToModelCCTransaction(d domain.CCTransaction) models.CCTransaction {
	return models.CCTransaction{
		ReferenceID: d.ReferenceID,
		TxnDate:     toNullTime(d.TxnDate),
		Description: d.Description,
		Amount:      d.Amount,
		BatchID:     d.BatchID,
		CardLast4:   d.CardLast4,
		RecoID:      toNullString(d.RecoID),
	}
}

// ToDomainCCTransaction converts a model CCTransaction to a domain CCTransaction
func ToDomainCCTransaction(m models.CCTransaction) domain.CCTransaction {
	return domain.CCTransaction{
		ReferenceID: m.ReferenceID,
		TxnDate:     fromNullTime(m.TxnDate),
		Description: m.Description,
		Amount:      m.Amount,
		BatchID:     m.BatchID,
		CardLast4:   m.CardLast4,
		RecoID:      m.RecoID.String,
	}
}

// ToDomainOverride converts a model ManualOverride to a domain ManualOverride
func ToDomainOverride(m models.ManualOverride) domain.ManualOverride {
	return domain.ManualOverride{
		ReferenceID: m.ReferenceID,
		Channel:     domain.Channel(m.Channel),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
