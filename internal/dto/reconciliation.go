package dto

import (
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunReconciliationRequest starts a reconciliation for one CC batch.
type RunReconciliationRequest struct {
	BatchID   string `json:"batchID" binding:"required"`
	GraceDays *int   `json:"graceDays" binding:"omitempty,min=0,max=365"`
}

// AssignChannelRequest resolves a pending consolidation group.
type AssignChannelRequest struct {
	Description string `json:"description" binding:"required"`
	Channel     string `json:"channel" binding:"required,channel"`
}

// AssignUnmappedRequest maps an unmapped description to a vendor prefix.
type AssignUnmappedRequest struct {
	Description string `json:"description" binding:"required"`
	Prefix      string `json:"prefix" binding:"required"`
}

// RunSummary condenses a result for list and header views.
type RunSummary struct {
	TransactionCount   int                     `json:"transactionCount"`
	CountByCategory    map[domain.Category]int `json:"countByCategory"`
	GroupCount         int                     `json:"groupCount"`
	RedGroups          int                     `json:"redGroups"`
	GreenGroups        int                     `json:"greenGroups"`
	PendingGroups      int                     `json:"pendingGroups"`
	ExcludedRows       int                     `json:"excludedRows"`
	TotalCCAmount      decimal.Decimal         `json:"totalCCAmount"`
	TotalMatchedAmount decimal.Decimal         `json:"totalMatchedAmount"`
}

// ReconciliationRunResponse defines the data returned for a run.
type ReconciliationRunResponse struct {
	RecoID        string                      `json:"recoID"`
	BatchID       string                      `json:"batchID"`
	GraceDays     int                         `json:"graceDays"`
	Summary       RunSummary                  `json:"summary"`
	Result        domain.ReconciliationResult `json:"result"`
	CreatedAt     time.Time                   `json:"createdAt"`
	CreatedBy     string                      `json:"createdBy"`
	LastUpdatedAt time.Time                   `json:"lastUpdatedAt"`
}

// Summarize builds the header figures of a result.
func Summarize(r domain.ReconciliationResult) RunSummary {
	s := RunSummary{
		TransactionCount:   len(r.Transactions),
		CountByCategory:    r.CountByCategory(),
		GroupCount:         len(r.Groups),
		PendingGroups:      len(r.PendingConsolidation),
		ExcludedRows:       len(r.Exclusions),
		TotalCCAmount:      decimal.Zero,
		TotalMatchedAmount: decimal.Zero,
	}
	for _, g := range r.Groups {
		if g.Flag == domain.FlagRed {
			s.RedGroups++
		} else {
			s.GreenGroups++
		}
		s.TotalCCAmount = s.TotalCCAmount.Add(g.TotalCCAmount)
		s.TotalMatchedAmount = s.TotalMatchedAmount.Add(g.TotalPOAmount)
	}
	return s
}

func ToReconciliationRunResponse(run *domain.ReconciliationRun) ReconciliationRunResponse {
	return ReconciliationRunResponse{
		RecoID:        run.RecoID,
		BatchID:       run.BatchID,
		GraceDays:     run.GraceDays,
		Summary:       Summarize(run.Result),
		Result:        run.Result,
		CreatedAt:     run.CreatedAt,
		CreatedBy:     run.CreatedBy,
		LastUpdatedAt: run.LastUpdatedAt,
	}
}
