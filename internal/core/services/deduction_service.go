package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/recon"
	"github.com/google/uuid"
)

type deductionService struct {
	BaseService
	deductionRepo portsrepo.DeductionWriter
	now           func() time.Time
}

func NewDeductionService(deductionRepo portsrepo.DeductionWriter) portssvc.DeductionSvcFacade {
	return &deductionService{deductionRepo: deductionRepo, now: time.Now}
}

// ApplyDeductions applies items in request order. Each item is validated against a freshly
// read balance by the repository, so an earlier item in the same request is always visible
// to a later one on the same PO.
func (s *deductionService) ApplyDeductions(ctx context.Context, req dto.ApplyDeductionsRequest, userID string) (*dto.ApplyDeductionsResponse, error) {
	batchID := strings.TrimSpace(req.BatchID)
	if batchID == "" {
		return nil, apperrors.NewValidationError("batchID is required")
	}

	resp := &dto.ApplyDeductionsResponse{
		BatchID:  batchID,
		Outcomes: make([]dto.DeductionOutcome, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		outcome := s.applyOne(ctx, batchID, item)
		if outcome.Applied {
			resp.Applied++
		} else {
			resp.Rejected++
		}
		resp.Outcomes = append(resp.Outcomes, outcome)
	}

	s.LogInfo(ctx, "Deductions processed",
		slog.String("batch_id", batchID),
		slog.String("user_id", userID),
		slog.Int("applied", resp.Applied),
		slog.Int("rejected", resp.Rejected))
	return resp, nil
}

func (s *deductionService) applyOne(ctx context.Context, batchID string, item dto.DeductionItem) dto.DeductionOutcome {
	outcome := dto.DeductionOutcome{
		PONumber: strings.TrimSpace(item.PONumber),
		Amount:   item.Amount,
	}
	if !item.Amount.IsPositive() {
		outcome.ErrorCode = dto.DeductionInvalidAmount
		outcome.Error = recon.ErrInvalidAmount.Error()
		return outcome
	}

	now := s.now().UTC()
	d := domain.Deduction{
		DeductionID: uuid.NewString(),
		PONumber:    outcome.PONumber,
		Amount:      item.Amount,
		BatchID:     batchID,
		Date:        domain.DateOnly(now),
		Reason:      strings.TrimSpace(item.Reason),
		Timestamp:   now,
	}

	balance, err := s.deductionRepo.ApplyDeduction(ctx, d)
	if err != nil {
		outcome.ErrorCode = deductionErrorCode(err)
		outcome.Error = err.Error()
		if outcome.ErrorCode == dto.DeductionInternal {
			s.LogError(ctx, err, "Failed to apply deduction", slog.String("po_number", d.PONumber))
			outcome.Error = "internal error while applying deduction"
		}
		return outcome
	}

	outcome.Applied = true
	outcome.DeductionID = d.DeductionID
	outcome.NewBalance = &balance
	return outcome
}

func deductionErrorCode(err error) string {
	switch {
	case errors.Is(err, recon.ErrInvalidAmount):
		return dto.DeductionInvalidAmount
	case errors.Is(err, recon.ErrDepletedPO):
		return dto.DeductionDepletedPO
	case errors.Is(err, recon.ErrInsufficientBalance):
		return dto.DeductionInsufficientBalance
	case errors.Is(err, recon.ErrUnknownPO):
		return dto.DeductionUnknownPO
	default:
		return dto.DeductionInternal
	}
}
