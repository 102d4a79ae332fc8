package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/recon"
	"github.com/shopspring/decimal"
)

type purchaseOrderService struct {
	BaseService
	poRepo        portsrepo.PurchaseOrderRepositoryFacade
	deductionRepo portsrepo.DeductionReader
}

func NewPurchaseOrderService(poRepo portsrepo.PurchaseOrderRepositoryFacade, deductionRepo portsrepo.DeductionReader) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{poRepo: poRepo, deductionRepo: deductionRepo}
}

// poBatchLayout names PO import batches that arrive without an id.
const poBatchLayout = "BATCH-20060102-150405"

func (s *purchaseOrderService) ImportPurchaseOrders(ctx context.Context, req dto.CreatePurchaseOrdersRequest, creatorUserID string) (string, int, error) {
	now := time.Now()
	audit := auditFields(creatorUserID, now)
	batchID := strings.TrimSpace(req.BatchID)
	if batchID == "" {
		batchID = now.UTC().Format(poBatchLayout)
	}
	seen := make(map[string]bool, len(req.PurchaseOrders))
	pos := make([]domain.PurchaseOrder, 0, len(req.PurchaseOrders))

	for i, in := range req.PurchaseOrders {
		number := strings.TrimSpace(in.PONumber)
		if number == "" {
			return "", 0, apperrors.NewValidationError(fmt.Sprintf("purchaseOrders[%d]: poNumber is required", i))
		}
		if seen[number] {
			return "", 0, apperrors.NewValidationError(fmt.Sprintf("purchaseOrders[%d]: duplicate poNumber %s", i, number))
		}
		seen[number] = true

		poDate, err := dto.ParseDate(in.PODate)
		if err != nil {
			return "", 0, apperrors.NewValidationError(fmt.Sprintf("purchaseOrders[%d]: invalid poDate %q", i, in.PODate))
		}
		ch, ok := domain.ParseChannel(in.Channel)
		if !ok {
			return "", 0, apperrors.NewValidationError(fmt.Sprintf("purchaseOrders[%d]: unknown channel %q", i, in.Channel))
		}
		prefix, err := NormalizePrefix(in.VendorPrefix)
		if err != nil {
			return "", 0, err
		}
		if !in.BaseAmount.IsPositive() {
			return "", 0, apperrors.NewValidationError(fmt.Sprintf("purchaseOrders[%d]: baseAmount must be positive", i))
		}
		if in.CCFeeRate.IsNegative() || in.CCFeeRate.GreaterThan(decimal.NewFromInt(1)) {
			return "", 0, apperrors.NewValidationError(fmt.Sprintf("purchaseOrders[%d]: ccFeeRate must be between 0 and 1", i))
		}

		pos = append(pos, domain.PurchaseOrder{
			PONumber:      number,
			PODate:        poDate,
			VendorPrefix:  prefix,
			Channel:       ch,
			BaseAmount:    in.BaseAmount,
			CCFeeRate:     in.CCFeeRate,
			ImportBatchID: batchID,
			AuditFields:   audit,
		})
	}

	if err := s.poRepo.SavePurchaseOrders(ctx, pos); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to import purchase orders", slog.String("batch_id", batchID), slog.Int("count", len(pos)))
		}
		return "", 0, fmt.Errorf("failed to import purchase orders in service: %w", err)
	}
	s.LogInfo(ctx, "Purchase orders imported", slog.String("batch_id", batchID), slog.Int("count", len(pos)))
	return batchID, len(pos), nil
}

// GetBalance re-sums the ledger of one PO.
func (s *purchaseOrderService) GetBalance(ctx context.Context, poNumber string) (*domain.POBalance, error) {
	po, err := s.poRepo.FindPurchaseOrderByNumber(ctx, poNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order %s: %w", poNumber, err)
	}
	deductions, err := s.deductionRepo.ListDeductionsByPO(ctx, poNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions for %s: %w", poNumber, err)
	}

	ledger := recon.NewLedger([]domain.PurchaseOrder{*po}, deductions)
	deducted, balance, err := ledger.AvailableBalance(po.PONumber)
	if err != nil {
		return nil, err
	}
	return &domain.POBalance{
		PONumber:      po.PONumber,
		BaseAmount:    po.BaseAmount,
		TotalDeducted: deducted,
		Balance:       balance,
		Deductions:    ledger.Entries(),
	}, nil
}

// RollbackBatch removes one PO import batch.
func (s *purchaseOrderService) RollbackBatch(ctx context.Context, batchID string) (int64, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return 0, apperrors.NewValidationError("batchID is required")
	}
	n, err := s.poRepo.DeletePurchaseOrdersByBatch(ctx, batchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to roll back purchase order batch", slog.String("batch_id", batchID))
		}
		return 0, fmt.Errorf("failed to roll back purchase order batch %s: %w", batchID, err)
	}
	s.LogInfo(ctx, "Purchase order batch rolled back", slog.String("batch_id", batchID), slog.Int64("deleted", n))
	return n, nil
}
