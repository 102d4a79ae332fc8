package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.CCTransactionRepositoryFacade
}

func NewTransactionService(txnRepo portsrepo.CCTransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

// ImportTransactions stores one batch of parsed card charges. Undated rows are kept;
// reconciliation reports them as exclusions.
func (s *transactionService) ImportTransactions(ctx context.Context, req dto.ImportTransactionsRequest, creatorUserID string) (int, error) {
	batchID := strings.TrimSpace(req.BatchID)
	if batchID == "" {
		return 0, apperrors.NewValidationError("batchID is required")
	}

	seen := make(map[string]bool, len(req.Transactions))
	txns := make([]domain.CCTransaction, 0, len(req.Transactions))
	for i, in := range req.Transactions {
		ref := strings.TrimSpace(in.ReferenceID)
		if ref == "" {
			return 0, apperrors.NewValidationError(fmt.Sprintf("transactions[%d]: referenceID is required", i))
		}
		if seen[ref] {
			return 0, apperrors.NewValidationError(fmt.Sprintf("transactions[%d]: duplicate referenceID %s", i, ref))
		}
		seen[ref] = true

		txnDate, err := dto.ParseDate(in.TxnDate)
		if err != nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("transactions[%d]: invalid txnDate %q", i, in.TxnDate))
		}
		txns = append(txns, domain.CCTransaction{
			ReferenceID: ref,
			TxnDate:     txnDate,
			Description: strings.TrimSpace(in.Description),
			Amount:      in.Amount,
			BatchID:     batchID,
			CardLast4:   strings.TrimSpace(in.CardLast4),
		})
	}

	if err := s.txnRepo.SaveTransactions(ctx, txns, creatorUserID); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to import transactions", slog.String("batch_id", batchID))
		}
		return 0, fmt.Errorf("failed to import transactions in service: %w", err)
	}
	s.LogInfo(ctx, "Transactions imported", slog.String("batch_id", batchID), slog.Int("count", len(txns)))
	return len(txns), nil
}

// RollbackBatch removes an imported batch that no run has claimed.
func (s *transactionService) RollbackBatch(ctx context.Context, batchID string) (int64, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return 0, apperrors.NewValidationError("batchID is required")
	}
	n, err := s.txnRepo.DeleteTransactionsByBatch(ctx, batchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to roll back transaction batch", slog.String("batch_id", batchID))
		}
		return 0, fmt.Errorf("failed to roll back transaction batch %s: %w", batchID, err)
	}
	s.LogInfo(ctx, "Transaction batch rolled back", slog.String("batch_id", batchID), slog.Int64("deleted", n))
	return n, nil
}
