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
	"github.com/SscSPs/cc_reco_app/internal/exporter"
	"github.com/SscSPs/cc_reco_app/internal/recon"
	"github.com/shopspring/decimal"
)

type reconciliationService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	cfg      recon.Config
	mappings portssvc.MappingSvcFacade
	exporter *exporter.Exporter
}

func NewReconciliationService(repos portsrepo.RepositoryProvider, cfg recon.Config) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		repos:    repos,
		cfg:      cfg,
		mappings: NewMappingService(repos.MappingRepo, repos.VendorRepo),
		exporter: exporter.NewExporter(),
	}
}

// RunReconciliation reconciles a batch and stores the run. A batch already claimed by a
// run returns that run unchanged with created=false.
func (s *reconciliationService) RunReconciliation(ctx context.Context, req dto.RunReconciliationRequest, userID string) (*domain.ReconciliationRun, bool, error) {
	batchID := strings.TrimSpace(req.BatchID)
	if batchID == "" {
		return nil, false, apperrors.NewValidationError("batchID is required")
	}
	cfg := s.cfg
	if req.GraceDays != nil {
		if *req.GraceDays < 0 {
			return nil, false, apperrors.NewValidationError("graceDays must not be negative")
		}
		cfg.GraceDays = *req.GraceDays
	}

	snap, err := s.loadSnapshot(ctx, batchID)
	if err != nil {
		return nil, false, err
	}
	if len(snap.Transactions) == 0 {
		return nil, false, apperrors.NewNotFoundError(fmt.Sprintf("no transactions for batch %s", batchID))
	}

	existing, err := s.claimedRun(ctx, snap.Transactions)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		s.LogInfo(ctx, "Batch already reconciled", slog.String("reco_id", existing.RecoID), slog.String("batch_id", batchID))
		return existing, false, nil
	}

	result, err := recon.NewEngine(cfg).Reconcile(batchID, snap)
	if err != nil {
		s.LogError(ctx, err, "Reconciliation failed", slog.String("batch_id", batchID))
		return nil, false, fmt.Errorf("failed to reconcile batch %s: %w", batchID, err)
	}

	now := time.Now()
	run := domain.ReconciliationRun{
		RecoID:      result.RecoID,
		BatchID:     batchID,
		GraceDays:   cfg.GraceDays,
		Result:      result,
		AuditFields: auditFields(userID, now),
	}
	if err := s.persist(ctx, &run, snap, userID, now, true); err != nil {
		return nil, false, err
	}

	s.LogInfo(ctx, "Reconciliation run saved",
		slog.String("reco_id", run.RecoID),
		slog.String("batch_id", batchID),
		slog.Int("groups", len(result.Groups)),
		slog.Int("pending", len(result.PendingConsolidation)),
		slog.Int("exclusions", len(result.Exclusions)))
	return &run, true, nil
}

// claimedRun returns the run that owns any of txns, or nil when none is claimed.
// A reco_id left behind by a vanished run is ignored.
func (s *reconciliationService) claimedRun(ctx context.Context, txns []domain.CCTransaction) (*domain.ReconciliationRun, error) {
	for _, t := range txns {
		if t.RecoID == "" {
			continue
		}
		run, err := s.repos.RunRepo.FindRunByID(ctx, t.RecoID)
		if err == nil {
			return run, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load run %s: %w", t.RecoID, err)
		}
		s.LogWarn(ctx, "Transaction claimed by a missing run", slog.String("reco_id", t.RecoID), slog.String("reference_id", t.ReferenceID))
	}
	return nil, nil
}

func (s *reconciliationService) GetRun(ctx context.Context, recoID string) (*domain.ReconciliationRun, error) {
	run, err := s.repos.RunRepo.FindRunByID(ctx, recoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", recoID, err)
	}
	return run, nil
}

func (s *reconciliationService) RollbackRun(ctx context.Context, recoID string) error {
	if err := s.repos.RunRepo.DeleteRun(ctx, recoID); err != nil {
		return fmt.Errorf("failed to roll back run %s: %w", recoID, err)
	}
	s.LogInfo(ctx, "Reconciliation run rolled back", slog.String("reco_id", recoID))
	return nil
}

func (s *reconciliationService) ExportRun(ctx context.Context, recoID string) ([]byte, error) {
	run, err := s.GetRun(ctx, recoID)
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportBytes(*run)
	if err != nil {
		s.LogError(ctx, err, "Failed to export run", slog.String("reco_id", recoID))
		return nil, fmt.Errorf("failed to export run %s: %w", recoID, err)
	}
	return data, nil
}

// VendorDetail drills into one vendor of a run. Matched POs are read from the current table;
// a PO rolled back since the run is left out.
func (s *reconciliationService) VendorDetail(ctx context.Context, recoID, prefix string) (*domain.VendorDetail, error) {
	key := recon.NormalizeKey(prefix)
	if key == "" {
		return nil, apperrors.NewValidationError("vendor prefix is required")
	}
	run, err := s.GetRun(ctx, recoID)
	if err != nil {
		return nil, err
	}

	detail := &domain.VendorDetail{
		RecoID:         run.RecoID,
		VendorPrefix:   key,
		Groups:         []domain.ReconciliationGroup{},
		PurchaseOrders: []domain.MatchedPO{},
		Transactions:   []domain.ResolvedTransaction{},
		TotalCCAmount:  decimal.Zero,
		TotalPOAmount:  decimal.Zero,
	}
	for _, t := range run.Result.Transactions {
		if recon.NormalizeKey(t.VendorPrefix) != key {
			continue
		}
		detail.Transactions = append(detail.Transactions, t)
		if detail.VendorName == "" {
			detail.VendorName = t.VendorName
		}
	}

	seen := make(map[string]bool)
	for _, g := range run.Result.Groups {
		if recon.NormalizeKey(g.VendorPrefix) != key {
			continue
		}
		detail.Groups = append(detail.Groups, g)
		detail.TotalCCAmount = detail.TotalCCAmount.Add(g.TotalCCAmount)
		detail.TotalPOAmount = detail.TotalPOAmount.Add(g.TotalPOAmount)
		if detail.VendorName == "" {
			detail.VendorName = g.VendorName
		}

		window, err := recon.ComputeWindow(g.TxnDate, g.PaymentTermsDays, run.GraceDays)
		if err != nil {
			return nil, fmt.Errorf("failed to rebuild window for %s: %w", g.VendorPrefix, err)
		}
		for _, number := range g.PONumbers {
			if seen[number] {
				continue
			}
			seen[number] = true
			po, err := s.repos.PurchaseOrderRepo.FindPurchaseOrderByNumber(ctx, number)
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Matched purchase order no longer exists", slog.String("reco_id", recoID), slog.String("po_number", number))
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to load purchase order %s: %w", number, err)
			}
			detail.PurchaseOrders = append(detail.PurchaseOrders, domain.MatchedPO{PurchaseOrder: *po, TxnDate: g.TxnDate, Window: window})
		}
	}

	if len(detail.Groups) == 0 && len(detail.Transactions) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("vendor %s has no rows in run %s", key, recoID))
	}
	return detail, nil
}

// AssignChannel pins every charge of a pending group to the chosen channel. The overrides
// are durable, so later runs over the same reference ids resolve the same way.
func (s *reconciliationService) AssignChannel(ctx context.Context, recoID string, req dto.AssignChannelRequest, userID string) (*domain.ReconciliationRun, error) {
	ch, ok := domain.ParseChannel(req.Channel)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown channel %q", req.Channel))
	}
	run, err := s.GetRun(ctx, recoID)
	if err != nil {
		return nil, err
	}

	key := recon.NormalizeKey(req.Description)
	var group *domain.ConsolidationGroup
	for i := range run.Result.PendingConsolidation {
		if run.Result.PendingConsolidation[i].NormalizedDescription == key {
			group = &run.Result.PendingConsolidation[i]
			break
		}
	}
	if group == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no pending consolidation group for %q", req.Description))
	}

	prefix := vendorPrefixOf(run.Result, group.ReferenceIDs)
	rows, err := s.repos.VendorRepo.FindVendorsByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vendor %s: %w", prefix, err)
	}
	if !hasChannel(rows, ch) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("vendor %s has no channel %s row", prefix, ch))
	}

	now := time.Now()
	overrides := make([]domain.ManualOverride, 0, len(group.ReferenceIDs))
	for _, ref := range group.ReferenceIDs {
		overrides = append(overrides, domain.ManualOverride{ReferenceID: ref, Channel: ch, AuditFields: auditFields(userID, now)})
	}
	if err := s.repos.OverrideRepo.SaveOverrides(ctx, overrides); err != nil {
		s.LogError(ctx, err, "Failed to save channel assignment", slog.String("reco_id", recoID))
		return nil, fmt.Errorf("failed to save overrides: %w", err)
	}
	s.LogInfo(ctx, "Channel assigned", slog.String("reco_id", recoID), slog.String("description", key), slog.String("channel", string(ch)), slog.Int("references", len(overrides)))

	return s.recompute(ctx, run, userID)
}

// AssignUnmapped maps an unmapped description of the run to a vendor.
func (s *reconciliationService) AssignUnmapped(ctx context.Context, recoID string, req dto.AssignUnmappedRequest, userID string) (*domain.ReconciliationRun, error) {
	run, err := s.GetRun(ctx, recoID)
	if err != nil {
		return nil, err
	}

	key := recon.NormalizeKey(req.Description)
	found := false
	for _, t := range run.Result.Transactions {
		if t.Category == domain.CategoryUnmapped && recon.NormalizeKey(t.Description) == key {
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no unmapped transactions for %q", req.Description))
	}

	if _, err := s.mappings.AssignVendor(ctx, req.Description, req.Prefix, userID); err != nil {
		return nil, err
	}
	return s.recompute(ctx, run, userID)
}

// recompute rebuilds a run from the current tables, keeping its id and grace.
func (s *reconciliationService) recompute(ctx context.Context, run *domain.ReconciliationRun, userID string) (*domain.ReconciliationRun, error) {
	snap, err := s.loadSnapshot(ctx, run.BatchID)
	if err != nil {
		return nil, err
	}
	cfg := s.cfg
	cfg.GraceDays = run.GraceDays

	result, err := recon.NewEngine(cfg).Reconcile(run.BatchID, snap)
	if err != nil {
		s.LogError(ctx, err, "Recomputation failed", slog.String("reco_id", run.RecoID))
		return nil, fmt.Errorf("failed to recompute run %s: %w", run.RecoID, err)
	}
	result.RecoID = run.RecoID

	now := time.Now()
	updated := *run
	updated.Result = result
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	if err := s.persist(ctx, &updated, snap, userID, now, false); err != nil {
		return nil, err
	}
	return &updated, nil
}

// persist stores the run's new overrides, then inserts or updates the run, claiming the batch.
func (s *reconciliationService) persist(ctx context.Context, run *domain.ReconciliationRun, snap domain.Snapshot, userID string, now time.Time, create bool) error {
	if len(run.Result.NewOverrides) > 0 {
		for i := range run.Result.NewOverrides {
			run.Result.NewOverrides[i].AuditFields = auditFields(userID, now)
		}
		if err := s.repos.OverrideRepo.SaveOverrides(ctx, run.Result.NewOverrides); err != nil {
			s.LogError(ctx, err, "Failed to save consolidation overrides", slog.String("reco_id", run.RecoID))
			return fmt.Errorf("failed to save overrides for run %s: %w", run.RecoID, err)
		}
	}

	refs := make([]string, 0, len(snap.Transactions))
	for _, t := range snap.Transactions {
		refs = append(refs, t.ReferenceID)
	}
	var err error
	if create {
		err = s.repos.RunRepo.CreateRun(ctx, *run, refs)
	} else {
		err = s.repos.RunRepo.UpdateRun(ctx, *run, refs)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save reconciliation run", slog.String("reco_id", run.RecoID))
		return fmt.Errorf("failed to save run %s: %w", run.RecoID, err)
	}
	return nil
}

// loadSnapshot reads every input table. Stored tables always exist, so empty results
// are normalized to present-but-empty.
func (s *reconciliationService) loadSnapshot(ctx context.Context, batchID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error

	if snap.VendorMaster, err = s.repos.VendorRepo.ListVendors(ctx); err != nil {
		return snap, fmt.Errorf("failed to load vendor master: %w", err)
	}
	if snap.Mappings, err = s.repos.MappingRepo.ListMappings(ctx); err != nil {
		return snap, fmt.Errorf("failed to load description mappings: %w", err)
	}
	if snap.PurchaseOrders, err = s.repos.PurchaseOrderRepo.ListPurchaseOrders(ctx); err != nil {
		return snap, fmt.Errorf("failed to load purchase orders: %w", err)
	}
	if snap.Transactions, err = s.repos.TransactionRepo.ListTransactionsByBatch(ctx, batchID); err != nil {
		return snap, fmt.Errorf("failed to load transactions for batch %s: %w", batchID, err)
	}
	if snap.Overrides, err = s.repos.OverrideRepo.ListOverrides(ctx); err != nil {
		return snap, fmt.Errorf("failed to load overrides: %w", err)
	}
	if snap.Deductions, err = s.repos.DeductionRepo.ListDeductions(ctx); err != nil {
		return snap, fmt.Errorf("failed to load deductions: %w", err)
	}

	if snap.VendorMaster == nil {
		snap.VendorMaster = []domain.VendorMasterEntry{}
	}
	if snap.Mappings == nil {
		snap.Mappings = []domain.DescriptionMapping{}
	}
	if snap.PurchaseOrders == nil {
		snap.PurchaseOrders = []domain.PurchaseOrder{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []domain.CCTransaction{}
	}
	return snap, nil
}

func vendorPrefixOf(result domain.ReconciliationResult, refs []string) string {
	for _, t := range result.Transactions {
		for _, ref := range refs {
			if t.ReferenceID == ref || t.EffectiveReferenceID == ref {
				return t.VendorPrefix
			}
		}
	}
	return ""
}

func hasChannel(rows []domain.VendorMasterEntry, ch domain.Channel) bool {
	for _, row := range rows {
		if row.Channel == ch && row.Category != domain.CategoryNotAvailable {
			return true
		}
	}
	return false
}
