package recon

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Config is the recomputation context passed into every run.
type Config struct {
	GraceDays           int
	AutoAssignThreshold decimal.Decimal
	AutoAssignChannel   domain.Channel
}

// DefaultConfig returns the standard grace and auto-assignment settings.
func DefaultConfig() Config {
	return Config{
		GraceDays:           DefaultGraceDays,
		AutoAssignThreshold: DefaultAutoAssignThreshold,
		AutoAssignChannel:   DefaultAutoAssignChannel,
	}
}

// Engine runs full reconciliations over a snapshot. It keeps no state between runs.
type Engine struct {
	cfg Config
	now func() time.Time
}

func NewEngine(cfg Config) *Engine {
	if !cfg.AutoAssignChannel.Valid() {
		cfg.AutoAssignChannel = DefaultAutoAssignChannel
	}
	return &Engine{cfg: cfg, now: time.Now}
}

// Reconcile recomputes the whole result for one batch. An empty batchID reconciles every
// transaction in the snapshot. Only a missing required table or an invalid config fails the run;
// bad rows are excluded and reported.
func (e *Engine) Reconcile(batchID string, snap domain.Snapshot) (domain.ReconciliationResult, error) {
	if err := requireTables(snap); err != nil {
		return domain.ReconciliationResult{}, err
	}
	if e.cfg.GraceDays < 0 {
		return domain.ReconciliationResult{}, fmt.Errorf("%w: grace %d days", ErrInvalidWindowInput, e.cfg.GraceDays)
	}

	result := domain.ReconciliationResult{
		BatchID:   batchID,
		GraceDays: e.cfg.GraceDays,
	}

	vendors := make([]domain.VendorMasterEntry, 0, len(snap.VendorMaster))
	for _, v := range snap.VendorMaster {
		if !validVendorRow(v) {
			result.Exclusions = append(result.Exclusions, domain.Exclusion{Table: "vendor_master", Key: v.Prefix, Reason: domain.ExclusionInvalidVendorRow})
			continue
		}
		vendors = append(vendors, v)
	}

	pos := make([]domain.PurchaseOrder, 0, len(snap.PurchaseOrders))
	seenPO := make(map[string]bool, len(snap.PurchaseOrders))
	for _, po := range snap.PurchaseOrders {
		switch {
		case seenPO[po.PONumber]:
			result.Exclusions = append(result.Exclusions, domain.Exclusion{Table: "purchase_orders", Key: po.PONumber, Reason: domain.ExclusionDuplicateReference})
			continue
		case po.PODate == nil:
			result.Exclusions = append(result.Exclusions, domain.Exclusion{Table: "purchase_orders", Key: po.PONumber, Reason: domain.ExclusionMissingPODate})
		}
		seenPO[po.PONumber] = true
		pos = append(pos, po)
	}

	overrides := NewOverrideSet(snap.Overrides)
	resolver := NewResolver(vendors, snap.Mappings, overrides)

	var batch []domain.CCTransaction
	var resolved []domain.ResolvedTransaction
	seenRef := make(map[string]bool, len(snap.Transactions))
	for _, t := range snap.Transactions {
		if batchID != "" && t.BatchID != batchID {
			continue
		}
		if seenRef[t.ReferenceID] {
			result.Exclusions = append(result.Exclusions, domain.Exclusion{Table: "cc_transactions", Key: t.ReferenceID, Reason: domain.ExclusionDuplicateReference})
			continue
		}
		seenRef[t.ReferenceID] = true
		if t.TxnDate == nil {
			result.Exclusions = append(result.Exclusions, domain.Exclusion{Table: "cc_transactions", Key: t.ReferenceID, Reason: domain.ExclusionMissingTxnDate})
		}
		batch = append(batch, t)
		resolved = append(resolved, domain.ResolvedTransaction{
			CCTransaction:        t,
			Resolution:           resolver.Resolve(t.ReferenceID, t.Description),
			EffectiveReferenceID: t.ReferenceID,
		})
	}

	cons := NewConsolidator(resolver, overrides, e.cfg.AutoAssignThreshold, e.cfg.AutoAssignChannel).Apply(resolved)
	result.PendingConsolidation = cons.Pending
	result.AppliedConsolidation = cons.Applied
	result.NewOverrides = cons.NewOverrides

	ledger := NewLedger(pos, snap.Deductions)
	groups, excluded := NewMatcher(pos, ledger, e.cfg.GraceDays).Match(cons.Transactions)
	result.Groups = groups
	result.Transactions = cons.Transactions
	result.Exclusions = append(result.Exclusions, excluded...)

	result.RecoID = NewRecoID(e.now(), batch)
	return result, nil
}

func requireTables(snap domain.Snapshot) error {
	var missing []string
	if snap.VendorMaster == nil {
		missing = append(missing, "vendor_master")
	}
	if snap.Mappings == nil {
		missing = append(missing, "description_mappings")
	}
	if snap.PurchaseOrders == nil {
		missing = append(missing, "purchase_orders")
	}
	if snap.Transactions == nil {
		missing = append(missing, "cc_transactions")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTable, strings.Join(missing, ", "))
	}
	return nil
}
