package recon

import (
	"sort"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var decimal1 = decimal.NewFromInt(1)

type groupKey struct {
	date    time.Time
	prefix  string
	channel domain.Channel
	terms   int
}

type poKey struct {
	prefix  string
	channel domain.Channel
}

type groupAcc struct {
	group domain.ReconciliationGroup
	refs  map[string]struct{}
	pos   map[string]domain.PurchaseOrder
}

// Matcher matches resolved charges to purchase orders and aggregates them into groups.
type Matcher struct {
	ledger    *Ledger
	byVendor  map[poKey][]domain.PurchaseOrder
	graceDays int
}

// NewMatcher indexes dated POs by (prefix, channel). Balances are read from ledger on every pass.
func NewMatcher(pos []domain.PurchaseOrder, ledger *Ledger, graceDays int) *Matcher {
	m := &Matcher{
		ledger:    ledger,
		byVendor:  make(map[poKey][]domain.PurchaseOrder),
		graceDays: graceDays,
	}
	for _, po := range pos {
		if po.PODate == nil {
			continue
		}
		k := poKey{prefix: NormalizeKey(po.VendorPrefix), channel: po.Channel}
		m.byVendor[k] = append(m.byVendor[k], po)
	}
	return m
}

// Match computes a window for every matchable transaction (stored on the row) and returns
// the aggregated groups in (date, prefix, channel, terms) order. Rows whose window cannot be
// computed are reported as exclusions.
func (m *Matcher) Match(txns []domain.ResolvedTransaction) ([]domain.ReconciliationGroup, []domain.Exclusion) {
	accs := make(map[groupKey]*groupAcc)
	var exclusions []domain.Exclusion

	for i := range txns {
		t := &txns[i]
		if !t.Category.Matchable() || t.Channel == nil || t.PaymentTermsDays == nil || t.TxnDate == nil {
			continue
		}

		w, err := ComputeWindow(*t.TxnDate, *t.PaymentTermsDays, m.graceDays)
		if err != nil {
			exclusions = append(exclusions, domain.Exclusion{
				Table:  "cc_transactions",
				Key:    t.EffectiveReferenceID,
				Reason: domain.ExclusionInvalidWindowInputs,
			})
			continue
		}
		t.Window = &w

		key := groupKey{
			date:    domain.DateOnly(*t.TxnDate),
			prefix:  t.VendorPrefix,
			channel: *t.Channel,
			terms:   *t.PaymentTermsDays,
		}
		acc, ok := accs[key]
		if !ok {
			acc = &groupAcc{
				group: domain.ReconciliationGroup{
					TxnDate:          key.date,
					VendorPrefix:     key.prefix,
					VendorName:       t.VendorName,
					Channel:          key.channel,
					PaymentTermsDays: key.terms,
				},
				refs: make(map[string]struct{}),
				pos:  make(map[string]domain.PurchaseOrder),
			}
			accs[key] = acc
		}

		if _, seen := acc.refs[t.EffectiveReferenceID]; !seen {
			acc.refs[t.EffectiveReferenceID] = struct{}{}
			acc.group.ReferenceIDs = append(acc.group.ReferenceIDs, t.EffectiveReferenceID)
			acc.group.TotalCCAmount = acc.group.TotalCCAmount.Add(t.Amount)
		}

		for _, po := range m.candidates(key.prefix, key.channel, w) {
			acc.pos[po.PONumber] = po
		}
	}

	groups := make([]domain.ReconciliationGroup, 0, len(accs))
	for _, acc := range accs {
		groups = append(groups, m.finish(acc))
	}
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.TxnDate.Equal(b.TxnDate) {
			return a.TxnDate.Before(b.TxnDate)
		}
		if a.VendorPrefix != b.VendorPrefix {
			return a.VendorPrefix < b.VendorPrefix
		}
		if a.Channel != b.Channel {
			return a.Channel < b.Channel
		}
		return a.PaymentTermsDays < b.PaymentTermsDays
	})
	return groups, exclusions
}

// candidates returns the POs for a vendor/channel inside w that still carry a positive balance.
func (m *Matcher) candidates(prefix string, ch domain.Channel, w domain.Window) []domain.PurchaseOrder {
	var out []domain.PurchaseOrder
	for _, po := range m.byVendor[poKey{prefix: prefix, channel: ch}] {
		if !w.Contains(*po.PODate) {
			continue
		}
		_, balance, err := m.ledger.AvailableBalance(po.PONumber)
		if err != nil || !balance.IsPositive() {
			continue
		}
		out = append(out, po)
	}
	return out
}

func (m *Matcher) finish(acc *groupAcc) domain.ReconciliationGroup {
	g := acc.group
	g.CCTransactionCount = len(acc.refs)

	g.TotalPOAmount = decimal.Zero
	g.TotalDeductions = decimal.Zero
	g.TotalCCFeeCharge = decimal.Zero
	for number, po := range acc.pos {
		deducted, balance, err := m.ledger.AvailableBalance(number)
		if err != nil {
			continue
		}
		g.PONumbers = append(g.PONumbers, number)
		g.TotalDeductions = g.TotalDeductions.Add(deducted)
		g.TotalPOAmount = g.TotalPOAmount.Add(balance.Mul(decimal1.Add(po.CCFeeRate)))
		g.TotalCCFeeCharge = g.TotalCCFeeCharge.Add(po.BaseAmount.Mul(po.CCFeeRate))
	}
	sort.Strings(g.PONumbers)
	g.POCount = len(g.PONumbers)

	g.Flag = FlagFor(g.TotalCCAmount, g.TotalPOAmount)
	return g
}

// FlagFor is RED when card charges exceed PO coverage.
func FlagFor(ccTotal, poTotal decimal.Decimal) domain.Flag {
	if ccTotal.GreaterThan(poTotal) {
		return domain.FlagRed
	}
	return domain.FlagGreen
}
