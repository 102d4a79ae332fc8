package recon

import (
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultAutoAssignThreshold is the group total below which a channel is assigned without user input.
var DefaultAutoAssignThreshold = decimal.NewFromInt(100)

// DefaultAutoAssignChannel is the channel small ambiguous groups are assigned to.
const DefaultAutoAssignChannel = domain.ChannelM

// Consolidator merges channel-ambiguous transactions that share a description.
type Consolidator struct {
	resolver    *Resolver
	overrides   OverrideSet
	threshold   decimal.Decimal
	autoChannel domain.Channel
}

func NewConsolidator(resolver *Resolver, overrides OverrideSet, threshold decimal.Decimal, autoChannel domain.Channel) *Consolidator {
	if overrides == nil {
		overrides = OverrideSet{}
	}
	return &Consolidator{
		resolver:    resolver,
		overrides:   overrides,
		threshold:   threshold,
		autoChannel: autoChannel,
	}
}

// ConsolidationOutcome is the result of one consolidation pass.
type ConsolidationOutcome struct {
	Transactions []domain.ResolvedTransaction
	Pending      []domain.ConsolidationGroup
	Applied      []domain.ConsolidationGroup
	NewOverrides []domain.ManualOverride
}

type descGroup struct {
	key     string
	members []int // indexes into the input slice, input order
}

// Apply groups ambiguous rows by normalized description, decides a channel per group and
// merges the rows that resolve to it into one synthetic row. Rows outside any decided group
// are returned unchanged and in input order; a merged row takes its first member's place.
func (c *Consolidator) Apply(txns []domain.ResolvedTransaction) ConsolidationOutcome {
	var order []*descGroup
	byKey := make(map[string]*descGroup)
	for i, t := range txns {
		if !t.Ambiguous {
			continue
		}
		key := NormalizeKey(t.Description)
		g, ok := byKey[key]
		if !ok {
			g = &descGroup{key: key}
			byKey[key] = g
			order = append(order, g)
		}
		g.members = append(g.members, i)
	}

	var out ConsolidationOutcome
	replaced := make(map[int]*domain.ResolvedTransaction)
	dropped := make(map[int]bool)

	for _, g := range order {
		summary := c.summarize(g, txns)
		ch, fromHistory := c.historyChannel(g, txns)
		auto := false
		if ch == nil && !c.hasHistory(g, txns) && summary.TotalAmount.LessThan(c.threshold) {
			picked := c.autoChannel
			ch, auto = &picked, true
		}
		if ch == nil {
			out.Pending = append(out.Pending, summary)
			continue
		}

		res, ok := c.resolver.ResolveWithChannel(summary.Description, *ch)
		if !ok {
			out.Pending = append(out.Pending, summary)
			continue
		}

		var merged []int
		for _, idx := range g.members {
			t := txns[idx]
			own, has := c.overrides[t.ReferenceID]
			if has && own != *ch {
				continue
			}
			merged = append(merged, idx)
			if !has {
				out.NewOverrides = append(out.NewOverrides, domain.ManualOverride{ReferenceID: t.ReferenceID, Channel: *ch})
			}
		}

		res.Overridden = fromHistory
		row := mergeRows(txns, merged, res)
		row.AutoAssigned = auto
		replaced[merged[0]] = &row
		for _, idx := range merged[1:] {
			dropped[idx] = true
		}

		summary.Channel = ch
		summary.AutoAssigned = auto
		summary.FromHistory = fromHistory
		out.Applied = append(out.Applied, summary)
	}

	out.Transactions = make([]domain.ResolvedTransaction, 0, len(txns))
	for i, t := range txns {
		if dropped[i] {
			continue
		}
		if row, ok := replaced[i]; ok {
			out.Transactions = append(out.Transactions, *row)
			continue
		}
		out.Transactions = append(out.Transactions, t)
	}
	return out
}

func (c *Consolidator) summarize(g *descGroup, txns []domain.ResolvedTransaction) domain.ConsolidationGroup {
	s := domain.ConsolidationGroup{
		NormalizedDescription: g.key,
		Description:           txns[g.members[0]].Description,
		TotalAmount:           decimal.Zero,
		TransactionCount:      len(g.members),
	}
	for _, idx := range g.members {
		s.ReferenceIDs = append(s.ReferenceIDs, txns[idx].ReferenceID)
		s.TotalAmount = s.TotalAmount.Add(txns[idx].Amount)
	}
	return s
}

func (c *Consolidator) hasHistory(g *descGroup, txns []domain.ResolvedTransaction) bool {
	for _, idx := range g.members {
		if _, ok := c.overrides[txns[idx].ReferenceID]; ok {
			return true
		}
	}
	return false
}

// historyChannel derives a group channel from existing overrides on its members.
// Unanimous history wins. Split history needs a strict majority that also covers at least
// half of the group's reference ids; anything else, including an even split, stays unresolved.
func (c *Consolidator) historyChannel(g *descGroup, txns []domain.ResolvedTransaction) (*domain.Channel, bool) {
	votes := make(map[domain.Channel]int, 2)
	for _, idx := range g.members {
		if ch, ok := c.overrides[txns[idx].ReferenceID]; ok {
			votes[ch]++
		}
	}
	switch len(votes) {
	case 0:
		return nil, false
	case 1:
		for ch := range votes {
			picked := ch
			return &picked, true
		}
	}

	a, m := votes[domain.ChannelA], votes[domain.ChannelM]
	var picked domain.Channel
	switch {
	case a > m:
		picked = domain.ChannelA
	case m > a:
		picked = domain.ChannelM
	default:
		return nil, false
	}
	if votes[picked]*2 < len(g.members) {
		return nil, false
	}
	return &picked, true
}

// mergeRows folds the rows at idxs into one synthetic row: first reference id as primary,
// summed amount, earliest date, and the first reconciliation id already assigned.
func mergeRows(txns []domain.ResolvedTransaction, idxs []int, res domain.Resolution) domain.ResolvedTransaction {
	first := txns[idxs[0]]
	row := domain.ResolvedTransaction{
		CCTransaction:        first.CCTransaction,
		Resolution:           res,
		EffectiveReferenceID: first.ReferenceID,
	}
	row.Amount = decimal.Zero

	for _, idx := range idxs {
		t := txns[idx]
		row.Amount = row.Amount.Add(t.Amount)
		if t.TxnDate != nil && (row.TxnDate == nil || t.TxnDate.Before(*row.TxnDate)) {
			d := *t.TxnDate
			row.TxnDate = &d
		}
		if row.RecoID == "" && t.RecoID != "" {
			row.RecoID = t.RecoID
		}
	}
	if len(idxs) > 1 {
		for _, idx := range idxs {
			row.MergedReferenceIDs = append(row.MergedReferenceIDs, txns[idx].ReferenceID)
		}
	}
	return row
}
