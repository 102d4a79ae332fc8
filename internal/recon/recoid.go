package recon

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
)

const unknownCard = "0000"

// NewRecoID builds a run identifier of the form RECO-YYYYMMDD-HHMMSS-<last4>, where last4 is
// the most frequent card in the batch. Ties go to the lexically smallest card.
func NewRecoID(now time.Time, txns []domain.CCTransaction) string {
	return fmt.Sprintf("RECO-%s-%s", now.UTC().Format("20060102-150405"), dominantCard(txns))
}

func dominantCard(txns []domain.CCTransaction) string {
	counts := make(map[string]int)
	for _, t := range txns {
		card := strings.TrimSpace(t.CardLast4)
		if len(card) > 4 {
			card = card[len(card)-4:]
		}
		if card != "" {
			counts[card]++
		}
	}

	best, bestCount := unknownCard, 0
	for card, n := range counts {
		if n > bestCount || (n == bestCount && card < best) {
			best, bestCount = card, n
		}
	}
	return best
}
