package recon

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
)

// DefaultGraceDays is the buffer applied around a charge date when none is configured.
const DefaultGraceDays = 5

// ComputeWindow derives the PO-date window for one charge.
// Vendors with payment terms are paid after the PO, so the window ends on the charge date;
// zero-term vendors are charged around the PO date, so the grace applies on both sides.
func ComputeWindow(txnDate time.Time, paymentTermsDays, graceDays int) (domain.Window, error) {
	if paymentTermsDays < 0 {
		return domain.Window{}, fmt.Errorf("%w: payment terms %d days", ErrInvalidWindowInput, paymentTermsDays)
	}
	if graceDays < 0 {
		return domain.Window{}, fmt.Errorf("%w: grace %d days", ErrInvalidWindowInput, graceDays)
	}
	if txnDate.IsZero() {
		return domain.Window{}, fmt.Errorf("%w: missing transaction date", ErrInvalidWindowInput)
	}

	day := domain.DateOnly(txnDate)
	w := domain.Window{
		Start: day.AddDate(0, 0, -(paymentTermsDays + graceDays)),
		End:   day,
	}
	if paymentTermsDays == 0 {
		w.End = day.AddDate(0, 0, graceDays)
	}
	return w, nil
}

// ParsePaymentTerms converts a master-data payment terms label into days.
// Accepted forms: "pre_payment" (0), "Net 10", "net30", or a bare integer.
func ParsePaymentTerms(label string) (int, error) {
	s := strings.ToLower(strings.Join(strings.Fields(label), ""))
	switch {
	case s == "":
		return 0, fmt.Errorf("%w: empty label", ErrInvalidPaymentTerms)
	case s == "pre_payment" || s == "prepayment" || s == "pre-payment":
		return 0, nil
	case strings.HasPrefix(s, "net"):
		s = strings.TrimPrefix(s, "net")
	}

	days, err := strconv.Atoi(s)
	if err != nil || days < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaymentTerms, label)
	}
	return days, nil
}
