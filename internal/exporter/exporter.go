package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of an exported run.
const (
	SheetGroups       = "Groups"
	SheetTransactions = "Transactions"
	SheetPending      = "Pending"
	SheetExclusions   = "Exclusions"
)

const dateLayout = "2006-01-02"

var (
	groupHeaders = []string{
		"Txn Date", "Vendor Prefix", "Vendor Name", "Channel", "Payment Terms",
		"CC Amount", "CC Count", "PO Amount", "PO Count", "Deductions", "CC Fee", "Flag",
		"Reference IDs", "PO Numbers",
	}
	transactionHeaders = []string{
		"Reference ID", "Effective Reference ID", "Merged Reference IDs", "Txn Date", "Description",
		"Amount", "Batch", "Card", "Reco ID", "Vendor Prefix", "Vendor Name", "Category", "Channel",
		"Payment Terms", "Overridden", "Auto Assigned", "Window Start", "Window End",
	}
	pendingHeaders   = []string{"Description", "Normalized Description", "Reference IDs", "Count", "Total Amount"}
	exclusionHeaders = []string{"Table", "Key", "Reason"}
)

// Exporter renders reconciliation runs as XLSX workbooks.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds the workbook for a run. The caller owns the returned file.
func (e *Exporter) Export(run domain.ReconciliationRun) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetGroups); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{SheetTransactions, SheetPending, SheetExclusions} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	redStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#B91C1C"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create flag style: %w", err)
	}

	w := &sheetWriter{f: f}

	w.row(SheetGroups, 1, toAny(groupHeaders))
	for i, g := range run.Result.Groups {
		r := i + 2
		w.row(SheetGroups, r, []any{
			g.TxnDate.Format(dateLayout), g.VendorPrefix, g.VendorName, string(g.Channel), g.PaymentTermsDays,
			amount(g.TotalCCAmount), g.CCTransactionCount, amount(g.TotalPOAmount), g.POCount,
			amount(g.TotalDeductions), amount(g.TotalCCFeeCharge), string(g.Flag),
			strings.Join(g.ReferenceIDs, ", "), strings.Join(g.PONumbers, ", "),
		})
		if g.Flag == domain.FlagRed {
			cell, _ := excelize.CoordinatesToCellName(12, r)
			w.style(SheetGroups, cell, redStyle)
		}
	}

	w.row(SheetTransactions, 1, toAny(transactionHeaders))
	for i, t := range run.Result.Transactions {
		values := []any{
			t.ReferenceID, t.EffectiveReferenceID, strings.Join(t.MergedReferenceIDs, ", "), optionalDate(t.TxnDate),
			t.Description, amount(t.Amount), t.BatchID, t.CardLast4, t.RecoID, t.VendorPrefix, t.VendorName,
			string(t.Category), optionalChannel(t.Channel), optionalInt(t.PaymentTermsDays), t.Overridden, t.AutoAssigned,
		}
		if t.Window != nil {
			values = append(values, t.Window.Start.Format(dateLayout), t.Window.End.Format(dateLayout))
		}
		w.row(SheetTransactions, i+2, values)
	}

	w.row(SheetPending, 1, toAny(pendingHeaders))
	for i, p := range run.Result.PendingConsolidation {
		w.row(SheetPending, i+2, []any{
			p.Description, p.NormalizedDescription, strings.Join(p.ReferenceIDs, ", "), p.TransactionCount, amount(p.TotalAmount),
		})
	}

	w.row(SheetExclusions, 1, toAny(exclusionHeaders))
	for i, x := range run.Result.Exclusions {
		w.row(SheetExclusions, i+2, []any{x.Table, x.Key, string(x.Reason)})
	}

	for _, sheet := range []string{SheetGroups, SheetTransactions, SheetPending, SheetExclusions} {
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header of %s: %w", sheet, err)
		}
	}
	w.width(SheetGroups, "A", "L", 15)
	w.width(SheetGroups, "M", "N", 40)
	w.width(SheetTransactions, "A", "R", 18)
	w.width(SheetPending, "A", "C", 30)

	if w.err != nil {
		return nil, w.err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// ExportBytes renders a run and returns the serialized workbook.
func (e *Exporter) ExportBytes(run domain.ReconciliationRun) ([]byte, error) {
	f, err := e.Export(run)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook for run %s: %w", run.RecoID, err)
	}
	return buf.Bytes(), nil
}

// FileName is the download name of an exported run.
func FileName(recoID string) string {
	return recoID + ".xlsx"
}

// sheetWriter keeps the first error so callers check once.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) row(sheet string, r int, values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("failed to write %s row %d: %w", sheet, r, err)
	}
}

func (w *sheetWriter) style(sheet, cell string, style int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(sheet, cell, cell, style)
}

func (w *sheetWriter) width(sheet, from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(sheet, from, to, width)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func optionalChannel(c *domain.Channel) string {
	if c == nil {
		return ""
	}
	return string(*c)
}

func optionalInt(i *int) any {
	if i == nil {
		return ""
	}
	return *i
}
