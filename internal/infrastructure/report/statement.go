package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/usecase"
)

// StatementOptions controls how a customer statement is rendered.
type StatementOptions struct {
	CurrencySymbol string
	Location       *time.Location
	Range          domain.DateRange
	GeneratedAt    time.Time
	// Compress is off in tests so the content stream stays readable.
	Compress bool
}

// WriteStatement renders a customer's ledger as an A4 PDF with a running balance.
func WriteStatement(w io.Writer, ledger *usecase.CustomerLedger, opts StatementOptions) error {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	symbol := pdfCurrency(opts.CurrencySymbol)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Customer Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", opts.GeneratedAt.In(loc).Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, "Period: "+periodLabel(opts.Range), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, tr("Name: "+ledger.Customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Mobile: "+ledger.Customer.Mobile, "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(28, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(72, 7, "Note", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "You gave", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "You got", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	running := ledger.BroughtForward
	if opts.Range.From != nil {
		pdf.CellFormat(28, 6, opts.Range.From.In(loc).Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(132, 6, "Brought forward", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, domain.FormatAmount(running), "1", 1, "R", false, 0, "")
	}
	for _, e := range ledger.Entries {
		gave, got := "", ""
		if e.Direction == domain.LedgerDebit {
			running = running.Add(e.Amount)
			gave = domain.FormatAmount(e.Amount)
		} else {
			running = running.Sub(e.Amount)
			got = domain.FormatAmount(e.Amount)
		}

		pdf.CellFormat(28, 6, e.EntryDate.In(loc).Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(72, 6, tr(truncate(e.Note, 40)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, gave, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, got, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, domain.FormatAmount(running), "1", 1, "R", false, 0, "")
	}

	if len(ledger.Entries) == 0 {
		pdf.CellFormat(190, 6, "No entries in this period", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	summary := ledger.Summary
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Total given: %s%s", symbol, domain.FormatAmount(summary.PositiveTotal)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Total received: %s%s", symbol, domain.FormatAmount(summary.NegativeTotal)), "1", 1, "L", false, 0, "")
	pdf.CellFormat(190, 8, domain.BalanceLabel(ledger.Closing(), symbol), "1", 1, "C", false, 0, "")

	return pdf.Output(w)
}

// pdfCurrency falls back to "Rs." for symbols the core fonts cannot draw.
func pdfCurrency(symbol string) string {
	for _, r := range symbol {
		if r > 0xFF {
			return "Rs."
		}
	}
	return symbol
}

func periodLabel(r domain.DateRange) string {
	from, to := "beginning", "today"
	if r.From != nil {
		from = r.From.Format("02-Jan-2006")
	}
	if r.To != nil {
		to = r.To.Format("02-Jan-2006")
	}
	return from + " to " + to
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "..."
}
