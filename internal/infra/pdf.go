package infra

// pdf.go — sales report rendering using go-pdf/fpdf.
// Produces an A4 report with:
//   - Restaurant name header and reporting period
//   - Summary block (total sales, order count, average order value)
//   - Payment method breakdown
//   - Daily trend table
//   - Category breakdown with percentages
//
// The output file is saved to storagePath/sales_report_{from}_{to}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/report"
)

// GenerateSalesReportPDF renders a sales summary over a date range.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateSalesReportPDF(summary *report.SalesSummary, shares []report.CategoryShare, rng report.Range, currency, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	from := rng.From.Format(report.DateLayout)
	to := rng.To.Format(report.DateLayout)
	fileName := fmt.Sprintf("sales_report_%s_%s.pdf", from, to)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Oasis Eats", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Sales Report", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%s to %s", from, to), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Summary ──────────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelW, 6, "Total sales:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 6, currency+" "+summary.TotalSales.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "Orders:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 6, fmt.Sprintf("%d", summary.OrderCount), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "Average order value:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 6, currency+" "+summary.AverageOrderValue.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// ── Payment methods ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "By Payment Method", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.4, 6, "Method", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Orders", "B", 0, "C", false, 0, "")
	pdf.CellFormat(contentW*0.35, 6, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, method := range []string{"Cash", "Card", "UPI", "Credit"} {
		totals, ok := summary.ByPaymentMethod[method]
		if !ok {
			continue
		}
		pdf.CellFormat(contentW*0.4, 6, method, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 6, fmt.Sprintf("%d", totals.Count), "", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.35, 6, currency+" "+totals.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Daily trend ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Daily Trend", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.4, 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Orders", "B", 0, "C", false, 0, "")
	pdf.CellFormat(contentW*0.35, 6, "Sales", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, point := range summary.Trend {
		pdf.CellFormat(contentW*0.4, 6, point.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 6, fmt.Sprintf("%d", point.OrderCount), "", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.35, 6, currency+" "+point.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Category breakdown ───────────────────────────────────────────────────
	if len(shares) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "By Category", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW*0.4, 6, "Category", "B", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 6, "Share", "B", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.35, 6, "Amount", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, share := range shares {
			pdf.CellFormat(contentW*0.4, 6, share.Category, "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.25, 6, fmt.Sprintf("%.1f%%", share.Percent), "", 0, "C", false, 0, "")
			pdf.CellFormat(contentW*0.35, 6, currency+" "+share.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
