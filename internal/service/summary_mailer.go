package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/report"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"
)

var ErrNoReportRecipient = errors.New("no report email configured")

// SummaryMailer renders today's sales PDF and queues it for delivery to the
// owner. Triggered from the API; the actual SMTP send happens on the worker
// pool.
type SummaryMailer struct {
	exports    ExportService
	reports    ReportService
	dispatcher *worker.Dispatcher
	recipient  string
	currency   string
}

func NewSummaryMailer(exports ExportService, reports ReportService, dispatcher *worker.Dispatcher, recipient, currency string) *SummaryMailer {
	return &SummaryMailer{
		exports:    exports,
		reports:    reports,
		dispatcher: dispatcher,
		recipient:  recipient,
		currency:   currency,
	}
}

// SendDaily emails the current UTC day's summary.
func (m *SummaryMailer) SendDaily(ctx context.Context) error {
	if m.recipient == "" {
		return ErrNoReportRecipient
	}

	today := time.Now().UTC()
	rng, err := report.NewRange(today, time.Time{})
	if err != nil {
		return err
	}

	pdfPath, err := m.exports.SalesPDF(ctx, rng)
	if err != nil {
		return err
	}

	summary, err := m.reports.Sales(ctx, rng)
	if err != nil {
		return err
	}

	date := today.Format(report.DateLayout)
	payload := worker.EmailJobPayload{
		ToEmail: m.recipient,
		Subject: fmt.Sprintf("Daily sales report — %s", date),
		Body: fmt.Sprintf("Sales for %s\nTotal: %s %s across %d orders.\nFull report attached.",
			date, m.currency, summary.TotalSales.StringFixed(2), summary.OrderCount),
		PDFPath: pdfPath,
	}
	return m.dispatcher.EnqueueEmail(ctx, payload)
}
