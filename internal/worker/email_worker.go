package worker

// email_worker.go
// Processes email jobs from QueueEmail.
// Sends the daily sales report (with PDF attachment) via SMTP.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/metrics"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	mailer *infra.Mailer
}

// NewEmailWorker creates an EmailWorker with the provided SMTP mailer.
func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends an email with the report PDF as attachment.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	if err := w.mailer.SendReport(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath); err != nil {
		metrics.JobsProcessed.WithLabelValues(QueueEmail, "failed").Inc()
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return
	}
	metrics.JobsProcessed.WithLabelValues(QueueEmail, "ok").Inc()
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: report sent successfully")
}
