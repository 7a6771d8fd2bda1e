package worker

// sheets_worker.go
// Processes spreadsheet mirror jobs from QueueSheets.
// Sends POST to the Sheets bridge sidecar and marks the outbox row done.
// Implements exponential backoff (max 3 in-process attempts); after that
// the row stays pending with a next_retry_at for the retry cron.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/metrics"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
)

// MaxSheetPushRetries is the cron-level retry ceiling before a push is
// marked error and sent to the DLQ.
const MaxSheetPushRetries = 5

// SheetsJobPayload is the job envelope sent to QueueSheets. It carries
// only the outbox row ID; the row itself holds the data to mirror.
type SheetsJobPayload struct {
	PushID string `json:"push_id"`
}

// SheetsWorker drains outbox rows created by the record store and calls
// the bridge sidecar through the circuit breaker.
type SheetsWorker struct {
	client        *infra.SheetsClient
	cb            *infra.CircuitBreaker
	pushRepo      repository.SheetPushRepository
	spreadsheetID string
}

func NewSheetsWorker(client *infra.SheetsClient, cb *infra.CircuitBreaker, pushRepo repository.SheetPushRepository, spreadsheetID string) *SheetsWorker {
	return &SheetsWorker{
		client:        client,
		cb:            cb,
		pushRepo:      pushRepo,
		spreadsheetID: spreadsheetID,
	}
}

// Process handles a single sheets job:
//  1. Parse SheetsJobPayload and fetch the outbox row
//  2. Call the bridge with exponential backoff (max 3 attempts)
//  3. Mark the row done, or schedule it for the retry cron
func (w *SheetsWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload SheetsJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("sheets_worker: invalid payload")
		return
	}

	pushID, err := uuid.Parse(payload.PushID)
	if err != nil {
		log.Error().Str("push_id", payload.PushID).Msg("sheets_worker: invalid push_id")
		return
	}

	push, err := w.pushRepo.FindByID(ctx, pushID)
	if err != nil {
		log.Error().Err(err).Str("push_id", payload.PushID).Msg("sheets_worker: push not found")
		return
	}
	if push.Status == model.PushDone {
		return // already mirrored (duplicate delivery)
	}

	pushErr := withRetry(ctx, 3, func(attempt int) error {
		return w.cb.Execute(func() error {
			_, err := w.client.Push(ctx, w.buildPayload(push))
			if err != nil {
				log.Warn().
					Err(err).
					Int("attempt", attempt+1).
					Str("push_id", payload.PushID).
					Msg("sheets_worker: bridge attempt failed, retrying")
			}
			return err
		})
	})

	if pushErr != nil {
		// Leave pending — the retry cron picks it up via next_retry_at.
		push.RetryCount++
		errMsg := pushErr.Error()
		push.LastError = &errMsg
		next := time.Now().Add(computeRetryBackoff(push.RetryCount))
		push.NextRetryAt = &next
		_ = w.pushRepo.Update(ctx, push)

		metrics.JobsProcessed.WithLabelValues(QueueSheets, "failed").Inc()
		metrics.SheetPushRetries.Inc()
		log.Error().
			Err(pushErr).
			Str("push_id", payload.PushID).
			Time("next_retry_at", next).
			Msg("sheets_worker: bridge failed after all attempts, scheduled for cron")
		return
	}

	push.Status = model.PushDone
	push.NextRetryAt = nil
	push.LastError = nil
	_ = w.pushRepo.Update(ctx, push)

	metrics.JobsProcessed.WithLabelValues(QueueSheets, "ok").Inc()
	log.Info().
		Str("push_id", payload.PushID).
		Str("sheet", push.SheetName).
		Str("operation", push.Operation).
		Msg("sheets_worker: row mirrored")
}

func (w *SheetsWorker) buildPayload(push *model.SheetPush) infra.SheetsPayload {
	var row []string
	if err := json.Unmarshal(push.Payload, &row); err != nil {
		log.Warn().Err(err).Str("push_id", push.ID.String()).Msg("sheets_worker: malformed row payload")
	}
	return infra.SheetsPayload{
		SpreadsheetID: w.spreadsheetID,
		SheetName:     push.SheetName,
		Operation:     push.Operation,
		EntityID:      push.EntityID,
		Row:           row,
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// computeRetryBackoff returns the cron-level wait for the nth retry:
// 1m, 2m, 4m … capped at 30m.
func computeRetryBackoff(retryCount int) time.Duration {
	backoff := time.Duration(1<<uint(retryCount-1)) * time.Minute
	if backoff > 30*time.Minute {
		backoff = 30 * time.Minute
	}
	return backoff
}
