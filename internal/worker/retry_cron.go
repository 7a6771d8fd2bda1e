package worker

// retry_cron.go
// Background goroutine that periodically re-attempts bridge calls for
// sheet pushes stuck in status='pending' with a next_retry_at in the past.
// Uses the Circuit Breaker to avoid hammering a downed sidecar.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	PushRepo      repository.SheetPushRepository
	SheetsClient  *infra.SheetsClient
	CB            *infra.CircuitBreaker
	RDB           *redis.Client
	SpreadsheetID string
}

// StartRetryCron launches a background goroutine that ticks every 30s,
// queries pending pushes, and re-attempts bridge calls through the CB.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open, skip entirely — don't hammer a downed sidecar
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	now := time.Now()
	pushes, err := cfg.PushRepo.ListPendingRetries(ctx, now, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending retries")
		return
	}

	if len(pushes) == 0 {
		return
	}

	log.Info().Int("count", len(pushes)).Msg("retry_cron: processing pending pushes")

	for i := range pushes {
		push := &pushes[i]

		// Check CB state before each call — it may have tripped mid-batch
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}

		var row []string
		_ = json.Unmarshal(push.Payload, &row)
		payload := infra.SheetsPayload{
			SpreadsheetID: cfg.SpreadsheetID,
			SheetName:     push.SheetName,
			Operation:     push.Operation,
			EntityID:      push.EntityID,
			Row:           row,
		}

		cbErr := cfg.CB.Execute(func() error {
			_, err := cfg.SheetsClient.Push(ctx, payload)
			return err
		})

		if cbErr != nil {
			// Failure — increment retry count, schedule next attempt
			push.RetryCount++
			errMsg := cbErr.Error()
			push.LastError = &errMsg
			nextRetry := time.Now().Add(computeRetryBackoff(push.RetryCount))
			push.NextRetryAt = &nextRetry

			if push.RetryCount >= MaxSheetPushRetries {
				push.Status = model.PushError
				push.NextRetryAt = nil
				log.Error().
					Str("push_id", push.ID.String()).
					Str("entity_id", push.EntityID).
					Int("retries", push.RetryCount).
					Msg("retry_cron: max retries exceeded, moving to error/DLQ")

				// Send to DLQ for manual inspection
				dlqPayload := fmt.Sprintf(`{"push_id":"%s","entity_id":"%s"}`, push.ID, push.EntityID)
				SendToDLQ(ctx, cfg.RDB, QueueSheets, "sheets", []byte(dlqPayload),
					fmt.Sprintf("max retries (%d) exceeded: %s", MaxSheetPushRetries, errMsg),
					push.RetryCount)
			} else {
				log.Warn().
					Str("push_id", push.ID.String()).
					Int("retry_count", push.RetryCount).
					Time("next_retry_at", *push.NextRetryAt).
					Msg("retry_cron: bridge retry failed, scheduled next attempt")
			}

			_ = cfg.PushRepo.Update(ctx, push)
			continue
		}

		// Success path
		push.Status = model.PushDone
		push.NextRetryAt = nil
		push.LastError = nil
		_ = cfg.PushRepo.Update(ctx, push)

		log.Info().
			Str("push_id", push.ID.String()).
			Str("sheet", push.SheetName).
			Int("total_retries", push.RetryCount).
			Msg("retry_cron: row mirrored after retry")
	}
}
