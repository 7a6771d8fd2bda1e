package service

// sheets_outbox.go
// Every write to the record store mirrors one row to the spreadsheet via
// the outbox: insert a sheet_pushes row in the same request, then enqueue
// a job carrying only the row ID. Mirroring is best-effort — a failed
// enqueue never fails the originating request, the retry cron catches up.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"
)

// Sheet tab names, one per mirrored record type.
const (
	SheetOrders     = "Orders"
	SheetMenuItems  = "MenuItems"
	SheetExpenses   = "Expenses"
	SheetStaff      = "Staff"
	SheetAttendance = "Attendance"
)

type sheetsOutbox struct {
	pushRepo   repository.SheetPushRepository
	dispatcher *worker.Dispatcher
}

// mirror writes the outbox row and enqueues the push job. Nil-safe: unit
// tests construct services without an outbox.
func (o *sheetsOutbox) mirror(ctx context.Context, sheetName, operation, entityID string, row []string) {
	if o == nil || o.pushRepo == nil {
		return
	}

	payload, err := json.Marshal(row)
	if err != nil {
		log.Error().Err(err).Str("entity_id", entityID).Msg("sheets_outbox: marshal row")
		return
	}

	push := &model.SheetPush{
		SheetName: sheetName,
		Operation: operation,
		EntityID:  entityID,
		Payload:   payload,
		Status:    model.PushPending,
	}
	if err := o.pushRepo.Create(ctx, push); err != nil {
		log.Error().Err(err).Str("entity_id", entityID).Msg("sheets_outbox: create push")
		return
	}

	if o.dispatcher != nil {
		job := worker.SheetsJobPayload{PushID: push.ID.String()}
		if err := o.dispatcher.EnqueueSheetPush(ctx, job); err != nil {
			// Row stays pending; schedule it for the cron instead.
			next := time.Now().Add(time.Minute)
			push.NextRetryAt = &next
			_ = o.pushRepo.Update(ctx, push)
			log.Warn().Err(err).Str("push_id", push.ID.String()).Msg("sheets_outbox: enqueue failed, deferred to cron")
		}
	}
}

func newSheetsOutbox(pushRepo repository.SheetPushRepository, dispatcher *worker.Dispatcher) *sheetsOutbox {
	if pushRepo == nil {
		return nil
	}
	return &sheetsOutbox{pushRepo: pushRepo, dispatcher: dispatcher}
}
