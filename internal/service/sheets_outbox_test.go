package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
)

// stubSheetPushRepo captures outbox rows for assertion.
type stubSheetPushRepo struct {
	pushes []*model.SheetPush
}

func (r *stubSheetPushRepo) Create(_ context.Context, p *model.SheetPush) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pushes = append(r.pushes, p)
	return nil
}

func (r *stubSheetPushRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SheetPush, error) {
	for _, p := range r.pushes {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubSheetPushRepo) Update(_ context.Context, p *model.SheetPush) error { return nil }

func (r *stubSheetPushRepo) ListPendingRetries(_ context.Context, now time.Time, limit int) ([]model.SheetPush, error) {
	var out []model.SheetPush
	for _, p := range r.pushes {
		if p.Status == model.PushPending && p.NextRetryAt != nil && !p.NextRetryAt.After(now) {
			out = append(out, *p)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubSheetPushRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, p := range r.pushes {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

var _ repository.SheetPushRepository = (*stubSheetPushRepo)(nil)

func TestOrderCreate_WritesOutboxRow(t *testing.T) {
	pushRepo := &stubSheetPushRepo{}
	svc := NewOrderService(newStubOrderRepo(), testCatalog(), pushRepo, nil)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{CatalogueNumber: 1, Quantity: 2}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	require.Len(t, pushRepo.pushes, 1)
	push := pushRepo.pushes[0]
	assert.Equal(t, SheetOrders, push.SheetName)
	assert.Equal(t, "append", push.Operation)
	assert.Equal(t, resp.ID, push.EntityID)
	assert.Equal(t, model.PushPending, push.Status)

	var row []string
	require.NoError(t, json.Unmarshal(push.Payload, &row))
	assert.Contains(t, row, "ORDER-0001")
	assert.Contains(t, row, "360.00")
}

func TestCancelOrder_MirrorsUpdate(t *testing.T) {
	pushRepo := &stubSheetPushRepo{}
	svc := NewOrderService(newStubOrderRepo(), testCatalog(), pushRepo, nil)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{CatalogueNumber: 1, Quantity: 1}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(context.Background(), resp.ID))

	require.Len(t, pushRepo.pushes, 2)
	assert.Equal(t, "update", pushRepo.pushes[1].Operation)

	var row []string
	require.NoError(t, json.Unmarshal(pushRepo.pushes[1].Payload, &row))
	assert.Contains(t, row, model.OrderCancelled)
}
