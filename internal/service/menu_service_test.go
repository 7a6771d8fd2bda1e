package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
)

func TestMenuUpsert_CreatesAndReplaces(t *testing.T) {
	svc := NewMenuService(newStubMenuRepo(), nil, nil)

	created, err := svc.Upsert(context.Background(), dto.UpsertMenuItemRequest{
		CatalogueNumber: 5, ItemName: "Prawns Biryani",
		Price: decimal.NewFromInt(200), Category: "Biryanis",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.CatalogueNumber)

	// Same catalogue number replaces in place.
	updated, err := svc.Upsert(context.Background(), dto.UpsertMenuItemRequest{
		CatalogueNumber: 5, ItemName: "Prawns Biryani",
		Price: decimal.NewFromInt(220), Category: "Biryanis",
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(220)))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMenuDelete_UnknownItem(t *testing.T) {
	svc := NewMenuService(newStubMenuRepo(), nil, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrMenuItemNotFound)
}

func TestMenuGet(t *testing.T) {
	svc := NewMenuService(testCatalog(), nil, nil)

	item, err := svc.Get(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, "Cool Drink", item.ItemName)

	_, err = svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}
