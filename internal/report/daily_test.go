package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

func order(id string, total int64, createdAt time.Time, items ...model.OrderItem) model.Order {
	return model.Order{
		ID:            id,
		Items:         items,
		TotalAmount:   decimal.NewFromInt(total),
		PaymentMethod: model.PaymentCash,
		Status:        model.OrderCompleted,
		CreatedAt:     createdAt,
	}
}

func item(category string, qty int, subtotal int64) model.OrderItem {
	return model.OrderItem{
		Category: category,
		Quantity: qty,
		Subtotal: decimal.NewFromInt(subtotal),
	}
}

func TestDaily_GroupsByCalendarDate(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	daily := Daily([]model.Order{
		order("ORDER-0001", 100, jan1),
		order("ORDER-0002", 200, jan1),
		order("ORDER-0003", 50, jan2),
	})

	require.Len(t, daily, 2)
	assert.Equal(t, "2024-01-01", daily[0].Date)
	assert.True(t, daily[0].TotalAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 2, daily[0].OrderCount)
	assert.Equal(t, "2024-01-02", daily[1].Date)
	assert.True(t, daily[1].TotalAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, daily[1].OrderCount)
}

func TestDaily_SortedAscendingRegardlessOfInputOrder(t *testing.T) {
	daily := Daily([]model.Order{
		order("ORDER-0003", 30, time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)),
		order("ORDER-0001", 10, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		order("ORDER-0002", 20, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)),
	})

	require.Len(t, daily, 3)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"},
		[]string{daily[0].Date, daily[1].Date, daily[2].Date})
}

func TestDaily_CategoryBuckets(t *testing.T) {
	day := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	daily := Daily([]model.Order{
		order("ORDER-0001", 540, day,
			item("Biryanis", 2, 360),
			item("Starters", 1, 150),
			item("Cool Drinks", 1, 30),
		),
		order("ORDER-0002", 180, day,
			item("Biryanis", 1, 180),
		),
	})

	require.Len(t, daily, 1)
	categories := daily[0].Categories
	require.Len(t, categories, 3)
	assert.True(t, categories["Biryanis"].TotalAmount.Equal(decimal.NewFromInt(540)))
	assert.Equal(t, 3, categories["Biryanis"].ItemCount)
	assert.Equal(t, 1, categories["Starters"].ItemCount)
	assert.Equal(t, []string{"Biryanis", "Starters", "Cool Drinks"}, daily[0].CategoryOrder)
}

func TestDaily_OrderWithoutItemsStillCounts(t *testing.T) {
	daily := Daily([]model.Order{
		order("ORDER-0001", 100, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
	})

	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].OrderCount)
	assert.True(t, daily[0].TotalAmount.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, daily[0].Categories)
}

func TestDaily_EmptyInputYieldsEmptyOutput(t *testing.T) {
	assert.Empty(t, Daily(nil))
}

func TestDaily_UTCDateBoundary(t *testing.T) {
	// 23:59 UTC and 00:01 UTC the next day land on different calendar days,
	// even when a local zone would put them on the same one.
	daily := Daily([]model.Order{
		order("ORDER-0001", 10, time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)),
		order("ORDER-0002", 20, time.Date(2024, 5, 2, 0, 1, 0, 0, time.UTC)),
	})
	require.Len(t, daily, 2)
	assert.Equal(t, "2024-05-01", daily[0].Date)
	assert.Equal(t, "2024-05-02", daily[1].Date)
}

func TestDaily_GrandTotalMatchesOrderSum(t *testing.T) {
	orders := []model.Order{
		order("ORDER-0001", 120, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)),
		order("ORDER-0002", 250, time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC)),
		order("ORDER-0003", 75, time.Date(2024, 2, 2, 21, 0, 0, 0, time.UTC)),
		order("ORDER-0004", 380, time.Date(2024, 2, 4, 13, 0, 0, 0, time.UTC)),
	}

	wantTotal := decimal.Zero
	for _, o := range orders {
		wantTotal = wantTotal.Add(o.TotalAmount)
	}

	gotTotal := decimal.Zero
	for _, day := range Daily(orders) {
		gotTotal = gotTotal.Add(day.TotalAmount)
	}
	assert.True(t, gotTotal.Equal(wantTotal))
}

func TestDaily_DayTotalMatchesCategorySum(t *testing.T) {
	// Holds whenever every order's items cover the full order amount.
	day := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	daily := Daily([]model.Order{
		order("ORDER-0001", 330, day, item("Biryanis", 1, 180), item("Starters", 1, 150)),
		order("ORDER-0002", 60, day, item("Cool Drinks", 2, 60)),
	})

	require.Len(t, daily, 1)
	catSum := decimal.Zero
	for _, totals := range daily[0].Categories {
		catSum = catSum.Add(totals.TotalAmount)
	}
	assert.True(t, daily[0].TotalAmount.Equal(catSum))
}

func TestDaily_Idempotent(t *testing.T) {
	orders := []model.Order{
		order("ORDER-0001", 330, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			item("Biryanis", 1, 180), item("Starters", 1, 150)),
		order("ORDER-0002", 60, time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC),
			item("Cool Drinks", 2, 60)),
	}
	first := Daily(orders)
	second := Daily(orders)
	assert.Equal(t, first, second)
}
