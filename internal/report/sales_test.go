package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

func mustRange(t *testing.T, from, to time.Time) Range {
	t.Helper()
	rng, err := NewRange(from, to)
	require.NoError(t, err)
	return rng
}

func TestNewRange_EndBeforeStart(t *testing.T) {
	_, err := NewRange(
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewRange_MissingToMeansSingleDay(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rng := mustRange(t, from, time.Time{})

	assert.True(t, rng.Contains(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, rng.Contains(time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, 1, rng.Days())
}

func TestRange_EndOfDayInclusive(t *testing.T) {
	// Same-day range: the 23:59 order is in, the next-morning one is out.
	rng := mustRange(t,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, rng.Contains(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, rng.Contains(time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)))
}

func TestRange_Days(t *testing.T) {
	rng := mustRange(t,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, 7, rng.Days())
}

func TestSales_TotalsAndAverage(t *testing.T) {
	rng := mustRange(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	orders := []model.Order{
		order("ORDER-0001", 100, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)),
		order("ORDER-0002", 200, time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)),
		order("ORDER-0003", 50, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)),
		order("ORDER-0004", 999, time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)), // out of range
	}

	summary := Sales(orders, rng)

	assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 3, summary.OrderCount)
	assert.True(t, summary.AverageOrderValue.Equal(decimal.RequireFromString("116.67")))
}

func TestSales_EmptyRangeIsZeroNotError(t *testing.T) {
	rng := mustRange(t,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	summary := Sales(nil, rng)

	assert.Zero(t, summary.OrderCount)
	assert.True(t, summary.TotalSales.IsZero())
	assert.True(t, summary.AverageOrderValue.IsZero())
	assert.Empty(t, summary.Trend)
}

func TestSales_PaymentMethodBreakdown(t *testing.T) {
	rng := mustRange(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	cash1 := order("ORDER-0001", 100, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	cash2 := order("ORDER-0002", 150, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	upi := order("ORDER-0003", 80, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC))
	upi.PaymentMethod = model.PaymentUPI

	summary := Sales([]model.Order{cash1, cash2, upi}, rng)

	require.Len(t, summary.ByPaymentMethod, 2)
	assert.True(t, summary.ByPaymentMethod[model.PaymentCash].Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, summary.ByPaymentMethod[model.PaymentCash].Count)
	assert.True(t, summary.ByPaymentMethod[model.PaymentUPI].Amount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 1, summary.ByPaymentMethod[model.PaymentUPI].Count)
}

func TestSales_TrendChronological(t *testing.T) {
	rng := mustRange(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	)
	orders := []model.Order{
		order("ORDER-0003", 50, time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)),
		order("ORDER-0001", 100, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)),
		order("ORDER-0002", 200, time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)),
	}

	summary := Sales(orders, rng)

	require.Len(t, summary.Trend, 2)
	assert.Equal(t, "2024-01-01", summary.Trend[0].Date)
	assert.True(t, summary.Trend[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 2, summary.Trend[0].OrderCount)
	assert.Equal(t, "2024-01-04", summary.Trend[1].Date)
}
