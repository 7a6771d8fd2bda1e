package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(date string, cats ...struct {
	name  string
	total int64
}) DailySales {
	d := DailySales{Date: date, Categories: make(map[string]CategoryTotals)}
	for _, c := range cats {
		d.Categories[c.name] = CategoryTotals{TotalAmount: decimal.NewFromInt(c.total)}
		d.CategoryOrder = append(d.CategoryOrder, c.name)
		d.TotalAmount = d.TotalAmount.Add(decimal.NewFromInt(c.total))
	}
	return d
}

func cat(name string, total int64) struct {
	name  string
	total int64
} {
	return struct {
		name  string
		total int64
	}{name, total}
}

func TestCategoryBreakdown_RanksDescendingWithPercentages(t *testing.T) {
	shares := CategoryBreakdown([]DailySales{
		day("2024-01-01", cat("Biryanis", 100), cat("Starters", 50), cat("Cool Drinks", 30)),
		day("2024-01-02", cat("Biryanis", 200), cat("Starters", 20)),
	})

	require.Len(t, shares, 3)
	assert.Equal(t, "Biryanis", shares[0].Category)
	assert.True(t, shares[0].TotalAmount.Equal(decimal.NewFromInt(300)))
	assert.InDelta(t, 75.0, shares[0].Percent, 1e-9) // 300 of 400
	assert.Equal(t, "Starters", shares[1].Category)
	assert.InDelta(t, 17.5, shares[1].Percent, 1e-9)
	assert.Equal(t, "Cool Drinks", shares[2].Category)
	assert.InDelta(t, 7.5, shares[2].Percent, 1e-9)
}

func TestCategoryBreakdown_EmptySeries(t *testing.T) {
	assert.Nil(t, CategoryBreakdown(nil))
}

func TestCategoryBreakdown_CategorySetFixedByFirstDay(t *testing.T) {
	// "Desserts" only appears on the second day and is excluded: the category
	// set is fixed by the first chronological day in the series.
	shares := CategoryBreakdown([]DailySales{
		day("2024-01-01", cat("Biryanis", 100)),
		day("2024-01-02", cat("Biryanis", 50), cat("Desserts", 500)),
	})

	require.Len(t, shares, 1)
	assert.Equal(t, "Biryanis", shares[0].Category)
	assert.True(t, shares[0].TotalAmount.Equal(decimal.NewFromInt(150)))
	assert.InDelta(t, 100.0, shares[0].Percent, 1e-9)
}

func TestCategoryBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	shares := CategoryBreakdown([]DailySales{
		day("2024-01-01", cat("Starters", 50), cat("Biryanis", 50), cat("Cool Drinks", 30)),
	})

	require.Len(t, shares, 3)
	assert.Equal(t, "Starters", shares[0].Category)
	assert.Equal(t, "Biryanis", shares[1].Category)
	assert.Equal(t, "Cool Drinks", shares[2].Category)
}

func TestCategoryBreakdown_ZeroGrandTotal(t *testing.T) {
	shares := CategoryBreakdown([]DailySales{
		day("2024-01-01", cat("Biryanis", 0), cat("Starters", 0)),
	})

	require.Len(t, shares, 2)
	for _, s := range shares {
		assert.Zero(t, s.Percent)
	}
}
