package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

// CategoryTotals accumulates one category's sales inside a single day.
type CategoryTotals struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

// DailySales is the derived, never-persisted aggregate of all orders for one
// UTC calendar date. CategoryOrder records the order in which categories were
// first seen that day; ranking functions use it for deterministic tie-breaks.
type DailySales struct {
	Date          string                    `json:"date"` // YYYY-MM-DD
	TotalAmount   decimal.Decimal           `json:"total_amount"`
	OrderCount    int                       `json:"order_count"`
	Categories    map[string]CategoryTotals `json:"categories"`
	CategoryOrder []string                  `json:"-"`
}

// Daily groups orders by the UTC calendar date of CreatedAt and produces one
// DailySales per distinct date, sorted ascending by date.
//
// Totals come from the orders' captured amounts: TotalAmount sums
// Order.TotalAmount, category buckets sum the items' captured subtotals and
// quantities. An order with no items still counts toward TotalAmount and
// OrderCount but contributes no category entries.
func Daily(orders []model.Order) []DailySales {
	byDate := make(map[string]*DailySales)

	for _, order := range orders {
		date := order.CreatedAt.UTC().Format(DateLayout)
		day, ok := byDate[date]
		if !ok {
			day = &DailySales{
				Date:       date,
				Categories: make(map[string]CategoryTotals),
			}
			byDate[date] = day
		}

		day.TotalAmount = day.TotalAmount.Add(order.TotalAmount)
		day.OrderCount++

		for _, item := range order.Items {
			totals, seen := day.Categories[item.Category]
			if !seen {
				day.CategoryOrder = append(day.CategoryOrder, item.Category)
			}
			totals.TotalAmount = totals.TotalAmount.Add(item.Subtotal)
			totals.ItemCount += item.Quantity
			day.Categories[item.Category] = totals
		}
	}

	out := make([]DailySales, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
