package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

// PaymentTotals accumulates sales for one payment method.
type PaymentTotals struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// TrendPoint is one day of the sales trend series.
type TrendPoint struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	Amount     decimal.Decimal `json:"amount"`
	OrderCount int             `json:"order_count"`
}

// SalesSummary is the date-range sales report: headline totals, a
// payment-method breakdown, and a chronological per-day trend series.
type SalesSummary struct {
	TotalSales        decimal.Decimal          `json:"total_sales"`
	OrderCount        int                      `json:"order_count"`
	AverageOrderValue decimal.Decimal          `json:"average_order_value"`
	ByPaymentMethod   map[string]PaymentTotals `json:"by_payment_method"`
	Trend             []TrendPoint             `json:"trend"`
}

// Sales filters orders to those whose CreatedAt instant falls inside rng and
// aggregates them. AverageOrderValue is 0 when no orders match; it is rounded
// to 2 decimal places, matching the dashboard's display precision.
func Sales(orders []model.Order, rng Range) SalesSummary {
	summary := SalesSummary{
		ByPaymentMethod: make(map[string]PaymentTotals),
	}
	trendByDate := make(map[string]*TrendPoint)

	for _, order := range orders {
		if !rng.Contains(order.CreatedAt) {
			continue
		}
		summary.TotalSales = summary.TotalSales.Add(order.TotalAmount)
		summary.OrderCount++

		pm := summary.ByPaymentMethod[order.PaymentMethod]
		pm.Amount = pm.Amount.Add(order.TotalAmount)
		pm.Count++
		summary.ByPaymentMethod[order.PaymentMethod] = pm

		date := order.CreatedAt.UTC().Format(DateLayout)
		point, ok := trendByDate[date]
		if !ok {
			point = &TrendPoint{Date: date}
			trendByDate[date] = point
		}
		point.Amount = point.Amount.Add(order.TotalAmount)
		point.OrderCount++
	}

	if summary.OrderCount > 0 {
		summary.AverageOrderValue = summary.TotalSales.
			Div(decimal.NewFromInt(int64(summary.OrderCount))).
			Round(2)
	}

	summary.Trend = make([]TrendPoint, 0, len(trendByDate))
	for _, point := range trendByDate {
		summary.Trend = append(summary.Trend, *point)
	}
	sort.Slice(summary.Trend, func(i, j int) bool {
		return summary.Trend[i].Date < summary.Trend[j].Date
	})
	return summary
}
