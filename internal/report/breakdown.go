package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryShare is one category's slice of the sales in a series of days.
type CategoryShare struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Percent     float64         `json:"percent"`
}

// CategoryBreakdown sums each category's sales across the series and ranks
// categories descending by that sum, with each share's percentage of the
// grand total.
//
// The category set is fixed by the first chronological day in the series:
// categories that only appear on later days are excluded. This matches the
// dashboard's historical output and is deliberate — widening the set would
// change every existing report. Ties rank in the categories' first-seen order
// on that first day. A zero grand total yields 0% for every category.
func CategoryBreakdown(daily []DailySales) []CategoryShare {
	if len(daily) == 0 {
		return nil
	}

	shares := make([]CategoryShare, 0, len(daily[0].CategoryOrder))
	grand := decimal.Zero
	for _, category := range daily[0].CategoryOrder {
		total := decimal.Zero
		for _, day := range daily {
			if totals, ok := day.Categories[category]; ok {
				total = total.Add(totals.TotalAmount)
			}
		}
		grand = grand.Add(total)
		shares = append(shares, CategoryShare{Category: category, TotalAmount: total})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].TotalAmount.GreaterThan(shares[j].TotalAmount)
	})

	if grand.IsZero() {
		return shares
	}
	for i := range shares {
		percent, _ := shares[i].TotalAmount.Div(grand).Mul(decimal.NewFromInt(100)).Float64()
		shares[i].Percent = percent
	}
	return shares
}
