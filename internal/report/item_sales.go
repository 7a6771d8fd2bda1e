package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

// ItemSale is one catalog item's sales over a range.
type ItemSale struct {
	CatalogueNumber int             `json:"catalogue_number"`
	ItemName        string          `json:"item_name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	QuantitySold    int             `json:"quantity_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// ItemSales computes per-item quantity sold and revenue over the orders that
// fall inside rng. The catalog is the driving set (left outer join): items
// with no sales still appear with zero quantity and revenue. Output is sorted
// descending by quantity sold; ties keep catalog order.
func ItemSales(catalog []model.MenuItem, orders []model.Order, rng Range) []ItemSale {
	type sold struct {
		quantity int
		revenue  decimal.Decimal
	}
	byCatalogue := make(map[int]sold)

	for _, order := range orders {
		if !rng.Contains(order.CreatedAt) {
			continue
		}
		for _, item := range order.Items {
			s := byCatalogue[item.CatalogueNumber]
			s.quantity += item.Quantity
			s.revenue = s.revenue.Add(item.Subtotal)
			byCatalogue[item.CatalogueNumber] = s
		}
	}

	out := make([]ItemSale, 0, len(catalog))
	for _, item := range catalog {
		s := byCatalogue[item.CatalogueNumber]
		out = append(out, ItemSale{
			CatalogueNumber: item.CatalogueNumber,
			ItemName:        item.ItemName,
			Category:        item.Category,
			Price:           item.Price,
			QuantitySold:    s.quantity,
			Revenue:         s.revenue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].QuantitySold > out[j].QuantitySold })
	return out
}
