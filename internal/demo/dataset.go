// Package demo generates a plausible sample dataset for local development
// and demos: the standing menu catalogue, a staff roster, a week of
// attendance and a batch of randomised orders and expenses.
package demo

import (
	"github.com/shopspring/decimal"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
)

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Catalogue is the standing menu loaded by the seeder. Catalogue numbers
// are stable so repeated seeds upsert rather than duplicate.
func Catalogue() []model.MenuItem {
	return []model.MenuItem{
		{CatalogueNumber: 1, ItemName: "Chicken Biryani Full", Price: price(180), Category: "Biryanis"},
		{CatalogueNumber: 2, ItemName: "Chicken Biryani Half", Price: price(130), Category: "Biryanis"},
		{CatalogueNumber: 3, ItemName: "Dum Chicken Biryani Full", Price: price(180), Category: "Biryanis"},
		{CatalogueNumber: 4, ItemName: "Dum Chicken Biryani Half", Price: price(130), Category: "Biryanis"},
		{CatalogueNumber: 5, ItemName: "Prawns Biryani", Price: price(200), Category: "Biryanis"},
		{CatalogueNumber: 6, ItemName: "Mutton Biryani", Price: price(250), Category: "Biryanis"},
		{CatalogueNumber: 7, ItemName: "Chicken Pakodi", Price: price(120), Category: "Starters"},
		{CatalogueNumber: 8, ItemName: "Chilli Chicken", Price: price(150), Category: "Starters"},
		{CatalogueNumber: 9, ItemName: "Chicken Lolipops", Price: price(150), Category: "Starters"},
		{CatalogueNumber: 10, ItemName: "Chicken Pakodi", Price: price(50), Category: "Starters"},
		{CatalogueNumber: 11, ItemName: "Chicken Pakodi", Price: price(100), Category: "Starters"},
		{CatalogueNumber: 12, ItemName: "Water Bottle/Cool Drink/Soda", Price: price(20), Category: "Cool Drinks"},
		{CatalogueNumber: 13, ItemName: "Water Bottle /Soda", Price: price(30), Category: "Cool Drinks"},
		{CatalogueNumber: 14, ItemName: "Cool Drink", Price: price(50), Category: "Cool Drinks"},
		{CatalogueNumber: 15, ItemName: "100 Rs Biryani", Price: price(100), Category: "Biryanis"},
		{CatalogueNumber: 16, ItemName: "150 Rs Biryani", Price: price(150), Category: "Biryanis"},
		{CatalogueNumber: 17, ItemName: "Jumbo Biryani", Price: price(250), Category: "Biryanis"},
	}
}

// Roster returns the demo staff members with fixed IDs.
func Roster() []model.StaffMember {
	return []model.StaffMember{
		{ID: "STAFF-001", Name: "Rajesh Kumar", Role: "Cook", Salary: price(18000)},
		{ID: "STAFF-002", Name: "Sunita Sharma", Role: "Cook Assistant", Salary: price(12000)},
		{ID: "STAFF-003", Name: "Anand Singh", Role: "Waiter", Salary: price(10000)},
		{ID: "STAFF-004", Name: "Priya Patel", Role: "Cashier", Salary: price(12000)},
		{ID: "STAFF-005", Name: "Vikram Khanna", Role: "Manager", Salary: price(25000)},
	}
}

