package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory pairs a top-level expense category with its sub-categories.
type ExpenseCategory struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"sub_categories"`
}

// ExpenseCategories is the fixed taxonomy offered by the expense form.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		{Name: "Ingredients", SubCategories: []string{"Meat", "Rice", "Vegetables", "Spices", "Oil", "Other"}},
		{Name: "Utilities", SubCategories: []string{"Electricity", "Water", "Gas", "Internet", "Phone"}},
		{Name: "Salaries", SubCategories: []string{"Kitchen Staff", "Service Staff", "Management", "Casual Labor"}},
		{Name: "Maintenance", SubCategories: []string{"Equipment", "Building", "Furniture", "Pest Control"}},
		{Name: "Marketing", SubCategories: []string{"Online Ads", "Print Media", "Promotions", "Events"}},
		{Name: "Miscellaneous", SubCategories: []string{"Stationery", "Cleaning Supplies", "Packaging", "Other"}},
	}
}

// Expense is an immutable money-out record: once written it is never updated.
type Expense struct {
	ID          string          `gorm:"primaryKey" json:"id"` // EXP-0001
	Category    string          `gorm:"index;not null" json:"category"`
	SubCategory string          `gorm:"not null" json:"sub_category"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"index;not null" json:"date"`
	PaidBy      string          `gorm:"not null" json:"paid_by"`
	CreatedAt   time.Time       `json:"-"`
}
