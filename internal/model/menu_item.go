package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is one entry of the restaurant catalog. The catalogue number is the
// business primary key: it is what waiters punch in and what printed menus show.
type MenuItem struct {
	CatalogueNumber int             `gorm:"primaryKey;autoIncrement:false" json:"catalogue_number"`
	ItemName        string          `gorm:"not null" json:"item_name"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category        string          `gorm:"index;not null" json:"category"`
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`
}

func (MenuItem) TableName() string { return "menu_items" }
