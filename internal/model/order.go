package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter.
const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentUPI    = "UPI"
	PaymentCredit = "Credit"
)

// Order lifecycle states.
const (
	OrderDraft     = "Draft"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

// Order is a single customer order. TotalAmount is the sum of item subtotals
// at the moment the order was placed; it is never recomputed from the catalog.
type Order struct {
	ID            string          `gorm:"primaryKey" json:"id"` // ORDER-0001
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	Status        string          `gorm:"index;not null" json:"status"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	TableNumber   *int            `json:"table_number,omitempty"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time       `json:"-"`
}

// OrderItem is one line of an order. The menu item fields are a snapshot taken
// at order time, so historical orders are immune to later catalog edits —
// Subtotal in particular is captured, not derived.
type OrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"-"`
	OrderID         string          `gorm:"index;not null" json:"-"`
	CatalogueNumber int             `gorm:"not null" json:"catalogue_number"`
	ItemName        string          `gorm:"not null" json:"item_name"`
	Category        string          `gorm:"not null" json:"category"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
