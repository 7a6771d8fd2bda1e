package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// OrderFilter is bound from the query string of GET /v1/orders.
type OrderFilter struct {
	Date   string `form:"date"`                // YYYY-MM-DD (UTC); empty = all
	Status string `form:"status,default=all"`  // Draft | Completed | Cancelled | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	CatalogueNumber int `json:"catalogue_number" validate:"required,min=1"`
	Quantity        int `json:"quantity"         validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=Cash Card UPI Credit"`
	// Status defaults to Completed; Draft orders may be created with items
	// and completed later.
	Status       string  `json:"status"        validate:"omitempty,oneof=Draft Completed"`
	CustomerName *string `json:"customer_name" validate:"omitempty,max=120"`
	TableNumber  *int    `json:"table_number"  validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	CatalogueNumber int             `json:"catalogue_number"`
	ItemName        string          `json:"item_name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	CustomerName  *string             `json:"customer_name,omitempty"`
	TableNumber   *int                `json:"table_number,omitempty"`
	CreatedAt     string              `json:"created_at"`
}
