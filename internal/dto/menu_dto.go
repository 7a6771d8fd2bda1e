package dto

import "github.com/shopspring/decimal"

type UpsertMenuItemRequest struct {
	CatalogueNumber int             `json:"catalogue_number" validate:"required,min=1"`
	ItemName        string          `json:"item_name"        validate:"required,max=200"`
	Price           decimal.Decimal `json:"price"            validate:"min=0"`
	Category        string          `json:"category"         validate:"required,max=100"`
}

type MenuItemResponse struct {
	CatalogueNumber int             `json:"catalogue_number"`
	ItemName        string          `json:"item_name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
}
