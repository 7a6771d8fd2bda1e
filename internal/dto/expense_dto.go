package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseFilter struct {
	Category string `form:"category"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CreateExpenseRequest struct {
	Category    string          `json:"category"     validate:"required,max=100"`
	SubCategory string          `json:"sub_category" validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"       validate:"required"`
	Description string          `json:"description"  validate:"max=500"`
	Date        time.Time       `json:"date"         validate:"required"`
	PaidBy      string          `json:"paid_by"      validate:"required,max=120"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	PaidBy      string          `json:"paid_by"`
}

type ExpenseListResponse struct {
	Data  []ExpenseResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
