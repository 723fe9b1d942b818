package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	IsRecurring bool            `json:"isRecurring"`
	UserID      string          `json:"user_id"`
	CategoryID  *string         `json:"category_id,omitempty"`
	Category    *Category       `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Date        string          `json:"date" binding:"required"`
	Notes       string          `json:"notes"`
	IsRecurring bool            `json:"isRecurring"`
	CategoryID  *string         `json:"categoryId" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest carries a partial update; nil fields are left as-is.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Date        *string          `json:"date"`
	Notes       *string          `json:"notes"`
	IsRecurring *bool            `json:"isRecurring"`
	CategoryID  *string          `json:"categoryId" binding:"omitempty,uuid"`
}

// Summary totals income and expense amounts over an explicit date range.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
	Count   int             `json:"count"`
}
