package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget renewal cadences.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type Budget struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Category   *Category       `json:"category,omitempty"`
}

// BudgetProgress is a budget annotated with its spent and remaining amounts
// for the resolved period. Remaining goes negative on overspend. Error is set
// when the spend aggregation for this one budget failed; the rest of the
// batch is unaffected.
type BudgetProgress struct {
	Budget
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Error     string          `json:"error,omitempty"`
}

type CreateBudgetRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Period     string          `json:"period" binding:"omitempty,oneof=weekly monthly"`
	StartDate  string          `json:"startDate" binding:"required"`
	CategoryID string          `json:"categoryId" binding:"required,uuid"`
}

// UpdateBudgetRequest carries a partial update; nil fields are left as-is.
type UpdateBudgetRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	Period     *string          `json:"period" binding:"omitempty,oneof=weekly monthly"`
	StartDate  *string          `json:"startDate"`
	CategoryID *string          `json:"categoryId" binding:"omitempty,uuid"`
}
