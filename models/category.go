package models

// Category types. Transactions and budgets reference categories by id;
// categories are global, not owned by a user.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
}

// UpdateCategoryRequest carries a partial update; nil fields are left as-is.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
	Type  *string `json:"type" binding:"omitempty,oneof=income expense"`
}
