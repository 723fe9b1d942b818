package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/fintrack-dev/fintrack-api/models"

	"github.com/shopspring/decimal"
)

type postgresBudgetStore struct {
	db *sql.DB
}

// NewBudgetStore returns a BudgetStore backed by Postgres.
func NewBudgetStore(db *sql.DB) BudgetStore {
	return &postgresBudgetStore{db: db}
}

const budgetColumns = `
	b.id, b.amount, b.period, b.start_date, b.user_id, b.category_id,
	c.id, c.name, c.icon, c.color, c.type, c.is_default
`

func scanBudget(row interface{ Scan(...interface{}) error }) (*models.Budget, error) {
	var b models.Budget
	var catID, catName, catIcon, catColor, catType sql.NullString
	var catDefault sql.NullBool

	err := row.Scan(
		&b.ID, &b.Amount, &b.Period, &b.StartDate, &b.UserID, &b.CategoryID,
		&catID, &catName, &catIcon, &catColor, &catType, &catDefault,
	)
	if err != nil {
		return nil, err
	}

	if catID.Valid {
		b.Category = &models.Category{
			ID:        catID.String,
			Name:      catName.String,
			Icon:      catIcon.String,
			Color:     catColor.String,
			Type:      catType.String,
			IsDefault: catDefault.Bool,
		}
	}

	return &b, nil
}

func (s *postgresBudgetStore) ListByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.user_id = $1
		ORDER BY b.start_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}

	return budgets, rows.Err()
}

func (s *postgresBudgetStore) GetByID(ctx context.Context, userID, id string) (*models.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1 AND b.user_id = $2
	`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (s *postgresBudgetStore) Insert(ctx context.Context, b *models.Budget) error {
	query := `
		INSERT INTO budgets (id, amount, period, start_date, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query, b.ID, b.Amount, b.Period, b.StartDate, b.UserID, b.CategoryID)
	return err
}

func (s *postgresBudgetStore) Update(ctx context.Context, b *models.Budget) error {
	query := `
		UPDATE budgets
		SET amount = $1, period = $2, start_date = $3, category_id = $4
		WHERE id = $5 AND user_id = $6
	`
	_, err := s.db.ExecContext(ctx, query, b.Amount, b.Period, b.StartDate, b.CategoryID, b.ID, b.UserID)
	return err
}

func (s *postgresBudgetStore) Delete(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

// SumExpenses totals expense transactions for one category inside the window.
// BETWEEN is inclusive on both ends, matching how budget cycles have always
// been counted here.
func (s *postgresBudgetStore) SumExpenses(ctx context.Context, userID, categoryID string, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = 'expense'
		  AND date BETWEEN $3 AND $4
	`

	var total decimal.Decimal
	err := s.db.QueryRowContext(ctx, query, userID, categoryID, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
