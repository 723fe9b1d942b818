package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/fintrack-dev/fintrack-api/models"
)

type postgresTransactionStore struct {
	db *sql.DB
}

// NewTransactionStore returns a TransactionStore backed by Postgres.
func NewTransactionStore(db *sql.DB) TransactionStore {
	return &postgresTransactionStore{db: db}
}

const transactionColumns = `
	t.id, t.amount, t.type, t.date, COALESCE(t.notes, ''), t.is_recurring,
	t.user_id, t.category_id, t.created_at,
	c.id, c.name, c.icon, c.color, c.type, c.is_default
`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*models.Transaction, error) {
	var t models.Transaction
	var categoryID sql.NullString
	var catID, catName, catIcon, catColor, catType sql.NullString
	var catDefault sql.NullBool

	err := row.Scan(
		&t.ID, &t.Amount, &t.Type, &t.Date, &t.Notes, &t.IsRecurring,
		&t.UserID, &categoryID, &t.CreatedAt,
		&catID, &catName, &catIcon, &catColor, &catType, &catDefault,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		t.CategoryID = &categoryID.String
	}
	if catID.Valid {
		t.Category = &models.Category{
			ID:        catID.String,
			Name:      catName.String,
			Icon:      catIcon.String,
			Color:     catColor.String,
			Type:      catType.String,
			IsDefault: catDefault.Bool,
		}
	}

	return &t, nil
}

func (s *postgresTransactionStore) ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *postgresTransactionStore) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.date BETWEEN $2 AND $3
		ORDER BY t.date DESC, t.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (s *postgresTransactionStore) GetByID(ctx context.Context, userID, id string) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1 AND t.user_id = $2
	`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *postgresTransactionStore) Insert(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, amount, type, date, notes, is_recurring, user_id, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.Amount, t.Type, t.Date, t.Notes, t.IsRecurring, t.UserID, t.CategoryID, t.CreatedAt)
	return err
}

func (s *postgresTransactionStore) Update(ctx context.Context, t *models.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, type = $2, date = $3, notes = $4, is_recurring = $5, category_id = $6
		WHERE id = $7 AND user_id = $8
	`
	_, err := s.db.ExecContext(ctx, query,
		t.Amount, t.Type, t.Date, t.Notes, t.IsRecurring, t.CategoryID, t.ID, t.UserID)
	return err
}

func (s *postgresTransactionStore) Delete(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
