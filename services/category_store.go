package services

import (
	"context"
	"database/sql"

	"github.com/fintrack-dev/fintrack-api/models"
	"github.com/fintrack-dev/fintrack-api/utils"
)

type postgresCategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a CategoryStore backed by Postgres.
func NewCategoryStore(db *sql.DB) CategoryStore {
	return &postgresCategoryStore{db: db}
}

func (s *postgresCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, icon, color, type, is_default
		FROM categories
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Type, &c.IsDefault); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (s *postgresCategoryStore) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT id, name, icon, color, type, is_default
		FROM categories
		WHERE id = $1
	`

	var c models.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Type, &c.IsDefault)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *postgresCategoryStore) Insert(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (id, name, icon, color, type, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.Icon, c.Color, c.Type, c.IsDefault)
	return err
}

func (s *postgresCategoryStore) InsertMany(ctx context.Context, categories []models.Category) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO categories (id, name, icon, color, type, is_default)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		for _, c := range categories {
			if _, err := tx.ExecContext(ctx, query, c.ID, c.Name, c.Icon, c.Color, c.Type, c.IsDefault); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *postgresCategoryStore) Update(ctx context.Context, c *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, icon = $2, color = $3, type = $4
		WHERE id = $5
	`
	_, err := s.db.ExecContext(ctx, query, c.Name, c.Icon, c.Color, c.Type, c.ID)
	return err
}

func (s *postgresCategoryStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (s *postgresCategoryStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}
