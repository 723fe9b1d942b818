package services

import (
	"context"

	"github.com/fintrack-dev/fintrack-api/models"

	"github.com/google/uuid"
)

// CategoryStore is the persistence port for categories. Categories are
// global, shared by every user, so nothing here takes an owner id.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Insert(ctx context.Context, c *models.Category) error
	InsertMany(ctx context.Context, categories []models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Type:  req.Type,
	}
	if category.Icon == "" {
		category.Icon = "tag"
	}
	if category.Color == "" {
		category.Color = "#6B7280"
	}

	if err := s.store.Insert(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.store.GetByID(ctx, id)
}

// Update applies the supplied fields only, then returns the fresh category.
func (s *CategoryService) Update(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Type != nil {
		category.Type = *req.Type
	}

	if err := s.store.Update(ctx, category); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// SeedDefaults inserts the stock category set on first call. It is a no-op
// once any category exists, so calling it twice leaves eight rows, not
// sixteen.
func (s *CategoryService) SeedDefaults(ctx context.Context) ([]models.Category, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	defaults := []models.Category{
		{Name: "Salary", Icon: "briefcase", Color: "#2ECC71", Type: models.TypeIncome},
		{Name: "Food", Icon: "utensils", Color: "#E74C3C", Type: models.TypeExpense},
		{Name: "Transport", Icon: "car", Color: "#3498DB", Type: models.TypeExpense},
		{Name: "Shopping", Icon: "shopping-bag", Color: "#9B59B6", Type: models.TypeExpense},
		{Name: "Bills", Icon: "file-text", Color: "#F39C12", Type: models.TypeExpense},
		{Name: "Health", Icon: "medkit", Color: "#1ABC9C", Type: models.TypeExpense},
		{Name: "Giving", Icon: "heart", Color: "#E91E63", Type: models.TypeExpense},
		{Name: "Entertainment", Icon: "film", Color: "#673AB7", Type: models.TypeExpense},
	}
	for i := range defaults {
		defaults[i].ID = uuid.New().String()
		defaults[i].IsDefault = true
	}

	if err := s.store.InsertMany(ctx, defaults); err != nil {
		return nil, err
	}

	return defaults, nil
}
