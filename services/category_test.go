package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fintrack-dev/fintrack-api/models"
)

type fakeCategoryStore struct {
	categories []models.Category
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) GetByID(ctx context.Context, id string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCategoryStore) Insert(ctx context.Context, c *models.Category) error {
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeCategoryStore) InsertMany(ctx context.Context, categories []models.Category) error {
	f.categories = append(f.categories, categories...)
	return nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, c *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == c.ID {
			f.categories[i] = *c
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryStore) Count(ctx context.Context) (int, error) {
	return len(f.categories), nil
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	store := &fakeCategoryStore{}
	service := NewCategoryService(store)

	seeded, err := service.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeded) != 8 {
		t.Fatalf("expected 8 default categories, got %d", len(seeded))
	}

	again, err := service.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != nil {
		t.Errorf("second seed should be a no-op, inserted %d", len(again))
	}
	if len(store.categories) != 8 {
		t.Errorf("expected 8 categories after double seed, got %d", len(store.categories))
	}

	for _, c := range store.categories {
		if !c.IsDefault {
			t.Errorf("seeded category %s should be flagged as default", c.Name)
		}
	}
}

func TestSeedSkippedWhenAnyCategoryExists(t *testing.T) {
	store := &fakeCategoryStore{
		categories: []models.Category{{ID: "c1", Name: "Custom", Type: models.TypeExpense}},
	}
	service := NewCategoryService(store)

	seeded, err := service.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != nil {
		t.Error("seeding should be skipped once any category exists")
	}
	if len(store.categories) != 1 {
		t.Errorf("expected the single existing category, got %d", len(store.categories))
	}
}

func TestCategoryCreateDefaults(t *testing.T) {
	service := NewCategoryService(&fakeCategoryStore{})

	category, err := service.Create(context.Background(), models.CreateCategoryRequest{
		Name: "Coffee",
		Type: models.TypeExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if category.Icon != "tag" {
		t.Errorf("expected default icon 'tag', got %q", category.Icon)
	}
	if category.Color != "#6B7280" {
		t.Errorf("expected default color '#6B7280', got %q", category.Color)
	}
	if category.IsDefault {
		t.Error("user-created categories must not be flagged as defaults")
	}
}

func TestCategoryUpdatePartial(t *testing.T) {
	store := &fakeCategoryStore{
		categories: []models.Category{{ID: "c1", Name: "Food", Icon: "utensils", Color: "#E74C3C", Type: models.TypeExpense}},
	}
	service := NewCategoryService(store)

	newName := "Dining"
	updated, err := service.Update(context.Background(), "c1", models.UpdateCategoryRequest{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Dining" {
		t.Errorf("expected name Dining, got %q", updated.Name)
	}
	if updated.Icon != "utensils" || updated.Color != "#E74C3C" {
		t.Error("unsupplied fields must not change")
	}
}

func TestCategoryNotFound(t *testing.T) {
	service := NewCategoryService(&fakeCategoryStore{})

	if _, err := service.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := service.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
