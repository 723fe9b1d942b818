package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrack-dev/fintrack-api/models"

	"github.com/shopspring/decimal"
)

type expenseRow struct {
	userID     string
	categoryID string
	date       time.Time
	amount     decimal.Decimal
}

type fakeBudgetStore struct {
	budgets  []models.Budget
	expenses []expenseRow
	sumErrs  map[string]error
}

func (f *fakeBudgetStore) ListByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	var out []models.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetStore) GetByID(ctx context.Context, userID, id string) (*models.Budget, error) {
	for _, b := range f.budgets {
		if b.ID == id && b.UserID == userID {
			out := b
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeBudgetStore) Insert(ctx context.Context, b *models.Budget) error {
	f.budgets = append(f.budgets, *b)
	return nil
}

func (f *fakeBudgetStore) Update(ctx context.Context, b *models.Budget) error {
	for i := range f.budgets {
		if f.budgets[i].ID == b.ID && f.budgets[i].UserID == b.UserID {
			f.budgets[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeBudgetStore) Delete(ctx context.Context, userID, id string) error {
	for i := range f.budgets {
		if f.budgets[i].ID == id && f.budgets[i].UserID == userID {
			f.budgets = append(f.budgets[:i], f.budgets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBudgetStore) SumExpenses(ctx context.Context, userID, categoryID string, start, end time.Time) (decimal.Decimal, error) {
	if err, ok := f.sumErrs[categoryID]; ok {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range f.expenses {
		if e.userID != userID || e.categoryID != categoryID {
			continue
		}
		if e.date.Before(start) || e.date.After(end) {
			continue
		}
		total = total.Add(e.amount)
	}
	return total, nil
}

func newBudgetServiceAt(store BudgetStore, rolling bool, now time.Time) *BudgetService {
	s := NewBudgetService(store, rolling)
	s.now = func() time.Time { return now }
	return s
}

func TestProgressMonthlyScenario(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{{
			ID:         "b1",
			Amount:     decimal.NewFromInt(500),
			Period:     models.PeriodMonthly,
			StartDate:  date(2024, 3, 1),
			UserID:     "u1",
			CategoryID: "c1",
		}},
		expenses: []expenseRow{
			{"u1", "c1", date(2024, 3, 5), decimal.NewFromInt(120)},
			{"u1", "c1", date(2024, 3, 20), decimal.NewFromInt(80)},
			{"u1", "c1", date(2024, 4, 2), decimal.NewFromInt(50)},
		},
	}

	service := newBudgetServiceAt(store, false, date(2024, 3, 25))

	progress, err := service.Progress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(progress) != 1 {
		t.Fatalf("expected 1 progress entry, got %d", len(progress))
	}

	if !progress[0].Spent.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected spent 200 (April transaction excluded), got %s", progress[0].Spent)
	}
	if !progress[0].Remaining.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected remaining 300, got %s", progress[0].Remaining)
	}
}

func TestProgressNoMatchingTransactions(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{{
			ID:         "b1",
			Amount:     decimal.NewFromInt(100),
			Period:     models.PeriodWeekly,
			StartDate:  date(2024, 3, 4),
			UserID:     "u1",
			CategoryID: "gone-category",
		}},
	}

	service := newBudgetServiceAt(store, false, date(2024, 3, 6))

	progress, err := service.Progress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !progress[0].Spent.Equal(decimal.Zero) {
		t.Errorf("expected spent 0, got %s", progress[0].Spent)
	}
	if !progress[0].Remaining.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected remaining 100, got %s", progress[0].Remaining)
	}
	if progress[0].Error != "" {
		t.Errorf("a missing category is not an error, got %q", progress[0].Error)
	}
}

func TestProgressOverspendGoesNegative(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{{
			ID:         "b1",
			Amount:     decimal.NewFromInt(50),
			Period:     models.PeriodMonthly,
			StartDate:  date(2024, 3, 1),
			UserID:     "u1",
			CategoryID: "c1",
		}},
		expenses: []expenseRow{
			{"u1", "c1", date(2024, 3, 10), decimal.NewFromInt(80)},
		},
	}

	service := newBudgetServiceAt(store, false, date(2024, 3, 15))

	progress, err := service.Progress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !progress[0].Remaining.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected remaining -30, got %s", progress[0].Remaining)
	}
}

func TestProgressKeepsLoadOrder(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{
			{ID: "newer", Amount: decimal.NewFromInt(10), Period: models.PeriodMonthly, StartDate: date(2024, 4, 1), UserID: "u1", CategoryID: "c1"},
			{ID: "older", Amount: decimal.NewFromInt(10), Period: models.PeriodMonthly, StartDate: date(2024, 3, 1), UserID: "u1", CategoryID: "c2"},
		},
	}

	service := newBudgetServiceAt(store, false, date(2024, 4, 10))

	progress, err := service.Progress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if progress[0].ID != "newer" || progress[1].ID != "older" {
		t.Errorf("expected load order preserved, got [%s, %s]", progress[0].ID, progress[1].ID)
	}
}

func TestProgressIsolatesAggregationFailure(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{
			{ID: "bad", Amount: decimal.NewFromInt(100), Period: models.PeriodMonthly, StartDate: date(2024, 3, 1), UserID: "u1", CategoryID: "broken"},
			{ID: "good", Amount: decimal.NewFromInt(100), Period: models.PeriodMonthly, StartDate: date(2024, 2, 1), UserID: "u1", CategoryID: "c1"},
		},
		expenses: []expenseRow{
			{"u1", "c1", date(2024, 2, 10), decimal.NewFromInt(40)},
		},
		sumErrs: map[string]error{"broken": errors.New("query timeout")},
	}

	service := newBudgetServiceAt(store, false, date(2024, 3, 15))

	progress, err := service.Progress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("one bad budget must not sink the batch: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(progress))
	}

	if progress[0].Error != ErrAggregationFailed.Error() {
		t.Errorf("expected aggregation failure marker, got %q", progress[0].Error)
	}
	if progress[1].Error != "" {
		t.Errorf("healthy budget should carry no error, got %q", progress[1].Error)
	}
	if !progress[1].Spent.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected spent 40 on healthy budget, got %s", progress[1].Spent)
	}
}

func TestBudgetOwnershipIsolation(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{{
			ID:         "b1",
			Amount:     decimal.NewFromInt(100),
			Period:     models.PeriodMonthly,
			StartDate:  date(2024, 3, 1),
			UserID:     "owner",
			CategoryID: "c1",
		}},
	}

	service := NewBudgetService(store, false)

	if _, err := service.Get(context.Background(), "intruder", "b1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if err := service.Delete(context.Background(), "intruder", "b1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign owner delete, got %v", err)
	}
	if len(store.budgets) != 1 {
		t.Error("foreign owner delete must not remove the budget")
	}
}

func TestBudgetCreateDefaultsToMonthly(t *testing.T) {
	store := &fakeBudgetStore{}
	service := NewBudgetService(store, false)

	budget, err := service.Create(context.Background(), "u1", models.CreateBudgetRequest{
		Amount:     decimal.NewFromInt(250),
		StartDate:  "2024-03-01",
		CategoryID: "c1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if budget.Period != models.PeriodMonthly {
		t.Errorf("expected default period monthly, got %s", budget.Period)
	}
	if budget.ID == "" {
		t.Error("expected generated id")
	}
}

func TestBudgetUpdatePartial(t *testing.T) {
	store := &fakeBudgetStore{
		budgets: []models.Budget{{
			ID:         "b1",
			Amount:     decimal.NewFromInt(100),
			Period:     models.PeriodWeekly,
			StartDate:  date(2024, 3, 4),
			UserID:     "u1",
			CategoryID: "c1",
		}},
	}

	service := NewBudgetService(store, false)

	newAmount := decimal.NewFromInt(150)
	updated, err := service.Update(context.Background(), "u1", "b1", models.UpdateBudgetRequest{
		Amount: &newAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.Amount.Equal(newAmount) {
		t.Errorf("expected amount 150, got %s", updated.Amount)
	}
	if updated.Period != models.PeriodWeekly {
		t.Errorf("unsupplied fields must not change, period became %s", updated.Period)
	}
	if !updated.StartDate.Equal(date(2024, 3, 4)) {
		t.Errorf("unsupplied fields must not change, start date became %s", updated.StartDate)
	}
}

func TestBudgetCreateRejectsBadDate(t *testing.T) {
	service := NewBudgetService(&fakeBudgetStore{}, false)

	_, err := service.Create(context.Background(), "u1", models.CreateBudgetRequest{
		Amount:     decimal.NewFromInt(100),
		StartDate:  "March 1st",
		CategoryID: "c1",
	})
	if err == nil {
		t.Fatal("expected error for unparseable start date")
	}
}
