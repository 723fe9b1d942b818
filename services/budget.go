package services

import (
	"context"
	"time"

	"github.com/fintrack-dev/fintrack-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// BudgetStore is the persistence port for budgets. Every read and mutation is
// scoped to the owning user; SumExpenses aggregates expense transactions for
// one category inside a date window (inclusive both ends) and reports zero,
// not an error, when nothing matches.
type BudgetStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Budget, error)
	GetByID(ctx context.Context, userID, id string) (*models.Budget, error)
	Insert(ctx context.Context, b *models.Budget) error
	Update(ctx context.Context, b *models.Budget) error
	Delete(ctx context.Context, userID, id string) error
	SumExpenses(ctx context.Context, userID, categoryID string, start, end time.Time) (decimal.Decimal, error)
}

type BudgetService struct {
	store   BudgetStore
	rolling bool
	now     func() time.Time
}

// NewBudgetService creates the budget service. rolling selects the
// reference-relative period policy; the default pinned policy reports each
// budget's first cycle forever.
func NewBudgetService(store BudgetStore, rolling bool) *BudgetService {
	return &BudgetService{
		store:   store,
		rolling: rolling,
		now:     time.Now,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID string, req models.CreateBudgetRequest) (*models.Budget, error) {
	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	period := req.Period
	if period == "" {
		period = models.PeriodMonthly
	}

	budget := &models.Budget{
		ID:         uuid.New().String(),
		Amount:     req.Amount,
		Period:     period,
		StartDate:  startDate,
		UserID:     userID,
		CategoryID: req.CategoryID,
	}

	if err := s.store.Insert(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

// List returns the user's budgets with their category, newest start date first.
func (s *BudgetService) List(ctx context.Context, userID string) ([]models.Budget, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *BudgetService) Get(ctx context.Context, userID, id string) (*models.Budget, error) {
	return s.store.GetByID(ctx, userID, id)
}

// Update applies the supplied fields only, then returns the fresh budget.
func (s *BudgetService) Update(ctx context.Context, userID, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		budget.Period = *req.Period
	}
	if req.StartDate != nil {
		startDate, err := ParseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		budget.StartDate = startDate
	}
	if req.CategoryID != nil {
		budget.CategoryID = *req.CategoryID
	}

	if err := s.store.Update(ctx, budget); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, userID, id)
}

func (s *BudgetService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.store.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, userID, id)
}

// Progress reports amount, spent and remaining for each of the user's
// budgets against one shared reference instant. The per-budget spend queries
// fan out concurrently; the result keeps the load order (start date
// descending), not completion order. A budget whose aggregation fails is
// marked and reported alongside the others rather than sinking the batch,
// and a budget pointing at a deleted category simply aggregates to zero.
func (s *BudgetService) Progress(ctx context.Context, userID string) ([]models.BudgetProgress, error) {
	budgets, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := make([]models.BudgetProgress, len(budgets))

	g, ctx := errgroup.WithContext(ctx)
	for i, b := range budgets {
		i, b := i, b
		g.Go(func() error {
			progress := models.BudgetProgress{Budget: b}

			start, end := ResolvePeriod(b.StartDate, b.Period, now, s.rolling)
			spent, err := s.store.SumExpenses(ctx, userID, b.CategoryID, start, end)
			if err != nil {
				progress.Error = ErrAggregationFailed.Error()
			} else {
				progress.Spent = spent
				progress.Remaining = b.Amount.Sub(spent)
			}

			results[i] = progress
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
