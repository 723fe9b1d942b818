package services

import (
	"context"
	"time"

	"github.com/fintrack-dev/fintrack-api/models"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// TransactionStore is the persistence port for transactions. All operations
// are scoped to the owning user.
type TransactionStore interface {
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Transaction, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error)
	GetByID(ctx context.Context, userID, id string) (*models.Transaction, error)
	Insert(ctx context.Context, t *models.Transaction) error
	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, userID, id string) error
}

type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

func (s *TransactionService) Create(ctx context.Context, userID string, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ID:          uuid.New().String(),
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		Notes:       req.Notes,
		IsRecurring: req.IsRecurring,
		UserID:      userID,
		CategoryID:  req.CategoryID,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Insert(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// List returns one page of the user's transactions with their category,
// newest date first, same-day rows broken by creation time. Pages are
// 1-based; zero or negative paging inputs fall back to page 1 / size 20.
func (s *TransactionService) List(ctx context.Context, userID string, page, limit int) ([]models.Transaction, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return s.store.ListByUser(ctx, userID, (page-1)*limit, limit)
}

func (s *TransactionService) Get(ctx context.Context, userID, id string) (*models.Transaction, error) {
	return s.store.GetByID(ctx, userID, id)
}

// Update applies the supplied fields only, then returns the fresh transaction.
func (s *TransactionService) Update(ctx context.Context, userID, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, ErrInvalidAmount
		}
		transaction.Amount = *req.Amount
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = date
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}
	if req.IsRecurring != nil {
		transaction.IsRecurring = *req.IsRecurring
	}
	if req.CategoryID != nil {
		transaction.CategoryID = req.CategoryID
	}

	if err := s.store.Update(ctx, transaction); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, userID, id)
}

func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.store.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, userID, id)
}

// Summary totals the user's income and expense amounts over [start, end]
// inclusive. An empty range yields all zeros, never an error.
func (s *TransactionService) Summary(ctx context.Context, userID string, start, end time.Time) (*models.Summary, error) {
	transactions, err := s.store.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{Count: len(transactions)}
	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			summary.Income = summary.Income.Add(t.Amount)
		case models.TypeExpense:
			summary.Expense = summary.Expense.Add(t.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expense)

	return summary, nil
}
