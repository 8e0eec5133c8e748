package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

type expenseStore interface {
	List(ctx context.Context) ([]models.Expense, error)
	Get(ctx context.Context, id int) (*models.Expense, error)
	Create(ctx context.Context, e *models.Expense) error
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id int) (*models.Expense, error)
}

type expenseService struct {
	store expenseStore
	now   func() time.Time
}

func NewExpenseService(store expenseStore, now func() time.Time) *expenseService {
	if now == nil {
		now = time.Now
	}
	return &expenseService{store: store, now: now}
}

func (s *expenseService) List(ctx context.Context) ([]models.Expense, error) {
	return s.store.List(ctx)
}

func (s *expenseService) Get(ctx context.Context, id int) (*models.Expense, error) {
	return s.store.Get(ctx, id)
}

func (s *expenseService) Create(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error) {
	e, err := req.Expense(s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("expense created", "id", e.ID, "category", e.Category)
	return e, nil
}

func (s *expenseService) Update(ctx context.Context, id int, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(e)
	if err := s.store.Update(ctx, e); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("expense updated", "id", e.ID)
	return e, nil
}

func (s *expenseService) Delete(ctx context.Context, id int) (*models.Expense, error) {
	e, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("expense deleted", "id", e.ID)
	return e, nil
}
