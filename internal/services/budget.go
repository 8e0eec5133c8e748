package services

import (
	"context"
	"strings"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/reports"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

const monthLayout = "2006-01"

type budgetStore interface {
	List(ctx context.Context) ([]models.Budget, error)
	Get(ctx context.Context, category, month string) (*models.Budget, error)
	Upsert(ctx context.Context, b *models.Budget) (bool, error)
	Delete(ctx context.Context, category, month string) (*models.Budget, error)
}

type budgetExpenseLister interface {
	List(ctx context.Context) ([]models.Expense, error)
}

type budgetService struct {
	store    budgetStore
	expenses budgetExpenseLister
	meta     reports.CategoryMeta
}

func NewBudgetService(store budgetStore, expenses budgetExpenseLister, meta reports.CategoryMeta) *budgetService {
	return &budgetService{store: store, expenses: expenses, meta: meta}
}

// List without a month returns budgets as stored. With a month it returns
// that month's budgets plus the month-independent ones, with Spent derived
// from the expenses dated in that month.
func (s *budgetService) List(ctx context.Context, month string) ([]models.Budget, error) {
	budgets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if month == "" {
		return budgets, nil
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, errs.NewValidationError("month must be formatted as YYYY-MM")
	}

	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Month != "" && b.Month != month {
			continue
		}
		b.Spent = s.spentIn(expenses, b.Category, month)
		out = append(out, b)
	}
	return out, nil
}

func (s *budgetService) Get(ctx context.Context, category, month string) (*models.Budget, error) {
	return s.store.Get(ctx, category, month)
}

// Upsert reports whether the budget was newly created.
func (s *budgetService) Upsert(ctx context.Context, req dto.BudgetRequest) (*models.Budget, bool, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" || req.Amount == 0 {
		return nil, false, errs.NewValidationError("Please provide category and amount")
	}
	if req.Month != "" {
		if _, err := time.Parse(monthLayout, req.Month); err != nil {
			return nil, false, errs.NewValidationError("month must be formatted as YYYY-MM")
		}
	}

	m := s.meta.Lookup(category)
	b := &models.Budget{
		Category: category,
		Amount:   float64(req.Amount),
		Spent:    req.Spent,
		Icon:     firstNonEmpty(req.Icon, m.Icon),
		Color:    firstNonEmpty(req.Color, m.Color),
		Month:    req.Month,
	}
	created, err := s.store.Upsert(ctx, b)
	if err != nil {
		return nil, false, err
	}
	logger.FromContext(ctx).Info("budget saved", "category", b.Category, "month", b.Month, "created", created)
	return b, created, nil
}

func (s *budgetService) Delete(ctx context.Context, category, month string) (*models.Budget, error) {
	b, err := s.store.Delete(ctx, category, month)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("budget deleted", "category", b.Category)
	return b, nil
}

// spentIn matches expenses to the budget by slug or display name, so "food"
// expenses count toward a "Food & Dining" budget.
func (s *budgetService) spentIn(expenses []models.Expense, category, month string) float64 {
	var total float64
	for _, e := range expenses {
		if e.Date.Format(monthLayout) != month {
			continue
		}
		if strings.EqualFold(e.Category, category) || strings.EqualFold(s.meta.Lookup(e.Category).Name, category) {
			total += e.Amount
		}
	}
	return total
}
