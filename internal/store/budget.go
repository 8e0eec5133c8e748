package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

const budgetNotFound = "Budget not found"

// budgetStore keys budgets by category name, case-insensitively, and month.
type budgetStore struct {
	mu      sync.RWMutex
	budgets []models.Budget
}

func NewBudgetStore(seed []models.Budget) *budgetStore {
	return &budgetStore{budgets: slices.Clone(seed)}
}

func (s *budgetStore) List(_ context.Context) ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.budgets), nil
}

func (s *budgetStore) Get(_ context.Context, category, month string) (*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(category, month)
	if i < 0 {
		return nil, errs.NewNotFoundError(budgetNotFound)
	}
	b := s.budgets[i]
	return &b, nil
}

// Upsert replaces the budget for the category and month, or appends a new
// one with the next id. It reports whether a budget was created.
func (s *budgetStore) Upsert(_ context.Context, b *models.Budget) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(b.Category, b.Month); i >= 0 {
		b.ID = s.budgets[i].ID
		s.budgets[i] = *b
		return false, nil
	}
	b.ID = models.NextBudgetID(s.budgets)
	s.budgets = append(s.budgets, *b)
	return true, nil
}

func (s *budgetStore) Delete(_ context.Context, category, month string) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(category, month)
	if i < 0 {
		return nil, errs.NewNotFoundError(budgetNotFound)
	}
	removed := s.budgets[i]
	s.budgets = slices.Delete(s.budgets, i, i+1)
	return &removed, nil
}

func (s *budgetStore) index(category, month string) int {
	return slices.IndexFunc(s.budgets, func(b models.Budget) bool {
		return strings.EqualFold(b.Category, category) && b.Month == month
	})
}
