package store

import (
	"context"
	"slices"
	"sync"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

const expenseNotFound = "Expense not found"

// expenseStore keeps expenses newest-first, the way they were created.
type expenseStore struct {
	mu       sync.RWMutex
	expenses []models.Expense
}

func NewExpenseStore(seed []models.Expense) *expenseStore {
	return &expenseStore{expenses: slices.Clone(seed)}
}

func (s *expenseStore) List(_ context.Context) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses), nil
}

func (s *expenseStore) Get(_ context.Context, id int) (*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return nil, errs.NewNotFoundError(expenseNotFound)
	}
	e := s.expenses[i]
	return &e, nil
}

// Create assigns the next id and prepends the record.
func (s *expenseStore) Create(_ context.Context, e *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = models.NextExpenseID(s.expenses)
	s.expenses = slices.Insert(s.expenses, 0, *e)
	return nil
}

func (s *expenseStore) Update(_ context.Context, e *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(e.ID)
	if i < 0 {
		return errs.NewNotFoundError(expenseNotFound)
	}
	s.expenses[i] = *e
	return nil
}

// Delete returns the removed record.
func (s *expenseStore) Delete(_ context.Context, id int) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, errs.NewNotFoundError(expenseNotFound)
	}
	removed := s.expenses[i]
	s.expenses = slices.Delete(s.expenses, i, i+1)
	return &removed, nil
}

func (s *expenseStore) index(id int) int {
	return slices.IndexFunc(s.expenses, func(e models.Expense) bool { return e.ID == id })
}
