package dashboard

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

var dashNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return dashNow }

func unavailable() error {
	return errs.NewUnavailableError("backend unreachable", errors.New("connection refused"))
}

// fakeSource serves fixed collections; a non-nil err is returned by every
// call of that kind.
type fakeSource struct {
	expenses   []models.Expense
	categories []models.Category
	budgets    []models.Budget

	listErr     error
	categoryErr error
	budgetErr   error
	mutateErr   error

	created *models.Expense
}

func (f *fakeSource) ListExpenses(_ context.Context) ([]models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.expenses), nil
}

func (f *fakeSource) CreateExpense(_ context.Context, req dto.CreateExpenseRequest) (*models.Expense, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	e, err := req.Expense(dashNow)
	if err != nil {
		return nil, err
	}
	e.ID = 100
	f.created = e
	return e, nil
}

func (f *fakeSource) UpdateExpense(_ context.Context, id int, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for _, e := range f.expenses {
		if e.ID == id {
			req.Apply(&e)
			return &e, nil
		}
	}
	return nil, errs.NewNotFoundError("Expense not found")
}

func (f *fakeSource) DeleteExpense(_ context.Context, id int) (*models.Expense, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for _, e := range f.expenses {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, errs.NewNotFoundError("Expense not found")
}

func (f *fakeSource) ListCategories(_ context.Context) ([]models.Category, error) {
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	return slices.Clone(f.categories), nil
}

func (f *fakeSource) ListBudgets(_ context.Context, _ string) ([]models.Budget, error) {
	if f.budgetErr != nil {
		return nil, f.budgetErr
	}
	return slices.Clone(f.budgets), nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
