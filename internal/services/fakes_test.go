package services

import (
	"context"
	"slices"
	"strings"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

// --- Fakes ---

type fakeExpenseStore struct {
	expenses   []models.Expense
	listErr    error
	createErr  error
	lastCreate *models.Expense
	lastUpdate *models.Expense
}

func (f *fakeExpenseStore) List(_ context.Context) ([]models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.expenses), nil
}

func (f *fakeExpenseStore) Get(_ context.Context, id int) (*models.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, errs.NewNotFoundError("Expense not found")
}

func (f *fakeExpenseStore) Create(_ context.Context, e *models.Expense) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = models.NextExpenseID(f.expenses)
	f.expenses = append([]models.Expense{*e}, f.expenses...)
	f.lastCreate = e
	return nil
}

func (f *fakeExpenseStore) Update(_ context.Context, e *models.Expense) error {
	for i := range f.expenses {
		if f.expenses[i].ID == e.ID {
			f.expenses[i] = *e
			f.lastUpdate = e
			return nil
		}
	}
	return errs.NewNotFoundError("Expense not found")
}

func (f *fakeExpenseStore) Delete(_ context.Context, id int) (*models.Expense, error) {
	for i, e := range f.expenses {
		if e.ID == id {
			f.expenses = slices.Delete(f.expenses, i, i+1)
			return &e, nil
		}
	}
	return nil, errs.NewNotFoundError("Expense not found")
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (f *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	return slices.Clone(f.categories), nil
}

func (f *fakeCategoryStore) Get(_ context.Context, id int) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errs.NewNotFoundError("Category not found")
}

func (f *fakeCategoryStore) Create(_ context.Context, c *models.Category) error {
	c.ID = models.NextCategoryID(f.categories)
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeCategoryStore) Update(_ context.Context, c *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == c.ID {
			f.categories[i] = *c
			return nil
		}
	}
	return errs.NewNotFoundError("Category not found")
}

func (f *fakeCategoryStore) Delete(_ context.Context, id int) (*models.Category, error) {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = slices.Delete(f.categories, i, i+1)
			return &c, nil
		}
	}
	return nil, errs.NewNotFoundError("Category not found")
}

type fakeBudgetStore struct {
	budgets    []models.Budget
	lastUpsert *models.Budget
}

func (f *fakeBudgetStore) List(_ context.Context) ([]models.Budget, error) {
	return slices.Clone(f.budgets), nil
}

func (f *fakeBudgetStore) Get(_ context.Context, category, month string) (*models.Budget, error) {
	for _, b := range f.budgets {
		if strings.EqualFold(b.Category, category) && b.Month == month {
			return &b, nil
		}
	}
	return nil, errs.NewNotFoundError("Budget not found")
}

func (f *fakeBudgetStore) Upsert(_ context.Context, b *models.Budget) (bool, error) {
	f.lastUpsert = b
	for i := range f.budgets {
		if strings.EqualFold(f.budgets[i].Category, b.Category) && f.budgets[i].Month == b.Month {
			b.ID = f.budgets[i].ID
			f.budgets[i] = *b
			return false, nil
		}
	}
	b.ID = models.NextBudgetID(f.budgets)
	f.budgets = append(f.budgets, *b)
	return true, nil
}

func (f *fakeBudgetStore) Delete(_ context.Context, category, month string) (*models.Budget, error) {
	for i, b := range f.budgets {
		if strings.EqualFold(b.Category, category) && b.Month == month {
			f.budgets = slices.Delete(f.budgets, i, i+1)
			return &b, nil
		}
	}
	return nil, errs.NewNotFoundError("Budget not found")
}
