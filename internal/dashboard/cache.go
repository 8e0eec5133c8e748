// Package dashboard holds the client side of the expense dashboard: a cache
// of the backend's collections with an explicit offline fallback policy, and
// a controller that turns user actions into freshly computed report views.
package dashboard

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/store"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

const (
	noticeSampleExpenses = "Using sample data (backend unavailable)"
	noticeSampleCatalog  = "Warning: Using offline mode with sample data"
	noticeAdded          = "Expense added successfully!"
	noticeAddedOffline   = "Expense added in offline mode"
	noticeUpdated        = "Expense updated successfully!"
	noticeUpdatedOffline = "Expense updated in offline mode"
	noticeDeleted        = "Expense deleted successfully!"
	noticeDeletedOffline = "Expense deleted in offline mode"

	recentCount = 4
)

type dataSource interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id int, req dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id int) (*models.Expense, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBudgets(ctx context.Context, month string) ([]models.Budget, error)
}

// Cache owns the client's copy of the records. Only an unavailable backend
// triggers the local fallback; validation and not-found answers from a live
// backend are returned unchanged. A Cache is not safe for concurrent use.
type Cache struct {
	source dataSource
	now    func() time.Time

	expenses   []models.Expense
	categories []models.Category
	budgets    []models.Budget
	offline    bool
}

func NewCache(source dataSource, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{source: source, now: now}
}

// Refresh reloads all three collections in parallel. Each one independently
// falls back to its built-in samples when the backend is unavailable.
func (c *Cache) Refresh(ctx context.Context) ([]dto.Notice, error) {
	var (
		expenses   []models.Expense
		categories []models.Category
		budgets    []models.Budget

		expOffline, catOffline, budOffline bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, expOffline, err = fetch(gctx, "expenses", c.source.ListExpenses, func() []models.Expense {
			return store.SampleExpenses(c.now())
		})
		return err
	})
	g.Go(func() error {
		var err error
		categories, catOffline, err = fetch(gctx, "categories", c.source.ListCategories, store.SampleCategories)
		return err
	})
	g.Go(func() error {
		var err error
		list := func(ctx context.Context) ([]models.Budget, error) { return c.source.ListBudgets(ctx, "") }
		budgets, budOffline, err = fetch(gctx, "budgets", list, store.SampleBudgets)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.expenses, c.categories, c.budgets = expenses, categories, budgets
	c.offline = expOffline || catOffline || budOffline

	var notices []dto.Notice
	if expOffline {
		notices = append(notices, newNotice(dto.NoticeWarning, noticeSampleExpenses))
	}
	if catOffline || budOffline {
		notices = append(notices, newNotice(dto.NoticeWarning, noticeSampleCatalog))
	}
	return notices, nil
}

func fetch[T any](ctx context.Context, name string, load func(context.Context) ([]T, error), samples func() []T) ([]T, bool, error) {
	items, err := load(ctx)
	if err == nil {
		return items, false, nil
	}
	if !errs.IsUnavailable(err) {
		return nil, false, err
	}
	logger.FromContext(ctx).Warn("backend unavailable, using sample data", "collection", name, "error", err)
	return samples(), true, nil
}

func (c *Cache) Offline() bool {
	return c.offline
}

func (c *Cache) Expenses() []models.Expense {
	return slices.Clone(c.expenses)
}

func (c *Cache) Categories() []models.Category {
	return slices.Clone(c.categories)
}

func (c *Cache) Budgets() []models.Budget {
	return slices.Clone(c.budgets)
}

// Recent returns the newest cached expenses in cache order.
func (c *Cache) Recent() []models.Expense {
	return slices.Clone(c.expenses[:min(recentCount, len(c.expenses))])
}

// AddExpense creates the expense on the backend and prepends it. When the
// backend is unavailable the record is validated and added locally with the
// next free id.
func (c *Cache) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (models.Expense, dto.Notice, error) {
	created, err := c.source.CreateExpense(ctx, req)
	if err == nil {
		c.expenses = slices.Insert(c.expenses, 0, *created)
		return *created, newNotice(dto.NoticeSuccess, noticeAdded), nil
	}
	if !errs.IsUnavailable(err) {
		return models.Expense{}, dto.Notice{}, err
	}

	e, verr := req.Expense(c.now())
	if verr != nil {
		return models.Expense{}, dto.Notice{}, verr
	}
	e.ID = models.NextExpenseID(c.expenses)
	c.expenses = slices.Insert(c.expenses, 0, *e)
	c.goOffline(ctx, "add", err)
	return *e, newNotice(dto.NoticeWarning, noticeAddedOffline), nil
}

func (c *Cache) UpdateExpense(ctx context.Context, id int, req dto.UpdateExpenseRequest) (models.Expense, dto.Notice, error) {
	updated, err := c.source.UpdateExpense(ctx, id, req)
	if err == nil {
		if i := c.index(id); i >= 0 {
			c.expenses[i] = *updated
		}
		return *updated, newNotice(dto.NoticeSuccess, noticeUpdated), nil
	}
	if !errs.IsUnavailable(err) {
		return models.Expense{}, dto.Notice{}, err
	}

	i := c.index(id)
	if i < 0 {
		return models.Expense{}, dto.Notice{}, errs.NewNotFoundError("Expense not found")
	}
	req.Apply(&c.expenses[i])
	c.goOffline(ctx, "update", err)
	return c.expenses[i], newNotice(dto.NoticeWarning, noticeUpdatedOffline), nil
}

func (c *Cache) DeleteExpense(ctx context.Context, id int) (models.Expense, dto.Notice, error) {
	_, err := c.source.DeleteExpense(ctx, id)
	if err != nil && !errs.IsUnavailable(err) {
		return models.Expense{}, dto.Notice{}, err
	}

	i := c.index(id)
	if i < 0 {
		if err == nil {
			return models.Expense{}, newNotice(dto.NoticeSuccess, noticeDeleted), nil
		}
		return models.Expense{}, dto.Notice{}, errs.NewNotFoundError("Expense not found")
	}
	removed := c.expenses[i]
	c.expenses = slices.Delete(c.expenses, i, i+1)
	if err != nil {
		c.goOffline(ctx, "delete", err)
		return removed, newNotice(dto.NoticeWarning, noticeDeletedOffline), nil
	}
	return removed, newNotice(dto.NoticeSuccess, noticeDeleted), nil
}

func (c *Cache) goOffline(ctx context.Context, op string, err error) {
	c.offline = true
	logger.FromContext(ctx).Warn("backend unavailable, applied locally", "operation", op, "error", err)
}

func (c *Cache) index(id int) int {
	return slices.IndexFunc(c.expenses, func(e models.Expense) bool { return e.ID == id })
}

func newNotice(level dto.NoticeLevel, message string) dto.Notice {
	return dto.Notice{ID: uuid.NewString(), Level: level, Message: message}
}
