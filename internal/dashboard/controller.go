package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

type ActionKind string

const (
	ActionSetSearch   ActionKind = "set-search"
	ActionSetCategory ActionKind = "set-category"
	ActionSetSort     ActionKind = "set-sort"
	ActionSetPeriod   ActionKind = "set-period"
	ActionGotoPage    ActionKind = "goto-page"
	ActionNextPage    ActionKind = "next-page"
	ActionPrevPage    ActionKind = "prev-page"
)

// Action is one user interaction with the report. Value carries the new
// search term, category, sort key or period; Page is used by ActionGotoPage.
type Action struct {
	Kind  ActionKind
	Value string
	Page  int
}

func SetSearch(term string) Action { return Action{Kind: ActionSetSearch, Value: term} }
func SetCategory(category string) Action { return Action{Kind: ActionSetCategory, Value: category} }
func SetSort(key dto.SortKey) Action { return Action{Kind: ActionSetSort, Value: string(key)} }
func SetPeriod(p dto.Period) Action { return Action{Kind: ActionSetPeriod, Value: string(p)} }
func GotoPage(page int) Action { return Action{Kind: ActionGotoPage, Page: page} }
func NextPage() Action { return Action{Kind: ActionNextPage} }
func PrevPage() Action { return Action{Kind: ActionPrevPage} }

// Reduce applies an action to the filter state. Filter, sort and period
// changes reset the page to 1; page navigation does not touch the filters.
// An invalid action leaves the state unchanged.
func Reduce(state dto.ReportFilter, a Action) (dto.ReportFilter, error) {
	next := state
	switch a.Kind {
	case ActionSetSearch:
		next.SearchTerm = a.Value
		next.Page = 1
	case ActionSetCategory:
		next.Category = a.Value
		next.Page = 1
	case ActionSetSort:
		next.SortKey = dto.SortKey(a.Value)
		next.Page = 1
	case ActionSetPeriod:
		next.Period = dto.Period(a.Value)
		next.Page = 1
	case ActionGotoPage:
		next.Page = a.Page
	case ActionNextPage:
		next.Page++
	case ActionPrevPage:
		next.Page--
	default:
		return state, errs.NewValidationError("unknown action: " + string(a.Kind))
	}

	next, err := next.Normalize()
	if err != nil {
		return state, err
	}
	return next, nil
}

type reportEngine interface {
	Compute(records []models.Expense, filter dto.ReportFilter) (dto.ReportView, error)
}

// Controller is the single owner of the dashboard state: the cached records
// and the current filter. Every action and mutation returns a view computed
// from scratch.
type Controller struct {
	cache  *Cache
	engine reportEngine
	state  dto.ReportFilter
}

func NewController(cache *Cache, engine reportEngine) *Controller {
	return &Controller{cache: cache, engine: engine, state: dto.DefaultReportFilter()}
}

func (c *Controller) State() dto.ReportFilter {
	return c.state
}

func (c *Controller) Cache() *Cache {
	return c.cache
}

// Load refreshes the cache and returns the view for the current state,
// carrying any offline notices.
func (c *Controller) Load(ctx context.Context) (dto.ReportView, error) {
	notices, err := c.cache.Refresh(ctx)
	if err != nil {
		return dto.ReportView{}, err
	}
	return c.view(notices...)
}

func (c *Controller) View() (dto.ReportView, error) {
	return c.view()
}

func (c *Controller) Dispatch(a Action) (dto.ReportView, error) {
	next, err := Reduce(c.state, a)
	if err != nil {
		return dto.ReportView{}, err
	}
	c.state = next
	return c.view()
}

func (c *Controller) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (dto.ReportView, error) {
	_, notice, err := c.cache.AddExpense(ctx, req)
	if err != nil {
		return dto.ReportView{}, err
	}
	return c.view(notice)
}

func (c *Controller) UpdateExpense(ctx context.Context, id int, req dto.UpdateExpenseRequest) (dto.ReportView, error) {
	_, notice, err := c.cache.UpdateExpense(ctx, id, req)
	if err != nil {
		return dto.ReportView{}, err
	}
	return c.view(notice)
}

func (c *Controller) DeleteExpense(ctx context.Context, id int) (dto.ReportView, error) {
	_, notice, err := c.cache.DeleteExpense(ctx, id)
	if err != nil {
		return dto.ReportView{}, err
	}
	return c.view(notice)
}

func (c *Controller) view(notices ...dto.Notice) (dto.ReportView, error) {
	view, err := c.engine.Compute(c.cache.Expenses(), c.state)
	if err != nil {
		return dto.ReportView{}, err
	}
	// the engine clamps the page; keep the state in step with what is shown
	c.state = view.Filter
	for i := range view.Notices {
		if view.Notices[i].ID == "" {
			view.Notices[i].ID = uuid.NewString()
		}
	}
	view.Notices = append(notices, view.Notices...)
	return view, nil
}
