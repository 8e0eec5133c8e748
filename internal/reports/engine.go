// Package reports derives the dashboard's report views from a collection of
// expenses. Everything here is a pure function of its inputs and the injected
// clock; inputs are never mutated.
package reports

import (
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

const customPeriodNotice = "Custom date range picker not implemented in demo"

type Engine struct {
	Now      func() time.Time
	Meta     CategoryMeta
	PageSize int
}

func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		Now:      now,
		Meta:     DefaultCategoryMeta(),
		PageSize: dto.DefaultPageSize,
	}
}

// Compute filters, sorts, summarizes and paginates records for one filter
// state. The filter is normalized first so zero values mean defaults.
func (e *Engine) Compute(records []models.Expense, filter dto.ReportFilter) (dto.ReportView, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return dto.ReportView{}, err
	}
	now := e.now()

	view := dto.ReportView{
		Filter:      filter,
		PeriodLabel: PeriodLabel(filter.Period, now),
	}
	if filter.Period == dto.PeriodCustom {
		view.Notices = append(view.Notices, dto.Notice{Level: dto.NoticeInfo, Message: customPeriodNotice})
	}

	rows := Filter(records, filter, now)
	rows = Sort(rows, filter.SortKey)

	view.Summary = Summarize(rows, e.Meta)
	view.Categories = Breakdown(rows, e.Meta)
	view.MonthlyTrend = MonthlyTrend(rows)
	view.Table = Paginate(rows, filter.Page, e.pageSize())
	view.Filter.Page = view.Table.Page
	return view, nil
}

// Rows returns the filtered and sorted records without pagination, for
// exports and charts.
func (e *Engine) Rows(records []models.Expense, filter dto.ReportFilter) ([]models.Expense, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}
	return Sort(Filter(records, filter, e.now()), filter.SortKey), nil
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) pageSize() int {
	if e.PageSize < 1 {
		return dto.DefaultPageSize
	}
	return e.PageSize
}
