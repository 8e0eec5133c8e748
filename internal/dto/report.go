package dto

import (
	"strings"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

type SortKey string

const (
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortAmountDesc SortKey = "amount-desc"
	SortAmountAsc  SortKey = "amount-asc"
)

type Period string

const (
	PeriodAll     Period = "all"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodCustom  Period = "custom"
)

const (
	CategoryAll     = "all"
	DefaultPageSize = 5
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// ReportFilter is the view state the aggregation runs against.
type ReportFilter struct {
	SearchTerm string  `json:"search"`
	Category   string  `json:"category"`
	SortKey    SortKey `json:"sort"`
	Period     Period  `json:"period"`
	Page       int     `json:"page"`
}

func DefaultReportFilter() ReportFilter {
	return ReportFilter{
		Category: CategoryAll,
		SortKey:  SortDateDesc,
		Period:   PeriodAll,
		Page:     1,
	}
}

// Normalize fills defaults and rejects unknown sort keys or periods.
func (f ReportFilter) Normalize() (ReportFilter, error) {
	if strings.TrimSpace(f.Category) == "" {
		f.Category = CategoryAll
	}
	if f.SortKey == "" {
		f.SortKey = SortDateDesc
	}
	if f.Period == "" {
		f.Period = PeriodAll
	}
	if f.Page < 1 {
		f.Page = 1
	}
	switch f.SortKey {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
	default:
		return f, errs.NewValidationError("sort must be one of: date-desc, date-asc, amount-desc, amount-asc")
	}
	switch f.Period {
	case PeriodAll, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodCustom:
	default:
		return f, errs.NewValidationError("period must be one of: all, week, month, quarter, year, custom")
	}
	return f, nil
}

type Notice struct {
	ID      string      `json:"id,omitempty"`
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

type TopCategory struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type Summary struct {
	TotalAmount    float64            `json:"totalAmount"`
	TotalCount     int                `json:"totalCount"`
	AvgDailySpend  float64            `json:"avgDailySpend"`
	TopCategory    *TopCategory       `json:"topCategory"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
}

type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MonthlyPoint struct {
	Month  string  `json:"month"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type TablePage struct {
	Rows       []models.Expense `json:"rows"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	TotalItems int              `json:"totalItems"`
	Start      int              `json:"start"`
	End        int              `json:"end"`
}

// ReportView is everything the dashboard renders for one filter state.
type ReportView struct {
	Filter       ReportFilter        `json:"filter"`
	PeriodLabel  string              `json:"periodLabel"`
	Summary      Summary             `json:"summary"`
	Categories   []CategoryBreakdown `json:"categories"`
	MonthlyTrend []MonthlyPoint      `json:"monthlyTrend"`
	Table        TablePage           `json:"table"`
	Notices      []Notice            `json:"notices,omitempty"`
}
