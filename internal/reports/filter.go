package reports

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

// Filter applies category, then search, then period. The custom period is
// recognized but applies no bound. The result is always a new slice.
func Filter(records []models.Expense, f dto.ReportFilter, now time.Time) []models.Expense {
	start, end, bounded := PeriodRange(f.Period, now)
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	out := make([]models.Expense, 0, len(records))
	for _, r := range records {
		if !matchesCategory(r, f.Category) {
			continue
		}
		if !matchesSearch(r, term) {
			continue
		}
		if bounded && (r.Date.Before(start) || r.Date.After(end)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesCategory(r models.Expense, category string) bool {
	if category == "" || category == dto.CategoryAll {
		return true
	}
	return r.Category == category
}

func matchesSearch(r models.Expense, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.Category), term)
}

// Sort returns a stably sorted copy; equal keys keep their input order.
func Sort(records []models.Expense, key dto.SortKey) []models.Expense {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b models.Expense) int {
		switch key {
		case dto.SortDateAsc:
			return a.Date.Compare(b.Date)
		case dto.SortAmountDesc:
			return cmp.Compare(b.Amount, a.Amount)
		case dto.SortAmountAsc:
			return cmp.Compare(a.Amount, b.Amount)
		default:
			return b.Date.Compare(a.Date)
		}
	})
	return out
}
