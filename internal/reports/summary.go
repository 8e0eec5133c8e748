package reports

import (
	"math"
	"sort"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

// categorySums keeps per-category totals in first-seen order.
type categorySums struct {
	order  []string
	amount map[string]float64
	count  map[string]int
}

func sumByCategory(records []models.Expense) categorySums {
	s := categorySums{amount: map[string]float64{}, count: map[string]int{}}
	for _, r := range records {
		if _, ok := s.amount[r.Category]; !ok {
			s.order = append(s.order, r.Category)
		}
		s.amount[r.Category] += r.Amount
		s.count[r.Category]++
	}
	return s
}

func Summarize(records []models.Expense, meta CategoryMeta) dto.Summary {
	sums := sumByCategory(records)
	summary := dto.Summary{
		TotalCount:     len(records),
		CategoryTotals: make(map[string]float64, len(sums.order)),
	}
	for _, r := range records {
		summary.TotalAmount += r.Amount
	}
	for _, c := range sums.order {
		summary.CategoryTotals[c] = sums.amount[c]
	}
	summary.AvgDailySpend = avgDailySpend(records, summary.TotalAmount)
	summary.TopCategory = topCategory(sums, summary.TotalAmount, meta)
	return summary
}

// avgDailySpend divides by the record set's own calendar-day span, inclusive.
func avgDailySpend(records []models.Expense, total float64) float64 {
	if len(records) == 0 {
		return 0
	}
	minDay, maxDay := calendarDay(records[0].Date), calendarDay(records[0].Date)
	for _, r := range records[1:] {
		d := calendarDay(r.Date)
		if d.Before(minDay) {
			minDay = d
		}
		if d.After(maxDay) {
			maxDay = d
		}
	}
	span := int(math.Round(maxDay.Sub(minDay).Hours()/24)) + 1
	return total / float64(max(1, span))
}

// calendarDay drops the clock so spans count days, not 24h blocks.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// topCategory keeps the first category to reach the highest sum.
func topCategory(sums categorySums, total float64, meta CategoryMeta) *dto.TopCategory {
	if len(sums.order) == 0 {
		return nil
	}
	best := sums.order[0]
	for _, c := range sums.order[1:] {
		if sums.amount[c] > sums.amount[best] {
			best = c
		}
	}
	return &dto.TopCategory{
		Category:   best,
		Name:       meta.Lookup(best).Name,
		Amount:     sums.amount[best],
		Percentage: percentage(sums.amount[best], total),
	}
}

// Breakdown lists categories by amount, largest first; ties keep first-seen
// order.
func Breakdown(records []models.Expense, meta CategoryMeta) []dto.CategoryBreakdown {
	sums := sumByCategory(records)
	var total float64
	for _, c := range sums.order {
		total += sums.amount[c]
	}

	out := make([]dto.CategoryBreakdown, 0, len(sums.order))
	for _, c := range sums.order {
		m := meta.Lookup(c)
		out = append(out, dto.CategoryBreakdown{
			Category:   c,
			Name:       m.Name,
			Icon:       m.Icon,
			Color:      m.Color,
			Amount:     sums.amount[c],
			Count:      sums.count[c],
			Percentage: percentage(sums.amount[c], total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

// MonthlyTrend buckets by "YYYY-MM", ascending.
func MonthlyTrend(records []models.Expense) []dto.MonthlyPoint {
	buckets := map[string]float64{}
	labels := map[string]string{}
	for _, r := range records {
		key := r.Date.Format("2006-01")
		buckets[key] += r.Amount
		labels[key] = r.Date.Format("January 2006")
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]dto.MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, dto.MonthlyPoint{Month: k, Label: labels[k], Amount: buckets[k]})
	}
	return out
}

func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
