package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/pkg/helpers"
)

const (
	recentWindow   = 30 * 24 * time.Hour
	avgDailyWindow = 7
)

// Statistics summarizes the whole store. Unlike the report view, the recent
// and daily-average figures use fixed windows ending now.
func (s *expenseService) Statistics(ctx context.Context) (dto.Statistics, error) {
	expenses, err := s.store.List(ctx)
	if err != nil {
		return dto.Statistics{}, err
	}
	return buildStatistics(expenses, s.now()), nil
}

func buildStatistics(expenses []models.Expense, now time.Time) dto.Statistics {
	stats := dto.Statistics{
		Categories:     map[string]dto.CountAmount{},
		CategoryTotals: map[string]float64{},
	}

	recentFrom := now.Add(-recentWindow)
	weekFrom := now.AddDate(0, 0, -avgDailyWindow)
	var lastWeek float64

	for _, e := range expenses {
		stats.Total.Count++
		stats.Total.Amount += e.Amount

		c := stats.Categories[e.Category]
		c.Count++
		c.Amount += e.Amount
		stats.Categories[e.Category] = c
		stats.CategoryTotals[e.Category] += e.Amount

		if !e.Date.Before(recentFrom) {
			stats.Recent.Count++
			stats.Recent.Amount += e.Amount
		}
		if !e.Date.Before(weekFrom) {
			lastWeek += e.Amount
		}
	}

	if len(expenses) > 0 {
		stats.AvgDailySpend = helpers.Round2(lastWeek / avgDailyWindow)
	}
	return stats
}
