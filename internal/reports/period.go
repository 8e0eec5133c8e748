package reports

import (
	"fmt"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
)

// PeriodRange returns the inclusive [start, now] window for a period. all and
// custom are unbounded.
func PeriodRange(p dto.Period, now time.Time) (start, end time.Time, bounded bool) {
	switch p {
	case dto.PeriodWeek:
		return now.AddDate(0, 0, -7), now, true
	case dto.PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now, true
	case dto.PeriodQuarter:
		return firstOfQuarter(now), now, true
	case dto.PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now, true
	}
	return time.Time{}, now, false
}

func PeriodLabel(p dto.Period, now time.Time) string {
	switch p {
	case dto.PeriodWeek:
		start, _, _ := PeriodRange(p, now)
		return shortDate(start) + " - " + shortDate(now)
	case dto.PeriodMonth:
		return now.Format("January 2006")
	case dto.PeriodQuarter:
		return fmt.Sprintf("Q%d %d", quarterOf(now), now.Year())
	case dto.PeriodYear:
		return fmt.Sprintf("%d", now.Year())
	case dto.PeriodCustom:
		return "Custom range"
	}
	return "All time"
}

func firstOfQuarter(t time.Time) time.Time {
	month := time.Month((quarterOf(t)-1)*3 + 1)
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// M/D/YYYY without zero padding.
func shortDate(t time.Time) string {
	return t.Format("1/2/2006")
}
