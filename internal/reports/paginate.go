package reports

import (
	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

// Paginate slices one page out of records. page is clamped to
// [1, max(1, totalPages)] so an out-of-range page never yields an empty
// slice for a non-empty set.
func Paginate(records []models.Expense, page, size int) dto.TablePage {
	if size < 1 {
		size = dto.DefaultPageSize
	}
	n := len(records)
	totalPages := (n + size - 1) / size
	page = min(max(page, 1), max(1, totalPages))

	from := min((page-1)*size, n)
	to := min(from+size, n)

	out := dto.TablePage{
		Rows:       append([]models.Expense{}, records[from:to]...),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalItems: n,
		End:        to,
	}
	if to > from {
		out.Start = from + 1
	}
	return out
}
