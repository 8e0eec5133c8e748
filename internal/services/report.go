package services

import (
	"context"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

type reportExpenseLister interface {
	List(ctx context.Context) ([]models.Expense, error)
}

type reportEngine interface {
	Compute(records []models.Expense, filter dto.ReportFilter) (dto.ReportView, error)
	Rows(records []models.Expense, filter dto.ReportFilter) ([]models.Expense, error)
}

// reportService runs the aggregation over a snapshot of the store.
type reportService struct {
	expenses reportExpenseLister
	engine   reportEngine
}

func NewReportService(expenses reportExpenseLister, engine reportEngine) *reportService {
	return &reportService{expenses: expenses, engine: engine}
}

func (s *reportService) View(ctx context.Context, filter dto.ReportFilter) (dto.ReportView, error) {
	records, err := s.expenses.List(ctx)
	if err != nil {
		return dto.ReportView{}, err
	}
	return s.engine.Compute(records, filter)
}

// Export returns every filtered row, unpaginated, with the matching view.
func (s *reportService) Export(ctx context.Context, filter dto.ReportFilter) ([]models.Expense, dto.ReportView, error) {
	records, err := s.expenses.List(ctx)
	if err != nil {
		return nil, dto.ReportView{}, err
	}
	view, err := s.engine.Compute(records, filter)
	if err != nil {
		return nil, dto.ReportView{}, err
	}
	rows, err := s.engine.Rows(records, filter)
	if err != nil {
		return nil, dto.ReportView{}, err
	}
	return rows, view, nil
}
