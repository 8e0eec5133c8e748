package handlers

import (
	"log/slog"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/response"
)

type Deps struct {
	Log              *slog.Logger
	ResponseHandler  response.ResponseHandler
	ExpenseSvc       expenseService
	CategorySvc      categoryService
	BudgetSvc        budgetService
	ReportSvc        reportService
	Charts           chartRenderer
	Exporter         reportExporter
	StatisticsMaxAge time.Duration
}
