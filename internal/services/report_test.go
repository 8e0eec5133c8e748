package services

import (
	"errors"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/reports"
	"github.com/GregMSThompson/expense-dashboard/pkg/helpers"
)

func TestReportView_UsesStoreSnapshot(t *testing.T) {
	store := &fakeExpenseStore{expenses: []models.Expense{
		{ID: 1, Amount: 10, Category: "food", Date: svcNow},
		{ID: 2, Amount: 30, Category: "groceries", Date: svcNow.Add(-time.Hour)},
	}}
	svc := NewReportService(store, reports.NewEngine(clock))

	view, err := svc.View(helpers.TestCtx(), dto.ReportFilter{SortKey: dto.SortAmountDesc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Summary.TotalAmount != 40 || view.Table.Rows[0].ID != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestReportExport_ReturnsAllRows(t *testing.T) {
	var expenses []models.Expense
	for i := 1; i <= 12; i++ {
		expenses = append(expenses, models.Expense{ID: i, Amount: 1, Category: "food", Date: svcNow})
	}
	svc := NewReportService(&fakeExpenseStore{expenses: expenses}, reports.NewEngine(clock))

	rows, view, err := svc.Export(helpers.TestCtx(), dto.DefaultReportFilter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 12 || len(view.Table.Rows) != 5 {
		t.Fatalf("expected 12 rows and a 5-row page, got %d / %d", len(rows), len(view.Table.Rows))
	}
}

func TestReportView_StoreError(t *testing.T) {
	svc := NewReportService(&fakeExpenseStore{listErr: errors.New("boom")}, reports.NewEngine(clock))
	if _, err := svc.View(helpers.TestCtx(), dto.DefaultReportFilter()); err == nil {
		t.Fatal("expected error")
	}
}
