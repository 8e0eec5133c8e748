package services

import (
	"errors"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/pkg/helpers"
)

var svcNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return svcNow }

func TestCreateExpense_Defaults(t *testing.T) {
	store := &fakeExpenseStore{expenses: []models.Expense{{ID: 1}, {ID: 3}}}
	svc := NewExpenseService(store, clock)

	e, err := svc.Create(helpers.TestCtx(), dto.CreateExpenseRequest{Title: "Coffee", Amount: 4.5, Category: "food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != 4 {
		t.Fatalf("expected id 4, got %d", e.ID)
	}
	if !e.Date.Equal(svcNow) {
		t.Fatalf("expected date to default to now, got %v", e.Date)
	}
	if e.Notes != "" {
		t.Fatalf("expected empty notes, got %q", e.Notes)
	}
	if store.expenses[0].ID != 4 {
		t.Fatal("expected new expense to be first")
	}
}

func TestCreateExpense_UsesGivenDateAndNotes(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseStore{}, clock)
	date := dto.Date{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	e, err := svc.Create(helpers.TestCtx(), dto.CreateExpenseRequest{
		Title: "Rent", Amount: 900, Category: "utilities", Date: &date, Notes: helpers.Ptr("January"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Date.Equal(date.Time) || e.Notes != "January" {
		t.Fatalf("unexpected expense: %+v", e)
	}
}

func TestCreateExpense_MissingFields(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseStore{}, clock)
	cases := []dto.CreateExpenseRequest{
		{Amount: 5, Category: "food"},
		{Title: "x", Category: "food"},
		{Title: "x", Amount: 5, Category: "  "},
	}
	for _, req := range cases {
		_, err := svc.Create(helpers.TestCtx(), req)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected validation error for %+v, got %v", req, err)
		}
		if ve.Message != "Please provide title, amount, and category" {
			t.Fatalf("unexpected message %q", ve.Message)
		}
	}
}

func TestUpdateExpense_PartialFields(t *testing.T) {
	orig := models.Expense{ID: 2, Title: "Old", Amount: 10, Category: "food", Date: svcNow, Notes: "keep?"}
	store := &fakeExpenseStore{expenses: []models.Expense{orig}}
	svc := NewExpenseService(store, clock)

	e, err := svc.Update(helpers.TestCtx(), 2, dto.UpdateExpenseRequest{Amount: 25, Notes: helpers.Ptr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Title != "Old" || e.Category != "food" || !e.Date.Equal(svcNow) {
		t.Fatalf("untouched fields changed: %+v", e)
	}
	if e.Amount != 25 {
		t.Fatalf("expected amount 25, got %v", e.Amount)
	}
	if e.Notes != "" {
		t.Fatalf("expected notes cleared, got %q", e.Notes)
	}
}

func TestUpdateExpense_NotFound(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseStore{}, clock)
	_, err := svc.Update(helpers.TestCtx(), 7, dto.UpdateExpenseRequest{Title: "x"})
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteExpense_ReturnsRemoved(t *testing.T) {
	store := &fakeExpenseStore{expenses: []models.Expense{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}}
	svc := NewExpenseService(store, clock)
	e, err := svc.Delete(helpers.TestCtx(), 2)
	if err != nil || e.Title != "b" {
		t.Fatalf("unexpected result %+v, %v", e, err)
	}
	if len(store.expenses) != 1 {
		t.Fatalf("expected one remaining, got %d", len(store.expenses))
	}
}

func TestStatistics(t *testing.T) {
	store := &fakeExpenseStore{expenses: []models.Expense{
		{ID: 1, Amount: 70, Category: "food", Date: svcNow.Add(-time.Hour)},
		{ID: 2, Amount: 14, Category: "food", Date: svcNow.AddDate(0, 0, -6)},
		{ID: 3, Amount: 100, Category: "utilities", Date: svcNow.AddDate(0, 0, -20)},
		{ID: 4, Amount: 500, Category: "travel", Date: svcNow.AddDate(0, 0, -45)},
	}}
	svc := NewExpenseService(store, clock)

	stats, err := svc.Statistics(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total.Count != 4 || stats.Total.Amount != 684 {
		t.Fatalf("unexpected total: %+v", stats.Total)
	}
	if stats.Recent.Count != 3 || stats.Recent.Amount != 184 {
		t.Fatalf("unexpected recent: %+v", stats.Recent)
	}
	if stats.Categories["food"].Count != 2 || stats.CategoryTotals["food"] != 84 {
		t.Fatalf("unexpected food stats: %+v / %v", stats.Categories["food"], stats.CategoryTotals["food"])
	}
	if stats.AvgDailySpend != 12 {
		t.Fatalf("expected (70+14)/7 = 12, got %v", stats.AvgDailySpend)
	}
}

func TestStatistics_Empty(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseStore{}, clock)
	stats, err := svc.Statistics(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AvgDailySpend != 0 || stats.Total.Count != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestStatistics_StoreError(t *testing.T) {
	svc := NewExpenseService(&fakeExpenseStore{listErr: errors.New("boom")}, clock)
	if _, err := svc.Statistics(helpers.TestCtx()); err == nil {
		t.Fatal("expected error")
	}
}
