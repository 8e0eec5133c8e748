package store

import (
	"sync"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/pkg/helpers"
)

func TestExpenseStore_CreatePrependsWithNextID(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewExpenseStore([]models.Expense{{ID: 1}, {ID: 3}})

	e := &models.Expense{Title: "Coffee", Amount: 4, Category: "food"}
	if err := s.Create(ctx, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != 4 {
		t.Fatalf("expected id 4, got %d", e.ID)
	}
	all, _ := s.List(ctx)
	if len(all) != 3 || all[0].ID != 4 {
		t.Fatalf("expected new record first, got %+v", all)
	}
}

func TestExpenseStore_CreateOnEmpty(t *testing.T) {
	s := NewExpenseStore(nil)
	e := &models.Expense{Title: "First"}
	_ = s.Create(helpers.TestCtx(), e)
	if e.ID != 1 {
		t.Fatalf("expected id 1, got %d", e.ID)
	}
}

func TestExpenseStore_GetUpdateDelete(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewExpenseStore(SampleExpenses(time.Now()))

	got, err := s.Get(ctx, 2)
	if err != nil || got.Title != "Grocery Shopping" {
		t.Fatalf("unexpected get result %+v, %v", got, err)
	}

	got.Title = "Farmers Market"
	if err := s.Update(ctx, got); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	again, _ := s.Get(ctx, 2)
	if again.Title != "Farmers Market" {
		t.Fatalf("update not applied, got %q", again.Title)
	}

	removed, err := s.Delete(ctx, 2)
	if err != nil || removed.ID != 2 {
		t.Fatalf("unexpected delete result %+v, %v", removed, err)
	}
	if _, err := s.Get(ctx, 2); !errs.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestExpenseStore_NotFound(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewExpenseStore(nil)
	if _, err := s.Get(ctx, 9); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := s.Update(ctx, &models.Expense{ID: 9}); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.Delete(ctx, 9); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExpenseStore_ListIsACopy(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewExpenseStore([]models.Expense{{ID: 1, Title: "a"}})
	all, _ := s.List(ctx)
	all[0].Title = "mutated"
	got, _ := s.Get(ctx, 1)
	if got.Title != "a" {
		t.Fatal("List leaked internal storage")
	}
}

func TestExpenseStore_ConcurrentCreatesKeepIDsUnique(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewExpenseStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Create(ctx, &models.Expense{Title: "x"})
		}()
	}
	wg.Wait()

	all, _ := s.List(ctx)
	seen := map[int]bool{}
	for _, e := range all {
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 records, got %d", len(seen))
	}
}

func TestCategoryStore_CRUD(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewCategoryStore(SampleCategories())

	c := &models.Category{Name: "Health", Icon: "fa-heartbeat"}
	if err := s.Create(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 6 {
		t.Fatalf("expected id 6, got %d", c.ID)
	}
	if err := s.Create(ctx, &models.Category{Name: "health"}); err == nil {
		t.Fatal("expected duplicate name to be rejected")
	}
	if _, err := s.Delete(ctx, 6); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := s.Get(ctx, 6); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBudgetStore_UpsertByCategoryName(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBudgetStore(SampleBudgets())

	created, err := s.Upsert(ctx, &models.Budget{Category: "groceries", Amount: 450})
	if err != nil || created {
		t.Fatalf("expected replace of existing budget, created=%v err=%v", created, err)
	}
	b, _ := s.Get(ctx, "Groceries", "")
	if b.Amount != 450 || b.ID != 4 {
		t.Fatalf("unexpected budget after upsert: %+v", b)
	}

	created, _ = s.Upsert(ctx, &models.Budget{Category: "Groceries", Amount: 300, Month: "2024-02"})
	if !created {
		t.Fatal("expected a month-specific budget to be created")
	}
	if _, err := s.Delete(ctx, "nope", ""); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
