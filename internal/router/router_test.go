package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/handlers"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/render"
	"github.com/GregMSThompson/expense-dashboard/internal/reports"
	"github.com/GregMSThompson/expense-dashboard/internal/response"
	"github.com/GregMSThompson/expense-dashboard/internal/services"
	"github.com/GregMSThompson/expense-dashboard/internal/store"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

var routerNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.New("error", logger.NewTestHandler)
	now := func() time.Time { return routerNow }
	meta := reports.DefaultCategoryMeta()

	estore := store.NewExpenseStore(store.SampleExpenses(routerNow))
	cstore := store.NewCategoryStore(store.SampleCategories())
	bstore := store.NewBudgetStore(store.SampleBudgets())

	exserv := services.NewExpenseService(estore, now)

	deps := &handlers.Deps{
		Log:              log,
		ResponseHandler:  response.New(log),
		ExpenseSvc:       exserv,
		CategorySvc:      services.NewCategoryService(cstore, meta),
		BudgetSvc:        services.NewBudgetService(bstore, estore, meta),
		ReportSvc:        services.NewReportService(estore, reports.NewEngine(now)),
		Charts:           render.NewChartGenerator("$"),
		Exporter:         render.NewExporter(now, "$"),
		StatisticsMaxAge: 30 * time.Second,
	}
	srv := httptest.NewServer(NewRouter(deps, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestExpenseLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/expenses", `{"title":"Books","amount":"19.99","category":"shopping"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 5 || created.Amount != 19.99 {
		t.Fatalf("unexpected record %+v", created)
	}

	resp = do(t, http.MethodGet, srv.URL+"/api/expenses", "")
	var all []models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 5 || all[0].ID != 5 {
		t.Fatalf("expected new record first of 5, got %d records", len(all))
	}

	resp = do(t, http.MethodPut, srv.URL+"/api/expenses/5", `{"amount":25}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/api/expenses/5", "")
	var removed models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&removed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if removed.Amount != 25 {
		t.Fatalf("expected updated amount on removed record, got %v", removed.Amount)
	}

	resp = do(t, http.MethodGet, srv.URL+"/api/expenses/5", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var errBody response.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errBody.Message != "Expense not found" {
		t.Fatalf("unexpected message %q", errBody.Message)
	}
}

func TestCreateExpense_MissingFields(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/expenses", `{"title":"No amount","category":"food"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestStatistics_Cacheable(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/statistics", "")
	if got := resp.Header.Get("Cache-Control"); got != "public, max-age=30" {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
	var stats dto.Statistics
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total.Count != 4 || stats.Total.Amount != 282.5 {
		t.Fatalf("unexpected totals %+v", stats.Total)
	}
}

func TestReport_FilteredView(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/reports?category=food", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var view dto.ReportView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Summary.TotalCount != 1 || view.Summary.TotalAmount != 85 {
		t.Fatalf("unexpected summary %+v", view.Summary)
	}

	resp = do(t, http.MethodGet, srv.URL+"/api/reports?sort=name", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad sort, got %d", resp.StatusCode)
	}
}

func TestReport_ExportCSV(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/reports/export?format=csv", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "expense-report-20240310-120000.csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestReport_ChartsOnSeededMonth(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/reports/charts/trend.png",
		"/api/reports/charts/trend.png?period=month",
		"/api/reports/charts/category.png?period=month",
	} {
		resp := do(t, http.MethodGet, srv.URL+path, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
			t.Fatalf("%s: unexpected content type %q", path, ct)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("%s: read body: %v", path, err)
		}
		if !bytes.HasPrefix(body, []byte("\x89PNG")) {
			t.Fatalf("%s: body is not a PNG", path)
		}
	}
}

func TestBudgets_EscapedCategory(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/budgets/Food%20%26%20Dining", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var b models.Budget
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Category != "Food & Dining" || b.Amount != 500 {
		t.Fatalf("unexpected budget %+v", b)
	}

	resp = do(t, http.MethodPut, srv.URL+"/api/budgets/Travel", `{"amount":150}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for a new budget, got %d", resp.StatusCode)
	}
	resp = do(t, http.MethodPut, srv.URL+"/api/budgets/travel", `{"amount":175}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for a replaced budget, got %d", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/expenses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on preflight")
	}
}
