package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/render"
)

// --- Stub response handler ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	attachmentCalled      bool
	attachmentContentType string
	attachmentFilename    string
	attachmentBody        []byte

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteAttachment(w http.ResponseWriter, _ *http.Request, contentType, filename string, body []byte) {
	s.attachmentCalled = true
	s.attachmentContentType = contentType
	s.attachmentFilename = filename
	s.attachmentBody = body
	w.WriteHeader(http.StatusOK)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, _, _ string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// --- Stub services ---

type stubExpenseService struct {
	expenses   []models.Expense
	expense    *models.Expense
	stats      dto.Statistics
	err        error
	lastID     int
	lastCreate dto.CreateExpenseRequest
	lastUpdate dto.UpdateExpenseRequest
}

func (s *stubExpenseService) List(_ context.Context) ([]models.Expense, error) {
	return s.expenses, s.err
}

func (s *stubExpenseService) Get(_ context.Context, id int) (*models.Expense, error) {
	s.lastID = id
	return s.expense, s.err
}

func (s *stubExpenseService) Create(_ context.Context, req dto.CreateExpenseRequest) (*models.Expense, error) {
	s.lastCreate = req
	return s.expense, s.err
}

func (s *stubExpenseService) Update(_ context.Context, id int, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	s.lastID = id
	s.lastUpdate = req
	return s.expense, s.err
}

func (s *stubExpenseService) Delete(_ context.Context, id int) (*models.Expense, error) {
	s.lastID = id
	return s.expense, s.err
}

func (s *stubExpenseService) Statistics(_ context.Context) (dto.Statistics, error) {
	return s.stats, s.err
}

type stubCategoryService struct {
	category   *models.Category
	err        error
	lastID     int
	lastCreate dto.CreateCategoryRequest
	lastUpdate dto.UpdateCategoryRequest
}

func (s *stubCategoryService) List(_ context.Context) ([]models.Category, error) {
	if s.category == nil {
		return nil, s.err
	}
	return []models.Category{*s.category}, s.err
}

func (s *stubCategoryService) Get(_ context.Context, id int) (*models.Category, error) {
	s.lastID = id
	return s.category, s.err
}

func (s *stubCategoryService) Create(_ context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	s.lastCreate = req
	return s.category, s.err
}

func (s *stubCategoryService) Update(_ context.Context, id int, req dto.UpdateCategoryRequest) (*models.Category, error) {
	s.lastID = id
	s.lastUpdate = req
	return s.category, s.err
}

func (s *stubCategoryService) Delete(_ context.Context, id int) (*models.Category, error) {
	s.lastID = id
	return s.category, s.err
}

type stubBudgetService struct {
	budget       *models.Budget
	created      bool
	err          error
	lastMonth    string
	lastCategory string
	lastUpsert   dto.BudgetRequest
}

func (s *stubBudgetService) List(_ context.Context, month string) ([]models.Budget, error) {
	s.lastMonth = month
	return nil, s.err
}

func (s *stubBudgetService) Get(_ context.Context, category, month string) (*models.Budget, error) {
	s.lastCategory, s.lastMonth = category, month
	return s.budget, s.err
}

func (s *stubBudgetService) Upsert(_ context.Context, req dto.BudgetRequest) (*models.Budget, bool, error) {
	s.lastUpsert = req
	return s.budget, s.created, s.err
}

func (s *stubBudgetService) Delete(_ context.Context, category, month string) (*models.Budget, error) {
	s.lastCategory, s.lastMonth = category, month
	return s.budget, s.err
}

type stubReportService struct {
	view       dto.ReportView
	rows       []models.Expense
	err        error
	lastFilter dto.ReportFilter
}

func (s *stubReportService) View(_ context.Context, filter dto.ReportFilter) (dto.ReportView, error) {
	s.lastFilter = filter
	return s.view, s.err
}

func (s *stubReportService) Export(_ context.Context, filter dto.ReportFilter) ([]models.Expense, dto.ReportView, error) {
	s.lastFilter = filter
	return s.rows, s.view, s.err
}

type stubCharts struct {
	png []byte
	err error
}

func (s *stubCharts) CategoryDonut(_ []dto.CategoryBreakdown) ([]byte, error) { return s.png, s.err }
func (s *stubCharts) MonthlyTrend(_ []dto.MonthlyPoint) ([]byte, error) { return s.png, s.err }

type stubExporter struct {
	lastFormat render.Format
	lastRows   []models.Expense
}

func (s *stubExporter) Export(format render.Format, rows []models.Expense, _ dto.ReportView) (render.Document, error) {
	s.lastFormat = format
	s.lastRows = rows
	return render.Document{ContentType: "text/csv", Filename: "expense-report.csv", Body: []byte("ID\n")}, nil
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
