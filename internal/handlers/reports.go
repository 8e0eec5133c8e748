package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/render"
	"github.com/GregMSThompson/expense-dashboard/internal/response"
)

type reportService interface {
	View(ctx context.Context, filter dto.ReportFilter) (dto.ReportView, error)
	Export(ctx context.Context, filter dto.ReportFilter) ([]models.Expense, dto.ReportView, error)
}

type chartRenderer interface {
	CategoryDonut(items []dto.CategoryBreakdown) ([]byte, error)
	MonthlyTrend(points []dto.MonthlyPoint) ([]byte, error)
}

type reportExporter interface {
	Export(format render.Format, rows []models.Expense, view dto.ReportView) (render.Document, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
	Charts          chartRenderer
	Exporter        reportExporter
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
		Charts:          deps.Charts,
		Exporter:        deps.Exporter,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetReport)
	r.Get("/charts/category.png", h.GetCategoryChart)
	r.Get("/charts/trend.png", h.GetTrendChart)
	r.Get("/export", h.ExportReport)
	return r
}

func (h *reportHandlers) GetReport(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r.URL.Query())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	view, err := h.ReportSvc.View(r.Context(), filter)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

func (h *reportHandlers) GetCategoryChart(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	png, err := h.Charts.CategoryDonut(view.Categories)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteAttachment(w, r, "image/png", "", png)
}

func (h *reportHandlers) GetTrendChart(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	png, err := h.Charts.MonthlyTrend(view.MonthlyTrend)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteAttachment(w, r, "image/png", "", png)
}

func (h *reportHandlers) ExportReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	format, err := render.ParseFormat(query.Get("format"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	filter, err := parseReportFilter(query)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	rows, view, err := h.ReportSvc.Export(r.Context(), filter)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	doc, err := h.Exporter.Export(format, rows, view)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteAttachment(w, r, doc.ContentType, doc.Filename, doc.Body)
}

func (h *reportHandlers) view(w http.ResponseWriter, r *http.Request) (dto.ReportView, bool) {
	filter, err := parseReportFilter(r.URL.Query())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return dto.ReportView{}, false
	}
	view, err := h.ReportSvc.View(r.Context(), filter)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return dto.ReportView{}, false
	}
	return view, true
}

// parseReportFilter reads search, category, sort, period and page from the
// query string. Missing values take the dashboard defaults.
func parseReportFilter(q url.Values) (dto.ReportFilter, error) {
	filter := dto.DefaultReportFilter()
	filter.SearchTerm = q.Get("search")
	if v := q.Get("category"); v != "" {
		filter.Category = v
	}
	if v := q.Get("sort"); v != "" {
		filter.SortKey = dto.SortKey(v)
	}
	if v := q.Get("period"); v != "" {
		filter.Period = dto.Period(v)
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return filter, errs.NewValidationError("page must be an integer")
		}
		filter.Page = page
	}
	return filter.Normalize()
}
