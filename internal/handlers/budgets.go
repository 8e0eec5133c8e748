package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/response"
)

type budgetService interface {
	List(ctx context.Context, month string) ([]models.Budget, error)
	Get(ctx context.Context, category, month string) (*models.Budget, error)
	Upsert(ctx context.Context, req dto.BudgetRequest) (*models.Budget, bool, error)
	Delete(ctx context.Context, category, month string) (*models.Budget, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       budgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

// BudgetRoutes keys budgets by category name, optionally scoped with ?month=YYYY-MM.
func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBudgets)
	r.Post("/", h.UpsertBudget)
	r.Get("/{category}", h.GetBudget)
	r.Put("/{category}", h.UpsertBudget)
	r.Delete("/{category}", h.DeleteBudget)
	return r
}

func (h *budgetHandlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.BudgetSvc.List(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) GetBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := h.BudgetSvc.Get(r.Context(), pathParam(r, "category"), r.URL.Query().Get("month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}

// UpsertBudget answers 201 when the budget is new and 200 when it replaced
// an existing one. On PUT the route's category wins over the body.
func (h *budgetHandlers) UpsertBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if category := pathParam(r, "category"); category != "" {
		req.Category = category
	}
	if req.Month == "" {
		req.Month = r.URL.Query().Get("month")
	}

	budget, created, err := h.BudgetSvc.Upsert(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.ResponseHandler.WriteSuccess(w, r, status, budget)
}

func (h *budgetHandlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := h.BudgetSvc.Delete(r.Context(), pathParam(r, "category"), r.URL.Query().Get("month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}
