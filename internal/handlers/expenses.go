package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/response"
)

type expenseService interface {
	List(ctx context.Context) ([]models.Expense, error)
	Get(ctx context.Context, id int) (*models.Expense, error)
	Create(ctx context.Context, req dto.CreateExpenseRequest) (*models.Expense, error)
	Update(ctx context.Context, id int, req dto.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, id int) (*models.Expense, error)
	Statistics(ctx context.Context) (dto.Statistics, error)
}

type expenseHandlers struct {
	ResponseHandler  response.ResponseHandler
	ExpenseSvc       expenseService
	StatisticsMaxAge time.Duration
}

func NewExpenseHandlers(deps *Deps) *expenseHandlers {
	return &expenseHandlers{
		ResponseHandler:  deps.ResponseHandler,
		ExpenseSvc:       deps.ExpenseSvc,
		StatisticsMaxAge: deps.StatisticsMaxAge,
	}
}

func (h *expenseHandlers) ExpenseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListExpenses)
	r.Post("/", h.CreateExpense)
	r.Get("/{id}", h.GetExpense)
	r.Put("/{id}", h.UpdateExpense)
	r.Delete("/{id}", h.DeleteExpense)
	return r
}

func (h *expenseHandlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.ExpenseSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expenses)
}

func (h *expenseHandlers) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	expense, err := h.ExpenseSvc.Get(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	expense, err := h.ExpenseSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, expense)
}

func (h *expenseHandlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var req dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	expense, err := h.ExpenseSvc.Update(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

// DeleteExpense responds with the removed record.
func (h *expenseHandlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	expense, err := h.ExpenseSvc.Delete(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ExpenseSvc.Statistics(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if h.StatisticsMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.StatisticsMaxAge.Seconds())))
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, stats)
}
