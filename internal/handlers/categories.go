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

type categoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id int, req dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int) (*models.Category, error)
}

type categoryHandlers struct {
	ResponseHandler response.ResponseHandler
	CategorySvc     categoryService
}

func NewCategoryHandlers(deps *Deps) *categoryHandlers {
	return &categoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		CategorySvc:     deps.CategorySvc,
	}
}

func (h *categoryHandlers) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCategories)
	r.Post("/", h.CreateCategory)
	r.Get("/{id}", h.GetCategory)
	r.Put("/{id}", h.UpdateCategory)
	r.Delete("/{id}", h.DeleteCategory)
	return r
}

func (h *categoryHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategorySvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, categories)
}

func (h *categoryHandlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	category, err := h.CategorySvc.Get(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, category)
}

func (h *categoryHandlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	category, err := h.CategorySvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, category)
}

func (h *categoryHandlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	category, err := h.CategorySvc.Update(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, category)
}

func (h *categoryHandlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	category, err := h.CategorySvc.Delete(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, category)
}
