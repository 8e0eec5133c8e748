package services

import (
	"context"
	"strings"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
	"github.com/GregMSThompson/expense-dashboard/internal/reports"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

type categoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int) (*models.Category, error)
}

type categoryService struct {
	store categoryStore
	meta  reports.CategoryMeta
}

func NewCategoryService(store categoryStore, meta reports.CategoryMeta) *categoryService {
	return &categoryService{store: store, meta: meta}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int) (*models.Category, error) {
	return s.store.Get(ctx, id)
}

// Create fills a missing icon or color from the display table.
func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.NewValidationError("Please provide a category name")
	}
	m := s.meta.Lookup(name)
	c := &models.Category{
		Name:   name,
		Icon:   firstNonEmpty(req.Icon, m.Icon),
		Color:  firstNonEmpty(req.Color, m.Color),
		Budget: req.Budget,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("category created", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id int, req dto.UpdateCategoryRequest) (*models.Category, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errs.NewValidationError("category name cannot be empty")
		}
		c.Name = name
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}
	if req.Color != nil {
		c.Color = *req.Color
	}
	if req.Budget != nil {
		c.Budget = *req.Budget
	}
	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id int) (*models.Category, error) {
	c, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("category deleted", "id", c.ID)
	return c, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
