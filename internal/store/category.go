package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/internal/models"
)

const categoryNotFound = "Category not found"

type categoryStore struct {
	mu         sync.RWMutex
	categories []models.Category
}

func NewCategoryStore(seed []models.Category) *categoryStore {
	return &categoryStore{categories: slices.Clone(seed)}
}

func (s *categoryStore) List(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories), nil
}

func (s *categoryStore) Get(_ context.Context, id int) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return nil, errs.NewNotFoundError(categoryNotFound)
	}
	c := s.categories[i]
	return &c, nil
}

// Create rejects a second category with the same name, ignoring case.
func (s *categoryStore) Create(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return errs.NewAlreadyExistsError("Category already exists")
		}
	}
	c.ID = models.NextCategoryID(s.categories)
	s.categories = append(s.categories, *c)
	return nil
}

func (s *categoryStore) Update(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(c.ID)
	if i < 0 {
		return errs.NewNotFoundError(categoryNotFound)
	}
	s.categories[i] = *c
	return nil
}

func (s *categoryStore) Delete(_ context.Context, id int) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, errs.NewNotFoundError(categoryNotFound)
	}
	removed := s.categories[i]
	s.categories = slices.Delete(s.categories, i, i+1)
	return &removed, nil
}

func (s *categoryStore) index(id int) int {
	return slices.IndexFunc(s.categories, func(c models.Category) bool { return c.ID == id })
}
