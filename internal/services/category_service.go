// internal/services/category_service.go
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/store"
)

type CategoryInput struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

type CategoryService struct {
	store   store.Store
	tracker *forms.Tracker
	// creating serializes creates so each new category gets its own order.
	creating sync.Mutex
}

func NewCategoryService(s store.Store, tracker *forms.Tracker) *CategoryService {
	if tracker == nil {
		tracker = forms.NewTracker()
	}
	return &CategoryService{store: s, tracker: tracker}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.store.GetCategory(ctx, id)
}

// Create adds an active category at the end of the current ordering.
// submitter identifies the form instance.
func (s *CategoryService) Create(ctx context.Context, submitter string, in CategoryInput) (*models.Category, error) {
	release, err := s.tracker.Begin("category:new:" + submitter)
	if err != nil {
		return nil, err
	}
	defer release()

	s.creating.Lock()
	defer s.creating.Unlock()

	form := forms.NewCategoryForm()
	if in.Name != nil {
		form.SetName(*in.Name)
	}

	existing, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	form.SetOrder(len(existing))

	category, err := form.Category()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	id, err := s.store.CreateCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return s.store.GetCategory(ctx, id)
}

// Update changes name, active flag or order. The slug keeps its creation value.
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (*models.Category, error) {
	release, err := s.tracker.Begin("category:" + id)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	form := forms.EditCategoryForm(existing)
	if in.Name != nil {
		form.SetName(*in.Name)
	}
	if in.IsActive != nil {
		form.SetActive(*in.IsActive)
	}
	if in.Order != nil {
		form.SetOrder(*in.Order)
	}

	update, err := form.Update()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	if err := s.store.UpdateCategory(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return s.store.GetCategory(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	release, err := s.tracker.Begin("category:" + id)
	if err != nil {
		return err
	}
	defer release()

	if err := s.store.DeleteCategory(context.WithoutCancel(ctx), id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
