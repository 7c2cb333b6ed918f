package service

import (
	"context"

	"github.com/google/uuid"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

// Categories is the plain CRUD service for category records.
type Categories struct {
	store ports.Store
	cache ports.Cache
}

func NewCategories(store ports.Store, cache ports.Cache) *Categories {
	return &Categories{store: store, cache: cache}
}

func (s *Categories) GetAll(ctx context.Context) ([]domain.Category, error) {
	return cachedList(ctx, s.cache, keyCategoriesAll, s.store.Categories().List)
}

func (s *Categories) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.store.Categories().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category not found")
	}
	return category, nil
}

func (s *Categories) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.Validation("name is required")
	}

	category := &domain.Category{ID: uuid.NewString(), Name: name}
	if err := s.store.Categories().Create(ctx, category); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, keyCategoriesAll)
	return category, nil
}

func (s *Categories) Update(ctx context.Context, id string, name *string) (*domain.Category, error) {
	category, err := s.store.Categories().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("Category not found")
	}

	if name != nil {
		category.Name = *name
	}

	if err := s.store.Categories().Update(ctx, category); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, keyCategoriesAll)
	return category, nil
}

func (s *Categories) Delete(ctx context.Context, id string) error {
	invalidate(ctx, s.cache, keyCategoriesAll)
	return s.store.Categories().Delete(ctx, id)
}
