package service

import (
	"context"

	"github.com/google/uuid"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/journal"
)

// Menus manages menu records. Besides the CRUD contract it publishes a
// lifecycle event on create and update; an update that leaves the stock
// at exactly zero publishes menu_out_of_stock instead of menu_updated.
type Menus struct {
	store  ports.Store
	cache  ports.Cache
	events *notifier
}

func NewMenus(store ports.Store, publisher ports.Publisher, cache ports.Cache, jr journal.Repository) *Menus {
	return &Menus{
		store:  store,
		cache:  cache,
		events: &notifier{publisher: publisher, journal: jr},
	}
}

type CreateMenuInput struct {
	Name         string
	ImageURL     string
	Price        float64
	Stock        int
	RestaurantID string
	CategoryID   string
}

// UpdateMenuInput carries a partial update; nil fields are left unchanged.
type UpdateMenuInput struct {
	Name         *string
	ImageURL     *string
	Price        *float64
	Stock        *int
	RestaurantID *string
	CategoryID   *string
}

// GetAll returns every menu with its restaurant and category resolved.
func (s *Menus) GetAll(ctx context.Context) ([]domain.MenuDetails, error) {
	return cachedList(ctx, s.cache, keyMenusAll, func(ctx context.Context) ([]domain.MenuDetails, error) {
		menus, err := s.store.Menus().List(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]domain.MenuDetails, 0, len(menus))
		for _, m := range menus {
			detail, err := s.describe(ctx, m)
			if err != nil {
				return nil, err
			}
			out = append(out, *detail)
		}
		return out, nil
	})
}

func (s *Menus) GetByID(ctx context.Context, id string) (*domain.MenuDetails, error) {
	menu, err := s.store.Menus().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.NotFound("Menu not found")
	}
	return s.describe(ctx, *menu)
}

func (s *Menus) Create(ctx context.Context, in CreateMenuInput) (*domain.Menu, error) {
	if in.Name == "" {
		return nil, domain.Validation("name is required")
	}
	if in.ImageURL == "" {
		return nil, domain.Validation("imageUrl is required")
	}
	if in.Price < 0 {
		return nil, domain.Validation("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, domain.Validation("stock must not be negative")
	}
	if err := s.checkReferences(ctx, in.RestaurantID, in.CategoryID); err != nil {
		return nil, err
	}

	menu := &domain.Menu{
		ID:           uuid.NewString(),
		Name:         in.Name,
		ImageURL:     in.ImageURL,
		Price:        in.Price,
		Stock:        in.Stock,
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
	}
	if err := s.store.Menus().Create(ctx, menu); err != nil {
		return nil, err
	}

	s.events.publish(ctx, domain.QueueMenuUpdates, domain.ActionMenuCreated, menu.ID,
		domain.MenuEvent{Action: domain.ActionMenuCreated, Menu: menu})
	invalidate(ctx, s.cache, keyMenusAll)
	return menu, nil
}

func (s *Menus) Update(ctx context.Context, id string, in UpdateMenuInput) (*domain.Menu, error) {
	menu, err := s.store.Menus().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.NotFound("Menu not found")
	}

	if in.Name != nil {
		menu.Name = *in.Name
	}
	if in.ImageURL != nil {
		menu.ImageURL = *in.ImageURL
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.Validation("price must not be negative")
		}
		menu.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.Validation("stock must not be negative")
		}
		menu.Stock = *in.Stock
	}
	if in.RestaurantID != nil {
		menu.RestaurantID = *in.RestaurantID
	}
	if in.CategoryID != nil {
		menu.CategoryID = *in.CategoryID
	}
	if err := s.checkReferences(ctx, menu.RestaurantID, menu.CategoryID); err != nil {
		return nil, err
	}

	if err := s.store.Menus().Update(ctx, menu); err != nil {
		return nil, err
	}

	action := domain.ActionMenuUpdated
	if menu.Stock == 0 {
		action = domain.ActionMenuOutOfStock
	}
	s.events.publish(ctx, domain.QueueMenuUpdates, action, menu.ID,
		domain.MenuEvent{Action: action, Menu: menu})
	invalidate(ctx, s.cache, keyMenusAll)
	return menu, nil
}

func (s *Menus) Delete(ctx context.Context, id string) error {
	invalidate(ctx, s.cache, keyMenusAll)
	return s.store.Menus().Delete(ctx, id)
}

func (s *Menus) describe(ctx context.Context, menu domain.Menu) (*domain.MenuDetails, error) {
	restaurant, err := s.store.Restaurants().Get(ctx, menu.RestaurantID)
	if err != nil {
		return nil, err
	}
	category, err := s.store.Categories().Get(ctx, menu.CategoryID)
	if err != nil {
		return nil, err
	}
	return &domain.MenuDetails{Menu: menu, Restaurant: restaurant, Category: category}, nil
}

func (s *Menus) checkReferences(ctx context.Context, restaurantID, categoryID string) error {
	restaurant, err := s.store.Restaurants().Get(ctx, restaurantID)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return domain.Validation("restaurant not found")
	}
	category, err := s.store.Categories().Get(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.Validation("category not found")
	}
	return nil
}
