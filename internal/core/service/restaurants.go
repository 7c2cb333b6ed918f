package service

import (
	"context"

	"github.com/google/uuid"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

// Restaurants is the plain CRUD service for restaurant records.
type Restaurants struct {
	store ports.Store
	cache ports.Cache
}

func NewRestaurants(store ports.Store, cache ports.Cache) *Restaurants {
	return &Restaurants{store: store, cache: cache}
}

type UpdateRestaurantInput struct {
	Name     *string
	Location *string
}

func (s *Restaurants) GetAll(ctx context.Context) ([]domain.Restaurant, error) {
	return cachedList(ctx, s.cache, keyRestaurantsAll, s.store.Restaurants().List)
}

func (s *Restaurants) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.store.Restaurants().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

func (s *Restaurants) Create(ctx context.Context, name, location string) (*domain.Restaurant, error) {
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	if location == "" {
		return nil, domain.Validation("location is required")
	}

	restaurant := &domain.Restaurant{ID: uuid.NewString(), Name: name, Location: location}
	if err := s.store.Restaurants().Create(ctx, restaurant); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, keyRestaurantsAll)
	return restaurant, nil
}

func (s *Restaurants) Update(ctx context.Context, id string, in UpdateRestaurantInput) (*domain.Restaurant, error) {
	restaurant, err := s.store.Restaurants().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.NotFound("Restaurant not found")
	}

	if in.Name != nil {
		restaurant.Name = *in.Name
	}
	if in.Location != nil {
		restaurant.Location = *in.Location
	}

	if err := s.store.Restaurants().Update(ctx, restaurant); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, keyRestaurantsAll)
	return restaurant, nil
}

func (s *Restaurants) Delete(ctx context.Context, id string) error {
	invalidate(ctx, s.cache, keyRestaurantsAll)
	return s.store.Restaurants().Delete(ctx, id)
}
