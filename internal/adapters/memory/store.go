// Package memory is an in-memory implementation of ports.Store intended
// for tests and local development only. Do NOT use in production.
//
// RunInTransaction snapshots the whole dataset and restores it when the
// callback fails, giving tests the same all-or-nothing behavior as the
// Postgres adapter.
package memory

import (
	"context"
	"sort"
	"sync"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

type dataset struct {
	restaurants map[string]domain.Restaurant
	categories  map[string]domain.Category
	menus       map[string]domain.Menu
	users       map[string]domain.User
	orders      map[string]domain.Order
	lines       map[string][]domain.OrderLine // keyed by order id
}

func newDataset() *dataset {
	return &dataset{
		restaurants: make(map[string]domain.Restaurant),
		categories:  make(map[string]domain.Category),
		menus:       make(map[string]domain.Menu),
		users:       make(map[string]domain.User),
		orders:      make(map[string]domain.Order),
		lines:       make(map[string][]domain.OrderLine),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.restaurants {
		c.restaurants[k] = v
	}
	for k, v := range d.categories {
		c.categories[k] = v
	}
	for k, v := range d.menus {
		c.menus[k] = v
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.orders {
		v.Lines = append([]domain.OrderLine(nil), v.Lines...)
		c.orders[k] = v
	}
	for k, v := range d.lines {
		c.lines[k] = append([]domain.OrderLine(nil), v...)
	}
	return c
}

// Store implements ports.Store over process memory.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

var _ ports.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) Restaurants() ports.RestaurantRepository { return &restaurantRepo{s} }
func (s *Store) Categories() ports.CategoryRepository    { return &categoryRepo{s} }
func (s *Store) Menus() ports.MenuRepository             { return &menuRepo{s} }
func (s *Store) Users() ports.UserRepository             { return &userRepo{s} }
func (s *Store) Orders() ports.OrderRepository           { return &orderRepo{s} }

func (s *Store) RunInTransaction(ctx context.Context, fn func(tx ports.Store) error) error {
	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

type restaurantRepo struct{ s *Store }

func (r *restaurantRepo) List(ctx context.Context) ([]domain.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Restaurant, 0, len(r.s.data.restaurants))
	for _, rec := range r.s.data.restaurants {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *restaurantRepo) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.restaurants[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *restaurantRepo) Create(ctx context.Context, rec *domain.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.restaurants[rec.ID] = *rec
	return nil
}

func (r *restaurantRepo) Update(ctx context.Context, rec *domain.Restaurant) error {
	return r.Create(ctx, rec)
}

func (r *restaurantRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.restaurants, id)
	return nil
}

type categoryRepo struct{ s *Store }

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Category, 0, len(r.s.data.categories))
	for _, rec := range r.s.data.categories {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *categoryRepo) Get(ctx context.Context, id string) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.categories[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *categoryRepo) Create(ctx context.Context, rec *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.categories[rec.ID] = *rec
	return nil
}

func (r *categoryRepo) Update(ctx context.Context, rec *domain.Category) error {
	return r.Create(ctx, rec)
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.categories, id)
	return nil
}

type menuRepo struct{ s *Store }

func (r *menuRepo) List(ctx context.Context) ([]domain.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Menu, 0, len(r.s.data.menus))
	for _, rec := range r.s.data.menus {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *menuRepo) Get(ctx context.Context, id string) (*domain.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.menus[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *menuRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Menu
	for _, id := range ids {
		if rec, ok := r.s.data.menus[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *menuRepo) Create(ctx context.Context, rec *domain.Menu) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.menus[rec.ID] = *rec
	return nil
}

func (r *menuRepo) Update(ctx context.Context, rec *domain.Menu) error {
	return r.Create(ctx, rec)
}

func (r *menuRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.menus, id)
	return nil
}

func (r *menuRepo) DecrementStock(ctx context.Context, id string, by int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.menus[id]
	if !ok || rec.Stock < by {
		return false, nil
	}
	rec.Stock -= by
	r.s.data.menus[id] = rec
	return true, nil
}

type userRepo struct{ s *Store }

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.data.users {
		if rec.Username == username {
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Create(ctx context.Context, rec *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.users[rec.ID] = *rec
	return nil
}

type orderRepo struct{ s *Store }

func (r *orderRepo) List(ctx context.Context) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Order, 0, len(r.s.data.orders))
	for _, rec := range r.s.data.orders {
		rec.Lines = nil
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *orderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.orders[id]
	if !ok {
		return nil, nil
	}
	rec.Lines = append([]domain.OrderLine(nil), rec.Lines...)
	return &rec, nil
}

func (r *orderRepo) Create(ctx context.Context, rec *domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *rec
	stored.Lines = append([]domain.OrderLine(nil), rec.Lines...)
	r.s.data.orders[rec.ID] = stored
	r.s.data.lines[rec.ID] = append([]domain.OrderLine(nil), rec.Lines...)
	return nil
}

func (r *orderRepo) ListLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]domain.OrderLine(nil), r.s.data.lines[orderID]...), nil
}

func (r *orderRepo) SetStatus(ctx context.Context, id string, status domain.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.data.orders[id]
	if !ok {
		return nil
	}
	rec.Status = status
	r.s.data.orders[id] = rec
	return nil
}
