// Package ports declares the interfaces the core services depend on.
// Adapters (postgres, rabbitmq, redis) implement them; tests substitute
// in-memory fakes. Services never import an adapter package.
package ports

import (
	"context"

	"foodcourt/internal/core/domain"
)

// Store is the persistence gateway over the six record types.
//
// Lookup methods return (nil, nil) when the record is absent; callers
// decide whether absence is an error. RunInTransaction executes fn against
// a transactional view of the store and rolls every write back if fn
// returns an error, so no partial mutation survives a failure.
type Store interface {
	Restaurants() RestaurantRepository
	Categories() CategoryRepository
	Menus() MenuRepository
	Users() UserRepository
	Orders() OrderRepository

	RunInTransaction(ctx context.Context, fn func(tx Store) error) error
}

type RestaurantRepository interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, r *domain.Restaurant) error
	Update(ctx context.Context, r *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type MenuRepository interface {
	List(ctx context.Context) ([]domain.Menu, error)
	Get(ctx context.Context, id string) (*domain.Menu, error)
	// ListByIDs resolves the given menu ids. Missing ids are simply
	// absent from the result; the caller detects them by length.
	ListByIDs(ctx context.Context, ids []string) ([]domain.Menu, error)
	Create(ctx context.Context, m *domain.Menu) error
	Update(ctx context.Context, m *domain.Menu) error
	Delete(ctx context.Context, id string) error
	// DecrementStock atomically subtracts by from the menu's stock,
	// guarded so stock never goes negative. It reports false when the
	// guard rejects the decrement (insufficient stock or unknown menu).
	DecrementStock(ctx context.Context, id string, by int) (bool, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	// Create inserts the order and all of its lines.
	Create(ctx context.Context, o *domain.Order) error
	ListLines(ctx context.Context, orderID string) ([]domain.OrderLine, error)
	SetStatus(ctx context.Context, id string, status domain.Status) error
}
