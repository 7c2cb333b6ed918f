package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/journal"
)

// Orders is the order lifecycle engine: it creates validated orders with
// atomic stock reservation and advances order status through the fixed
// received → preparing → ready → picked up → delivered sequence.
type Orders struct {
	store  ports.Store
	cache  ports.Cache
	events *notifier
}

func NewOrders(store ports.Store, publisher ports.Publisher, cache ports.Cache, jr journal.Repository) *Orders {
	return &Orders{
		store:  store,
		cache:  cache,
		events: &notifier{publisher: publisher, journal: jr},
	}
}

// CreateOrderLine is one requested menu in a creation request.
type CreateOrderLine struct {
	MenuID string
	Count  int
}

// Create validates the request, reserves stock, and persists the order
// with status "received".
//
// Stock reservation and order insertion happen in one transaction: the
// per-menu decrement is guarded so it fails on insufficient stock, and
// any failure rolls the whole transaction back. No partial decrement
// survives a failed insert, and vice versa. The pre-checks below exist to
// produce precise error messages before any write is attempted; the
// transaction guard is what holds under concurrent creations.
func (s *Orders) Create(ctx context.Context, userID, address string, lines []CreateOrderLine) (*domain.Order, error) {
	if address == "" {
		return nil, domain.Validation("address is required")
	}
	if len(lines) == 0 {
		return nil, domain.Validation("at least one menu is required")
	}
	for _, l := range lines {
		if l.MenuID == "" {
			return nil, domain.Validation("menu id is required")
		}
		if l.Count <= 0 {
			return nil, domain.Validation(fmt.Sprintf("count must be positive for menu %s", l.MenuID))
		}
	}

	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.MenuID]; ok {
			continue
		}
		seen[l.MenuID] = struct{}{}
		ids = append(ids, l.MenuID)
	}

	menus, err := s.store.Menus().ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(menus) != len(ids) {
		return nil, domain.Validation("one or more menus not found")
	}

	byID := make(map[string]domain.Menu, len(menus))
	restaurants := make(map[string]struct{})
	for _, m := range menus {
		byID[m.ID] = m
		restaurants[m.RestaurantID] = struct{}{}
	}
	if len(restaurants) > 1 {
		return nil, domain.Validation("all menus must be from the same restaurant")
	}

	for _, l := range lines {
		if byID[l.MenuID].Stock < l.Count {
			return nil, domain.Validation(fmt.Sprintf("insufficient stock for menu %s", l.MenuID))
		}
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Address:   address,
		Status:    domain.StatusReceived,
		CreatedAt: time.Now().UTC(),
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, domain.OrderLine{
			ID:      uuid.NewString(),
			OrderID: order.ID,
			MenuID:  l.MenuID,
			Count:   l.Count,
		})
	}

	err = s.store.RunInTransaction(ctx, func(tx ports.Store) error {
		for _, l := range order.Lines {
			ok, err := tx.Menus().DecrementStock(ctx, l.MenuID, l.Count)
			if err != nil {
				return err
			}
			if !ok {
				// The guard lost a race with a concurrent order.
				return domain.Validation(fmt.Sprintf("insufficient stock for menu %s", l.MenuID))
			}
		}
		return tx.Orders().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.events.publish(ctx, domain.QueueOrderUpdates, domain.ActionOrderReceived, order.ID,
		domain.OrderEvent{Action: domain.ActionOrderReceived, Order: order})
	invalidate(ctx, s.cache, keyOrdersAll)
	return order, nil
}

// Prepare advances received → preparing.
func (s *Orders) Prepare(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, domain.StatusReceived, domain.StatusPreparing, domain.ActionOrderPreparing, "prepared")
}

// Ready advances preparing → ready.
func (s *Orders) Ready(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, domain.StatusPreparing, domain.StatusReady, domain.ActionOrderReady, "ready")
}

// Pickup advances ready → picked up.
func (s *Orders) Pickup(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, domain.StatusReady, domain.StatusPickedUp, domain.ActionOrderPickedUp, "picked up")
}

// Deliver advances picked up → delivered, the terminal status.
func (s *Orders) Deliver(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, domain.StatusPickedUp, domain.StatusDelivered, domain.ActionOrderDelivered, "delivered")
}

// transition moves an order from one specific status to the next. An
// unknown order fails the same precondition as one in the wrong status.
func (s *Orders) transition(ctx context.Context, id string, from, to domain.Status, action, verb string) (*domain.Order, error) {
	order, err := s.store.Orders().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Status != from {
		return nil, domain.Precondition(fmt.Sprintf("Order cannot be %s. It must be in %q status.", verb, string(from)))
	}

	if err := s.store.Orders().SetStatus(ctx, id, to); err != nil {
		return nil, err
	}
	order.Status = to

	s.events.publish(ctx, domain.QueueOrderUpdates, action, order.ID,
		domain.OrderEvent{Action: action, Order: order})
	invalidate(ctx, s.cache, keyOrdersAll)
	return order, nil
}

// GetAll returns every order denormalized with its lines resolved to menu
// names. An empty result is not an error at this layer.
func (s *Orders) GetAll(ctx context.Context) ([]domain.OrderDetails, error) {
	return cachedList(ctx, s.cache, keyOrdersAll, func(ctx context.Context) ([]domain.OrderDetails, error) {
		orders, err := s.store.Orders().List(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]domain.OrderDetails, 0, len(orders))
		for _, o := range orders {
			detail, err := s.describe(ctx, o)
			if err != nil {
				return nil, err
			}
			out = append(out, *detail)
		}
		return out, nil
	})
}

// GetByID returns one denormalized order.
func (s *Orders) GetByID(ctx context.Context, id string) (*domain.OrderDetails, error) {
	order, err := s.store.Orders().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("Order not found")
	}
	return s.describe(ctx, *order)
}

func (s *Orders) describe(ctx context.Context, order domain.Order) (*domain.OrderDetails, error) {
	lines, err := s.store.Orders().ListLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	menus := make([]domain.OrderMenuView, 0, len(lines))
	for _, l := range lines {
		name := "Unknown"
		menu, err := s.store.Menus().Get(ctx, l.MenuID)
		if err != nil {
			return nil, err
		}
		if menu != nil {
			name = menu.Name
		}
		menus = append(menus, domain.OrderMenuView{MenuID: l.MenuID, Name: name, Count: l.Count})
	}

	order.Lines = nil
	return &domain.OrderDetails{Order: order, Menus: menus}, nil
}
