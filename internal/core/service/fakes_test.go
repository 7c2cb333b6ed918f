package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"foodcourt/internal/adapters/memory"
	"foodcourt/internal/core/domain"
)

type fakePublisher struct {
	mu     sync.Mutex
	queues []string
	bodies [][]byte
	fail   error
}

func (p *fakePublisher) Publish(ctx context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.queues = append(p.queues, queue)
	p.bodies = append(p.bodies, append([]byte(nil), body...))
	return nil
}

// actions decodes the action field out of every published body, in order.
func (p *fakePublisher) actions(t *testing.T) []string {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.bodies))
	for _, body := range p.bodies {
		var payload struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("published body is not JSON: %v", err)
		}
		out = append(out, payload.Action)
	}
	return out
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// seedCatalog puts one restaurant, one category, and one menu with the
// given stock into the store and returns their ids.
func seedCatalog(t *testing.T, store *memory.Store, stock int) (restaurantID, categoryID, menuID string) {
	t.Helper()
	ctx := context.Background()

	restaurant := &domain.Restaurant{ID: "rest-1", Name: "Pasta Place", Location: "Main St"}
	if err := store.Restaurants().Create(ctx, restaurant); err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	category := &domain.Category{ID: "cat-1", Name: "Italian"}
	if err := store.Categories().Create(ctx, category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	menu := &domain.Menu{
		ID:           "menu-1",
		Name:         "Carbonara",
		ImageURL:     "http://img/carbonara.png",
		Price:        9.5,
		Stock:        stock,
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
	}
	if err := store.Menus().Create(ctx, menu); err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return restaurant.ID, category.ID, menu.ID
}

func menuStock(t *testing.T, store *memory.Store, id string) int {
	t.Helper()
	menu, err := store.Menus().Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get menu: %v", err)
	}
	if menu == nil {
		t.Fatalf("menu %s not found", id)
	}
	return menu.Stock
}
