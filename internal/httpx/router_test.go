package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"foodcourt/internal/adapters/memory"
	"foodcourt/internal/auth"
	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/service"
)

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, queue string, body []byte) error { return nil }

type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *mapCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

type mapRevocationSet struct {
	mu      sync.Mutex
	entries map[string]struct{}
}

func (s *mapRevocationSet) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[tokenID] = struct{}{}
	return nil
}

func (s *mapRevocationSet) Contains(ctx context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[tokenID]
	return ok, nil
}

type testEnv struct {
	server *httptest.Server
	store  *memory.Store

	userToken  string
	adminToken string

	restaurantID string
	categoryID   string
	menuID       string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	cache := newMapCache()
	tokens := auth.NewManager("test-secret", "foodcourt", time.Hour,
		&mapRevocationSet{entries: make(map[string]struct{})})

	for _, u := range []struct{ id, username, role string }{
		{"user-1", "alice", domain.RoleUser},
		{"admin-1", "root", domain.RoleAdmin},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		if err != nil {
			t.Fatal(err)
		}
		err = store.Users().Create(ctx, &domain.User{
			ID: u.id, Username: u.username, Password: string(hash), Role: u.role,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	env := &testEnv{store: store, restaurantID: "rest-1", categoryID: "cat-1", menuID: "menu-1"}

	if err := store.Restaurants().Create(ctx, &domain.Restaurant{ID: env.restaurantID, Name: "Pasta Place", Location: "Main St"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Categories().Create(ctx, &domain.Category{ID: env.categoryID, Name: "Italian"}); err != nil {
		t.Fatal(err)
	}
	err := store.Menus().Create(ctx, &domain.Menu{
		ID: env.menuID, Name: "Carbonara", ImageURL: "http://img/c.png",
		Price: 9.5, Stock: 10, RestaurantID: env.restaurantID, CategoryID: env.categoryID,
	})
	if err != nil {
		t.Fatal(err)
	}

	userToken, _, err := tokens.Generate("user-1", domain.RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	adminToken, _, err := tokens.Generate("admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	env.userToken = userToken
	env.adminToken = adminToken

	handlers := Handlers{
		Users:       NewUsersHandler(service.NewUsers(store, tokens)),
		Restaurants: NewRestaurantsHandler(service.NewRestaurants(store, cache)),
		Categories:  NewCategoriesHandler(service.NewCategories(store, cache)),
		Menus:       NewMenusHandler(service.NewMenus(store, nopPublisher{}, cache, nil)),
		Orders:      NewOrdersHandler(service.NewOrders(store, nopPublisher{}, cache, nil)),
	}
	env.server = httptest.NewServer(NewRouter(handlers, tokens))
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/users/login", "", map[string]string{
		"username": "alice", "password": "s3cret",
	})
	if code != http.StatusOK || !resp.Status {
		t.Fatalf("code = %d, envelope = %+v", code, resp)
	}
	if resp.Message != "Login user successful" {
		t.Errorf("message = %q", resp.Message)
	}
	session, ok := resp.Data.(map[string]any)
	if !ok || session["token"] == "" {
		t.Errorf("data = %+v, want session with token", resp.Data)
	}

	code, resp = env.do(t, http.MethodPost, "/users/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	if code != http.StatusBadRequest || resp.Status {
		t.Errorf("bad password: code = %d, envelope = %+v", code, resp)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodGet, "/restaurants", "", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", code)
	}
	if resp.Message != "No token provided" {
		t.Errorf("message = %q", resp.Message)
	}

	code, resp = env.do(t, http.MethodGet, "/restaurants", "garbage-token", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", code)
	}
	if resp.Message != "Invalid token" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestAdminRequiredForWrites(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"name": "Burger Barn", "location": "Side St"}

	code, resp := env.do(t, http.MethodPost, "/restaurants", env.userToken, body)
	if code != http.StatusForbidden || resp.Status {
		t.Fatalf("non-admin write: code = %d, envelope = %+v", code, resp)
	}

	code, resp = env.do(t, http.MethodPost, "/restaurants", env.adminToken, body)
	if code != http.StatusOK || !resp.Status {
		t.Fatalf("admin write: code = %d, envelope = %+v", code, resp)
	}
	if resp.Message != "Create restaurant successful" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestEmptyListIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodGet, "/orders", env.userToken, nil)
	if code != http.StatusNotFound || resp.Status {
		t.Fatalf("code = %d, envelope = %+v", code, resp)
	}
	if resp.Message != "Order not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestOrderFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/orders", env.userToken, map[string]any{
		"address": "123 Test St",
		"menus":   []map[string]any{{"menuId": env.menuID, "count": 2}},
	})
	if code != http.StatusOK || !resp.Status {
		t.Fatalf("create order: code = %d, envelope = %+v", code, resp)
	}
	order, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %+v", resp.Data)
	}
	orderID, _ := order["id"].(string)
	if orderID == "" {
		t.Fatal("order id missing from response")
	}
	if order["status"] != string(domain.StatusReceived) {
		t.Errorf("status = %v, want %q", order["status"], domain.StatusReceived)
	}

	// Transitions are admin-only.
	code, _ = env.do(t, http.MethodPatch, "/orders/prepare/"+orderID, env.userToken, nil)
	if code != http.StatusForbidden {
		t.Fatalf("non-admin transition: code = %d, want 403", code)
	}

	code, resp = env.do(t, http.MethodPatch, "/orders/prepare/"+orderID, env.adminToken, nil)
	if code != http.StatusOK || resp.Message != "Change order status to prepare successful" {
		t.Fatalf("prepare: code = %d, envelope = %+v", code, resp)
	}

	// Out-of-order transition reports the required status.
	code, resp = env.do(t, http.MethodPatch, "/orders/deliver/"+orderID, env.adminToken, nil)
	if code != http.StatusBadRequest {
		t.Fatalf("deliver from preparing: code = %d, want 400", code)
	}
	if want := `Order cannot be delivered. It must be in "picked up" status.`; resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

func TestCreateOrderInsufficientStockOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/orders", env.userToken, map[string]any{
		"address": "123 Test St",
		"menus":   []map[string]any{{"menuId": env.menuID, "count": 99}},
	})
	if code != http.StatusBadRequest || resp.Status {
		t.Fatalf("code = %d, envelope = %+v", code, resp)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/users/logout", env.userToken, nil)
	if code != http.StatusOK || resp.Message != "Logout user successful" {
		t.Fatalf("logout: code = %d, envelope = %+v", code, resp)
	}

	// The revoked token no longer authenticates.
	code, _ = env.do(t, http.MethodGet, "/restaurants", env.userToken, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("revoked token accepted: code = %d", code)
	}

	// Logout without a token is a client error, not an auth failure.
	code, resp = env.do(t, http.MethodPost, "/users/logout", "", nil)
	if code != http.StatusBadRequest || resp.Message != "Token is missing" {
		t.Errorf("code = %d, envelope = %+v", code, resp)
	}
}
