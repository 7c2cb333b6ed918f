package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"foodcourt/internal/core/ports"
)

// Handlers bundles the per-resource handlers the router mounts.
type Handlers struct {
	Users       *UsersHandler
	Restaurants *RestaurantsHandler
	Categories  *CategoriesHandler
	Menus       *MenusHandler
	Orders      *OrdersHandler
}

// NewRouter mounts the full REST surface.
//
// Reads require a valid token; catalog writes and order transitions
// additionally require the admin role. Order creation is open to any
// authenticated user.
func NewRouter(h Handlers, tokens ports.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	auth := AuthGuard(tokens)

	r.Post("/users/login", h.Users.Login)
	r.Post("/users/logout", h.Users.Logout)

	r.Route("/restaurants", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.Restaurants.GetAll)
		r.Get("/{id}", h.Restaurants.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(AdminGuard)
			r.Post("/", h.Restaurants.Create)
			r.Patch("/{id}", h.Restaurants.Update)
			r.Delete("/{id}", h.Restaurants.Delete)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.Categories.GetAll)
		r.Get("/{id}", h.Categories.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(AdminGuard)
			r.Post("/", h.Categories.Create)
			r.Patch("/{id}", h.Categories.Update)
			r.Delete("/{id}", h.Categories.Delete)
		})
	})

	r.Route("/menus", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.Menus.GetAll)
		r.Get("/{id}", h.Menus.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(AdminGuard)
			r.Post("/", h.Menus.Create)
			r.Patch("/{id}", h.Menus.Update)
			r.Delete("/{id}", h.Menus.Delete)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.Orders.GetAll)
		r.Get("/{id}", h.Orders.GetByID)
		r.Post("/", h.Orders.Create)

		r.Group(func(r chi.Router) {
			r.Use(AdminGuard)
			r.Patch("/prepare/{id}", h.Orders.Prepare)
			r.Patch("/ready/{id}", h.Orders.Ready)
			r.Patch("/pickup/{id}", h.Orders.Pickup)
			r.Patch("/deliver/{id}", h.Orders.Deliver)
		})
	})

	return otelhttp.NewHandler(r, "http.server")
}
