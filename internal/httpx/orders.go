package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodcourt/internal/core/service"
)

// OrdersHandler serves order queries, creation, and the four status
// transition endpoints.
type OrdersHandler struct {
	orders *service.Orders
}

func NewOrdersHandler(orders *service.Orders) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

func (h *OrdersHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(data) == 0 {
		writeFailure(w, http.StatusNotFound, "Order not found")
		return
	}
	writeData(w, "Get all orders successful", data)
}

func (h *OrdersHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Get order by id successful", data)
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok || identity.UserID == "" {
		writeFailure(w, http.StatusBadRequest, "Failed to get user id")
		return
	}

	var req createOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	lines := make([]service.CreateOrderLine, 0, len(req.Menus))
	for _, m := range req.Menus {
		lines = append(lines, service.CreateOrderLine{MenuID: m.MenuID, Count: m.Count})
	}

	data, err := h.orders.Create(r.Context(), identity.UserID, req.Address, lines)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Create order successful", data)
}

func (h *OrdersHandler) Prepare(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.Prepare(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Change order status to prepare successful", data)
}

func (h *OrdersHandler) Ready(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.Ready(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Change order status to ready successful", data)
}

func (h *OrdersHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.Pickup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Change order status to picked up successful", data)
}

func (h *OrdersHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	data, err := h.orders.Deliver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Change order status to delivered successful", data)
}
