package domain

import "time"

// Status is the lifecycle state of an order. The sequence is strictly
// linear: received → preparing → ready → picked up → delivered. There is
// no cancellation or reverse transition.
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusPickedUp  Status = "picked up"
	StatusDelivered Status = "delivered"
)

// Order is a placed order. It owns its lines: they are created together
// with the order and never mutated afterwards.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Address   string      `json:"address"`
	Status    Status      `json:"status"`
	Lines     []OrderLine `json:"orderMenus,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderLine is a single requested menu within an order.
type OrderLine struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	MenuID  string `json:"menuId"`
	Count   int    `json:"count"`
}

// OrderMenuView is the denormalized line shape returned by order reads:
// the line joined with the referenced menu's name.
type OrderMenuView struct {
	MenuID string `json:"menuId"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// OrderDetails is an order with its lines resolved to menu names.
type OrderDetails struct {
	Order
	Menus []OrderMenuView `json:"menus"`
}
