package domain

// Logical topics change events are published to. Consumers must be
// idempotent: delivery is at-least-once.
const (
	QueueMenuUpdates  = "menu_updates"
	QueueOrderUpdates = "order_updates"
)

// Event actions carried in the "action" field of published payloads.
const (
	ActionMenuCreated    = "menu_created"
	ActionMenuUpdated    = "menu_updated"
	ActionMenuOutOfStock = "menu_out_of_stock"

	ActionOrderReceived  = "order_received"
	ActionOrderPreparing = "order_preparing"
	ActionOrderReady     = "order_ready"
	ActionOrderPickedUp  = "order_picked_up"
	ActionOrderDelivered = "order_delivered"
)

// MenuEvent is the payload published to menu_updates.
type MenuEvent struct {
	Action string `json:"action"`
	Menu   *Menu  `json:"menu"`
}

// OrderEvent is the payload published to order_updates.
type OrderEvent struct {
	Action string `json:"action"`
	Order  *Order `json:"order"`
}
