package services

// OrderEvent is what the kitchen/table displays receive over the websocket
// feed.
type OrderEvent struct {
	Type        string `json:"type"` // order_created | order_status_changed
	OrderID     uint   `json:"orderId"`
	Code        string `json:"code"`
	TableNumber string `json:"tableNumber"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
}

// OrderNotifier fans events out to connected displays. The ws hub implements
// it; a nil-safe no-op keeps services testable without a hub.
type OrderNotifier interface {
	Notify(ev OrderEvent)
}

type noopNotifier struct{}

func (noopNotifier) Notify(OrderEvent) {}

// NopNotifier is used by tests and by deployments that disable the feed.
var NopNotifier OrderNotifier = noopNotifier{}
