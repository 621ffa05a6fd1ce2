package events

import "time"

// Event is the contract for everything published on the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_PLACED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain struct implementation of Event.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event codes emitted by the ordering side.
const (
	TypeOrderPlaced        = "ORDER_PLACED"
	TypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
)

// NewOrderPlaced builds the event announcing a freshly placed order.
func NewOrderPlaced(orderId, customerId, itemName string, quantity int) Event {
	return BaseEvent{
		Type: TypeOrderPlaced,
		Data: map[string]interface{}{
			"order_id":    orderId,
			"customer_id": customerId,
			"item_name":   itemName,
			"quantity":    quantity,
		},
		OccurredAt: time.Now(),
	}
}

// NewOrderStatusChanged builds the event announcing a status transition.
func NewOrderStatusChanged(orderId, status string) Event {
	return BaseEvent{
		Type: TypeOrderStatusChanged,
		Data: map[string]interface{}{
			"order_id": orderId,
			"status":   status,
		},
		OccurredAt: time.Now(),
	}
}
