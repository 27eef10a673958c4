package domain

import "time"

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderPaid          OrderEventType = "order.paid"
	OrderStatusChanged OrderEventType = "order.status_changed"
	OrderDeleted       OrderEventType = "order.deleted"
)

// OrderEvent — событие жизненного цикла заказа для внешних потребителей.
type OrderEvent struct {
	Type          OrderEventType
	OrderID       string
	Customer      string
	Status        string
	TransactionID string
	Amount        int64
	OccurredAt    time.Time
}

func NewOrderEvent(eventType OrderEventType, orderID string) *OrderEvent {
	return &OrderEvent{
		Type:       eventType,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	}
}
