package domain

import "time"

// OrderStatusPending выставляется заказу после записи платежа.
const OrderStatusPending = "pending"

// Order описывает заказ покупателя. Name и Customer вместе идентифицируют покупку:
// повторный заказ с той же парой отклоняется.
type Order struct {
	ID            string
	Name          string // название товара
	Customer      string // email покупателя
	CustomerName  string
	ProductID     string
	Quantity      int64
	Price         int64 // копейки
	Address       string
	Phone         string
	Status        string
	TransactionID string
	CreatedAt     time.Time
}
