package domain

import "time"

// Payment — запись об оплате заказа. Только добавляется.
type Payment struct {
	ID            string
	OrderID       string
	TransactionID string
	Amount        int64 // копейки
	Customer      string
	CreatedAt     time.Time
}

func NewPayment(orderID, transactionID string, amount int64, customer string) *Payment {
	return &Payment{
		OrderID:       orderID,
		TransactionID: transactionID,
		Amount:        amount,
		Customer:      customer,
	}
}
