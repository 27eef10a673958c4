package converter

import "time"

// ProductRedisModel — представление товара в кэше.
type ProductRedisModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Price       int64     `json:"price"`
	Quantity    int64     `json:"quantity"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
