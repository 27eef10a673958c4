package domain

import "time"

// Review — отзыв покупателя о магазине.
type Review struct {
	ID        string
	Name      string
	Email     string
	Image     string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
