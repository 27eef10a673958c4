package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       int64 // Цена хранится в копейках
	Quantity    int64
	OwnerEmail  string
	CreatedAt   time.Time
}

func NewProduct(name, description, image string, price, quantity int64, ownerEmail string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Image:       image,
		Price:       price,
		Quantity:    quantity,
		OwnerEmail:  ownerEmail,
	}
}
