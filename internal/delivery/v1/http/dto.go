package http

import (
	"time"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// PRODUCTS

type ProductReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	Quantity    int64           `json:"quantity"`
	Email       string          `json:"email"`
}

type QuantityReq struct {
	Quantity int64 `json:"quantity"`
}

type ProductRes struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Price       string    `json:"price" example:"12.50"`
	Quantity    int64     `json:"quantity"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductImageRes struct {
	UpdateRes
	URL string `json:"url"`
}

// ORDERS

type OrderReq struct {
	Name         string          `json:"name"`
	Customer     string          `json:"customer"`
	CustomerName string          `json:"customerName"`
	ProductID    string          `json:"productId"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
}

type PaymentReq struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
}

type StatusReq struct {
	Status string `json:"status"`
}

type OrderRes struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Customer      string    `json:"customer"`
	CustomerName  string    `json:"customerName,omitempty"`
	ProductID     string    `json:"productId,omitempty"`
	Quantity      int64     `json:"quantity,omitempty"`
	Price         string    `json:"price" example:"12.50"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Status        string    `json:"status,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PayOrderRes struct {
	UpdateRes
	PaymentID string `json:"paymentId"`
}

// USERS

type UserProfileReq struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Education string `json:"education"`
	Image     string `json:"image"`
}

type UserRes struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Education string `json:"education,omitempty"`
	Image     string `json:"image,omitempty"`
}

type UpsertUserRes struct {
	Result UpdateRes `json:"result"`
	Token  string    `json:"token"`
}

type AdminRes struct {
	Admin bool `json:"admin"`
}

// REVIEWS

type ReviewReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Image   string `json:"image"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewRes struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Image     string    `json:"image,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// WRITE RESULTS

type InsertRes struct {
	InsertedID string `json:"insertedId"`
}

type UpdateRes struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteRes struct {
	DeletedCount int64 `json:"deletedCount"`
}

// MAPPERS

func toInsertRes(res *usecase.InsertRes) InsertRes {
	return InsertRes{InsertedID: res.InsertedID}
}

func toUpdateRes(res *usecase.UpdateRes) UpdateRes {
	return UpdateRes{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func toDeleteRes(res *usecase.DeleteRes) DeleteRes {
	return DeleteRes{DeletedCount: res.DeletedCount}
}

func toProductRes(p *domain.Product) ProductRes {
	return ProductRes{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       fromCents(p.Price),
		Quantity:    p.Quantity,
		Email:       p.OwnerEmail,
		CreatedAt:   p.CreatedAt,
	}
}

func toArrProductRes(products []domain.Product) []ProductRes {
	result := make([]ProductRes, 0, len(products))
	for i := range products {
		result = append(result, toProductRes(&products[i]))
	}

	return result
}

func toOrderRes(o *domain.Order) OrderRes {
	return OrderRes{
		ID:            o.ID,
		Name:          o.Name,
		Customer:      o.Customer,
		CustomerName:  o.CustomerName,
		ProductID:     o.ProductID,
		Quantity:      o.Quantity,
		Price:         fromCents(o.Price),
		Address:       o.Address,
		Phone:         o.Phone,
		Status:        o.Status,
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
	}
}

func toArrOrderRes(orders []domain.Order) []OrderRes {
	result := make([]OrderRes, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderRes(&orders[i]))
	}

	return result
}

func toUserRes(u *domain.User) UserRes {
	return UserRes{
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		Address:   u.Address,
		Education: u.Education,
		Image:     u.Image,
	}
}

func toArrUserRes(users []domain.User) []UserRes {
	result := make([]UserRes, 0, len(users))
	for i := range users {
		result = append(result, toUserRes(&users[i]))
	}

	return result
}

func toArrReviewRes(reviews []domain.Review) []ReviewRes {
	result := make([]ReviewRes, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, ReviewRes{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Image:     r.Image,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}

	return result
}

func (r UserProfileReq) toDomain() domain.UserProfile {
	return domain.UserProfile{
		Name:      r.Name,
		Phone:     r.Phone,
		Address:   r.Address,
		Education: r.Education,
		Image:     r.Image,
	}
}
