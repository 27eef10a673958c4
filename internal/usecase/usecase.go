package usecase

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context, requester domain.Identity, email string) ([]domain.Product, error)
	ListHomeProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*InsertRes, error)
	SetQuantity(ctx context.Context, id string, quantity int64) (*UpdateRes, error)
	DeleteProduct(ctx context.Context, id string) (*DeleteRes, error)
	UploadProductImage(ctx context.Context, req *UploadProductImageReq) (*UploadProductImageRes, error)
}

type UserUC interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, email string) (*domain.User, error)
	UpsertUser(ctx context.Context, email string, profile domain.UserProfile) (*UpsertUserRes, error)
	UpdateProfile(ctx context.Context, email string, profile domain.UserProfile) (*UpdateRes, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, email string) (*UpdateRes, error)
}

type OrderUC interface {
	ListOrders(ctx context.Context, requester domain.Identity, email string) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*InsertRes, error)
	PayOrder(ctx context.Context, req *PayOrderReq) (*PayOrderRes, error)
	SetOrderStatus(ctx context.Context, id string, status string) (*UpdateRes, error)
	DeleteOrder(ctx context.Context, id string) (*DeleteRes, error)
}

type ReviewUC interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) (*InsertRes, error)
}
