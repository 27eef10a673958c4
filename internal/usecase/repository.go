package usecase

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
)

// Репозитории возвращают e.ErrInvalidID для идентификаторов в неверном формате
// и e.ErrNotFound, если запись не найдена.

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*InsertRes, error)
	SetQuantity(ctx context.Context, id string, quantity int64) (*UpdateRes, error)
	SetImage(ctx context.Context, id string, imageURL string) (*UpdateRes, error)
	Delete(ctx context.Context, id string) (*DeleteRes, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, email string, profile domain.UserProfile) (*UpdateRes, error)
	SetRole(ctx context.Context, email string, role string) (*UpdateRes, error)
}

type OrderRepository interface {
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// Create возвращает e.ErrAlreadyPurchased, если заказ с тем же name и customer уже есть.
	Create(ctx context.Context, order *domain.Order) (*InsertRes, error)
	MarkPaid(ctx context.Context, id string, transactionID string) (*UpdateRes, error)
	SetStatus(ctx context.Context, id string, status string) (*UpdateRes, error)
	Delete(ctx context.Context, id string) (*DeleteRes, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*InsertRes, error)
}

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (*InsertRes, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

// CacheRepository — кэш товаров. Ошибки кэша не должны ломать запрос.
type CacheRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []string) error
	// GetCatalog возвращает false, если каталог не закэширован.
	GetCatalog(ctx context.Context) ([]domain.Product, bool, error)
	SetCatalog(ctx context.Context, products []domain.Product) error
	DeleteCatalog(ctx context.Context) error
}
