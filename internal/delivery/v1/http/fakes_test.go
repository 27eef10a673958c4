package http

import (
	"context"
	"sync"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return e.ErrInvalidID
	}
	return nil
}

type memProducts struct {
	mu    sync.Mutex
	items map[string]domain.Product
}

func (m *memProducts) List(_ context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Product
	for _, p := range m.items {
		if filter.OwnerEmail == "" || p.OwnerEmail == filter.OwnerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) Create(_ context.Context, product *domain.Product) (*usecase.InsertRes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product.ID = primitive.NewObjectID().Hex()
	m.items[product.ID] = *product
	return usecase.NewInsertRes(product.ID), nil
}

func (m *memProducts) SetQuantity(_ context.Context, id string, quantity int64) (*usecase.UpdateRes, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[id]
	p.ID = id
	p.Quantity = quantity
	m.items[id] = p
	if ok {
		return usecase.NewUpdateRes(1, 1, ""), nil
	}
	return usecase.NewUpdateRes(0, 0, id), nil
}

func (m *memProducts) SetImage(_ context.Context, id string, imageURL string) (*usecase.UpdateRes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.items[id]
	p.Image = imageURL
	m.items[id] = p
	return usecase.NewUpdateRes(1, 1, ""), nil
}

func (m *memProducts) Delete(_ context.Context, id string) (*usecase.DeleteRes, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return usecase.NewDeleteRes(0), nil
	}
	delete(m.items, id)
	return usecase.NewDeleteRes(1), nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]domain.User
}

func (m *memUsers) List(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.User, 0, len(m.items))
	for _, u := range m.items {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.items[email]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) Upsert(_ context.Context, email string, profile domain.UserProfile) (*usecase.UpdateRes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.items[email]
	u.Email = email
	setIfNotEmpty(&u.Name, profile.Name)
	setIfNotEmpty(&u.Phone, profile.Phone)
	setIfNotEmpty(&u.Address, profile.Address)
	setIfNotEmpty(&u.Education, profile.Education)
	setIfNotEmpty(&u.Image, profile.Image)
	m.items[email] = u
	if ok {
		return usecase.NewUpdateRes(1, 1, ""), nil
	}
	return usecase.NewUpdateRes(0, 0, primitive.NewObjectID().Hex()), nil
}

func (m *memUsers) SetRole(_ context.Context, email string, role string) (*usecase.UpdateRes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.items[email]
	if !ok {
		return usecase.NewUpdateRes(0, 0, ""), nil
	}
	u.Role = role
	m.items[email] = u
	return usecase.NewUpdateRes(1, 1, ""), nil
}

type memOrders struct {
	mu    sync.Mutex
	items map[string]domain.Order
}

func (m *memOrders) List(_ context.Context, filter usecase.OrderFilter) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Order
	for _, o := range m.items {
		if filter.Customer == "" || o.Customer == filter.Customer {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.items[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &o, nil
}

func (m *memOrders) Create(_ context.Context, order *domain.Order) (*usecase.InsertRes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.items {
		if o.Name == order.Name && o.Customer == order.Customer {
			return nil, e.ErrAlreadyPurchased
		}
	}
	order.ID = primitive.NewObjectID().Hex()
	m.items[order.ID] = *order
	return usecase.NewInsertRes(order.ID), nil
}

func (m *memOrders) MarkPaid(ctx context.Context, id string, transactionID string) (*usecase.UpdateRes, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	o := m.items[id]
	o.ID = id
	o.Status = domain.OrderStatusPending
	o.TransactionID = transactionID
	m.items[id] = o
	return usecase.NewUpdateRes(1, 1, ""), nil
}

func (m *memOrders) SetStatus(_ context.Context, id string, status string) (*usecase.UpdateRes, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.items[id]
	o.ID = id
	o.Status = status
	m.items[id] = o
	if ok {
		return usecase.NewUpdateRes(1, 1, ""), nil
	}
	return usecase.NewUpdateRes(0, 0, id), nil
}

func (m *memOrders) Delete(_ context.Context, id string) (*usecase.DeleteRes, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return usecase.NewDeleteRes(0), nil
	}
	delete(m.items, id)
	return usecase.NewDeleteRes(1), nil
}

type memPayments struct {
	mu    sync.Mutex
	items []domain.Payment
}

func (m *memPayments) Create(_ context.Context, payment *domain.Payment) (*usecase.InsertRes, error) {
	if err := checkID(payment.OrderID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	payment.ID = primitive.NewObjectID().Hex()
	m.items = append(m.items, *payment)
	return usecase.NewInsertRes(payment.ID), nil
}

type memReviews struct {
	mu    sync.Mutex
	items []domain.Review
}

func (m *memReviews) List(context.Context) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.Review(nil), m.items...), nil
}

func (m *memReviews) Create(_ context.Context, review *domain.Review) (*usecase.InsertRes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	review.ID = primitive.NewObjectID().Hex()
	m.items = append(m.items, *review)
	return usecase.NewInsertRes(review.ID), nil
}

// setIfNotEmpty повторяет $set хранилища: пустые поля профиля не перезаписываются.
func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
