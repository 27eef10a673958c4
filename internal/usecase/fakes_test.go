package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
)

var errStore = errors.New("store is down")

type fakeProductRepo struct {
	mu       sync.Mutex
	seq      int
	products map[string]domain.Product
	setErr   error
	getCalls int
	// вызывается после чтения, до возврата результата
	afterRead func()
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]domain.Product)}
}

func (f *fakeProductRepo) List(_ context.Context, filter ProductFilter) ([]domain.Product, error) {
	defer f.read()
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Product
	for _, p := range f.products {
		if filter.OwnerEmail == "" || p.OwnerEmail == filter.OwnerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	defer f.read()
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) read() {
	if hook := f.afterRead; hook != nil {
		f.afterRead = nil
		hook()
	}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*InsertRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	product.ID = fmt.Sprintf("p%d", f.seq)
	f.products[product.ID] = *product
	return NewInsertRes(product.ID), nil
}

func (f *fakeProductRepo) SetQuantity(_ context.Context, id string, quantity int64) (*UpdateRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
	p.ID = id
	p.Quantity = quantity
	f.products[id] = p
	if ok {
		return NewUpdateRes(1, 1, ""), nil
	}
	return NewUpdateRes(0, 0, id), nil
}

func (f *fakeProductRepo) SetImage(_ context.Context, id string, imageURL string) (*UpdateRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return nil, f.setErr
	}
	p := f.products[id]
	p.Image = imageURL
	f.products[id] = p
	return NewUpdateRes(1, 1, ""), nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (*DeleteRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[id]; !ok {
		return NewDeleteRes(0), nil
	}
	delete(f.products, id)
	return NewDeleteRes(1), nil
}

type fakeCache struct {
	products map[string]domain.Product
	catalog  []domain.Product
	cached   bool
	err      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{products: make(map[string]domain.Product)}
}

func (c *fakeCache) GetProducts(_ context.Context, ids []string) (map[string]domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make(map[string]domain.Product)
	for _, id := range ids {
		if p, ok := c.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (c *fakeCache) SetProducts(_ context.Context, products []domain.Product) error {
	if c.err != nil {
		return c.err
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return nil
}

func (c *fakeCache) DeleteProducts(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(c.products, id)
	}
	return c.err
}

func (c *fakeCache) GetCatalog(context.Context) ([]domain.Product, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	return c.catalog, c.cached, nil
}

func (c *fakeCache) SetCatalog(_ context.Context, products []domain.Product) error {
	if c.err != nil {
		return c.err
	}
	c.catalog = products
	c.cached = true
	return nil
}

func (c *fakeCache) DeleteCatalog(context.Context) error {
	c.catalog = nil
	c.cached = false
	return c.err
}

type fakeImages struct {
	uploaded [][]string
	cleaned  [][]string
	err      error
}

func (f *fakeImages) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	keys := make([]string, 0, len(req.Images))
	urls := make([]string, 0, len(req.Images))
	for i := range req.Images {
		key := fmt.Sprintf("%s/%d.png", req.Prefix, i)
		keys = append(keys, key)
		urls = append(urls, "http://cdn.local/products/"+key)
	}
	f.uploaded = append(f.uploaded, keys)
	return NewUploadImagesRes(keys, urls), nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.cleaned = append(f.cleaned, keys)
}

type fakeUserRepo struct {
	users map[string]domain.User
	err   error
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) Upsert(_ context.Context, email string, profile domain.UserProfile) (*UpdateRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	u.Email = email
	setIfNotEmpty(&u.Name, profile.Name)
	setIfNotEmpty(&u.Phone, profile.Phone)
	setIfNotEmpty(&u.Address, profile.Address)
	setIfNotEmpty(&u.Education, profile.Education)
	setIfNotEmpty(&u.Image, profile.Image)
	f.users[email] = u
	if ok {
		return NewUpdateRes(1, 1, ""), nil
	}
	return NewUpdateRes(0, 0, "u-"+email), nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, email string, role string) (*UpdateRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return NewUpdateRes(0, 0, ""), nil
	}
	u.Role = role
	f.users[email] = u
	return NewUpdateRes(1, 1, ""), nil
}

type fakeTokens struct{ err error }

func (f fakeTokens) Issue(email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + email, nil
}

type fakeOrderRepo struct {
	seq       int
	orders    map[string]domain.Order
	markErr   error
	markCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]domain.Order)}
}

func (f *fakeOrderRepo) List(_ context.Context, filter OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if filter.Customer == "" || o.Customer == filter.Customer {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*InsertRes, error) {
	for _, o := range f.orders {
		if o.Name == order.Name && o.Customer == order.Customer {
			return nil, e.ErrAlreadyPurchased
		}
	}
	f.seq++
	order.ID = fmt.Sprintf("o%d", f.seq)
	f.orders[order.ID] = *order
	return NewInsertRes(order.ID), nil
}

func (f *fakeOrderRepo) MarkPaid(_ context.Context, id string, transactionID string) (*UpdateRes, error) {
	f.markCalls++
	if f.markErr != nil {
		return nil, f.markErr
	}
	o := f.orders[id]
	o.ID = id
	o.Status = domain.OrderStatusPending
	o.TransactionID = transactionID
	f.orders[id] = o
	return NewUpdateRes(1, 1, ""), nil
}

func (f *fakeOrderRepo) SetStatus(_ context.Context, id string, status string) (*UpdateRes, error) {
	o, ok := f.orders[id]
	o.ID = id
	o.Status = status
	f.orders[id] = o
	if ok {
		return NewUpdateRes(1, 1, ""), nil
	}
	return NewUpdateRes(0, 0, id), nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) (*DeleteRes, error) {
	if _, ok := f.orders[id]; !ok {
		return NewDeleteRes(0), nil
	}
	delete(f.orders, id)
	return NewDeleteRes(1), nil
}

type fakePaymentRepo struct {
	payments []domain.Payment
	err      error
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*InsertRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	payment.ID = fmt.Sprintf("pay%d", len(f.payments)+1)
	f.payments = append(f.payments, *payment)
	return NewInsertRes(payment.ID), nil
}

// fakeTransactor откатывает платежи, записанные внутри неудачной транзакции.
type fakeTransactor struct {
	payments *fakePaymentRepo
	calls    int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	snapshot := len(f.payments.payments)
	if err := fn(ctx); err != nil {
		f.payments.payments = f.payments.payments[:snapshot]
		return err
	}
	return nil
}

type fakeProducer struct {
	events []domain.OrderEvent
	err    error
}

func (f *fakeProducer) PublishOrderEvent(_ context.Context, event *domain.OrderEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) List(context.Context) ([]domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*InsertRes, error) {
	review.ID = fmt.Sprintf("r%d", len(f.reviews)+1)
	f.reviews = append(f.reviews, *review)
	return NewInsertRes(review.ID), nil
}

// setIfNotEmpty повторяет $set хранилища: пустые поля профиля не перезаписываются.
func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
