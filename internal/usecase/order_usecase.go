package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
)

// OrderUseCase реализует оформление, оплату и смену статуса заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
	transactor  Transactor
	producer    EventProducer
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	paymentRepo PaymentRepository,
	transactor Transactor,
	producer EventProducer,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		transactor:  transactor,
		producer:    producer,
		logger:      logger,
	}
}

// ListOrders возвращает заказы; фильтр по email разрешён только самому покупателю.
func (o *OrderUseCase) ListOrders(ctx context.Context, requester domain.Identity, email string) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	if email != "" && email != requester.Email {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	orders, err := o.orderRepo.List(ctx, OrderFilter{Customer: email})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap("OrderUseCase.GetOrder", err)
	}

	return order, nil
}

// CreateOrder оформляет заказ. Повтор с теми же name и customer даёт e.ErrAlreadyPurchased.
func (o *OrderUseCase) CreateOrder(ctx context.Context, order *domain.Order) (*InsertRes, error) {
	const op = "OrderUseCase.CreateOrder"

	order.CreatedAt = time.Now().UTC()

	res, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event := domain.NewOrderEvent(domain.OrderCreated, res.InsertedID)
	event.Customer = order.Customer
	event.Amount = order.Price
	o.publish(ctx, event)

	return res, nil
}

// PayOrder записывает платёж и переводит заказ в статус pending одной транзакцией.
func (o *OrderUseCase) PayOrder(ctx context.Context, req *PayOrderReq) (*PayOrderRes, error) {
	const op = "OrderUseCase.PayOrder"

	payment := domain.NewPayment(req.OrderID, req.TransactionID, req.Amount, req.Requester.Email)
	payment.CreatedAt = time.Now().UTC()

	var res PayOrderRes
	err := o.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		paymentRes, err := o.paymentRepo.Create(ctx, payment)
		if err != nil {
			return err
		}

		orderRes, err := o.orderRepo.MarkPaid(ctx, req.OrderID, req.TransactionID)
		if err != nil {
			return err
		}

		res = PayOrderRes{Payment: paymentRes, Order: orderRes}
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event := domain.NewOrderEvent(domain.OrderPaid, req.OrderID)
	event.Customer = req.Requester.Email
	event.Status = domain.OrderStatusPending
	event.TransactionID = req.TransactionID
	event.Amount = req.Amount
	o.publish(ctx, event)

	return &res, nil
}

// SetOrderStatus выставляет произвольный статус (upsert).
func (o *OrderUseCase) SetOrderStatus(ctx context.Context, id string, status string) (*UpdateRes, error) {
	const op = "OrderUseCase.SetOrderStatus"

	res, err := o.orderRepo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event := domain.NewOrderEvent(domain.OrderStatusChanged, id)
	event.Status = status
	o.publish(ctx, event)

	return res, nil
}

// DeleteOrder удаляет заказ; если ничего не удалено, возвращает e.ErrNotFound.
func (o *OrderUseCase) DeleteOrder(ctx context.Context, id string) (*DeleteRes, error) {
	const op = "OrderUseCase.DeleteOrder"

	res, err := o.orderRepo.Delete(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if res.DeletedCount != 1 {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	o.publish(ctx, domain.NewOrderEvent(domain.OrderDeleted, id))
	return res, nil
}

// publish отправляет событие; ошибка только логируется, запись в БД уже выполнена.
func (o *OrderUseCase) publish(ctx context.Context, event *domain.OrderEvent) {
	if err := o.producer.PublishOrderEvent(ctx, event); err != nil {
		o.logger.Warnf("Failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
	}
}
