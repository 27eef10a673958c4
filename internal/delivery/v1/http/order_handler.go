package http

import (
	"net/http"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// listOrders
//
//	@Summary	Список заказов
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		email	query		string	false	"Email покупателя, должен совпадать с токеном"
//	@Success	200		{array}		OrderRes
//	@Failure	403		{object}	ErrorResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	orders, err := o.orderUsecase.ListOrders(r.Context(), identity, r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrOrderRes(orders))
}

// getOrder
//
//	@Summary	Заказ по идентификатору
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ObjectID заказа"
//	@Success	200	{object}	OrderRes
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUsecase.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderRes(order))
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Повторный заказ того же товара (name) тем же покупателем (customer) отклоняется
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		OrderReq	true	"Заказ"
//	@Success		201		{object}	InsertRes
//	@Failure		409		{object}	ErrorResponse	"already purchased"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	price, err := toCents(req.Price)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	res, err := o.orderUsecase.CreateOrder(r.Context(), &domain.Order{
		Name:         req.Name,
		Customer:     req.Customer,
		CustomerName: req.CustomerName,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Price:        price,
		Address:      req.Address,
		Phone:        req.Phone,
	})
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toInsertRes(res))
}

// payOrder
//
//	@Summary		Оплата заказа
//	@Description	Записывает платёж и переводит заказ в статус pending
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string		true	"ObjectID заказа"
//	@Param			payment	body		PaymentReq	true	"Платёж"
//	@Success		200		{object}	PayOrderRes
//	@Router			/orders/{id} [put]
func (o *OrderHandler) payOrder(w http.ResponseWriter, r *http.Request) {
	var req PaymentReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	amount, err := toCents(req.Amount)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	identity, _ := IdentityFromContext(r.Context())
	res, err := o.orderUsecase.PayOrder(r.Context(),
		usecase.NewPayOrderReq(chi.URLParam(r, "id"), req.TransactionID, amount, identity))
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, PayOrderRes{UpdateRes: toUpdateRes(res.Order), PaymentID: res.Payment.InsertedID})
}

// setStatus
//
//	@Summary	Смена статуса заказа
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string		true	"ObjectID заказа"
//	@Param		status	body		StatusReq	true	"Статус"
//	@Success	200		{object}	UpdateRes
//	@Router		/orders/status/{id} [put]
func (o *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	res, err := o.orderUsecase.SetOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUpdateRes(res))
}

// deleteOrder
//
//	@Summary	Удаление заказа
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"ObjectID заказа"
//	@Success	200	{object}	DeleteRes
//	@Failure	404	{object}	ErrorResponse
//	@Router		/order/{id} [delete]
func (o *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	res, err := o.orderUsecase.DeleteOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDeleteRes(res))
}
