package http

import (
	"net/http"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает товары. С параметром email только товары владельца, email должен совпадать с токеном
//	@Tags			products
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	query		string	false	"Email владельца"
//	@Success		200		{array}		ProductRes
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	products, err := p.productUsecase.ListProducts(r.Context(), identity, r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductRes(products))
}

// listHomeProducts
//
//	@Summary	Публичный каталог
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductRes
//	@Router		/home-products [get]
func (p *ProductHandler) listHomeProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListHomeProducts(r.Context())
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductRes(products))
}

// getProduct
//
//	@Summary	Товар по идентификатору
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ObjectID товара"
//	@Success	200	{object}	ProductRes
//	@Failure	400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := p.productUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductRes(product))
}

// createProduct
//
//	@Summary	Создание товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		product	body		ProductReq	true	"Товар"
//	@Success	201		{object}	InsertRes
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse	"Нужна роль admin"
//	@Router		/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	price, err := toCents(req.Price)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	product := domain.NewProduct(req.Name, req.Description, req.Image, price, req.Quantity, req.Email)
	res, err := p.productUsecase.CreateProduct(r.Context(), product)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toInsertRes(res))
}

// setQuantity
//
//	@Summary		Изменение количества
//	@Description	Выставляет quantity. Если товара нет, он будет создан
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"ObjectID товара"
//	@Param			body	body		QuantityReq	true	"Количество"
//	@Success		200		{object}	UpdateRes
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req QuantityReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	res, err := p.productUsecase.SetQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUpdateRes(res))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ObjectID товара"
//	@Success	200	{object}	DeleteRes
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDeleteRes(res))
}

// uploadProductImage
//
//	@Summary	Загрузка изображения товара
//	@Tags		products
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"ObjectID товара"
//	@Param		image	formData	file	true	"Изображение"
//	@Success	200		{object}	ProductImageRes
//	@Failure	400		{object}	ErrorResponse
//	@Failure	415		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse	"Хранилище изображений не настроено"
//	@Router		/products/{id}/image [put]
func (p *ProductHandler) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 16 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	res, err := p.productUsecase.UploadProductImage(r.Context(), &usecase.UploadProductImageReq{
		ProductID: chi.URLParam(r, "id"),
		Image:     *image,
	})
	if err != nil {
		writeError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ProductImageRes{UpdateRes: toUpdateRes(res.Result), URL: res.URL})
}
