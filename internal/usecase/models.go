package usecase

import "github.com/DRSN-tech/store-backend/internal/domain"

// REPOSITORIES

// InsertRes — результат вставки одной записи.
type InsertRes struct {
	InsertedID string
}

// UpdateRes — результат обновления (или upsert) одной записи.
type UpdateRes struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedID    string
}

// DeleteRes — результат удаления одной записи.
type DeleteRes struct {
	DeletedCount int64
}

type ProductFilter struct {
	OwnerEmail string
}

type OrderFilter struct {
	Customer string
}

// USER USECASE

type UpsertUserRes struct {
	Result *UpdateRes
	Token  string
}

// ORDER USECASE

// PayOrderReq — запрос на запись платежа по заказу.
type PayOrderReq struct {
	OrderID       string
	TransactionID string
	Amount        int64
	Requester     domain.Identity
}

type PayOrderRes struct {
	Payment *InsertRes
	Order   *UpdateRes
}

// PRODUCT USECASE

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type, определённый по содержимому
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

type UploadProductImageReq struct {
	ProductID string
	Image     ProductImage
}

type UploadProductImageRes struct {
	Result *UpdateRes
	URL    string
}

// INFRASTRUCTURE

// UploadImagesReq — запрос на загрузку изображений; Prefix задаёт каталог объектов.
type UploadImagesReq struct {
	Prefix string
	Images []ProductImage
}

// UploadImagesRes — ключи загруженных объектов и их публичные URL в том же порядке.
type UploadImagesRes struct {
	ImagesKeys []string
	URLs       []string
}

// MAPPERS

func NewInsertRes(id string) *InsertRes {
	return &InsertRes{InsertedID: id}
}

func NewUpdateRes(matched, modified int64, upsertedID string) *UpdateRes {
	return &UpdateRes{
		MatchedCount:  matched,
		ModifiedCount: modified,
		UpsertedID:    upsertedID,
	}
}

func NewDeleteRes(deleted int64) *DeleteRes {
	return &DeleteRes{DeletedCount: deleted}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(prefix string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Prefix: prefix,
		Images: images,
	}
}

func NewUploadImagesRes(keys []string, urls []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: keys,
		URLs:       urls,
	}
}

func NewPayOrderReq(orderID, transactionID string, amount int64, requester domain.Identity) *PayOrderReq {
	return &PayOrderReq{
		OrderID:       orderID,
		TransactionID: transactionID,
		Amount:        amount,
		Requester:     requester,
	}
}
