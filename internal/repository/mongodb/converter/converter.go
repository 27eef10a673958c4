package converter

import (
	"github.com/DRSN-tech/store-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductConverter преобразует сущности Product между domain и документом MongoDB.
type ProductConverter struct{}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          hexToObjectID(entity.ID),
		Name:        entity.Name,
		Description: entity.Description,
		Image:       entity.Image,
		Price:       entity.Price,
		Quantity:    entity.Quantity,
		Email:       entity.OwnerEmail,
		CreatedAt:   entity.CreatedAt,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          objectIDToHex(model.ID),
		Name:        model.Name,
		Description: model.Description,
		Image:       model.Image,
		Price:       model.Price,
		Quantity:    model.Quantity,
		OwnerEmail:  model.Email,
		CreatedAt:   model.CreatedAt,
	}
}

func (c ProductConverter) ToArrEntity(models []ProductModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}

	return result
}

// OrderConverter преобразует сущности Order между domain и документом MongoDB.
type OrderConverter struct{}

func (OrderConverter) ToModel(entity *domain.Order) *OrderModel {
	return &OrderModel{
		ID:            hexToObjectID(entity.ID),
		Name:          entity.Name,
		Customer:      entity.Customer,
		CustomerName:  entity.CustomerName,
		ProductID:     entity.ProductID,
		Quantity:      entity.Quantity,
		Price:         entity.Price,
		Address:       entity.Address,
		Phone:         entity.Phone,
		Status:        entity.Status,
		TransactionID: entity.TransactionID,
		CreatedAt:     entity.CreatedAt,
	}
}

func (OrderConverter) ToEntity(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:            objectIDToHex(model.ID),
		Name:          model.Name,
		Customer:      model.Customer,
		CustomerName:  model.CustomerName,
		ProductID:     model.ProductID,
		Quantity:      model.Quantity,
		Price:         model.Price,
		Address:       model.Address,
		Phone:         model.Phone,
		Status:        model.Status,
		TransactionID: model.TransactionID,
		CreatedAt:     model.CreatedAt,
	}
}

func (c OrderConverter) ToArrEntity(models []OrderModel) []domain.Order {
	result := make([]domain.Order, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}

	return result
}

// PaymentConverter: OrderID должен быть уже проверен репозиторием.
type PaymentConverter struct{}

func (PaymentConverter) ToModel(entity *domain.Payment, orderID primitive.ObjectID) *PaymentModel {
	return &PaymentModel{
		ID:            hexToObjectID(entity.ID),
		OrderID:       orderID,
		TransactionID: entity.TransactionID,
		Amount:        entity.Amount,
		Customer:      entity.Customer,
		CreatedAt:     entity.CreatedAt,
	}
}

type UserConverter struct{}

func (UserConverter) ToEntity(model *UserModel) *domain.User {
	return &domain.User{
		Email:     model.Email,
		Name:      model.Name,
		Role:      model.Role,
		Phone:     model.Phone,
		Address:   model.Address,
		Education: model.Education,
		Image:     model.Image,
	}
}

func (c UserConverter) ToArrEntity(models []UserModel) []domain.User {
	result := make([]domain.User, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}

	return result
}

func (UserConverter) ToProfileModel(profile domain.UserProfile) *UserProfileModel {
	return &UserProfileModel{
		Name:      profile.Name,
		Phone:     profile.Phone,
		Address:   profile.Address,
		Education: profile.Education,
		Image:     profile.Image,
	}
}

type ReviewConverter struct{}

func (ReviewConverter) ToModel(entity *domain.Review) *ReviewModel {
	return &ReviewModel{
		ID:        hexToObjectID(entity.ID),
		Name:      entity.Name,
		Email:     entity.Email,
		Image:     entity.Image,
		Rating:    entity.Rating,
		Comment:   entity.Comment,
		CreatedAt: entity.CreatedAt,
	}
}

func (ReviewConverter) ToEntity(model *ReviewModel) *domain.Review {
	return &domain.Review{
		ID:        objectIDToHex(model.ID),
		Name:      model.Name,
		Email:     model.Email,
		Image:     model.Image,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}
}

func (c ReviewConverter) ToArrEntity(models []ReviewModel) []domain.Review {
	result := make([]domain.Review, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}

	return result
}

// hexToObjectID возвращает NilObjectID для пустой или некорректной строки,
// тогда _id будет сгенерирован драйвером (omitempty).
func hexToObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}

	return id
}

func objectIDToHex(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}

	return id.Hex()
}
