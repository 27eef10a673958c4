package converter

import "github.com/DRSN-tech/store-backend/internal/domain"

type ProductConverter struct{}

func (ProductConverter) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Image:       entity.Image,
		Price:       entity.Price,
		Quantity:    entity.Quantity,
		Email:       entity.OwnerEmail,
		CreatedAt:   entity.CreatedAt,
	}
}

func (ProductConverter) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Image:       model.Image,
		Price:       model.Price,
		Quantity:    model.Quantity,
		OwnerEmail:  model.Email,
		CreatedAt:   model.CreatedAt,
	}
}

func (c ProductConverter) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	result := make([]ProductRedisModel, 0, len(entities))
	for i := range entities {
		result = append(result, *c.ToRedisModel(&entities[i]))
	}

	return result
}

func (c ProductConverter) ToArrEntity(models []ProductRedisModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}

	return result
}
