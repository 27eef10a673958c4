package mongodb

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepo реализует репозиторий товаров поверх коллекции products.
type ProductRepo struct {
	coll *mongo.Collection
	conv converter.ProductConverter
}

func NewProductRepo(db *mongo.Database, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		coll: db.Collection(ProductsCollection),
		conv: conv,
	}
}

func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	query := bson.D{}
	if filter.OwnerEmail != "" {
		query = append(query, bson.E{Key: "email", Value: filter.OwnerEmail})
	}

	cursor, err := p.coll.Find(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductModel
	if err := p.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapFindErr(err))
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*usecase.InsertRes, error) {
	model := p.conv.ToModel(product)

	res, err := p.coll.InsertOne(ctx, model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newInsertRes(res)
}

// SetQuantity выставляет quantity; несуществующий товар создаётся с этим _id.
func (p *ProductRepo) SetQuantity(ctx context.Context, id string, quantity int64) (*usecase.UpdateRes, error) {
	return p.set(ctx, id, bson.D{{Key: "quantity", Value: quantity}})
}

func (p *ProductRepo) SetImage(ctx context.Context, id string, imageURL string) (*usecase.UpdateRes, error) {
	return p.set(ctx, id, bson.D{{Key: "image", Value: imageURL}})
}

func (p *ProductRepo) Delete(ctx context.Context, id string) (*usecase.DeleteRes, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := p.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewDeleteRes(res.DeletedCount), nil
}

func (p *ProductRepo) set(ctx context.Context, id string, fields bson.D) (*usecase.UpdateRes, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := p.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}}, upsert())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newUpdateRes(res), nil
}
