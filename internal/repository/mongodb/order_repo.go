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

type OrderRepo struct {
	coll *mongo.Collection
	conv converter.OrderConverter
}

func NewOrderRepo(db *mongo.Database, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		coll: db.Collection(OrdersCollection),
		conv: conv,
	}
}

func (o *OrderRepo) List(ctx context.Context, filter usecase.OrderFilter) ([]domain.Order, error) {
	query := bson.D{}
	if filter.Customer != "" {
		query = append(query, bson.E{Key: "customer", Value: filter.Customer})
	}

	cursor, err := o.coll.Find(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.OrderModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.OrderModel
	if err := o.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapFindErr(err))
	}

	return o.conv.ToEntity(&model), nil
}

// Create вставляет заказ. Дубликат по (name, customer) отсекается уникальным индексом.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*usecase.InsertRes, error) {
	res, err := o.coll.InsertOne(ctx, o.conv.ToModel(order))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrAlreadyPurchased)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newInsertRes(res)
}

// MarkPaid переводит заказ в pending и сохраняет идентификатор транзакции.
func (o *OrderRepo) MarkPaid(ctx context.Context, id string, transactionID string) (*usecase.UpdateRes, error) {
	return o.set(ctx, id, bson.D{
		{Key: "status", Value: domain.OrderStatusPending},
		{Key: "transactionId", Value: transactionID},
	})
}

func (o *OrderRepo) SetStatus(ctx context.Context, id string, status string) (*usecase.UpdateRes, error) {
	return o.set(ctx, id, bson.D{{Key: "status", Value: status}})
}

func (o *OrderRepo) Delete(ctx context.Context, id string) (*usecase.DeleteRes, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := o.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewDeleteRes(res.DeletedCount), nil
}

func (o *OrderRepo) set(ctx context.Context, id string, fields bson.D) (*usecase.UpdateRes, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := o.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}}, upsert())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newUpdateRes(res), nil
}
