// Package mongodb реализует репозитории поверх MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
	PaymentsCollection = "payments"
	UsersCollection    = "users"
	ReviewsCollection  = "reviews"
)

// EnsureIndexes создаёт уникальные индексы, на которых держатся инварианты хранилища:
// один заказ на пару (name, customer) и один пользователь на email.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	orderIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "customer", Value: 1}},
		Options: options.Index().
			SetName("uniq_order_name_customer").
			SetUnique(true).
			SetPartialFilterExpression(bson.D{
				{Key: "name", Value: bson.D{{Key: "$exists", Value: true}}},
				{Key: "customer", Value: bson.D{{Key: "$exists", Value: true}}},
			}),
	}
	if _, err := db.Collection(OrdersCollection).Indexes().CreateOne(ctx, orderIdx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	userIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_user_email").SetUnique(true),
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, userIdx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// parseObjectID проверяет идентификатор до обращения к хранилищу.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", e.ErrInvalidID, id)
	}

	return oid, nil
}

func newInsertRes(res *mongo.InsertOneResult) (*usecase.InsertRes, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: %T", e.ErrUnexpectedID, res.InsertedID)
	}

	return usecase.NewInsertRes(oid.Hex()), nil
}

func newUpdateRes(res *mongo.UpdateResult) *usecase.UpdateRes {
	var upserted string
	switch id := res.UpsertedID.(type) {
	case nil:
	case primitive.ObjectID:
		upserted = id.Hex()
	default:
		upserted = fmt.Sprint(id)
	}

	return usecase.NewUpdateRes(res.MatchedCount, res.ModifiedCount, upserted)
}

// mapFindErr переводит отсутствие документа в e.ErrNotFound.
func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return e.ErrNotFound
	}

	return err
}

func upsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
