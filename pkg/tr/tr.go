// Package tr запускает функции внутри транзакций MongoDB.
package tr

import (
	"context"

	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTransactor выполняет функции в многодокументных транзакциях (требуется replica set).
type MongoTransactor struct {
	client *mongo.Client
}

func NewMongoTransactor(client *mongo.Client) *MongoTransactor {
	return &MongoTransactor{client: client}
}

// WithinTransaction выполняет fn в транзакции; ошибка fn откатывает все записи.
// ctx, переданный в fn, несёт сессию MongoDB и должен использоваться для всех операций.
func (t *MongoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// NoTransactor выполняет функции последовательно, без транзакции (standalone MongoDB).
type NoTransactor struct{}

func (NoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
