package mongodb

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepo struct {
	coll *mongo.Collection
	conv converter.PaymentConverter
}

func NewPaymentRepo(db *mongo.Database, conv converter.PaymentConverter) *PaymentRepo {
	return &PaymentRepo{
		coll: db.Collection(PaymentsCollection),
		conv: conv,
	}
}

func (p *PaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*usecase.InsertRes, error) {
	orderID, err := parseObjectID(payment.OrderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res, err := p.coll.InsertOne(ctx, p.conv.ToModel(payment, orderID))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newInsertRes(res)
}
