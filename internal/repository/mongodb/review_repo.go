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

type ReviewRepo struct {
	coll *mongo.Collection
	conv converter.ReviewConverter
}

func NewReviewRepo(db *mongo.Database, conv converter.ReviewConverter) *ReviewRepo {
	return &ReviewRepo{
		coll: db.Collection(ReviewsCollection),
		conv: conv,
	}
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ReviewModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

func (r *ReviewRepo) Create(ctx context.Context, review *domain.Review) (*usecase.InsertRes, error) {
	res, err := r.coll.InsertOne(ctx, r.conv.ToModel(review))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newInsertRes(res)
}
