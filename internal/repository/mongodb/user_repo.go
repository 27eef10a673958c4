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

// UserRepo хранит пользователей в коллекции users; ключом служит email.
type UserRepo struct {
	coll *mongo.Collection
	conv converter.UserConverter
}

func NewUserRepo(db *mongo.Database, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		coll: db.Collection(UsersCollection),
		conv: conv,
	}
}

func (u *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := u.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToArrEntity(models), nil
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var model converter.UserModel
	if err := u.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapFindErr(err))
	}

	return u.conv.ToEntity(&model), nil
}

// Upsert записывает только переданные поля профиля, роль и остальные поля не трогает.
// Пустой профиль лишь создаёт пользователя, если его ещё нет.
func (u *UserRepo) Upsert(ctx context.Context, email string, profile domain.UserProfile) (*usecase.UpdateRes, error) {
	model := u.conv.ToProfileModel(profile)

	update := bson.D{{Key: "$set", Value: model}}
	if model.IsEmpty() {
		update = bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "email", Value: email}}}}
	}

	res, err := u.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update, upsert())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newUpdateRes(res), nil
}

// SetRole меняет роль только существующему пользователю.
func (u *UserRepo) SetRole(ctx context.Context, email string, role string) (*usecase.UpdateRes, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}

	res, err := u.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newUpdateRes(res), nil
}
