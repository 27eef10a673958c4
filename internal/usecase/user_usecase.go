package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
)

type UserUseCase struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   logger.Logger
}

func NewUserUC(userRepo UserRepository, tokens TokenIssuer, logger logger.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap("UserUseCase.ListUsers", err)
	}

	return users, nil
}

func (u *UserUseCase) GetUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap("UserUseCase.GetUser", err)
	}

	return user, nil
}

// UpsertUser создаёт или обновляет пользователя и выпускает для него новый токен.
func (u *UserUseCase) UpsertUser(ctx context.Context, email string, profile domain.UserProfile) (*UpsertUserRes, error) {
	const op = "UserUseCase.UpsertUser"

	res, err := u.userRepo.Upsert(ctx, email, profile)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := u.tokens.Issue(email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &UpsertUserRes{Result: res, Token: token}, nil
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, email string, profile domain.UserProfile) (*UpdateRes, error) {
	res, err := u.userRepo.Upsert(ctx, email, profile)
	if err != nil {
		return nil, e.Wrap("UserUseCase.UpdateProfile", err)
	}

	return res, nil
}

// IsAdmin сообщает, является ли пользователь администратором. Неизвестный email — не админ.
func (u *UserUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return false, nil
		}
		return false, e.Wrap("UserUseCase.IsAdmin", err)
	}

	return user.IsAdmin(), nil
}

// PromoteToAdmin выдаёт роль admin существующему пользователю.
func (u *UserUseCase) PromoteToAdmin(ctx context.Context, email string) (*UpdateRes, error) {
	const op = "UserUseCase.PromoteToAdmin"

	res, err := u.userRepo.SetRole(ctx, email, domain.RoleAdmin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if res.MatchedCount == 0 {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	u.logger.Infof("user promoted to admin: %s", email)
	return res, nil
}
