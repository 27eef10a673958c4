package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUseCase_UpsertUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := NewUserUC(repo, fakeTokens{}, logger.NewNopLogger())

	res, err := uc.UpsertUser(ctx, "new@shop.io", domain.UserProfile{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-new@shop.io", res.Token)
	assert.NotEmpty(t, res.Result.UpsertedID)

	t.Run("existing user still gets a token", func(t *testing.T) {
		res, err := uc.UpsertUser(ctx, "new@shop.io", domain.UserProfile{Name: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "token-for-new@shop.io", res.Token)
		assert.Equal(t, int64(1), res.Result.MatchedCount)
		assert.Equal(t, "Renamed", repo.users["new@shop.io"].Name)
	})

	t.Run("token failure is returned", func(t *testing.T) {
		uc := NewUserUC(repo, fakeTokens{err: errStore}, logger.NewNopLogger())
		_, err := uc.UpsertUser(ctx, "new@shop.io", domain.UserProfile{})
		assert.ErrorIs(t, err, errStore)
	})
}

func TestUserUseCase_IsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(
		domain.User{Email: "root@shop.io", Role: domain.RoleAdmin},
		domain.User{Email: "joe@shop.io"},
	)
	uc := NewUserUC(repo, fakeTokens{}, logger.NewNopLogger())

	ok, err := uc.IsAdmin(ctx, "root@shop.io")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsAdmin(ctx, "joe@shop.io")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.IsAdmin(ctx, "ghost@shop.io")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.err = errStore
	_, err = uc.IsAdmin(ctx, "root@shop.io")
	assert.ErrorIs(t, err, errStore)
}

func TestUserUseCase_PromoteToAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(domain.User{Email: "joe@shop.io"})
	uc := NewUserUC(repo, fakeTokens{}, logger.NewNopLogger())

	res, err := uc.PromoteToAdmin(ctx, "joe@shop.io")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.Equal(t, domain.RoleAdmin, repo.users["joe@shop.io"].Role)

	_, err = uc.PromoteToAdmin(ctx, "ghost@shop.io")
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.NotContains(t, repo.users, "ghost@shop.io")
}

func TestUserUseCase_UpdateProfileKeepsRole(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(domain.User{Email: "root@shop.io", Role: domain.RoleAdmin})
	uc := NewUserUC(repo, fakeTokens{}, logger.NewNopLogger())

	_, err := uc.UpdateProfile(ctx, "root@shop.io", domain.UserProfile{Phone: "+100"})
	require.NoError(t, err)

	user, err := uc.GetUser(ctx, "root@shop.io")
	require.NoError(t, err)
	assert.Equal(t, "+100", user.Phone)
	assert.True(t, user.IsAdmin())
}
