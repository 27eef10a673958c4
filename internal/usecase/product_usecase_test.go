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

func newProductUC(images ImagesInfra) (*ProductUseCase, *fakeProductRepo, *fakeCache) {
	repo := newFakeProductRepo()
	cache := newFakeCache()
	return NewProductUC(repo, cache, images, logger.NewNopLogger()), repo, cache
}

func TestProductUseCase_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	uc, repo, cache := newProductUC(nil)

	product := domain.NewProduct("Chair", "Oak chair", "chair.png", 12550, 3, "owner@shop.io")
	res, err := uc.CreateProduct(ctx, product)
	require.NoError(t, err)
	require.NotEmpty(t, res.InsertedID)

	got, err := uc.GetProduct(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Chair", got.Name)
	assert.Equal(t, int64(12550), got.Price)
	assert.Equal(t, int64(3), got.Quantity)
	assert.False(t, got.CreatedAt.IsZero())

	t.Run("second read is served from cache", func(t *testing.T) {
		_, err := uc.GetProduct(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.getCalls)
		assert.Contains(t, cache.products, res.InsertedID)
	})

	t.Run("quantity update invalidates the cached product", func(t *testing.T) {
		_, err := uc.SetQuantity(ctx, res.InsertedID, 7)
		require.NoError(t, err)
		assert.NotContains(t, cache.products, res.InsertedID)

		got, err := uc.GetProduct(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.Quantity)
	})
}

func TestProductUseCase_GetProduct_NotFound(t *testing.T) {
	uc, _, _ := newProductUC(nil)

	_, err := uc.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestProductUseCase_CacheFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	uc, repo, cache := newProductUC(nil)

	res, err := repo.Create(ctx, domain.NewProduct("Lamp", "", "", 100, 1, ""))
	require.NoError(t, err)

	cache.err = errStore

	got, err := uc.GetProduct(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)

	list, err := uc.ListHomeProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductUseCase_ListHomeProducts(t *testing.T) {
	ctx := context.Background()
	uc, _, cache := newProductUC(nil)

	_, err := uc.CreateProduct(ctx, domain.NewProduct("A", "", "", 100, 1, "a@shop.io"))
	require.NoError(t, err)

	list, err := uc.ListHomeProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.True(t, cache.cached)

	_, err = uc.CreateProduct(ctx, domain.NewProduct("B", "", "", 200, 1, "b@shop.io"))
	require.NoError(t, err)
	assert.False(t, cache.cached, "create must drop the cached catalog")

	list, err = uc.ListHomeProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProductUseCase_ListProducts(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newProductUC(nil)

	_, err := uc.CreateProduct(ctx, domain.NewProduct("A", "", "", 100, 1, "a@shop.io"))
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, domain.NewProduct("B", "", "", 200, 1, "b@shop.io"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		requester string
		email     string
		want      int
		wantErr   error
	}{
		{name: "no filter", requester: "a@shop.io", want: 2},
		{name: "own email", requester: "a@shop.io", email: "a@shop.io", want: 1},
		{name: "foreign email", requester: "a@shop.io", email: "b@shop.io", wantErr: e.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := uc.ListProducts(ctx, domain.Identity{Email: tt.requester}, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, list, tt.want)
		})
	}
}

func TestProductUseCase_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newProductUC(nil)

	res, err := uc.CreateProduct(ctx, domain.NewProduct("A", "", "", 100, 1, ""))
	require.NoError(t, err)

	del, err := uc.DeleteProduct(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = uc.DeleteProduct(ctx, res.InsertedID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestProductUseCase_UploadProductImage(t *testing.T) {
	ctx := context.Background()
	image := ProductImage{Data: []byte("png"), MimeType: "image/png", Size: 3, Name: "a.png"}

	t.Run("disabled storage", func(t *testing.T) {
		uc, _, _ := newProductUC(nil)
		_, err := uc.UploadProductImage(ctx, &UploadProductImageReq{ProductID: "p1", Image: image})
		assert.ErrorIs(t, err, e.ErrImagesDisabled)
	})

	t.Run("unknown product uploads nothing", func(t *testing.T) {
		images := &fakeImages{}
		uc, _, _ := newProductUC(images)
		_, err := uc.UploadProductImage(ctx, &UploadProductImageReq{ProductID: "missing", Image: image})
		assert.ErrorIs(t, err, e.ErrNotFound)
		assert.Empty(t, images.uploaded)
	})

	t.Run("image url is stored", func(t *testing.T) {
		images := &fakeImages{}
		uc, repo, _ := newProductUC(images)
		created, err := uc.CreateProduct(ctx, domain.NewProduct("A", "", "", 100, 1, ""))
		require.NoError(t, err)

		res, err := uc.UploadProductImage(ctx, &UploadProductImageReq{ProductID: created.InsertedID, Image: image})
		require.NoError(t, err)
		assert.Equal(t, res.URL, repo.products[created.InsertedID].Image)
		assert.Empty(t, images.cleaned)
	})

	t.Run("store failure cleans up the upload", func(t *testing.T) {
		images := &fakeImages{}
		uc, repo, _ := newProductUC(images)
		created, err := uc.CreateProduct(ctx, domain.NewProduct("A", "", "", 100, 1, ""))
		require.NoError(t, err)
		repo.setErr = errStore

		_, err = uc.UploadProductImage(ctx, &UploadProductImageReq{ProductID: created.InsertedID, Image: image})
		assert.ErrorIs(t, err, errStore)
		require.Len(t, images.cleaned, 1)
		assert.Equal(t, images.uploaded[0], images.cleaned[0])
	})
}

func TestProductUseCase_ReadRacingInvalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("product deleted during read is not cached", func(t *testing.T) {
		uc, repo, cache := newProductUC(nil)
		res, err := uc.CreateProduct(ctx, domain.NewProduct("Lamp", "Desk lamp", "lamp.png", 900, 1, "owner@shop.io"))
		require.NoError(t, err)

		repo.afterRead = func() {
			_, err := uc.DeleteProduct(ctx, res.InsertedID)
			require.NoError(t, err)
		}

		got, err := uc.GetProduct(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, "Lamp", got.Name)
		assert.NotContains(t, cache.products, res.InsertedID)

		_, err = uc.GetProduct(ctx, res.InsertedID)
		assert.ErrorIs(t, err, e.ErrNotFound)
	})

	t.Run("catalog changed during read is not cached", func(t *testing.T) {
		uc, repo, cache := newProductUC(nil)
		_, err := uc.CreateProduct(ctx, domain.NewProduct("Lamp", "Desk lamp", "lamp.png", 900, 1, "owner@shop.io"))
		require.NoError(t, err)

		repo.afterRead = func() {
			_, err := uc.CreateProduct(ctx, domain.NewProduct("Rug", "Wool rug", "rug.png", 4000, 2, "owner@shop.io"))
			require.NoError(t, err)
		}

		products, err := uc.ListHomeProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.False(t, cache.cached)

		products, err = uc.ListHomeProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.True(t, cache.cached)
	})
}
