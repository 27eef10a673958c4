package minio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/store-backend/internal/cfg"
	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memImageRepo struct {
	mu        sync.Mutex
	objects   map[string]string
	failName  string
	deleteErr int
}

func newMemImageRepo() *memImageRepo {
	return &memImageRepo{objects: make(map[string]string)}
}

func (r *memImageRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failName != "" && string(image.Bytes) == r.failName {
		return "", errors.New("bucket unavailable")
	}
	r.objects[image.ObjectKey] = image.Bucket
	return image.ObjectKey, nil
}

func (r *memImageRepo) Delete(_ context.Context, _ string, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr > 0 {
		r.deleteErr--
		return errors.New("transient")
	}
	delete(r.objects, key)
	return nil
}

func (r *memImageRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.objects)
}

func newInfra(repo usecase.ImageRepository) *MinioInfrastructure {
	infra := NewMinioInfrastructure(repo, &cfg.MinIOCfg{
		BucketName: "products",
		PublicURL:  "http://cdn.local/",
	}, logger.NewNopLogger(), context.Background())
	infra.backoff = time.Millisecond
	return infra
}

func image(data string) usecase.ProductImage {
	return usecase.ProductImage{Data: []byte(data), MimeType: "image/png", Size: int64(len(data)), Name: data + ".png"}
}

func TestMinioInfrastructure_UploadImages(t *testing.T) {
	ctx := context.Background()

	t.Run("keys and urls keep request order", func(t *testing.T) {
		repo := newMemImageRepo()
		infra := newInfra(repo)

		res, err := infra.UploadImages(ctx, usecase.NewUploadImagesReq("p1", []usecase.ProductImage{image("a"), image("b")}))
		require.NoError(t, err)
		require.Len(t, res.ImagesKeys, 2)
		for i, key := range res.ImagesKeys {
			assert.True(t, strings.HasPrefix(key, "products/p1/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
			assert.Equal(t, "http://cdn.local/products/"+key, res.URLs[i])
		}
		assert.Equal(t, 2, repo.len())
	})

	t.Run("unsupported type", func(t *testing.T) {
		infra := newInfra(newMemImageRepo())
		img := image("a")
		img.MimeType = "text/plain"

		_, err := infra.UploadImages(ctx, usecase.NewUploadImagesReq("p1", []usecase.ProductImage{img}))
		assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
	})

	t.Run("no images", func(t *testing.T) {
		infra := newInfra(newMemImageRepo())
		_, err := infra.UploadImages(ctx, usecase.NewUploadImagesReq("p1", nil))
		assert.ErrorIs(t, err, e.ErrNoImages)
	})

	t.Run("partial failure removes uploaded objects", func(t *testing.T) {
		repo := newMemImageRepo()
		repo.failName = "bad"
		infra := newInfra(repo)

		_, err := infra.UploadImages(ctx, usecase.NewUploadImagesReq("p1", []usecase.ProductImage{image("a"), image("bad")}))
		require.Error(t, err)

		require.NoError(t, infra.WaitForCleanup(ctx))
		assert.Zero(t, repo.len())
	})
}

func TestMinioInfrastructure_CleanupRetries(t *testing.T) {
	repo := newMemImageRepo()
	repo.objects["products/p1/x.png"] = "products"
	repo.deleteErr = 2
	infra := newInfra(repo)

	infra.CleanupImages([]string{"products/p1/x.png"})

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(waitCtx))
	assert.Zero(t, repo.len())
}
