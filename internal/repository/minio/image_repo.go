package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo хранит изображения товаров в бакете MinIO.
type ImageRepo struct {
	mc *minio.Client
}

func NewImageRepo(mc *minio.Client) *ImageRepo {
	return &ImageRepo{mc: mc}
}

// Upload кладёт объект в image.Bucket и возвращает его ключ.
func (i *ImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	info, err := i.mc.PutObject(ctx, image.Bucket, image.ObjectKey, bytes.NewReader(image.Bytes), image.Size,
		minio.PutObjectOptions{ContentType: image.ContentType})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

func (i *ImageRepo) Delete(ctx context.Context, bucket, key string) error {
	if err := i.mc.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
