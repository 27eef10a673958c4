package minio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/store-backend/internal/cfg"
	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/infrastructure"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/jitter"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	uploadImagesLimit = 4
	cleanupAttempts   = 3
	cleanupTimeout    = 30 * time.Second
)

// MinioInfrastructure управляет загрузкой и очисткой изображений в MinIO.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
	backoff     time.Duration
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		backoff:     time.Second,
	}
}

// UploadImages загружает изображения параллельно, не более uploadImagesLimit одновременно.
// При первой ошибке остальные загрузки отменяются, а уже загруженные объекты удаляются в фоне.
// Ключи и URL в ответе идут в порядке req.Images.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	if len(req.Images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	keys := make([]string, len(req.Images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadImagesLimit)

	for i, image := range req.Images {
		g.Go(func() error {
			ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
			if err != nil {
				return fmt.Errorf("invalid mime type %s for %s: %w", image.MimeType, image.Name, err)
			}

			imageID := uuid.NewString()
			objKey := fmt.Sprintf("products/%s/%s.%s", req.Prefix, imageID, ext)
			newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, image.Data, image.Size, image.MimeType)

			key, err := m.minioRepo.Upload(gctx, newImage)
			if err != nil {
				return fmt.Errorf("upload %s failed: %w", image.Name, err)
			}

			keys[i] = key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		m.CleanupImages(uploaded(keys))
		return nil, e.Wrap(op, err)
	}

	urls := make([]string, len(keys))
	for i, key := range keys {
		urls[i] = m.ObjectURL(key)
	}

	return usecase.NewUploadImagesRes(keys, urls), nil
}

// ObjectURL возвращает публичный адрес объекта.
func (m *MinioInfrastructure) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(m.cfg.PublicURL, "/"), m.cfg.BucketName, key)
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет объекты с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up %d uploaded keys", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		err := jitter.Retry(ctx, cleanupAttempts, m.backoff, 4*m.backoff, func(int) error {
			return m.minioRepo.Delete(ctx, m.cfg.BucketName, key)
		})
		if err != nil {
			m.logger.Warnf("%s: failed to delete key=%s: %v", op, key, err)
		}
		if ctx.Err() != nil {
			m.logger.Warnf("%s: cleanup interrupted by shutdown, key=%s", op, key)
			return
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

func uploaded(keys []string) []string {
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != "" {
			result = append(result, key)
		}
	}

	return result
}
