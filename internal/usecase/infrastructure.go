package usecase

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
)

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type EventProducer interface {
	PublishOrderEvent(ctx context.Context, event *domain.OrderEvent) error
}

type TokenIssuer interface {
	Issue(email string) (string, error)
}

// Transactor выполняет fn атомарно. Все операции внутри fn должны использовать переданный ctx.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
