package redis

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/domain"
)

// NopCacheRepo используется при CACHE_ENABLED=false: всегда промах.
type NopCacheRepo struct{}

func (NopCacheRepo) GetProducts(context.Context, []string) (map[string]domain.Product, error) {
	return map[string]domain.Product{}, nil
}

func (NopCacheRepo) SetProducts(context.Context, []domain.Product) error { return nil }

func (NopCacheRepo) DeleteProducts(context.Context, []string) error { return nil }

func (NopCacheRepo) GetCatalog(context.Context) ([]domain.Product, bool, error) {
	return nil, false, nil
}

func (NopCacheRepo) SetCatalog(context.Context, []domain.Product) error { return nil }

func (NopCacheRepo) DeleteCatalog(context.Context) error { return nil }
