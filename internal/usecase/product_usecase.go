package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
)

// ProductUseCase реализует бизнес-логику каталога товаров.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	imagesInfra ImagesInfra // nil, если хранилище изображений не настроено
	logger      logger.Logger

	// растёт при каждой инвалидации; чтение из БД, начатое до неё, в кэш не попадает
	cacheGen atomic.Uint64
}

func NewProductUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// ListProducts возвращает товары. Фильтр по email владельца разрешён только самому владельцу.
func (p *ProductUseCase) ListProducts(ctx context.Context, requester domain.Identity, email string) ([]domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	if email != "" && email != requester.Email {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	products, err := p.productRepo.List(ctx, ProductFilter{OwnerEmail: email})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// ListHomeProducts возвращает публичный каталог, читая его через кэш.
func (p *ProductUseCase) ListHomeProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListHomeProducts"

	cached, ok, err := p.cacheRepo.GetCatalog(ctx)
	if err != nil {
		p.logger.Warnf("catalog cache read failed: %v", e.Wrap(op, err))
	}
	if ok {
		return cached, nil
	}

	gen := p.cacheGen.Load()
	products, err := p.productRepo.List(ctx, ProductFilter{})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.cacheCatalog(ctx, gen, products)
	return products, nil
}

// GetProduct возвращает товар по идентификатору, сначала проверяя кэш.
func (p *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProducts(ctx, []string{id})
	if err != nil {
		p.logger.Warnf("product cache read failed: %v", e.Wrap(op, err))
	}
	if product, ok := cached[id]; ok {
		return &product, nil
	}

	gen := p.cacheGen.Load()
	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.cacheProduct(ctx, gen, *product)
	return product, nil
}

func (p *ProductUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*InsertRes, error) {
	const op = "ProductUseCase.CreateProduct"

	product.CreatedAt = time.Now().UTC()

	res, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx)
	return res, nil
}

// SetQuantity выставляет количество товара. Отсутствующий товар создаётся (upsert).
func (p *ProductUseCase) SetQuantity(ctx context.Context, id string, quantity int64) (*UpdateRes, error) {
	const op = "ProductUseCase.SetQuantity"

	res, err := p.productRepo.SetQuantity(ctx, id, quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, id)
	return res, nil
}

// DeleteProduct удаляет товар; если ничего не удалено, возвращает e.ErrNotFound.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id string) (*DeleteRes, error) {
	const op = "ProductUseCase.DeleteProduct"

	res, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if res.DeletedCount != 1 {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	p.invalidate(ctx, id)
	return res, nil
}

// UploadProductImage загружает изображение в объектное хранилище и записывает его URL в товар.
// Если запись в БД не удалась, загруженный объект удаляется в фоне.
func (p *ProductUseCase) UploadProductImage(ctx context.Context, req *UploadProductImageReq) (*UploadProductImageRes, error) {
	const op = "ProductUseCase.UploadProductImage"

	if p.imagesInfra == nil {
		return nil, e.Wrap(op, e.ErrImagesDisabled)
	}

	if _, err := p.productRepo.GetByID(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	uploaded, err := p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.ProductID, []ProductImage{req.Image}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res, err := p.productRepo.SetImage(ctx, req.ProductID, uploaded.URLs[0])
	if err != nil {
		p.logger.Warnf("Cleaning up orphaned image after store failure. product_id: %s, error: %v", req.ProductID, e.Wrap(op, err))
		p.imagesInfra.CleanupImages(uploaded.ImagesKeys)
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, req.ProductID)
	return &UploadProductImageRes{Result: res, URL: uploaded.URLs[0]}, nil
}

// cacheProduct кэширует товар, прочитанный при поколении gen.
// Если за это время прошла инвалидация, запись не делается или откатывается.
func (p *ProductUseCase) cacheProduct(ctx context.Context, gen uint64, product domain.Product) {
	const op = "ProductUseCase.cacheProduct"

	if p.cacheGen.Load() != gen {
		return
	}

	if err := p.cacheRepo.SetProducts(ctx, []domain.Product{product}); err != nil {
		p.logger.Warnf("product cache write failed: %v", e.Wrap(op, err))
		return
	}

	if p.cacheGen.Load() != gen {
		if err := p.cacheRepo.DeleteProducts(ctx, []string{product.ID}); err != nil {
			p.logger.Warnf("Failed to delete stale product from cache: %v", e.Wrap(op, err))
		}
	}
}

// cacheCatalog то же для каталога.
func (p *ProductUseCase) cacheCatalog(ctx context.Context, gen uint64, products []domain.Product) {
	const op = "ProductUseCase.cacheCatalog"

	if p.cacheGen.Load() != gen {
		return
	}

	if err := p.cacheRepo.SetCatalog(ctx, products); err != nil {
		p.logger.Warnf("catalog cache write failed: %v", e.Wrap(op, err))
		return
	}

	if p.cacheGen.Load() != gen {
		if err := p.cacheRepo.DeleteCatalog(ctx); err != nil {
			p.logger.Warnf("Failed to delete stale catalog from cache: %v", e.Wrap(op, err))
		}
	}
}

// invalidate удаляет из кэша каталог и перечисленные товары.
func (p *ProductUseCase) invalidate(ctx context.Context, ids ...string) {
	const op = "ProductUseCase.invalidate"

	p.cacheGen.Add(1)

	if len(ids) > 0 {
		if err := p.cacheRepo.DeleteProducts(ctx, ids); err != nil {
			p.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
		}
	}

	if err := p.cacheRepo.DeleteCatalog(ctx); err != nil {
		p.logger.Warnf("Failed to delete catalog from cache: %v", e.Wrap(op, err))
	}
}
