package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/cache"
	"github.com/aaravmahajanofficial/pos-admin/internal/config"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	// GetProductsByIDs returns the products that exist; missing ids are skipped.
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	SetProductActive(ctx context.Context, id uuid.UUID, active bool) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ListFilter) ([]*models.Product, int, error)
	ListActiveProducts(ctx context.Context) ([]*models.Product, error)
	ListLowStock(ctx context.Context) ([]*models.Product, error)
	// Invalidate drops cached copies after stock or price changes made elsewhere.
	Invalidate(ctx context.Context, ids ...uuid.UUID)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	cfg   config.CacheConfig
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache, cfg config.CacheConfig) ProductService {
	return &productService{repo: repo, cache: cache, cfg: cfg}
}

func productKey(id uuid.UUID) string {
	return cache.Key(cache.ProductKeyPrefix, id.String())
}

func barcodeKey(barcode string) string {
	return cache.Key(cache.BarcodeKeyPrefix, barcode)
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Barcode:        utils.Sanitize(req.Barcode),
		Name:           utils.Sanitize(req.Name),
		Size:           utils.Sanitize(req.Size),
		BrandID:        req.BrandID,
		CategoryID:     req.CategoryID,
		UnitID:         req.UnitID,
		ContainerID:    req.ContainerID,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		CostPrice:      req.CostPrice,
		StockQuantity:  req.StockQuantity,
		ReorderLevel:   req.ReorderLevel,
		ImageURL:       req.ImageURL,
		Active:         true,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, repoError(err, "Product", "create product")
	}

	middleware.LoggerFromContext(ctx).Info("Product created",
		slog.String("productId", product.ID.String()),
		slog.String("barcode", product.Barcode))

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := productKey(id)

	var cached models.Product
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Product cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Product", "fetch product")
	}

	if err := s.cache.Set(ctx, key, product, s.cfg.DefaultTTL); err != nil {
		logger.Warn("Product cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return product, nil
}

// GetProductByBarcode caches barcode -> id, so only one copy of the product is
// ever cached and invalidation by id stays sufficient.
func (s *productService) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := barcodeKey(barcode)

	var id uuid.UUID
	found, err := s.cache.Get(ctx, key, &id)
	if err != nil {
		logger.Warn("Barcode cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		return s.GetProductByID(ctx, id)
	}

	product, err := s.repo.GetProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, repoError(err, "Product", "fetch product")
	}

	if err := s.cache.Set(ctx, key, product.ID, s.cfg.DefaultTTL); err != nil {
		logger.Warn("Barcode cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	products, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, repoError(err, "Product", "fetch products")
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Product", "fetch product")
	}

	oldBarcode := product.Barcode

	if req.Barcode != nil {
		product.Barcode = utils.Sanitize(*req.Barcode)
	}
	if req.Name != nil {
		product.Name = utils.Sanitize(*req.Name)
	}
	if req.Size != nil {
		product.Size = utils.Sanitize(*req.Size)
	}
	if req.BrandID != nil {
		product.BrandID = *req.BrandID
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.UnitID != nil {
		product.UnitID = *req.UnitID
	}
	if req.ContainerID != nil {
		product.ContainerID = req.ContainerID
	}
	if req.RetailPrice != nil {
		product.RetailPrice = *req.RetailPrice
	}
	if req.WholesalePrice != nil {
		product.WholesalePrice = *req.WholesalePrice
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, repoError(err, "Product", "update product")
	}

	s.evict(ctx, productKey(id), barcodeKey(oldBarcode))

	return product, nil
}

func (s *productService) SetProductActive(ctx context.Context, id uuid.UUID, active bool) (*models.Product, error) {
	if err := s.repo.SetProductActive(ctx, id, active); err != nil {
		return nil, repoError(err, "Product", "change product status")
	}

	s.evict(ctx, productKey(id))

	return s.GetProductByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, filter models.ListFilter) ([]*models.Product, int, error) {
	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch low stock products").WithError(err)
	}

	return products, nil
}

func (s *productService) Invalidate(ctx context.Context, ids ...uuid.UUID) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}

	s.evict(ctx, keys...)
}

// evict never fails the caller; a stale entry expires with its TTL.
func (s *productService) evict(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache eviction failed",
			slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
