package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	SetProductActive(ctx context.Context, id uuid.UUID, active bool) error
	ListProducts(ctx context.Context, filter models.ListFilter) ([]*models.Product, int, error)
	ListActiveProducts(ctx context.Context) ([]*models.Product, error)
	ListLowStock(ctx context.Context) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, barcode, name, size, brand_id, category_id, unit_id, container_id,
	retail_price, wholesale_price, cost_price, stock_quantity, reorder_level, image_url,
	active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	p := &models.Product{}
	var container uuid.NullUUID

	err := row.Scan(&p.ID, &p.Barcode, &p.Name, &p.Size, &p.BrandID, &p.CategoryID, &p.UnitID, &container,
		&p.RetailPrice, &p.WholesalePrice, &p.CostPrice, &p.StockQuantity, &p.ReorderLevel, &p.ImageURL,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.ContainerID = uuidPtr(container)
	return p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (barcode, name, size, brand_id, category_id, unit_id, container_id,
			retail_price, wholesale_price, cost_price, stock_quantity, reorder_level, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.Barcode, product.Name, product.Size, product.BrandID, product.CategoryID, product.UnitID,
		nullUUID(product.ContainerID), product.RetailPrice, product.WholesalePrice, product.CostPrice,
		product.StockQuantity, product.ReorderLevel, product.ImageURL, product.Active,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", mapError(err))
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying product %s: %w", id, mapError(err))
	}

	return product, nil
}

func (r *productRepository) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, barcode))
	if err != nil {
		return nil, fmt.Errorf("querying product by barcode: %w", mapError(err))
	}

	return product, nil
}

// GetProductsByIDs returns the products that exist; missing ids are skipped.
func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[])`

	return r.queryProducts(dbCtx, query, pq.Array(raw))
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET barcode = $1, name = $2, size = $3, brand_id = $4, category_id = $5, unit_id = $6,
			container_id = $7, retail_price = $8, wholesale_price = $9, cost_price = $10, reorder_level = $11,
			image_url = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.Barcode, product.Name, product.Size, product.BrandID, product.CategoryID, product.UnitID,
		nullUUID(product.ContainerID), product.RetailPrice, product.WholesalePrice, product.CostPrice,
		product.ReorderLevel, product.ImageURL, product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", mapError(err))
	}

	return nil
}

func (r *productRepository) SetProductActive(ctx context.Context, id uuid.UUID, active bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET active = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update product status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ListFilter) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	pattern := likePattern(filter.Query)

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR barcode ILIKE $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE $1 OR barcode ILIKE $1
		ORDER BY name
		LIMIT $2 OFFSET $3`

	products, err := r.queryProducts(dbCtx, query, pattern, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE active = TRUE ORDER BY name`

	return r.queryProducts(dbCtx, query)
}

func (r *productRepository) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products
		WHERE active = TRUE AND stock_quantity <= reorder_level
		ORDER BY stock_quantity, name`

	return r.queryProducts(dbCtx, query)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return products, nil
}
