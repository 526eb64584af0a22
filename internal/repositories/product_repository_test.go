package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{
	"id", "barcode", "name", "size", "brand_id", "category_id", "unit_id", "container_id",
	"retail_price", "wholesale_price", "cost_price", "stock_quantity", "reorder_level", "image_url",
	"active", "created_at", "updated_at",
}

func productRow(rows *sqlmock.Rows, p *models.Product) *sqlmock.Rows {
	var container any
	if p.ContainerID != nil {
		container = *p.ContainerID
	}
	return rows.AddRow(p.ID, p.Barcode, p.Name, p.Size, p.BrandID, p.CategoryID, p.UnitID, container,
		p.RetailPrice, p.WholesalePrice, p.CostPrice, p.StockQuantity, p.ReorderLevel, p.ImageURL,
		p.Active, p.CreatedAt, p.UpdatedAt)
}

func sampleProduct() *models.Product {
	now := time.Now().UTC()
	return &models.Product{
		ID:             uuid.New(),
		Barcode:        "8901030865278",
		Name:           "Basmati Rice",
		Size:           "5kg",
		BrandID:        uuid.New(),
		CategoryID:     uuid.New(),
		UnitID:         uuid.New(),
		RetailPrice:    450,
		WholesalePrice: 400,
		CostPrice:      360,
		StockQuantity:  40,
		ReorderLevel:   10,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	t.Run("CreateProduct", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			product := sampleProduct()
			product.ID = uuid.Nil
			newID := uuid.New()
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products (barcode, name, size,`)).
				WithArgs(product.Barcode, product.Name, product.Size, product.BrandID, product.CategoryID, product.UnitID,
					nil, product.RetailPrice, product.WholesalePrice, product.CostPrice,
					product.StockQuantity, product.ReorderLevel, product.ImageURL, product.Active).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, newID, product.ID)
			assert.WithinDuration(t, now, product.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - duplicate barcode", func(t *testing.T) {
			// Arrange
			product := sampleProduct()

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
				WillReturnError(&pq.Error{Code: "23505", Constraint: "products_barcode_key"})

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, repository.ErrDuplicate)
			assert.Contains(t, err.Error(), "products_barcode_key")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			expected := sampleProduct()
			containerID := uuid.New()
			expected.ContainerID = &containerID

			mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE id = $1`)).
				WithArgs(expected.ID).
				WillReturnRows(productRow(sqlmock.NewRows(productCols), expected))

			// Act
			product, err := repo.GetProductByID(ctx, expected.ID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, expected.ID, product.ID)
			assert.Equal(t, expected.Barcode, product.Barcode)
			assert.Equal(t, 400.0, product.WholesalePrice)
			require.NotNil(t, product.ContainerID)
			assert.Equal(t, containerID, *product.ContainerID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - not found", func(t *testing.T) {
			// Arrange
			id := uuid.New()
			mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE id = $1`)).
				WithArgs(id).
				WillReturnRows(sqlmock.NewRows(productCols))

			// Act
			product, err := repo.GetProductByID(ctx, id)

			// Assert
			assert.Nil(t, product)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByBarcode", func(t *testing.T) {
		expected := sampleProduct()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE barcode = $1`)).
			WithArgs(expected.Barcode).
			WillReturnRows(productRow(sqlmock.NewRows(productCols), expected))

		product, err := repo.GetProductByBarcode(ctx, expected.Barcode)

		require.NoError(t, err)
		assert.Equal(t, expected.ID, product.ID)
		assert.Nil(t, product.ContainerID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProductsByIDs", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			a, b := sampleProduct(), sampleProduct()
			rows := sqlmock.NewRows(productCols)
			productRow(rows, a)
			productRow(rows, b)

			mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = ANY($1::uuid[])`)).
				WithArgs(sqlmock.AnyArg()).
				WillReturnRows(rows)

			products, err := repo.GetProductsByIDs(ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})

			require.NoError(t, err)
			assert.Len(t, products, 2)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - no ids skips the query", func(t *testing.T) {
			products, err := repo.GetProductsByIDs(ctx, nil)

			require.NoError(t, err)
			assert.Empty(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		product := sampleProduct()
		updatedAt := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE products SET barcode = $1`)).
			WithArgs(product.Barcode, product.Name, product.Size, product.BrandID, product.CategoryID, product.UnitID,
				nil, product.RetailPrice, product.WholesalePrice, product.CostPrice,
				product.ReorderLevel, product.ImageURL, product.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

		err := repo.UpdateProduct(ctx, product)

		require.NoError(t, err)
		assert.WithinDuration(t, updatedAt, product.UpdatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetProductActive", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			id := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET active = $1`)).
				WithArgs(false, id).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.SetProductActive(ctx, id, false))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - not found", func(t *testing.T) {
			id := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET active = $1`)).
				WithArgs(true, id).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.SetProductActive(ctx, id, true)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListProducts", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			filter := models.ListFilter{Page: 2, PageSize: 5, Query: "rice"}
			expected := sampleProduct()

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products WHERE name ILIKE $1`)).
				WithArgs("%rice%").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

			mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY name LIMIT $2 OFFSET $3`)).
				WithArgs("%rice%", 5, 5).
				WillReturnRows(productRow(sqlmock.NewRows(productCols), expected))

			// Act
			products, total, err := repo.ListProducts(ctx, filter)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 6, total)
			require.Len(t, products, 1)
			assert.Equal(t, expected.ID, products[0].ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - count error", func(t *testing.T) {
			dbErr := errors.New("connection reset")
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)).
				WillReturnError(dbErr)

			products, total, err := repo.ListProducts(ctx, models.ListFilter{Page: 1, PageSize: 10})

			assert.ErrorIs(t, err, dbErr)
			assert.Nil(t, products)
			assert.Zero(t, total)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListLowStock", func(t *testing.T) {
		low := sampleProduct()
		low.StockQuantity = 2

		mock.ExpectQuery(regexp.QuoteMeta(`stock_quantity <= reorder_level`)).
			WillReturnRows(productRow(sqlmock.NewRows(productCols), low))

		products, err := repo.ListLowStock(ctx)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.True(t, products[0].LowStock())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
