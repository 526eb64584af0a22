package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a testify mock of the ProductRepository interface.
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	ret := _m.Called(ctx, barcode)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_m *ProductRepository) SetProductActive(ctx context.Context, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, id, active)

	return ret.Error(0)
}

func (_m *ProductRepository) ListProducts(ctx context.Context, filter models.ListFilter) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *ProductRepository) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewProductRepository registers AssertExpectations as a test cleanup.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
