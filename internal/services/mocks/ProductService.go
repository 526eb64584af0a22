package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ProductService is a testify mock of the ProductService interface.
type ProductService struct {
	mock.Mock
}

func (_m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	ret := _m.Called(ctx, barcode)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) SetProductActive(ctx context.Context, id uuid.UUID, active bool) (*models.Product, error) {
	ret := _m.Called(ctx, id, active)

	var r0 *models.Product
	if rf, ok := ret.Get(0).(*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) ListProducts(ctx context.Context, filter models.ListFilter) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *ProductService) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Product
	if rf, ok := ret.Get(0).([]*models.Product); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) Invalidate(ctx context.Context, ids ...uuid.UUID) {
	_ca := []any{ctx}
	for _, v := range ids {
		_ca = append(_ca, v)
	}
	_m.Called(_ca...)
}

// NewProductService registers AssertExpectations as a test cleanup.
func NewProductService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductService {
	m := &ProductService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
