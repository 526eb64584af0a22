package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SaleRepository is a testify mock of the SaleRepository interface.
type SaleRepository struct {
	mock.Mock
}

func (_m *SaleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	ret := _m.Called(ctx, sale)

	return ret.Error(0)
}

func (_m *SaleRepository) GetSaleByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Sale
	if rf, ok := ret.Get(0).(*models.Sale); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *SaleRepository) ListSales(ctx context.Context, filter models.SaleFilter) ([]*models.Sale, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Sale
	if rf, ok := ret.Get(0).([]*models.Sale); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *SaleRepository) SalesReport(ctx context.Context, filter models.ReportFilter) (*models.SalesReport, error) {
	ret := _m.Called(ctx, filter)

	var r0 *models.SalesReport
	if rf, ok := ret.Get(0).(*models.SalesReport); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewSaleRepository registers AssertExpectations as a test cleanup.
func NewSaleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SaleRepository {
	m := &SaleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
