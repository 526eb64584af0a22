package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SaleService is a testify mock of the SaleService interface.
type SaleService struct {
	mock.Mock
}

func (_m *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Sale
	if rf, ok := ret.Get(0).(*models.Sale); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *SaleService) ListSales(ctx context.Context, filter models.SaleFilter) ([]*models.Sale, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Sale
	if rf, ok := ret.Get(0).([]*models.Sale); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *SaleService) SalesReport(ctx context.Context, filter models.ReportFilter) (*models.SalesReport, error) {
	ret := _m.Called(ctx, filter)

	var r0 *models.SalesReport
	if rf, ok := ret.Get(0).(*models.SalesReport); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *SaleService) ResendReceipt(ctx context.Context, id uuid.UUID, recipient string) (*models.NotificationResponse, error) {
	ret := _m.Called(ctx, id, recipient)

	var r0 *models.NotificationResponse
	if rf, ok := ret.Get(0).(*models.NotificationResponse); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewSaleService registers AssertExpectations as a test cleanup.
func NewSaleService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SaleService {
	m := &SaleService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
