package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PurchaseService is a testify mock of the PurchaseService interface.
type PurchaseService struct {
	mock.Mock
}

func (_m *PurchaseService) CreatePurchaseOrder(ctx context.Context, createdBy uuid.UUID, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	ret := _m.Called(ctx, createdBy, req)

	var r0 *models.PurchaseOrder
	if rf, ok := ret.Get(0).(*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.PurchaseOrder
	if rf, ok := ret.Get(0).(*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseService) ListPurchaseOrders(ctx context.Context, filter models.PurchaseOrderFilter) ([]*models.PurchaseOrder, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.PurchaseOrder
	if rf, ok := ret.Get(0).([]*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *PurchaseService) UpdateDraft(ctx context.Context, id uuid.UUID, req *models.UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.PurchaseOrder
	if rf, ok := ret.Get(0).(*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseService) SubmitPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.PurchaseOrder
	if rf, ok := ret.Get(0).(*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.PurchaseOrder
	if rf, ok := ret.Get(0).(*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseService) ReceiveGoods(ctx context.Context, id uuid.UUID, receivedBy uuid.UUID, req *models.ReceiveGoodsRequest) (*models.ReceiveResult, error) {
	ret := _m.Called(ctx, id, receivedBy, req)

	var r0 *models.ReceiveResult
	if rf, ok := ret.Get(0).(*models.ReceiveResult); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseService) ListGoodsReceived(ctx context.Context, id uuid.UUID) ([]*models.GoodsReceivedNote, error) {
	ret := _m.Called(ctx, id)

	var r0 []*models.GoodsReceivedNote
	if rf, ok := ret.Get(0).([]*models.GoodsReceivedNote); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewPurchaseService registers AssertExpectations as a test cleanup.
func NewPurchaseService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PurchaseService {
	m := &PurchaseService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
