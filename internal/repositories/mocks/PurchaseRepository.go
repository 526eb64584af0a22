package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PurchaseRepository is a testify mock of the PurchaseRepository interface.
type PurchaseRepository struct {
	mock.Mock
}

func (_m *PurchaseRepository) CreatePurchaseOrder(ctx context.Context, order *models.PurchaseOrder) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *PurchaseRepository) GetPurchaseOrderByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.PurchaseOrder
	if rf, ok := ret.Get(0).(*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PurchaseRepository) ListPurchaseOrders(ctx context.Context, filter models.PurchaseOrderFilter) ([]*models.PurchaseOrder, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.PurchaseOrder
	if rf, ok := ret.Get(0).([]*models.PurchaseOrder); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *PurchaseRepository) ReplaceDraft(ctx context.Context, order *models.PurchaseOrder) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *PurchaseRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []models.PurchaseOrderStatus, to models.PurchaseOrderStatus) error {
	ret := _m.Called(ctx, id, from, to)

	return ret.Error(0)
}

func (_m *PurchaseRepository) ReceiveGoods(ctx context.Context, grn *models.GoodsReceivedNote) (models.PurchaseOrderStatus, error) {
	ret := _m.Called(ctx, grn)

	r0, _ := ret.Get(0).(models.PurchaseOrderStatus)
	return r0, ret.Error(1)
}

func (_m *PurchaseRepository) ListGoodsReceived(ctx context.Context, orderID uuid.UUID) ([]*models.GoodsReceivedNote, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []*models.GoodsReceivedNote
	if rf, ok := ret.Get(0).([]*models.GoodsReceivedNote); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewPurchaseRepository registers AssertExpectations as a test cleanup.
func NewPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PurchaseRepository {
	m := &PurchaseRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
