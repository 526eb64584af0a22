package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// CartService is a testify mock of the CartService interface.
type CartService struct {
	mock.Mock
}

func (_m *CartService) GetCart(ctx context.Context, terminalID string) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) AddItem(ctx context.Context, terminalID string, productID uuid.UUID) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, productID)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ScanBarcode(ctx context.Context, terminalID string, barcode string) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, barcode)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) UpdateItem(ctx context.Context, terminalID string, lineID string, req *models.UpdateCartItemRequest) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, lineID, req)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) RemoveItem(ctx context.Context, terminalID string, lineID string) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, lineID)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) SetCustomer(ctx context.Context, terminalID string, customerID *uuid.UUID) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, customerID)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ToggleWholesale(ctx context.Context, terminalID string, wholesale bool) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, wholesale)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) SetInputs(ctx context.Context, terminalID string, req *models.SetCartInputsRequest) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, req)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ClearCart(ctx context.Context, terminalID string) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) HoldCart(ctx context.Context, terminalID string, note string) (*models.HeldCartSummary, error) {
	ret := _m.Called(ctx, terminalID, note)

	var r0 *models.HeldCartSummary
	if rf, ok := ret.Get(0).(*models.HeldCartSummary); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ListHeld(ctx context.Context, terminalID string) ([]*models.HeldCartSummary, error) {
	ret := _m.Called(ctx, terminalID)

	var r0 []*models.HeldCartSummary
	if rf, ok := ret.Get(0).([]*models.HeldCartSummary); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ResumeHeld(ctx context.Context, terminalID string, holdID uuid.UUID) (*models.CartView, error) {
	ret := _m.Called(ctx, terminalID, holdID)

	var r0 *models.CartView
	if rf, ok := ret.Get(0).(*models.CartView); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *CartService) DiscardHeld(ctx context.Context, terminalID string, holdID uuid.UUID) error {
	ret := _m.Called(ctx, terminalID, holdID)

	return ret.Error(0)
}

func (_m *CartService) Checkout(ctx context.Context, cashier *models.Claims, req *models.CheckoutRequest) (*models.Sale, error) {
	ret := _m.Called(ctx, cashier, req)

	var r0 *models.Sale
	if rf, ok := ret.Get(0).(*models.Sale); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewCartService registers AssertExpectations as a test cleanup.
func NewCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartService {
	m := &CartService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
