package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/pkg/stripe"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of the Client interface.
type Client struct {
	mock.Mock
}

func (_m *Client) AuthorizeCard(ctx context.Context, amount float64, paymentMethodID string, description string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	ret := _m.Called(ctx, amount, paymentMethodID, description, metadata)

	var r0 *stripe.PaymentIntent
	if rf, ok := ret.Get(0).(*stripe.PaymentIntent); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *Client) CapturePaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	ret := _m.Called(ctx, paymentIntentID)

	var r0 *stripe.PaymentIntent
	if rf, ok := ret.Get(0).(*stripe.PaymentIntent); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *Client) CancelPaymentIntent(ctx context.Context, paymentIntentID string) error {
	ret := _m.Called(ctx, paymentIntentID)

	return ret.Error(0)
}

func (_m *Client) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

// NewClient registers AssertExpectations as a test cleanup.
func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
