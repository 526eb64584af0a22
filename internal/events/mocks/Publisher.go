package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Publisher is a testify mock of the Publisher interface.
type Publisher struct {
	mock.Mock
}

func (_m *Publisher) Publish(ctx context.Context, eventType string, data any) error {
	ret := _m.Called(ctx, eventType, data)

	return ret.Error(0)
}

func (_m *Publisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

// NewPublisher registers AssertExpectations as a test cleanup.
func NewPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *Publisher {
	m := &Publisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
