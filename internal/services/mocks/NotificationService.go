package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// NotificationService is a testify mock of the NotificationService interface.
type NotificationService struct {
	mock.Mock
}

func (_m *NotificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.NotificationResponse
	if rf, ok := ret.Get(0).(*models.NotificationResponse); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *NotificationService) SendReceipt(ctx context.Context, sale *models.Sale, recipient string) (*models.NotificationResponse, error) {
	ret := _m.Called(ctx, sale, recipient)

	var r0 *models.NotificationResponse
	if rf, ok := ret.Get(0).(*models.NotificationResponse); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *NotificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Notification
	if rf, ok := ret.Get(0).(*models.Notification); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *NotificationService) ListNotifications(ctx context.Context, filter models.ListFilter) ([]*models.Notification, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Notification
	if rf, ok := ret.Get(0).([]*models.Notification); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

// NewNotificationService registers AssertExpectations as a test cleanup.
func NewNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationService {
	m := &NotificationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
