package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// NotificationRepository is a testify mock of the NotificationRepository interface.
type NotificationRepository struct {
	mock.Mock
}

func (_m *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	ret := _m.Called(ctx, notification)

	return ret.Error(0)
}

func (_m *NotificationRepository) GetNotificationByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Notification
	if rf, ok := ret.Get(0).(*models.Notification); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *NotificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error {
	ret := _m.Called(ctx, id, status, errorMsg)

	return ret.Error(0)
}

func (_m *NotificationRepository) ListNotifications(ctx context.Context, filter models.ListFilter) ([]*models.Notification, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Notification
	if rf, ok := ret.Get(0).([]*models.Notification); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

// NewNotificationRepository registers AssertExpectations as a test cleanup.
func NewNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
