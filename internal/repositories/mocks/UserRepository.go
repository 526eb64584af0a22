package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock of the UserRepository interface.
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) ListUsers(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.User
	if rf, ok := ret.Get(0).([]*models.User); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *UserRepository) UpdateUserRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	ret := _m.Called(ctx, id, role)

	return ret.Error(0)
}

func (_m *UserRepository) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, id, active)

	return ret.Error(0)
}

// NewUserRepository registers AssertExpectations as a test cleanup.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
