package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserService is a testify mock of the UserService interface.
type UserService struct {
	mock.Mock
}

func (_m *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.LoginResponse
	if rf, ok := ret.Get(0).(*models.LoginResponse); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*models.ProfileResponse, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.ProfileResponse
	if rf, ok := ret.Get(0).(*models.ProfileResponse); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *UserService) ListUsers(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.User
	if rf, ok := ret.Get(0).([]*models.User); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *UserService) UpdateRole(ctx context.Context, actorID uuid.UUID, id uuid.UUID, role models.Role) (*models.User, error) {
	ret := _m.Called(ctx, actorID, id, role)

	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *UserService) SetUserActive(ctx context.Context, actorID uuid.UUID, id uuid.UUID, active bool) (*models.User, error) {
	ret := _m.Called(ctx, actorID, id, active)

	var r0 *models.User
	if rf, ok := ret.Get(0).(*models.User); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewUserService registers AssertExpectations as a test cleanup.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
