package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MasterService is a testify mock of the MasterService interface.
type MasterService struct {
	mock.Mock
}

func (_m *MasterService) CreateMaster(ctx context.Context, kind models.MasterKind, req *models.CreateMasterRequest) (*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind, req)

	var r0 *models.MasterRecord
	if rf, ok := ret.Get(0).(*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *MasterService) GetMaster(ctx context.Context, kind models.MasterKind, id uuid.UUID) (*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 *models.MasterRecord
	if rf, ok := ret.Get(0).(*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *MasterService) UpdateMaster(ctx context.Context, kind models.MasterKind, id uuid.UUID, req *models.UpdateMasterRequest) (*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind, id, req)

	var r0 *models.MasterRecord
	if rf, ok := ret.Get(0).(*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *MasterService) SetMasterActive(ctx context.Context, kind models.MasterKind, id uuid.UUID, active bool) (*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind, id, active)

	var r0 *models.MasterRecord
	if rf, ok := ret.Get(0).(*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *MasterService) ListMasters(ctx context.Context, kind models.MasterKind, filter models.ListFilter) ([]*models.MasterRecord, int, error) {
	ret := _m.Called(ctx, kind, filter)

	var r0 []*models.MasterRecord
	if rf, ok := ret.Get(0).([]*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *MasterService) ListActiveMasters(ctx context.Context, kind models.MasterKind) ([]*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind)

	var r0 []*models.MasterRecord
	if rf, ok := ret.Get(0).([]*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewMasterService registers AssertExpectations as a test cleanup.
func NewMasterService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MasterService {
	m := &MasterService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
