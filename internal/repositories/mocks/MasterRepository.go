package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MasterRepository is a testify mock of the MasterRepository interface.
type MasterRepository struct {
	mock.Mock
}

func (_m *MasterRepository) CreateMaster(ctx context.Context, record *models.MasterRecord) error {
	ret := _m.Called(ctx, record)

	return ret.Error(0)
}

func (_m *MasterRepository) GetMasterByID(ctx context.Context, kind models.MasterKind, id uuid.UUID) (*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 *models.MasterRecord
	if rf, ok := ret.Get(0).(*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *MasterRepository) UpdateMaster(ctx context.Context, record *models.MasterRecord) error {
	ret := _m.Called(ctx, record)

	return ret.Error(0)
}

func (_m *MasterRepository) SetMasterActive(ctx context.Context, kind models.MasterKind, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, kind, id, active)

	return ret.Error(0)
}

func (_m *MasterRepository) ListMasters(ctx context.Context, kind models.MasterKind, filter models.ListFilter) ([]*models.MasterRecord, int, error) {
	ret := _m.Called(ctx, kind, filter)

	var r0 []*models.MasterRecord
	if rf, ok := ret.Get(0).([]*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *MasterRepository) ListActiveMasters(ctx context.Context, kind models.MasterKind) ([]*models.MasterRecord, error) {
	ret := _m.Called(ctx, kind)

	var r0 []*models.MasterRecord
	if rf, ok := ret.Get(0).([]*models.MasterRecord); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewMasterRepository registers AssertExpectations as a test cleanup.
func NewMasterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MasterRepository {
	m := &MasterRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
