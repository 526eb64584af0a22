package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PartyService is a testify mock of the PartyService interface.
type PartyService struct {
	mock.Mock
}

func (_m *PartyService) CreateParty(ctx context.Context, kind models.PartyKind, req *models.CreatePartyRequest) (*models.Party, error) {
	ret := _m.Called(ctx, kind, req)

	var r0 *models.Party
	if rf, ok := ret.Get(0).(*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PartyService) GetParty(ctx context.Context, kind models.PartyKind, id uuid.UUID) (*models.Party, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 *models.Party
	if rf, ok := ret.Get(0).(*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PartyService) UpdateParty(ctx context.Context, kind models.PartyKind, id uuid.UUID, req *models.UpdatePartyRequest) (*models.Party, error) {
	ret := _m.Called(ctx, kind, id, req)

	var r0 *models.Party
	if rf, ok := ret.Get(0).(*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PartyService) SetPartyActive(ctx context.Context, kind models.PartyKind, id uuid.UUID, active bool) (*models.Party, error) {
	ret := _m.Called(ctx, kind, id, active)

	var r0 *models.Party
	if rf, ok := ret.Get(0).(*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PartyService) ListParties(ctx context.Context, kind models.PartyKind, filter models.ListFilter) ([]*models.Party, int, error) {
	ret := _m.Called(ctx, kind, filter)

	var r0 []*models.Party
	if rf, ok := ret.Get(0).([]*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *PartyService) ListActiveParties(ctx context.Context, kind models.PartyKind) ([]*models.Party, error) {
	ret := _m.Called(ctx, kind)

	var r0 []*models.Party
	if rf, ok := ret.Get(0).([]*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewPartyService registers AssertExpectations as a test cleanup.
func NewPartyService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PartyService {
	m := &PartyService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
