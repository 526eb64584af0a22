package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PartyRepository is a testify mock of the PartyRepository interface.
type PartyRepository struct {
	mock.Mock
}

func (_m *PartyRepository) CreateParty(ctx context.Context, party *models.Party) error {
	ret := _m.Called(ctx, party)

	return ret.Error(0)
}

func (_m *PartyRepository) GetPartyByID(ctx context.Context, kind models.PartyKind, id uuid.UUID) (*models.Party, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 *models.Party
	if rf, ok := ret.Get(0).(*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

func (_m *PartyRepository) UpdateParty(ctx context.Context, party *models.Party) error {
	ret := _m.Called(ctx, party)

	return ret.Error(0)
}

func (_m *PartyRepository) SetPartyActive(ctx context.Context, kind models.PartyKind, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, kind, id, active)

	return ret.Error(0)
}

func (_m *PartyRepository) ListParties(ctx context.Context, kind models.PartyKind, filter models.ListFilter) ([]*models.Party, int, error) {
	ret := _m.Called(ctx, kind, filter)

	var r0 []*models.Party
	if rf, ok := ret.Get(0).([]*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *PartyRepository) ListActiveParties(ctx context.Context, kind models.PartyKind) ([]*models.Party, error) {
	ret := _m.Called(ctx, kind)

	var r0 []*models.Party
	if rf, ok := ret.Get(0).([]*models.Party); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewPartyRepository registers AssertExpectations as a test cleanup.
func NewPartyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PartyRepository {
	m := &PartyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
