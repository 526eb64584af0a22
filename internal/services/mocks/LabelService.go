package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/stretchr/testify/mock"
)

// LabelService is a testify mock of the LabelService interface.
type LabelService struct {
	mock.Mock
}

func (_m *LabelService) Layout(ctx context.Context, req *models.LabelLayoutRequest) (*models.LabelLayout, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.LabelLayout
	if rf, ok := ret.Get(0).(*models.LabelLayout); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// NewLabelService registers AssertExpectations as a test cleanup.
func NewLabelService(t interface {
	mock.TestingT
	Cleanup(func())
}) *LabelService {
	m := &LabelService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
