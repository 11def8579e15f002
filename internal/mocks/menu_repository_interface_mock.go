// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockMenuRepositoryInterface struct {
	mock.Mock
}

// NewMockMenuRepositoryInterface creates a new instance of MockMenuRepositoryInterface.
// The mock registers a cleanup hook to assert expectations at the end of the test.
func NewMockMenuRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMenuRepositoryInterface {
	m := &MockMenuRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMenuRepositoryInterface) GetByID(ctx context.Context, id string) (*model.MenuOffering, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuOffering), args.Error(1)
}

func (m *MockMenuRepositoryInterface) List(ctx context.Context) ([]model.MenuOffering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuOffering), args.Error(1)
}

func (m *MockMenuRepositoryInterface) Upsert(ctx context.Context, offering model.MenuOffering) error {
	args := m.Called(ctx, offering)
	return args.Error(0)
}
