// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockOrderClient struct {
	mock.Mock
}

// NewMockOrderClient creates a new instance of MockOrderClient.
// The mock registers a cleanup hook to assert expectations at the end of the test.
func NewMockOrderClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderClient {
	m := &MockOrderClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOrderClient) Place(ctx context.Context, order model.OrderRequest) (*model.OrderConfirmation, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderConfirmation), args.Error(1)
}
