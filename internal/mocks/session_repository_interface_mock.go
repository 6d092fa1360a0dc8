// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/domain/model"
)

type MockSessionRepositoryInterface struct {
	mock.Mock
}

func (m *MockSessionRepositoryInterface) Create(ctx context.Context, session *model.ProtocolSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepositoryInterface) GetBySessionID(ctx context.Context, sessionID string) (*model.ProtocolSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProtocolSession), args.Error(1)
}

func (m *MockSessionRepositoryInterface) Update(ctx context.Context, session *model.ProtocolSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepositoryInterface) List(ctx context.Context, userID string, limit int) ([]model.ProtocolSession, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProtocolSession), args.Error(1)
}

func (m *MockSessionRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
