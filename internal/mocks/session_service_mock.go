// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Save(ctx context.Context, userID string, req *dto.SaveSessionRequest) (*model.ProtocolSession, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProtocolSession), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*model.ProtocolSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProtocolSession), args.Error(1)
}

func (m *MockSessionService) List(ctx context.Context, userID string, limit int) ([]model.ProtocolSession, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProtocolSession), args.Error(1)
}

func (m *MockSessionService) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
