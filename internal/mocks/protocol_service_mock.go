// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/dilution"
	"github.com/openpdst/dst-service/internal/domain/dto"
)

type MockProtocolService struct {
	mock.Mock
}

func (m *MockProtocolService) StageOne(ctx context.Context, req *dto.StageOneRequest) (*dto.StageOneResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StageOneResponse), args.Error(1)
}

func (m *MockProtocolService) StageTwo(ctx context.Context, req *dto.StageTwoRequest) (*dto.StageTwoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StageTwoResponse), args.Error(1)
}

func (m *MockProtocolService) DefaultProtocol() dilution.Protocol {
	args := m.Called()
	return args.Get(0).(dilution.Protocol)
}
