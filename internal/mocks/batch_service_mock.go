// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/domain/dto"
)

type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Process(ctx context.Context, r io.Reader) (*dto.BatchResponse, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchResponse), args.Error(1)
}
