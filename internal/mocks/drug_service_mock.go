// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/domain/model"
)

type MockDrugService struct {
	mock.Mock
}

func (m *MockDrugService) Get(ctx context.Context, drugID string) (*model.DrugReference, error) {
	args := m.Called(ctx, drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DrugReference), args.Error(1)
}

func (m *MockDrugService) List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error) {
	args := m.Called(ctx, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DrugReference), args.Error(1)
}

func (m *MockDrugService) Create(ctx context.Context, drug *model.DrugReference) error {
	args := m.Called(ctx, drug)
	return args.Error(0)
}

func (m *MockDrugService) UpdateAvailability(ctx context.Context, drugID string, available bool) error {
	args := m.Called(ctx, drugID, available)
	return args.Error(0)
}

func (m *MockDrugService) SeedDefaultPanel(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
