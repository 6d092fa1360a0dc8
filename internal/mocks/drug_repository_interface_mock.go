// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/domain/model"
)

type MockDrugRepositoryInterface struct {
	mock.Mock
}

func (m *MockDrugRepositoryInterface) GetByDrugID(ctx context.Context, drugID string) (*model.DrugReference, error) {
	args := m.Called(ctx, drugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DrugReference), args.Error(1)
}

func (m *MockDrugRepositoryInterface) List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error) {
	args := m.Called(ctx, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DrugReference), args.Error(1)
}

func (m *MockDrugRepositoryInterface) Create(ctx context.Context, drug *model.DrugReference) error {
	args := m.Called(ctx, drug)
	return args.Error(0)
}

func (m *MockDrugRepositoryInterface) UpdateAvailability(ctx context.Context, drugID string, available bool) error {
	args := m.Called(ctx, drugID, available)
	return args.Error(0)
}

func (m *MockDrugRepositoryInterface) SeedDefaultPanel(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
