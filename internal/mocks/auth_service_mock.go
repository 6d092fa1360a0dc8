// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, *model.User, error) {
	args := m.Called(ctx, email, password)
	var token *dto.TokenResponse
	if args.Get(0) != nil {
		token = args.Get(0).(*dto.TokenResponse)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return token, user, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email, name, password string) (*dto.TokenResponse, *model.User, error) {
	args := m.Called(ctx, email, name, password)
	var token *dto.TokenResponse
	if args.Get(0) != nil {
		token = args.Get(0).(*dto.TokenResponse)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return token, user, args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}
