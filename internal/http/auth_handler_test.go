package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/mocks"
	"github.com/openpdst/dst-service/internal/service"
)

func setupAuthRouter(authService *mocks.MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(authService)
	api := router.Group("/api")
	api.POST("/auth/login", handler.Login)
	api.POST("/auth/register", handler.Register)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	user := &model.User{
		ID:    primitive.NewObjectID(),
		Email: "tech@lab.example",
		Name:  "Lab Tech",
	}
	token := &dto.TokenResponse{AccessToken: "signed-token", TokenType: "Bearer", ExpiresIn: 900}

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: `{"email": "tech@lab.example", "password": "s3cretpass"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "tech@lab.example", "s3cretpass").
					Return(token, user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email": "tech@lab.example", "password": "wrong"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "tech@lab.example", "wrong").
					Return(nil, nil, service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"email": "tech@lab.example"}`,
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email format",
			body:           `{"email": "not-an-email", "password": "s3cretpass"}`,
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"email": "tech@lab.example", "password": "s3cretpass"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "tech@lab.example", "s3cretpass").
					Return(nil, nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(mocks.MockAuthService)
			tt.setupMock(authService)
			router := setupAuthRouter(authService)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp.Data.(map[string]interface{})
				assert.Equal(t, "signed-token", data["token"])
				assert.Equal(t, "Bearer", data["token_type"])
				userData := data["user"].(map[string]interface{})
				assert.Equal(t, "tech@lab.example", userData["email"])
			}
			authService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	user := &model.User{
		ID:    primitive.NewObjectID(),
		Email: "new@lab.example",
		Name:  "New Tech",
	}
	token := &dto.TokenResponse{AccessToken: "signed-token", TokenType: "Bearer", ExpiresIn: 900}

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful registration",
			body: `{"email": "new@lab.example", "name": "New Tech", "password": "s3cretpass"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, "new@lab.example", "New Tech", "s3cretpass").
					Return(token, user, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "existing user",
			body: `{"email": "new@lab.example", "name": "New Tech", "password": "s3cretpass"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, "new@lab.example", "New Tech", "s3cretpass").
					Return(nil, nil, service.ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "password too short",
			body:           `{"email": "new@lab.example", "name": "New Tech", "password": "short"}`,
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(mocks.MockAuthService)
			tt.setupMock(authService)
			router := setupAuthRouter(authService)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			authService.AssertExpectations(t)
		})
	}
}
