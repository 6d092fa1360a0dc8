//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/openpdst/dst-service/config"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/mocks"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:   "test-secret-key",
		AccessTokenTTL: 15 * time.Minute,
	}
}

func hashedUser(password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "tech@lab.example",
		Name:     "Lab Tech",
		Password: string(hash),
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user := hashedUser("s3cret-pass")
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "tech@lab.example").Return(user, nil)

		svc := NewAuthService(repo, testAuthConfig())
		token, got, err := svc.Login(ctx, "tech@lab.example", "s3cret-pass")
		require.NoError(t, err)

		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, int64(900), token.ExpiresIn)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "tech@lab.example").Return(hashedUser("s3cret-pass"), nil)

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(ctx, "tech@lab.example", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "nobody@lab.example").Return(nil, nil)

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(ctx, "nobody@lab.example", "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated user", func(t *testing.T) {
		user := hashedUser("s3cret-pass")
		user.Active = false
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "tech@lab.example").Return(user, nil)

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(ctx, "tech@lab.example", "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "tech@lab.example").Return(nil, assert.AnError)

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(ctx, "tech@lab.example", "s3cret-pass")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active user with a hashed password", func(t *testing.T) {
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "new@lab.example").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@lab.example" && u.Active && u.Password != "s3cret-pass"
		})).Return(nil)

		svc := NewAuthService(repo, testAuthConfig())
		token, user, err := svc.Register(ctx, "new@lab.example", "New Tech", "s3cret-pass")
		require.NoError(t, err)

		assert.NotEmpty(t, token.AccessToken)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mocks.MockUserRepositoryInterface)
		repo.On("FindByEmail", mock.Anything, "tech@lab.example").Return(hashedUser("x"), nil)

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Register(ctx, "tech@lab.example", "Lab Tech", "s3cret-pass")
		assert.ErrorIs(t, err, ErrUserExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	issueToken := func(t *testing.T, svc *AuthServiceImpl) string {
		t.Helper()
		repo := svc.userRepo.(*mocks.MockUserRepositoryInterface)
		user := hashedUser("s3cret-pass")
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		token, _, err := svc.Login(ctx, user.Email, "s3cret-pass")
		require.NoError(t, err)
		return token.AccessToken
	}

	t.Run("round trip", func(t *testing.T) {
		svc := NewAuthService(new(mocks.MockUserRepositoryInterface), testAuthConfig())
		tokenString := issueToken(t, svc)

		claims, err := svc.ValidateToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "tech@lab.example", claims.Email)
		assert.Equal(t, "Lab Tech", claims.Name)
		assert.False(t, claims.UserID.IsZero())
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(mocks.MockUserRepositoryInterface), testAuthConfig())
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		issuer := NewAuthService(new(mocks.MockUserRepositoryInterface), testAuthConfig())
		tokenString := issueToken(t, issuer)

		other := NewAuthService(new(mocks.MockUserRepositoryInterface), config.AuthConfig{
			JWTSecretKey:   "different-secret",
			AccessTokenTTL: 15 * time.Minute,
		})
		_, err := other.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewAuthService(new(mocks.MockUserRepositoryInterface), config.AuthConfig{
			JWTSecretKey:   "test-secret-key",
			AccessTokenTTL: -time.Minute,
		})
		tokenString := issueToken(t, svc)

		_, err := svc.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
