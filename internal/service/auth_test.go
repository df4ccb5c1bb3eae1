//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mohamed2661994/glass-transfer-service/config"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/mocks"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "test-secret-key",
		JWTRefreshSecret: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func testUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "cashier@store.example",
		Username: "cashier",
		Password: string(hash),
		Name:     "Cashier One",
		Roles:    []string{model.RoleCashier},
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success returns token pair and user", func(t *testing.T) {
		user := testUser(t, "correct-password")
		repo := new(mocks.MockUserRepository)
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		svc := NewAuthService(repo, testAuthConfig())
		pair, got, err := svc.Login(context.Background(), user.Email, "correct-password")

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, int64(900), pair.ExpiresIn)
		assert.Equal(t, user.Email, got.Email)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := testUser(t, "correct-password")
		repo := new(mocks.MockUserRepository)
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		svc := NewAuthService(repo, testAuthConfig())
		pair, got, err := svc.Login(context.Background(), user.Email, "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, pair)
		assert.Nil(t, got)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@store.example").Return(nil, nil).Once()

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(context.Background(), "nobody@store.example", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		user := testUser(t, "correct-password")
		user.Active = false
		repo := new(mocks.MockUserRepository)
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(context.Background(), user.Email, "correct-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("database error")).Once()

		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Login(context.Background(), "cashier@store.example", "pw")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	user := testUser(t, "correct-password")
	repo := new(mocks.MockUserRepository)
	repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	svc := NewAuthService(repo, testAuthConfig())
	pair, _, err := svc.Login(context.Background(), user.Email, "correct-password")
	require.NoError(t, err)

	t.Run("valid access token", func(t *testing.T) {
		claims, err := svc.ValidateToken(context.Background(), pair.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Roles, claims.Roles)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.AccessTokenTTL = -time.Minute
		expiredRepo := new(mocks.MockUserRepository)
		expiredRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		expiredSvc := NewAuthService(expiredRepo, cfg)
		expiredPair, _, err := expiredSvc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)

		_, err = expiredSvc.ValidateToken(context.Background(), expiredPair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	user := testUser(t, "correct-password")

	login := func(t *testing.T, repo *mocks.MockUserRepository) (AuthService, string) {
		t.Helper()
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		svc := NewAuthService(repo, testAuthConfig())
		pair, _, err := svc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)
		return svc, pair.RefreshToken
	}

	t.Run("valid refresh token returns new pair", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		svc, refreshToken := login(t, repo)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		pair, err := svc.RefreshToken(context.Background(), refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		claims, err := svc.ValidateToken(context.Background(), pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()
		svc := NewAuthService(repo, testAuthConfig())
		pair, _, err := svc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)

		_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deactivated account loses access at refresh", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		svc, refreshToken := login(t, repo)

		deactivated := *user
		deactivated.Active = false
		repo.On("FindByID", mock.Anything, user.ID).Return(&deactivated, nil).Once()

		_, err := svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deleted account loses access at refresh", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		svc, refreshToken := login(t, repo)
		repo.On("FindByID", mock.Anything, user.ID).Return(nil, nil).Once()

		_, err := svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		svc := NewAuthService(repo, testAuthConfig())

		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
