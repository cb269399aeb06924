package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cultural-sites-service/internal/auth"
	"github.com/cultural-sites-service/internal/config"
	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/usecase"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

func newAuthUseCase(t *testing.T) (*usecase.AuthUseCase, *MockUserRepository, *auth.JWTManager) {
	t.Helper()
	jwtManager, err := auth.NewJWTManager(&config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	return usecase.NewAuthUseCase(userRepo, jwtManager, zap.NewNop()), userRepo, jwtManager
}

func TestAuthRegister(t *testing.T) {
	t.Run("hashes password and issues token", func(t *testing.T) {
		uc, userRepo, jwtManager := newAuthUseCase(t)

		var stored *domain.User
		userRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.User)
				stored.ID = testUserID
			}).
			Return(&domain.User{ID: testUserID, Name: "Alex", Email: "alex@example.com"}, nil)

		resp, err := uc.Register(context.Background(), dto.RegisterRequest{
			Name:     "Alex",
			Email:    "alex@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.NotEqual(t, "correct horse", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

		assert.Equal(t, testUserID, resp.User.ID)
		userID, err := jwtManager.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, userRepo, _ := newAuthUseCase(t)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.ErrEmailTaken)

		_, err := uc.Register(context.Background(), dto.RegisterRequest{
			Name:     "Alex",
			Email:    "alex@example.com",
			Password: "correct horse",
		})
		assert.ErrorIs(t, err, errors.ErrEmailTaken)
	})
}

func TestAuthLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	existing := &domain.User{
		ID:           testUserID,
		Name:         "Alex",
		Email:        "alex@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		uc, userRepo, jwtManager := newAuthUseCase(t)
		userRepo.On("GetByEmail", mock.Anything, "alex@example.com").Return(existing, nil)

		resp, err := uc.Login(context.Background(), dto.LoginRequest{
			Email:    "alex@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)

		userID, err := jwtManager.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, userRepo, _ := newAuthUseCase(t)
		userRepo.On("GetByEmail", mock.Anything, "alex@example.com").Return(existing, nil)

		_, err := uc.Login(context.Background(), dto.LoginRequest{
			Email:    "alex@example.com",
			Password: "wrong horse",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		uc, userRepo, _ := newAuthUseCase(t)
		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errors.ErrUserNotFound)

		_, err := uc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct horse",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})
}

func TestAuthMe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, userRepo, _ := newAuthUseCase(t)
		userRepo.On("GetByID", mock.Anything, testUserID).
			Return(&domain.User{ID: testUserID, Name: "Alex", Email: "alex@example.com"}, nil)

		me, err := uc.Me(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", me.Email)
	})

	t.Run("deleted account", func(t *testing.T) {
		uc, userRepo, _ := newAuthUseCase(t)
		userRepo.On("GetByID", mock.Anything, testUserID).Return(nil, errors.ErrUserNotFound)

		_, err := uc.Me(context.Background(), testUserID)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}
