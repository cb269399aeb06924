package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cultural-sites-service/internal/auth"
	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/domain/repository"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

// bcryptCost balances hashing cost against login latency
const bcryptCost = 12

type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	jwtManager *auth.JWTManager,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register creates an account and issues a session token. The store's
// unique email index is the authoritative duplicate guard.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return uc.buildAuthResponse(user)
}

// Login verifies credentials. Unknown email and wrong password collapse
// into the same generic error.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.buildAuthResponse(user)
}

// Me returns the current user for a verified token's user ID
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (uc *AuthUseCase) buildAuthResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, err := uc.jwtManager.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
