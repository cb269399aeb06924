package repository

import (
	"context"

	"github.com/cultural-sites-service/internal/domain"
)

// UserRepository defines the user account store. Email uniqueness is
// enforced by the store's unique index.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
