package repository

import (
	"context"

	"github.com/cultural-sites-service/internal/domain"
)

// SiteRepository defines the persistent site store
type SiteRepository interface {
	Create(ctx context.Context, site *domain.Site) (*domain.Site, error)
	GetByID(ctx context.Context, id string) (*domain.Site, error)
	GetAll(ctx context.Context) ([]*domain.Site, error)
	Update(ctx context.Context, site *domain.Site) (*domain.Site, error)
	Delete(ctx context.Context, id string) error

	// ReplaceAll atomically swaps the whole collection for the given set.
	// Used by the import pipeline.
	ReplaceAll(ctx context.Context, sites []*domain.Site) error
	DeleteAll(ctx context.Context) error

	Stats(ctx context.Context) (*domain.SiteStats, error)
}
