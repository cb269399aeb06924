package repository

import (
	"context"

	"github.com/cultural-sites-service/internal/domain"
)

// FavoriteRepository defines the user-site association store. Uniqueness
// of the (user, site) pair is enforced by the store itself; callers treat
// the unique-violation error as the authoritative signal.
type FavoriteRepository interface {
	Create(ctx context.Context, userID, siteID string) (*domain.Favorite, error)
	Delete(ctx context.Context, userID, siteID string) error
	Exists(ctx context.Context, userID, siteID string) (bool, error)

	// ListSites joins favorites with current site data at read time.
	// Favorites whose site was deleted are silently omitted.
	ListSites(ctx context.Context, userID string) ([]*domain.Site, error)
}
