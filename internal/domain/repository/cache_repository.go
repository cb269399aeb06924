package repository

import (
	"context"
	"time"

	"github.com/cultural-sites-service/internal/domain"
)

// CacheRepository defines the cache used in front of the site store
type CacheRepository interface {
	// Get retrieves a raw value; a cache miss returns (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a raw value with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// GetSites retrieves the cached site listing; a miss returns (nil, nil)
	GetSites(ctx context.Context) ([]*domain.Site, error)

	// SetSites caches the full site listing
	SetSites(ctx context.Context, sites []*domain.Site, ttl time.Duration) error

	// InvalidateSites drops the cached listing after any site mutation
	InvalidateSites(ctx context.Context) error
}
