package repository

import (
	"context"
	"time"

	"github.com/placement-microservice/internal/domain"
)

// CacheRepository defines the cache operations used by the service.
type CacheRepository interface {
	// Get returns the cached value for key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns the cached catalog statistics, or nil on a miss.
	GetStats(ctx context.Context) (*domain.CatalogStats, error)

	// SetStats caches the catalog statistics.
	SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error
}
