// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dashboard_backend/internal/feature/access/usecase"
)

// CachingVersionRepository decorates a VersionRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Session extension hits the active
// version on every call, so keeping it hot in Redis spares the database.
type CachingVersionRepository struct {
	inner     usecase.VersionRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingVersionRepository decorates a VersionRepository with Redis
// caching. If ttl is 0, it defaults to 30 seconds. If namespace is empty,
// it uses "codever".
func NewCachingVersionRepository(rdb *redis.Client, ttl time.Duration, inner usecase.VersionRepository, namespace string) *CachingVersionRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "codever"
	}
	return &CachingVersionRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ActiveVersion retrieves the realm's version, checking cache first then
// falling back to the database.
func (c *CachingVersionRepository) ActiveVersion(ctx context.Context, realm string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ActiveVersion(ctx, realm)
	}

	key := c.cacheKey(realm)

	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		return v, nil
	}

	v, err := c.inner.ActiveVersion(ctx, realm)
	if err != nil {
		return "", err
	}

	// Store in cache (best effort). An unrotated realm's empty version is
	// not cached so a first rotation becomes visible immediately.
	if v != "" {
		_ = c.rdb.Set(ctx, key, v, c.ttl).Err()
	}

	return v, nil
}

// Bump rotates the realm's version and writes the new value through to the
// cache so extension checks pick it up without waiting for expiry.
func (c *CachingVersionRepository) Bump(ctx context.Context, realm string) (string, error) {
	v, err := c.inner.Bump(ctx, realm)
	if err != nil {
		return "", err
	}
	if c.rdb != nil {
		_ = c.rdb.Set(ctx, c.cacheKey(realm), v, c.ttl).Err()
	}
	return v, nil
}

// cacheKey generates the Redis key for a realm's version.
func (c *CachingVersionRepository) cacheKey(realm string) string {
	return fmt.Sprintf("%s:%s", c.namespace, realm)
}
