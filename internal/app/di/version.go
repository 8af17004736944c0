// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accessadapters "dashboard_backend/internal/feature/access/adapters"
	"dashboard_backend/internal/feature/access/usecase"
	"dashboard_backend/internal/platform/cache"
)

// NewVersionRepository creates a VersionRepository implementation.
// If Redis is available, the Postgres-backed repository is wrapped with a
// short-TTL cache; session extension reads the active version on every call.
// Otherwise, it falls back to Postgres alone.
func NewVersionRepository(rdb *redis.Client, db *gorm.DB) usecase.VersionRepository {
	inner := accessadapters.NewVersionRepository(db)
	if rdb != nil {
		return cache.NewCachingVersionRepository(rdb, 30*time.Second, inner, "codever")
	}
	return inner
}
