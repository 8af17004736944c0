package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"dashboard_backend/internal/platform/config"
)

// NewRedisClient opens and ping-checks a Redis connection. An empty address
// means Redis is not configured; callers fall back to uncached repositories.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := cfg.Addr()
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
