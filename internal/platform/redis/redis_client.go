// Package redis opens the Redis client used by the cache layer.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/platform/logging"
)

// ErrNotConfigured is returned when no Redis host is configured.
var ErrNotConfigured = errors.New("redis host not configured")

// Config holds the Redis connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// 接続確認
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logging.WithContext(ctx).WithError(err).WithField("address", addr).Error("Redis connection failed")
		_ = rdb.Close()
		return nil, err
	}

	logging.WithContext(ctx).WithField("address", addr).Info("Redis connection successful")
	return rdb, nil
}
