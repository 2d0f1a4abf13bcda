package di

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"blog_backend/internal/platform/config"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/logging"
	infraredis "blog_backend/internal/platform/redis"
)

// Stores are the connections shared by the server and the cleanup job.
type Stores struct {
	DB    *gorm.DB
	Redis *redis.Client // nil when Redis is not configured or unreachable
}

// OpenStores connects to the database, runs migrations when enabled and
// connects to Redis if it is configured. A Redis failure only disables caching.
func OpenStores(ctx context.Context, cfg config.Config) (*Stores, error) {
	gdb, err := db.OpenDB(db.Config{
		Driver:       cfg.DB.Driver,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Name:         cfg.DB.Name,
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		InstanceName: cfg.DB.Instance,
		Path:         cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.DB.RunMigrations {
		if err := Migrate(gdb.WithContext(ctx)); err != nil {
			return nil, err
		}
	}

	s := &Stores{DB: gdb}
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	switch {
	case errors.Is(err, infraredis.ErrNotConfigured):
		logging.WithContext(ctx).Info("Redis not configured. Running without cache.")
	case err != nil:
		logging.WithContext(ctx).WithError(err).Warn("Redis unavailable. Running without cache.")
	default:
		s.Redis = rdb
	}
	return s, nil
}

// Close releases both connections.
func (s *Stores) Close() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logging.Logger().WithError(err).Error("Failed to close Redis client")
		}
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logging.Logger().WithError(err).Error("Failed to close database")
		}
	}
}
