package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	tagadapters "blog_backend/internal/feature/tag/adapters"
	"blog_backend/internal/platform/cache"
)

// NewTagRepository creates the tag repository.
// If Redis is available, listings are cached under the "tags" namespace.
// Otherwise every call reads the database.
func NewTagRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) *cache.CachingTagRepository {
	return cache.NewCachingTagRepository(rdb, ttl, tagadapters.NewTagGorm(db), "tags")
}
