// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/feature/tag/usecase"
)

// CachingTagRepository decorates a TagRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. A nil client bypasses the cache.
type CachingTagRepository struct {
	inner     usecase.TagRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.TagRepository = (*CachingTagRepository)(nil)

// NewCachingTagRepository decorates a TagRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tags".
func NewCachingTagRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TagRepository, namespace string) *CachingTagRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tags"
	}
	return &CachingTagRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListTags retrieves the tag listing, checking cache first then falling back to the database.
func (c *CachingTagRepository) ListTags(ctx context.Context) ([]string, error) {
	if c.rdb == nil {
		return c.inner.ListTags(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []string
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops every cached listing in the namespace.
func (c *CachingTagRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

func (c *CachingTagRepository) cacheKey() string {
	return c.namespace + ":all"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTagRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
