package adapters

import (
	"context"
	"testing"

	"blog_backend/internal/feature/profile/domain/entity"
	"blog_backend/internal/shared/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Follow{}), "failed to migrate table")
	return db
}

func TestFollowGorm_FollowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewFollowGorm(setupTestDB(t))

	require.NoError(t, repo.Follow(ctx, 1, 2))
	require.NoError(t, repo.Follow(ctx, 1, 2))

	ids, err := repo.FollowingIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)

	ok, err := repo.IsFollowing(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsFollowing(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, ok, "edges are directed")
}

func TestFollowGorm_Unfollow(t *testing.T) {
	ctx := context.Background()
	repo := NewFollowGorm(setupTestDB(t))

	require.NoError(t, repo.Follow(ctx, 1, 2))
	require.NoError(t, repo.Follow(ctx, 1, 3))

	require.NoError(t, repo.Unfollow(ctx, 1, 2))
	// Unfollowing twice is a no-op
	require.NoError(t, repo.Unfollow(ctx, 1, 2))

	ids, err := repo.FollowingIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, ids)
}

func TestFollowGorm_CountFollowers(t *testing.T) {
	ctx := context.Background()
	repo := NewFollowGorm(setupTestDB(t))

	require.NoError(t, repo.Follow(ctx, 3, 1))
	require.NoError(t, repo.Follow(ctx, 2, 1))
	require.NoError(t, repo.Follow(ctx, 2, 1))
	require.NoError(t, repo.Follow(ctx, 2, 4))

	n, err := repo.CountFollowers(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	none, err := repo.CountFollowers(ctx, 9)
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestFollowGorm_StoreFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowGorm(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FollowingIDs(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrStoreFailure)

	_, err = repo.CountFollowers(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrStoreFailure)
}
