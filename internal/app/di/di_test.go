package di

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog_backend/internal/platform/config"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	// idempotent
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "follows", "articles", "comments", "favorites"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	// users keeps the columns the auth feature declares
	assert.True(t, db.Migrator().HasColumn("users", "email"))
	assert.True(t, db.Migrator().HasColumn("users", "password"))
}

func TestNewHandlers(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	h := NewHandlers(db, nil, Options{JWTSecret: "s", JWTExpiration: time.Hour})

	assert.NotNil(t, h.Auth)
	assert.NotNil(t, h.Profile)
	assert.NotNil(t, h.Article)
	assert.NotNil(t, h.Tag)
	assert.NotNil(t, h.Health)
}

func TestHealthChecks(t *testing.T) {
	db := openTestDB(t)

	t.Run("database only", func(t *testing.T) {
		checks := healthChecks(db, nil)

		require.Len(t, checks, 1)
		assert.NoError(t, checks["database"](context.Background()))
	})

	t.Run("with redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })

		checks := healthChecks(db, rdb)

		require.Len(t, checks, 2)
		assert.NoError(t, checks["redis"](context.Background()))
		mr.Close()
		assert.Error(t, checks["redis"](context.Background()))
	})
}

func TestNewMaintenanceUsecase(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	report, err := NewMaintenanceUsecase(db, nil, 0).PurgeOrphans(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.Comments)
	assert.Zero(t, report.Favorites)
}

func TestOpenStores_SQLite(t *testing.T) {
	var cfg config.Config
	cfg.DB.Driver = "sqlite"
	cfg.DB.Path = filepath.Join(t.TempDir(), "blog.db")
	cfg.DB.RunMigrations = true

	stores, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(stores.Close)

	assert.Nil(t, stores.Redis)
	assert.True(t, stores.DB.Migrator().HasTable("articles"))
}
