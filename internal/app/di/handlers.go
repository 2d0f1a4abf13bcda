// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	articleadapters "blog_backend/internal/feature/article/adapters"
	articleentity "blog_backend/internal/feature/article/domain/entity"
	articlehandler "blog_backend/internal/feature/article/transport/handler"
	articleusecase "blog_backend/internal/feature/article/usecase"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	profileadapters "blog_backend/internal/feature/profile/adapters"
	profilehandler "blog_backend/internal/feature/profile/transport/handler"
	profileusecase "blog_backend/internal/feature/profile/usecase"
	taghandler "blog_backend/internal/feature/tag/transport/handler"
	tagusecase "blog_backend/internal/feature/tag/usecase"
	healthhandler "blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
)

// Options are the settings the handlers depend on.
type Options struct {
	JWTSecret     string
	JWTExpiration time.Duration
	TagTTL        time.Duration
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Profile *profilehandler.ProfileHandler
	Article *articlehandler.ArticleHandler
	Tag     *taghandler.TagHandler
	Health  *healthhandler.HealthHandler
}

// NewHandlers wires repositories, usecases and handlers. rdb may be nil.
func NewHandlers(db *gorm.DB, rdb *redis.Client, opts Options) *Handlers {
	// Repository
	users := authadapters.NewUserGorm(db)
	follows := profileadapters.NewFollowGorm(db)
	articles := articleadapters.NewArticleGorm(db)
	tags := NewTagRepository(rdb, db, opts.TagTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(users, jwtmw.NewGenerator(opts.JWTSecret, opts.JWTExpiration))
	profileUC := profileusecase.NewProfileUsecase(users, follows)
	articleUC := articleusecase.NewArticleUsecase(articles, users, follows, tags)
	tagUC := tagusecase.NewTagUsecase(tags)

	return &Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Profile: profilehandler.NewProfileHandler(profileUC),
		Article: articlehandler.NewArticleHandler(articleUC),
		Tag:     taghandler.NewTagHandler(tagUC),
		Health:  healthhandler.NewHealthHandler(healthChecks(db, rdb)),
	}
}

// OrphanPurger is what the cleanup job runs.
type OrphanPurger interface {
	PurgeOrphans(ctx context.Context) (articleentity.OrphanReport, error)
}

// NewMaintenanceUsecase wires the cleanup job. rdb may be nil.
func NewMaintenanceUsecase(db *gorm.DB, rdb *redis.Client, tagTTL time.Duration) OrphanPurger {
	return articleusecase.NewMaintenanceUsecase(articleadapters.NewMaintenanceGorm(db), NewTagRepository(rdb, db, tagTTL))
}

func healthChecks(db *gorm.DB, rdb *redis.Client) map[string]healthhandler.Check {
	checks := map[string]healthhandler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
