// Package router mounts every HTTP route on a gin engine.
package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blog_backend/internal/app/di"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/http/middleware"
	"blog_backend/internal/platform/metrics"
	"blog_backend/internal/shared/ratelimiter"
)

// Config holds the router level settings.
type Config struct {
	JWTSecret   string
	CORSOrigins []string
	// AuthRateLimit caps signup and login attempts per client IP per minute. 0 disables it.
	AuthRateLimit int
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is honored.
	// When empty the client IP is always the socket peer.
	TrustedProxies []string
}

// NewRouter builds the engine with the shared middleware and all API routes.
func NewRouter(cfg Config, h *di.Handlers, m *metrics.Metrics) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		m.Middleware(),
		gin.Recovery(),
	)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	authRequired := jwtmw.AuthRequired(cfg.JWTSecret)
	authOptional := jwtmw.AuthOptional(cfg.JWTSecret)

	authLimit := middleware.RateLimit(ratelimiter.NewRateLimiter(cfg.AuthRateLimit, time.Minute))

	api := r.Group("/api")
	{
		// 新規ユーザー登録とログイン（JWT 発行）
		api.POST("/users", authLimit, h.Auth.Signup)
		api.POST("/users/login", authLimit, h.Auth.Login)
		api.GET("/user", authRequired, h.Auth.Me)

		api.GET("/profiles/:username", authOptional, h.Profile.Get)
		api.POST("/profiles/:username/follow", authRequired, h.Profile.Follow)
		api.DELETE("/profiles/:username/follow", authRequired, h.Profile.Unfollow)

		api.GET("/articles", h.Article.List)
		api.GET("/articles/feed", authRequired, h.Article.Feed)
		api.GET("/articles/:slug", h.Article.Get)
		api.POST("/articles", authRequired, h.Article.Create)
		api.PUT("/articles/:slug", authRequired, h.Article.Update)
		api.DELETE("/articles/:slug", authRequired, h.Article.Delete)

		api.GET("/articles/:slug/comments", h.Article.ListComments)
		api.POST("/articles/:slug/comments", authRequired, h.Article.AddComment)
		api.DELETE("/articles/:slug/comments/:id", authRequired, h.Article.DeleteComment)

		api.POST("/articles/:slug/favorite", authRequired, h.Article.Favorite)
		api.DELETE("/articles/:slug/favorite", authRequired, h.Article.Unfavorite)

		api.GET("/tags", h.Tag.List)
	}

	return r, nil
}
