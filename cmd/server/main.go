package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"blog_backend/internal/app/di"
	"blog_backend/internal/app/router"
	"blog_backend/internal/platform/config"
	"blog_backend/internal/platform/logging"
	"blog_backend/internal/platform/metrics"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger().Info(".env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Logger().WithError(err).Fatal("load config")
	}
	logging.Configure(cfg.Log.Level, cfg.Log.Format)
	log := logging.Logger()

	// JWT_SECRETチェック
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := di.OpenStores(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("open stores")
	}
	defer stores.Close()

	handlers := di.NewHandlers(stores.DB, stores.Redis, di.Options{
		JWTSecret:     cfg.JWT.Secret,
		JWTExpiration: cfg.JWT.Expiration,
		TagTTL:        cfg.Cache.TagTTL,
	})

	// ルータ生成
	gin.SetMode(gin.ReleaseMode)
	r, err := router.NewRouter(router.Config{
		JWTSecret:      cfg.JWT.Secret,
		CORSOrigins:    cfg.Server.CORSOrigins,
		AuthRateLimit:  cfg.Server.AuthRateLimit,
		TrustedProxies: cfg.Server.TrustedProxies,
	}, handlers, metrics.New())
	if err != nil {
		stores.Close()
		log.WithError(err).Fatal("router")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("http shutdown")
	}
	log.Info("bye")
}
