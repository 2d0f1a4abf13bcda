package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"blog_backend/internal/app/di"
	"blog_backend/internal/platform/config"
	"blog_backend/internal/platform/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger().Info(".env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Logger().WithError(err).Fatal("load config")
	}
	logging.Configure(cfg.Log.Level, cfg.Log.Format)
	log := logging.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stores, err := di.OpenStores(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("open stores")
	}
	defer stores.Close()

	uc := di.NewMaintenanceUsecase(stores.DB, stores.Redis, cfg.Cache.TagTTL)
	if _, err := uc.PurgeOrphans(ctx); err != nil {
		log.WithError(err).Error("cleanup failed")
		return
	}
	log.Info("cleanup ok")
}
