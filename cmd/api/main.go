package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dogs-catalog/internal/adapters/catalog/cache"
	"dogs-catalog/internal/adapters/catalog/thedogapi"
	pg "dogs-catalog/internal/adapters/storage/postgres"
	"dogs-catalog/internal/config"
	"dogs-catalog/internal/metrics"
	"dogs-catalog/internal/middleware"
	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
	"dogs-catalog/internal/router"
)

// @title        dogs-catalog API
// @version      1.0
// @description  Razas de perro agregadas desde The Dog API y la base local.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", logger.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log logger.Logger) error {
	var reg *metrics.Registry
	if cfg.Metrics {
		reg = metrics.New()
	}

	db, err := openDB(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	var cat catalog.Catalog
	client, err := thedogapi.NewClient(thedogapi.Config{
		BaseURL:  cfg.DogAPI.BaseURL,
		APIKey:   cfg.DogAPI.APIKey,
		Timeout:  cfg.DogAPI.Timeout,
		RPS:      cfg.DogAPI.RPS,
		Observer: reg,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	cat = client
	if cfg.DogAPI.APIKey == "" {
		log.Warn("DOG_API_KEY not set, catalog requests go unauthenticated", nil)
	}

	if cfg.Redis.Addr != "" && cfg.Redis.CacheTTL > 0 {
		rdb, err := cache.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// sin cache se sigue funcionando
			log.Warn("redis unavailable, catalog cache disabled", logger.Err(err))
		} else {
			defer rdb.Close()
			cat = cache.New(client, rdb, cfg.Redis.CacheTTL, log)
			log.Info("catalog cache enabled", logger.Fields{"ttl": cfg.Redis.CacheTTL.String()})
		}
	}

	var limiter *middleware.LimiterStore
	if cfg.RateLimit.RPS > 0 {
		limiter = middleware.NewLimiterStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartJanitor(ctx, 2*time.Minute)
	}

	h := router.NewRouter(router.Options{
		Catalog:   cat,
		DB:        db,
		Logger:    log,
		Metrics:   reg,
		RateLimit: limiter,

		TrustProxy: cfg.RateLimit.TrustProxy,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.DogAPI.Timeout + 10*time.Second,
	}

	return router.Serve(ctx, srv, log)
}

// openDB devuelve nil (modo in-memory) si no hay DSN.
func openDB(ctx context.Context, cfg config.DBConfig, log logger.Logger) (*sql.DB, error) {
	if cfg.DSN == "" {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
		return nil, nil
	}

	db, err := pg.Open(cfg.DSN, pg.Options{MaxOpenConns: cfg.MaxOpenConns})
	if err != nil {
		return nil, err
	}

	schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pg.EnsureSchema(schemaCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("connected to postgres", nil)
	return db, nil
}
