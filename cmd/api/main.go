package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quote-engine/internal/core/cache"
	"quote-engine/internal/core/config"
	"quote-engine/internal/core/db"
	"quote-engine/internal/core/logger"
	"quote-engine/internal/core/proxy"
	"quote-engine/internal/core/server"
	distanceadapter "quote-engine/internal/features/distance/adapters"
	distanceports "quote-engine/internal/features/distance/ports"
	quotehandler "quote-engine/internal/features/quotes/handler"
	quoteservice "quote-engine/internal/features/quotes/service"
	ratesadapter "quote-engine/internal/features/rates/adapters"
	rateshandler "quote-engine/internal/features/rates/handler"
	ratesports "quote-engine/internal/features/rates/ports"
	ratesservice "quote-engine/internal/features/rates/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title Quote Engine API
// @version 1.0
// @description This API prices Hotshot and Air freight quotes from the loaded rate tables.
// @contact.name API Support
// @contact.email operations@freightservices.net
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("rate_source", cfg.Rates.Source),
		zap.String("distance_provider", cfg.Distance.Provider),
	)

	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Rate Provider
	var rateProvider ratesports.RateProvider
	switch cfg.Rates.Source {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.Rates.DatabaseURL)
		if err != nil {
			l.Fatal("Postgres connection failed", zap.Error(err))
		}
		defer pool.Close()
		l.Info("Postgres connection verified")
		rateProvider = ratesadapter.NewPostgresProvider(pool)
	default:
		rateProvider = ratesadapter.NewFileProvider(cfg.Rates.File)
	}

	// Initialize Rate Catalog and load the first snapshot
	catalog := ratesservice.NewCatalog(rateProvider, ratesservice.CatalogOptions{
		RefreshTimeout:  cfg.Rates.RefreshTimeout,
		RefreshInterval: cfg.Rates.RefreshInterval,
	})
	if err := catalog.Reload(ctx); err != nil {
		l.Fatal("Initial rate table load failed", zap.Error(err))
	}
	if err := catalog.Start(); err != nil {
		l.Fatal("Rate refresh failed to start", zap.Error(err))
	}
	defer catalog.Stop()

	// Initialize Distance Provider
	distance, closeDistance := newDistanceProvider(ctx, cfg, l)
	defer closeDistance()

	// Initialize Quote Service & Handlers
	thresholds := quoteservice.ThresholdPolicy{
		AirWeightLimit: decimal.NewFromFloat(cfg.Pricing.AirWeightLimit),
		WeightLimit:    decimal.NewFromFloat(cfg.Pricing.WeightLimit),
		TotalLimit:     decimal.NewFromFloat(cfg.Pricing.TotalLimit),
	}
	quoteSvc := quoteservice.NewQuoteService(
		catalog,
		quoteservice.NewHotshotPricer(distance, cfg.Distance.Timeout, quoteservice.DistanceFailurePolicy(cfg.Distance.FailurePolicy)),
		quoteservice.NewAirPricer(),
		quoteservice.NewAccessorialComposer(decimal.NewFromFloat(cfg.Pricing.GuaranteeDefaultPct)),
		thresholds,
	)
	quoteHdl := quotehandler.NewQuoteHandler(quoteSvc)
	ratesHdl := rateshandler.NewRatesHandler(catalog)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/quotes", quoteHdl.CreateQuote)
	srv.App.Get("/accessorials", ratesHdl.ListAccessorials)
	srv.App.Get("/rates/status", ratesHdl.GetStatus)
	srv.App.Post("/rates/reload", ratesHdl.Reload)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case <-ctx.Done():
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}
}

// newDistanceProvider builds the configured provider, wrapped in the Redis
// cache when REDIS_URL is set and reachable.
func newDistanceProvider(ctx context.Context, cfg *config.AppConfig, l *zap.Logger) (distanceports.DistanceProvider, func()) {
	var provider distanceports.DistanceProvider

	switch cfg.Distance.Provider {
	case "http":
		provider = distanceadapter.NewHTTPProvider(
			cfg.Distance.APIURL,
			cfg.Distance.APIKey,
			cfg.Distance.Timeout,
			proxy.Settings{
				Enabled:  cfg.Proxy.Enabled,
				Hostname: cfg.Proxy.Hostname,
				Port:     cfg.Proxy.Port,
				Username: cfg.Proxy.Username,
				Password: cfg.Proxy.Password,
			},
		)
	default:
		p, err := distanceadapter.NewHaversineProvider(cfg.Distance.CentroidsFile)
		if err != nil {
			l.Fatal("Failed to load ZIP centroids", zap.Error(err))
		}
		provider = p
	}

	if cfg.Distance.RedisURL == "" {
		return provider, func() {}
	}

	redisCache, err := cache.NewRedisAdapter(cfg.Distance.RedisURL, "quote-engine:")
	if err != nil {
		l.Warn("Distance cache disabled", zap.Error(err))
		return provider, func() {}
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Distance cache unreachable, continuing without it", zap.Error(err))
		redisCache.Close()
		return provider, func() {}
	}
	l.Info("Distance cache connected")

	return distanceadapter.NewCachedProvider(provider, redisCache, cfg.Distance.CacheTTL), func() {
		redisCache.Close()
	}
}
