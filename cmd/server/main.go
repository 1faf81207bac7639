package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mohaak7/valorant-hub/internal/cache"
	"github.com/mohaak7/valorant-hub/internal/catalog"
	"github.com/mohaak7/valorant-hub/internal/config"
	"github.com/mohaak7/valorant-hub/internal/database"
	"github.com/mohaak7/valorant-hub/internal/httpapi"
	"github.com/mohaak7/valorant-hub/internal/logging"
	"github.com/mohaak7/valorant-hub/internal/pricing"
	"github.com/mohaak7/valorant-hub/internal/ratelimit"
	"github.com/mohaak7/valorant-hub/internal/roulette"
	"github.com/mohaak7/valorant-hub/internal/selection"
	"github.com/mohaak7/valorant-hub/internal/valorantapi"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level))

	// Initialize cache backend
	var snapshotCache cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		logger.Info("Using Redis cache backend", logging.WithField("addr", cfg.Cache.RedisAddr))
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Addr: cfg.Cache.RedisAddr,
		}, cfg.Cache.TTL)
		if err != nil {
			logger.Error("Failed to connect to Redis, falling back to memory cache", logging.WithField("error", err.Error()))
			snapshotCache = cache.NewMemory(cfg.Cache.TTL)
		} else {
			snapshotCache = redisCache
		}
	default:
		logger.Info("Using in-memory cache backend")
		snapshotCache = cache.NewMemory(cfg.Cache.TTL)
	}

	// Selection sets persist in PostgreSQL when available
	var selectionStore selection.Store = selection.NewMemoryStore()
	db, err := database.New(database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		logger.Warn("Database unavailable, selection sets will not persist", logging.WithField("error", err.Error()))
	} else {
		defer db.Close()
		migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Migrate(migrateCtx); err != nil {
			cancelMigrate()
			logger.Warn("Database migration failed, selection sets will not persist", logging.WithField("error", err.Error()))
		} else {
			cancelMigrate()
			selectionStore = database.NewSelectionStore(db)
			logger.Info("Selection sets persisting to PostgreSQL", logging.WithField("database", cfg.Database.Database))
		}
	}

	limiter := ratelimit.New(cfg.Server.RateLimitDur)
	clientCfg := valorantapi.DefaultConfig()
	clientCfg.BaseURL = cfg.Catalog.BaseURL
	client := valorantapi.New(clientCfg, limiter)
	catalogSvc := catalog.New(client, snapshotCache, logger)
	selectionSvc := selection.NewService(selectionStore, logger)
	tracker := pricing.NewTracker(cfg.Tracker.DataPath, logger)
	rouletteMgr := roulette.NewManager(cfg.Roulette.SessionTTL, roulette.DefaultSource(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial catalog fetch in the background, then periodic refreshes
	go func() {
		logger.Info("Fetching upstream catalog in background...")
		if err := catalogSvc.Refresh(ctx); err != nil {
			logger.Warn("Initial catalog fetch had errors", logging.WithField("error", err.Error()))
		}
		logger.Info("Initial catalog fetch complete")

		ticker := time.NewTicker(cfg.Catalog.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := catalogSvc.Refresh(ctx); err != nil {
					logger.Warn("Periodic catalog refresh had errors", logging.WithField("error", err.Error()))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	httpServer := httpapi.New(catalogSvc, selectionSvc, tracker, rouletteMgr, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutting down...")
		cancel()
		rouletteMgr.Close()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP shutdown error", logging.WithField("error", err.Error()))
		}
	}()

	logger.Info("Starting HTTP server", logging.WithField("addr", cfg.Server.HTTPAddr))
	if err := httpServer.Start(cfg.Server.HTTPAddr); err != nil && err != http.ErrServerClosed {
		logger.Error("HTTP server error", logging.WithField("error", err.Error()))
		os.Exit(1)
	}
}
