package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"creatorhub-backend/internal/config"
	infraCache "creatorhub-backend/internal/infrastructure/cache"
	"creatorhub-backend/internal/infrastructure/database"
	"creatorhub-backend/pkg/cache"

	creatorHandler "creatorhub-backend/internal/domains/creator/handler"
	creatorRepo "creatorhub-backend/internal/domains/creator/repository"
	creatorService "creatorhub-backend/internal/domains/creator/service"
	dashboardHandler "creatorhub-backend/internal/domains/dashboard/handler"
	dashboardRepo "creatorhub-backend/internal/domains/dashboard/repository"
	dashboardService "creatorhub-backend/internal/domains/dashboard/service"
	exportHandler "creatorhub-backend/internal/domains/export/handler"
	exportRepo "creatorhub-backend/internal/domains/export/repository"
	exportService "creatorhub-backend/internal/domains/export/service"
	videoHandler "creatorhub-backend/internal/domains/video/handler"
	videoRepo "creatorhub-backend/internal/domains/video/repository"
	videoService "creatorhub-backend/internal/domains/video/service"
)

// Container holds the application's dependency graph. Initialization order:
// config, then infrastructure (store, cache, migrations), then repositories,
// services, and handlers.
type Container struct {
	Config *config.Config
	DB     *database.SQLiteDB
	Cache  cache.Cache

	CreatorHandler   *creatorHandler.CreatorHandler
	VideoHandler     *videoHandler.VideoHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	ExportHandler    *exportHandler.ExportHandler

	redis *infraCache.RedisCache
}

// NewContainer builds the dependency graph and brings the schema up to date.
// A migration failure aborts startup: the application must not serve traffic
// against a partially migrated store.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	c.DB = db

	if err := database.NewMigrator(db.DB).Run(context.Background(), database.Migrations()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.Redis.Enabled {
		redisCache := infraCache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Connect(context.Background()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect redis: %w", err)
		}
		c.redis = redisCache
		c.Cache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache enabled")
	} else {
		c.Cache = cache.NewNoop()
		log.Info().Msg("Redis not configured, caching disabled")
	}

	// Repositories
	creators := creatorRepo.NewSQLiteRepository(db.DB)
	videos := videoRepo.NewSQLiteRepository(db.DB)
	dashboards := dashboardRepo.NewSQLiteRepository(db.DB, c.Cache)
	exports := exportRepo.NewSQLiteRepository(db.DB)

	// Services
	creatorsSvc := creatorService.NewCreatorService(creators)
	videosSvc := videoService.NewVideoService(videos)
	dashboardsSvc := dashboardService.NewDashboardService(dashboards)
	exportsSvc := exportService.NewExportService(exports)

	// Handlers
	c.CreatorHandler = creatorHandler.NewCreatorHandler(creatorsSvc)
	c.VideoHandler = videoHandler.NewVideoHandler(videosSvc)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(dashboardsSvc)
	c.ExportHandler = exportHandler.NewExportHandler(exportsSvc)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}
}
