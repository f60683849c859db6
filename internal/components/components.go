package components

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"safezone/internal/api"
	"safezone/internal/api/handlers/http/system"
	"safezone/internal/config"
	"safezone/internal/redis"
	"safezone/internal/service"
	"safezone/internal/sms"
	"safezone/internal/storage/memory"
	"safezone/internal/storage/postgres"
	"safezone/pkg/logger"
)

type storage interface {
	Zones() service.ZoneRepository
	CriticalZones() service.CriticalZoneRepository
	Features() service.FeatureDetailsRepository
	Contacts() service.ContactRepository
}

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	EventSender *service.EventSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}
	checks := make(map[string]system.Pinger)

	var store storage
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		store = memory.New()
	default:
		logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		checks["postgres"] = pg
		store = pg
	}

	var detectorOpts []service.DetectorOption
	if cfg.Redis.Addr != "" {
		logger.Info("Initializing Redis")
		rdb, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = rdb
		checks["redis"] = rdb

		var guard service.ClusterGuard
		if cfg.CriticalZone.Dedup {
			guard = redis.NewClusterGuard(rdb.Client, cfg.CriticalZone.DedupTTL)
		}
		queue := redis.NewEventQueue(rdb.Client, redis.DefaultEventQueueKey, redis.DefaultEventQueueMaxLen)
		detectorOpts = detectorOptions(cfg, queue, guard)
		if cfg.WebhookEnabled() {
			c.EventSender = service.NewEventSender(logger, cfg.Webhook, queue)
		}
	}

	detector := service.NewCriticalZoneDetector(
		store.Zones(),
		store.CriticalZones(),
		logger,
		cfg.CriticalZone.Threshold,
		cfg.CriticalZone.RadiusMeters,
		detectorOpts...,
	)
	zoneSvc := service.NewZoneService(store.Zones(), store.CriticalZones(), store.Features(), detector, logger)
	alertSvc := service.NewAlertService(store.Contacts(), sms.NewClient(cfg.SMS, logger), logger, cfg.SMS.Timeout)

	c.HttpServer = api.NewServer(cfg, logger, service.NewService(zoneSvc, alertSvc), checks)
	logger.Info("Initialized server",
		slog.String("storage", cfg.Storage),
		slog.Bool("redis", c.Redis != nil),
		slog.Bool("webhook", c.EventSender != nil),
	)

	return c, nil
}

// detectorOptions binds the event queue only when an EventSender drains it.
func detectorOptions(cfg *config.Config, queue service.EventQueue, guard service.ClusterGuard) []service.DetectorOption {
	var opts []service.DetectorOption
	if guard != nil {
		opts = append(opts, service.WithClusterGuard(guard))
	}
	if queue != nil && cfg.WebhookEnabled() {
		opts = append(opts, service.WithEventQueue(queue))
	}
	return opts
}

func SetupLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Env, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
