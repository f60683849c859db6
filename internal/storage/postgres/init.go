package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"safezone/internal/config"
	"safezone/pkg/e"
)

//go:embed schema.sql
var schemaSQL string

type Postgres struct {
	Pool           *pgxpool.Pool
	Zone           *ZoneRepo
	Critical       *CriticalZoneRepo
	FeatureDetails *FeatureDetailsRepo
	Contact        *ContactRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("db", cfg.Postgres.Database),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if cfg.Postgres.AutoMigrate {
		if err := Migrate(ctx, pool); err != nil {
			logger.Error("Failed to apply schema", slog.String("error", err.Error()))
			pool.Close()
			return nil, err
		}
		logger.Info("Postgres schema applied")
	}

	pg := New(pool, logger, cfg.Postgres.QueryTimeout)

	logger.Info("Postgres repositories created")
	return pg, nil
}

// New wires the repositories over an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger, queryTimeout time.Duration) *Postgres {
	c := conn{pool: pool, logger: logger, timeout: queryTimeout}
	return &Postgres{
		Pool:           pool,
		Zone:           &ZoneRepo{conn: c},
		Critical:       &CriticalZoneRepo{conn: c},
		FeatureDetails: &FeatureDetailsRepo{conn: c},
		Contact:        &ContactRepo{conn: c},
	}
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return e.Wrap("storage.pg.Migrate", err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

type conn struct {
	pool    *pgxpool.Pool
	logger  *slog.Logger
	timeout time.Duration
}

// withTimeout bounds a single statement so a stuck database fails fast.
func (c conn) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
