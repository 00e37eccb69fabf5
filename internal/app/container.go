package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/observability"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the long-lived dependencies shared by the HTTP server and
// the CLI commands.
type Container struct {
	Config  config.Config
	Log     *zap.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *observability.Metrics

	Recommendations *usecase.JobRecommendation
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	return newContainer(ctx, cfg, log, db)
}

func newContainer(ctx context.Context, cfg config.Config, log *zap.Logger, db database.DB) (*Container, error) {
	metrics, err := observability.New(cfg.App.AppName)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	opts := []usecase.Option{
		usecase.WithMetrics(metrics),
		usecase.WithLogger(log),
		usecase.WithWorkers(cfg.Matching.Workers),
	}

	// The page cache is opt-in: RECOMMENDATION_CACHE_TTL=0 keeps Redis out
	// of the request path entirely.
	var rc *cache.Redis
	if cfg.Redis.CacheTTL > 0 {
		rc = cache.NewRedis(ctx, cfg.Redis, log)
		opts = append(opts, usecase.WithCache(rc, cfg.Redis.CacheTTL))
	}

	recs := usecase.NewJobRecommendationUsecase(
		repository.NewPostgresCandidateProfileRepository(db),
		repository.NewPostgresJobPostingRepository(db),
		opts...,
	)

	return &Container{
		Config:          cfg,
		Log:             log,
		DB:              db,
		Cache:           rc,
		Metrics:         metrics,
		Recommendations: recs,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (c *Container) Migrate(ctx context.Context) error {
	return migration.Runner{Log: c.Log.With(zap.String("component", "migration"))}.Run(ctx, c.DB.SQLDB())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if c.Metrics != nil {
		errs = append(errs, c.Metrics.Shutdown(ctx))
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
