package app

import (
	"context"
	"errors"
	"fmt"

	"resume-scorer/internal/config"
	"resume-scorer/internal/database"
	"resume-scorer/internal/database/migration"
	dbpostgres "resume-scorer/internal/database/postgres"
	"resume-scorer/internal/domain/skill"
	"resume-scorer/internal/infrastructure/cache"
	"resume-scorer/internal/infrastructure/catalog"
	"resume-scorer/internal/logger"
	"resume-scorer/internal/pipeline"
	"resume-scorer/internal/pkg/jwt"
	"resume-scorer/internal/repository"
	"resume-scorer/internal/usecase"
	"resume-scorer/internal/ws"
)

// Container owns every long-lived dependency. Database, cache and JWT are
// optional: each stays nil when its configuration is absent.
type Container struct {
	Config config.Config

	Catalog  *catalog.Store
	Skills   *skill.Catalog
	Analyzer *pipeline.Analyzer

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	Analyses usecase.AnalysisUsecase
	Export   usecase.ExportUsecase
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	analysisCfg, err := catalog.LoadAnalysisConfig(cfg.Analysis.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load analysis config: %w", err)
	}

	c.Catalog = catalog.NewStore(cfg.Analysis.JobProfilesPath, logger.Named("catalog"))
	extractor := analysisCfg.Extractor()
	c.Skills = extractor.Catalog()
	c.Analyzer = pipeline.NewAnalyzer(extractor, c.Catalog, analysisCfg.Scorer())

	opts := usecase.AnalysisServiceOptions{
		Workers: cfg.Analysis.Workers,
		Logger:  logger.Named("analysis"),
	}

	if cfg.Database.Enabled() {
		pool, err := connectDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = pool
		opts.Repository = repository.NewPostgresAnalysisRepository(pool)
	} else {
		logger.Warn().Msg("DB_HOST not set, analysis history disabled")
	}

	if cfg.Redis.Enabled() {
		c.Cache = cache.NewRedis(cfg.Redis, logger.Named("cache"))
		opts.Cache = c.Cache
	}

	if cfg.JWT.Enabled() {
		c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	} else {
		logger.Warn().Msg("JWT_ACCESS_SECRET not set, history endpoints disabled")
	}

	c.Hub = ws.NewHub(logger.Named("ws"))
	opts.Notifier = ws.NewNotifier(c.Hub)

	c.Analyses = usecase.NewAnalysisService(c.Analyzer, opts)
	c.Export = usecase.NewExportService()

	logger.Info().
		Int("skills", c.Skills.Len()).
		Int("job_profiles", len(c.Catalog.Profiles())).
		Bool("history", c.DB != nil).
		Bool("cache", c.Cache != nil).
		Bool("auth", c.JWT != nil).
		Msg("container ready")

	return c, nil
}

func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*dbpostgres.Pool, error) {
	pool, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	runner := migration.Runner{Dir: cfg.MigrationsDir, Logger: logger.Named("migration")}
	if err := runner.Run(ctx, pool.SQLDB()); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return pool, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
