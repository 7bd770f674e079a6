package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/matches"
	"skincare-recommender/internal/recommendations"
	"skincare-recommender/internal/services/health"
	"skincare-recommender/internal/shared/config"
	"skincare-recommender/internal/shared/metrics"
	"skincare-recommender/internal/shared/server"
	"skincare-recommender/internal/shared/storage/db"
	"skincare-recommender/internal/shared/storage/object"
	localstore "skincare-recommender/internal/shared/storage/object/local"
	s3store "skincare-recommender/internal/shared/storage/object/s3"
	"skincare-recommender/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.Store
	Catalog        *catalog.Catalog
	Policy         recommendations.Policy
	Metrics        *metrics.Collector
	MatchService   *matches.Service
	MatchHandler   *matches.Handler
	CatalogHandler *catalog.Handler
	Health         *health.Service
}

// Build loads the catalog and wires the router. A catalog that cannot be
// loaded aborts the build.
func Build(cfg config.Config) (*App, error) {
	return BuildContext(context.Background(), cfg)
}

// BuildContext is Build with a caller supplied context for the catalog load.
func BuildContext(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.CatalogSource) == "" {
		cfg.CatalogSource = "file"
	}

	app := &App{
		Config:  cfg,
		Policy:  PolicyFromConfig(cfg.Policy),
		Metrics: metrics.New(),
	}

	src, err := app.catalogSource(ctx)
	if err != nil {
		return nil, err
	}
	cat, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	app.Catalog = cat
	app.Metrics.SetCatalogServices(cat.Len())
	telemetry.Info("catalog.loaded", map[string]any{
		"source":   cfg.CatalogSource,
		"services": cat.Len(),
		"version":  cat.Version(),
	})

	app.MatchService = &matches.Service{
		Catalog: cat,
		Policy:  app.Policy,
		Limit:   cfg.RecommendLimit,
		Metrics: app.Metrics,
	}
	app.MatchHandler = matches.NewHandler(app.MatchService)
	app.CatalogHandler = catalog.NewHandler(cat)
	app.Health = health.NewService(cat)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Metrics:        app.Metrics,
		Health:         app.Health,
		CatalogHandler: app.CatalogHandler,
		MatchHandler:   app.MatchHandler,
	})

	return app, nil
}

// PolicyFromConfig maps the configured rule switches onto a matching policy.
func PolicyFromConfig(pc config.PolicyConfig) recommendations.Policy {
	return recommendations.Policy{
		AgeHard:              pc.AgeHard,
		BudgetHard:           pc.BudgetHard,
		Problems:             recommendations.ParseProblemMatch(pc.ProblemsMatch),
		BlankBudgetUnlimited: pc.BlankBudgetUnlimited,
	}
}

func (app *App) catalogSource(ctx context.Context) (catalog.Source, error) {
	cfg := app.Config
	switch cfg.CatalogSource {
	case "postgres":
		sqlDB, err := BuildDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.DB = sqlDB
		return &catalog.PGSource{DB: sqlDB}, nil
	default:
		store, err := BuildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.Store = store
		return catalog.FileSource{Store: store, Key: cfg.CatalogPath}, nil
	}
}

// BuildDB connects to Postgres with pool settings suited to the runtime.
func BuildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("DATABASE_URL is required when CATALOG_SOURCE=postgres")
	}
	return db.Connect(ctx, cfg.DatabaseURL, db.OptionsFor(db.RuntimeRole()))
}

// BuildStore returns the object store holding catalog files.
func BuildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, errors.New("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}
