package container

import (
	"context"

	"go.uber.org/zap"

	"patrimonio/internal/cache"
	"patrimonio/internal/config"
	"patrimonio/internal/dashboard"
	"patrimonio/internal/loader"
	"patrimonio/internal/scheduler"
	"patrimonio/internal/source"
)

// Container wires every long-lived component of the application.
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	Cache            *cache.Store
	Loader           *loader.Service
	DashboardHandler *dashboard.Handler
	Scheduler        *scheduler.Scheduler
}

// NewAppContainer builds the dependency graph: cache store, data sources
// (JSON primary plus optional Sheets API for assets, the ordered CSV
// mirror list for stock), loader, handlers and the optional scheduler.
func NewAppContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	store := cache.NewStore(cfg.Data.CacheDir, logger)
	httpClient := source.NewHTTPClient(cfg.Data.FetchTimeout)

	assetSources := []source.Source{
		source.NewJSONSource(httpClient, cfg.Data.PatrimonioURL),
	}
	if cfg.Sheets.Enabled() {
		sheetsSource, err := source.NewSheetsSource(
			ctx,
			cfg.Sheets.CredentialsJSON,
			cfg.Sheets.CredentialsPath,
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.ReadRange,
		)
		if err != nil {
			return nil, err
		}
		assetSources = append(assetSources, sheetsSource)
	}

	stockSources := make([]source.Source, 0, len(cfg.Data.EstoqueURLs))
	for _, url := range cfg.Data.EstoqueURLs {
		stockSources = append(stockSources, source.NewCSVSource(httpClient, url))
	}

	loaderSvc := loader.NewService(store, assetSources, stockSources, cfg.Data.CacheTTL, logger)
	handler := dashboard.NewHandler(loaderSvc, logger)

	var sched *scheduler.Scheduler
	if cfg.Data.RefreshCron != "" {
		sched = scheduler.New(cfg.Data.RefreshCron, loaderSvc, logger)
	}

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Cache:            store,
		Loader:           loaderSvc,
		DashboardHandler: handler,
		Scheduler:        sched,
	}, nil
}
