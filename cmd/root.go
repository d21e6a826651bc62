package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"patrimonio/internal/config"
	"patrimonio/internal/core/container"
	"patrimonio/internal/core/logger"
	"patrimonio/internal/core/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServer(cmd.Context())
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Purge the cache, run one load cycle and exit.",
	Long:  `Warms the cache from the configured endpoints, the same operation the dashboard's manual refresh performs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.NewLogger()
		defer log.Sync()

		app, err := container.NewAppContainer(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("build container: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		app.Loader.Refresh(ctx)

		snap := app.Loader.Snapshot()
		log.Info("refresh finished",
			zap.Int("assets", len(snap.Assets)),
			zap.Int("stock", len(snap.Stock)),
			zap.Bool("offline_mode", snap.OfflineMode),
		)
		return nil
	},
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.NewLogger()
	defer log.Sync()

	app, err := container.NewAppContainer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}

	// Initial load in the background: the optimistic phase publishes
	// cache/demo data almost immediately, so the server can accept
	// requests right away.
	go app.Loader.Load(ctx)

	if app.Scheduler != nil {
		if err := app.Scheduler.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer app.Scheduler.Stop()
	}

	router := gin.Default()
	routes.RegisterPublicRoutes(router, app)
	routes.RegisterUtilityRoutes(router, app)

	log.Info("starting server", zap.String("host", cfg.Server.Host))
	return router.Run(cfg.Server.Host)
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "patrimonio",
		Short: "Patrimônio and estoque dashboard service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(refreshCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
