package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/drinko/internal/config"
	"github.com/mmynk/drinko/internal/server"
	"github.com/mmynk/drinko/internal/storage/sqlite"
	"github.com/mmynk/drinko/internal/timer"
	"github.com/mmynk/drinko/pkg/logging"
)

// drinko serve: run the kiosk backend until SIGINT/SIGTERM.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the kiosk backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.SetupWithFormat(cfg.LogFormat)

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		slog.Info("Catalog loaded", "drinks", len(cat.Drinks("")), "path", cfg.CatalogPath)

		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		slog.Info("Storage initialized", "database", cfg.DBPath)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, cat, store, timer.NewReal()).Run(ctx)
	},
}
