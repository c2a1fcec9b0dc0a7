package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonmartinstorm/pakkesnusern/internal/config"
	"github.com/jonmartinstorm/pakkesnusern/internal/logger"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
	"github.com/jonmartinstorm/pakkesnusern/internal/runner"
	_ "github.com/lib/pq"
)

func main() {
	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.LoadAndValidateConfig()
	if err != nil {
		slog.Error("Ugyldig konfigurasjon", "error", err)
		os.Exit(1)
	}
	logger.SetupLogger(cfg.Debug)

	names, err := config.ResolvePackages(cfg)
	if err != nil {
		slog.Error("Klarte ikke å lese målpakker", "error", err)
		os.Exit(1)
	}
	slog.Info("Leter etter målpakker", "antall", len(names), "root", cfg.Root)

	app := runner.NewApp(cfg, models.NewTargetSet(names), runner.RealDeps{})
	if err := app.Run(ctx); err != nil {
		slog.Error("Applikasjonen feilet", "error", err)
		os.Exit(1)
	}
}
