package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lead_qualifier/internal/application"
	"lead_qualifier/internal/config"
	"lead_qualifier/pkg/contextx"
	"lead_qualifier/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	handler, err := logx.NewHandler(os.Stdout, cfg.App.LogLevel, cfg.App.NoColor)
	if err != nil {
		slog.Error("logx.NewHandler", logx.Error(err))
		os.Exit(1)
	}

	log := slog.New(handler).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
