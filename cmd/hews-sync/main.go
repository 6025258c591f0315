package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hews-sync/internal/slogx"
	"hews-sync/internal/sync"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.DP.Close()

	cfg := a.Config

	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using health provider", "provider", a.DP.GetName())
	slog.Info("output", "path", cfg.OutputPath(), "archive", cfg.Archive, "archive_format", a.Saver.Extension())

	// External scheduler owns the run timeout; we only honor termination.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sync.Run(ctx, cfg, a.DP, a.Saver); err != nil {
		slog.Error("sync failed", "error", err)
		os.Exit(1)
	}
}
