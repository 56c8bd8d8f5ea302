package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkourtis/staticfall/config"
	"github.com/mkourtis/staticfall/internal/fallback"
	"github.com/mkourtis/staticfall/internal/httpserver"
	"github.com/mkourtis/staticfall/internal/metrics"
	"github.com/mkourtis/staticfall/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector(cfg.Metrics.BufferSize, log)
	collector.Start(ctx)

	fallbackHandler := fallback.NewHandler(log, collector)

	srv, err := httpserver.New(cfg.Server.Address, setupRouter(fallbackHandler, collector))
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	log.Info("Fallback server listening",
		slog.String("address", cfg.Server.Address))

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting fallback server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}
