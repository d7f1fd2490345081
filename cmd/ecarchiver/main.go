// Command ecarchiver periodically downloads historical daily climate
// records for a configured set of stations and publishes them to a Kafka
// topic. Configuration is environment-driven; see internal/config.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/chinookdata/ecclimate/internal/adapter/http"
	kafkaadapter "github.com/chinookdata/ecclimate/internal/adapter/kafka"
	"github.com/chinookdata/ecclimate/internal/archiver"
	"github.com/chinookdata/ecclimate/internal/config"
	"github.com/chinookdata/ecclimate/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := archiver.NewPortalFetcher(cfg.Language)
	writer := kafkaadapter.NewWriter(cfg, logger)

	a := archiver.New(cfg, fetcher, writer, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, a, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := a.Run(ctx); err != nil {
			logger.Error("archiver error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
