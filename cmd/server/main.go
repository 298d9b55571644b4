package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/bootstrap"
	"github.com/spacesedan/sentiscope/internal/logging"
	"github.com/spacesedan/sentiscope/internal/monitoring"
	"github.com/spacesedan/sentiscope/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("[Main] Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	config.LoadEnv(config.AppEnv())
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logging.InitLogger(cfg.SlogLevel())

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	builder, err := bootstrap.NewReportBuilder(cfg)
	if err != nil {
		return fmt.Errorf("failed to build analyzers: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := monitoring.NewMetrics()
	ready := &atomic.Bool{}
	go monitoring.MonitorReadiness(ctx, "report-builder", bootstrap.ReportBuilderProbe(builder), ready, metrics)

	handler := server.NewHandler(builder, metrics, ready, cfg.MaxTextLength)
	srv := server.New(cfg, handler, metrics)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("[Main] Starting HTTP server",
			slog.String("address", srv.Addr),
			slog.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("[Main] Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("[Main] Server stopped cleanly")
	return nil
}
