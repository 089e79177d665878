package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/cloudrun-smoke/internal/platform/config"
	applog "github.com/janisto/cloudrun-smoke/internal/platform/logging"
	"github.com/janisto/cloudrun-smoke/internal/platform/metrics"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx := context.Background()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogWarn(ctx, "keeping default log level", zap.Error(err))
	}

	code := run(ctx, cfg)
	if err := applog.Sync(); err != nil {
		applog.LogError(ctx, "logger sync error", err)
	}
	os.Exit(code)
}

// run serves until a signal arrives or a listener fails and returns the exit code.
func run(ctx context.Context, cfg *config.Config) int {
	var (
		m          *metrics.Metrics
		metricsSrv *metrics.Server
	)
	if cfg.Metrics.Enabled {
		m = metrics.New()
		metricsSrv = metrics.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, m)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, m),
		ReadTimeout:       cfg.Timeouts.Read,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeader,
		WriteTimeout:      cfg.Timeouts.Write,
		IdleTimeout:       cfg.Timeouts.Idle,
		MaxHeaderBytes:    64 << 10,
	}

	listenErr := make(chan error, 2)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", srv.Addr), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()
	if metricsSrv != nil {
		go func() {
			if err := metricsSrv.Start(); err != nil {
				listenErr <- err
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	code := 0
	select {
	case err := <-listenErr:
		applog.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
		code = 1
	case sig := <-stop:
		applog.LogInfo(ctx, "shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Timeouts.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
		code = 1
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			applog.LogError(shutdownCtx, "metrics server shutdown error", err)
		}
	}
	applog.LogInfo(ctx, "server exited")
	return code
}
