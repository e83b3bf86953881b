package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/helloapi/internal/config"
	metrics "github.com/aescanero/helloapi/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/helloapi/pkg/api/grpc"
	"github.com/aescanero/helloapi/pkg/api/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting hello API",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("hello API stopped with error", zap.Error(err))
		return 1
	}

	logger.Info("hello API shut down complete")
	return 0
}

// run serves until ctx is cancelled or a server fails. It returns nil on a
// clean shutdown.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	var metricsCollector *metrics.Collector
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsCollector = metrics.NewCollector(registry)
		metricsCollector.SetBuildInfo(Version)
	}

	httpServer := http.NewServer(&http.Config{
		Addr:              cfg.GetHTTPAddr(),
		Logger:            logger,
		Metrics:           metricsCollector,
		CORSEnabled:       cfg.CORSEnabled,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeader,
		ReadTimeout:       cfg.Timeouts.Read,
		WriteTimeout:      cfg.Timeouts.Write,
		IdleTimeout:       cfg.Timeouts.Idle,
	})

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled() {
		var err error
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Addr:   cfg.GetGRPCAddr(),
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create gRPC server: %w", err)
		}
	}

	// Start servers
	errCh := make(chan error, 2)
	go func() {
		errCh <- httpServer.Start()
	}()

	if grpcServer != nil {
		go func() {
			errCh <- grpcServer.Start()
		}()
	}

	logger.Info("hello API started",
		zap.String("http_addr", cfg.GetHTTPAddr()),
		zap.Bool("grpc_enabled", grpcServer != nil),
		zap.Bool("metrics_enabled", metricsCollector != nil))

	// Wait for a shutdown signal or a server failure
	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case serveErr = <-errCh:
		if serveErr != nil {
			logger.Error("server failed", zap.Error(serveErr))
		}
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	var shutdownErrs []error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
		shutdownErrs = append(shutdownErrs, err)
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
			shutdownErrs = append(shutdownErrs, err)
		}
	}

	return errors.Join(append([]error{serveErr}, shutdownErrs...)...)
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
