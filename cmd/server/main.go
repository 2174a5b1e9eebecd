// Package main is the entry point for the faculty portal service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/faculty-portal/internal/adapters/http"
	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/faculty-portal/internal/app"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/health"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/httpclient"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/logging"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/metrics"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/telemetry"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "faculty-portal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading %s config: %w", profile, err)
	}
	logger := logging.New(cfg.Log, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry, profile)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	if err := registerDependencies(injector, cfg, logger); err != nil {
		return err
	}

	// Invoking the server resolves the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	do.MustInvoke[ports.HealthRegistry](injector).Register(do.MustInvoke[*acl.RecordClient](injector))

	logger.Info("faculty portal configured",
		slog.String("records_api", cfg.Client.BaseURL),
		slog.String("timezone", cfg.Dates.Timezone),
		slog.Int("min_year", cfg.Dates.MinYear),
		slog.Bool("prometheus", cfg.Metrics.Enabled),
	)

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) error {
	loc, err := cfg.Dates.Location()
	if err != nil {
		return fmt.Errorf("resolving dates timezone: %w", err)
	}
	dateOpts := []dates.Option{dates.WithLocation(loc), dates.WithMinYear(cfg.Dates.MinYear)}

	do.Provide(injector, func(_ do.Injector) (*dates.Validator, error) {
		return dates.NewValidator(dates.SystemClock(), dateOpts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (*dates.Detector, error) {
		return dates.NewDetector(dates.SystemClock(), dateOpts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (*prometheus.Registry, error) {
		return metrics.NewRegistry(), nil
	})

	do.Provide(injector, func(i do.Injector) (*metrics.Metrics, error) {
		if !cfg.Metrics.Enabled {
			return nil, nil
		}
		return metrics.New(do.MustInvoke[*prometheus.Registry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "records-api", otelMetrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.RecordClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewRecordClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RecordService, error) {
		return app.NewRecordService(
			do.MustInvoke[*acl.RecordClient](i),
			do.MustInvoke[*dates.Validator](i),
			do.MustInvoke[*dates.Detector](i),
			logger,
			app.WithMetrics(do.MustInvoke[*metrics.Metrics](i)),
			app.WithDashboardWorkers(cfg.Dashboard.MaxWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DateValidationService, error) {
		return app.NewDateService(
			do.MustInvoke[*dates.Validator](i),
			do.MustInvoke[*dates.Detector](i),
			do.MustInvoke[*metrics.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RecordHandler, error) {
		svc := do.MustInvoke[ports.RecordService](i)
		return handlers.NewRecordHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DateHandler, error) {
		svc := do.MustInvoke[ports.DateValidationService](i)
		return handlers.NewDateHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		recordH := do.MustInvoke[*handlers.RecordHandler](i)
		dateH := do.MustInvoke[*handlers.DateHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)

		var metricsEndpoint *adapthttp.MetricsEndpoint
		if cfg.Metrics.Enabled {
			metricsEndpoint = &adapthttp.MetricsEndpoint{
				Path:    cfg.Metrics.Path,
				Handler: metrics.Handler(do.MustInvoke[*prometheus.Registry](i)),
			}
		}

		stack := middleware.Standard(middleware.StackOptions{
			Logger:         logger,
			Metrics:        otelMetrics,
			RequestTimeout: cfg.Server.RequestTimeout,
		})
		return adapthttp.NewRouter(recordH, dateH, healthH, metricsEndpoint, stack...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return nil
}
