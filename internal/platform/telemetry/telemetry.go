// Package telemetry wires OpenTelemetry tracing and HTTP metrics for the
// portal. Setup builds both providers from the telemetry config section and
// registers them globally:
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry, profile)
//	defer providers.Shutdown(ctx)
//	httpclient.New(&cfg.Client, "records-api", providers.Metrics, logger)
//
// Domain counters (verdicts, issues, dashboard health) are exported through
// Prometheus by the platform/metrics package; this package covers HTTP
// traffic in both directions.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	ErrUnsupportedExporter = errors.New("unsupported telemetry exporter")
	ErrMissingEndpoint     = errors.New("otlp exporter requires an endpoint")
)

// Metric and span attribute keys shared by the inbound middleware and the
// outbound client.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
)

// Providers owns the SDK providers. The zero value, returned when telemetry
// is disabled, has nil fields and a no-op Shutdown.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds and globally registers a tracer and meter provider for the
// configured exporter. profile is recorded as the deployment environment.
func Setup(ctx context.Context, cfg config.TelemetryConfig, profile string) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironmentName(profile),
	))
	if err != nil {
		return nil, fmt.Errorf("building telemetry resource: %w", err)
	}

	spans, readings, err := newExporters(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}

	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes pending spans and readings.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newExporters(ctx context.Context, name, endpoint string) (sdktrace.SpanExporter, sdkmetric.Exporter, error) {
	switch name {
	case ExporterStdout:
		spans, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, fmt.Errorf("stdout span exporter: %w", err)
		}
		readings, err := stdoutmetric.New()
		if err != nil {
			return nil, nil, fmt.Errorf("stdout metric exporter: %w", err)
		}
		return spans, readings, nil

	case ExporterOTLP:
		target, err := parseCollector(endpoint)
		if err != nil {
			return nil, nil, err
		}
		traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target.host)}
		metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target.host)}
		if target.plaintext {
			traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
			metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
		}
		spans, err := otlptracehttp.New(ctx, traceOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("otlp span exporter: %w", err)
		}
		readings, err := otlpmetrichttp.New(ctx, metricOpts...)
		if err != nil {
			return nil, nil, errors.Join(fmt.Errorf("otlp metric exporter: %w", err), spans.Shutdown(ctx))
		}
		return spans, readings, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, name)
	}
}

// collector is an OTLP/HTTP destination.
type collector struct {
	host      string
	plaintext bool
}

// parseCollector accepts "http://otel-collector:4318", "https://..." or a
// bare host:port, which is treated as plaintext.
func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{host: endpoint, plaintext: true}, nil
	}
	return collector{host: u.Host, plaintext: u.Scheme != "https"}, nil
}
