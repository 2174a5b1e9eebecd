package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// latencyBuckets are the OpenTelemetry HTTP semantic-convention boundaries,
// in seconds.
var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 7.5, 10}

// Metrics are the HTTP instruments shared by the server middleware and the
// records API client.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	ClientRetryTotal      metric.Int64Counter
}

// NewMetrics registers the instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var errs []error

	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name,
			metric.WithDescription(desc),
			metric.WithUnit("s"),
			metric.WithExplicitBucketBoundaries(latencyBuckets...),
		)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: histogram("http.server.request.duration", "Time spent answering portal requests"),
		ServerRequestTotal:    counter("http.server.request.total", "Portal requests served", "{request}"),
		ClientRequestDuration: histogram("http.client.request.duration", "Time spent on records API calls, retries included"),
		ClientRequestTotal:    counter("http.client.request.total", "Records API calls made", "{request}"),
		ClientRetryTotal:      counter("http.client.retry.total", "Records API attempts repeated after a transient failure", "{retry}"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("registering HTTP instruments: %w", err)
	}
	return m, nil
}
