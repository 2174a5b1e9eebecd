package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	c.Metrics.check(&p)
	c.Dates.check(&p)
	if c.Dashboard.MaxWorkers < 1 {
		p.addf("dashboard.max_workers must be >= 1, got %d", c.Dashboard.MaxWorkers)
	}
	return errors.Join(p...)
}

// problems collects validation failures.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of %s; got %q", key, strings.Join(allowed, ", "), got)
	}
}

func (s ServerConfig) check(p *problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		p.addf("server.read_timeout must be positive")
	}
	if s.WriteTimeout <= 0 {
		p.addf("server.write_timeout must be positive")
	}
	switch {
	case s.RequestTimeout <= 0:
		p.addf("server.request_timeout must be positive")
	case s.WriteTimeout > 0 && s.RequestTimeout >= s.WriteTimeout:
		p.addf("server.request_timeout (%s) must be less than server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout)
	}
}

func (l LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (c ClientConfig) check(p *problems) {
	if c.BaseURL == "" {
		p.addf("client.base_url must not be empty")
	}
	if c.Timeout <= 0 {
		p.addf("client.timeout must be positive")
	}
	if c.Retry.MaxAttempts < 1 {
		p.addf("client.retry.max_attempts must be >= 1, got %d", c.Retry.MaxAttempts)
	}
	if c.Retry.Multiplier <= 0 {
		p.addf("client.retry.multiplier must be positive, got %g", c.Retry.Multiplier)
	}
	if c.CircuitBreaker.MaxFailures < 1 {
		p.addf("client.circuit_breaker.max_failures must be >= 1, got %d", c.CircuitBreaker.MaxFailures)
	}
	if rl := c.RateLimit; rl.RequestsPerSecond < 0 {
		p.addf("client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	} else if rl.RequestsPerSecond > 0 && rl.BurstSize < 1 {
		p.addf("client.rate_limit.burst_size must be >= 1 when limiting, got %d", rl.BurstSize)
	}
}

func (t TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		p.addf("telemetry.endpoint must not be empty when exporter is otlp")
	}
}

func (m MetricsConfig) check(p *problems) {
	if m.Enabled && !strings.HasPrefix(m.Path, "/") {
		p.addf("metrics.path must start with /, got %q", m.Path)
	}
}

func (d DatesConfig) check(p *problems) {
	if d.MinYear < 1 {
		p.addf("dates.min_year must be >= 1, got %d", d.MinYear)
	}
	if _, err := d.Location(); err != nil {
		*p = append(*p, err)
	}
}
