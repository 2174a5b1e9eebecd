// Package httpclient is the portal's outbound HTTP stack toward the records
// API. Every call passes through
//
//	circuit breaker → rate limiter → ID headers → client span → retry loop → net/http
//
// and is counted in the client request metrics. Request and correlation IDs
// stored by the inbound middleware are forwarded as headers:
//
//	ctx = httpclient.WithRequestID(ctx, id)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/telemetry"
)

// Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil disables limiting
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the downstream named serviceName, which labels
// spans, metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		peer:    serviceName,
		breaker: newBreaker(serviceName, cfg.CircuitBreaker, logger),
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Do sends req. A non-retryable status, 4xx included, comes back as a
// response with a nil error. When retries run out on a retryable status both
// the last response and an error are returned. Either way a non-nil response
// body must be closed by the caller. Breaker rejections, rate limiting and
// transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("%s rate limit: %w", c.peer, err)
			}
		}
		forwardIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var sendErr error
		resp, sendErr = c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, resp, sendErr)
		return struct{}{}, sendErr
	})

	c.observe(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the configured root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream identifier, e.g. "records-api".
func (c *Client) Name() string {
	return c.peer
}
