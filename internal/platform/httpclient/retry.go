package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/logging"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/telemetry"
)

// jitterFraction spreads each delay by ±25%.
const jitterFraction = 0.25

// retryPolicy is the unexported copy of config.RetryConfig.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// backoff returns the jittered delay before retry n, counting from 1.
func (p retryPolicy) backoff(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.ceiling))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send runs the attempt loop. GET, PUT and DELETE are replayed after
// transport errors, 429 and 5xx. POST creates a record, so it is replayed
// only on 429 and 503, where the records API refused it before acting.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := makeRewindable(req); err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := 1; attempt <= c.retry.attempts; attempt++ {
		if attempt > 1 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !isIdempotent(req.Method) || !isRetryable(err) {
				return nil, err
			}
			lastErr, hint = err, 0
			continue
		}

		if !shouldRetryStatus(req.Method, resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s answered HTTP %d", c.peer, resp.StatusCode)
		if attempt == c.retry.attempts {
			return resp, lastErr
		}
		hint = retryAfter(resp.Header.Get("Retry-After"), c.retry.ceiling)
		discard(resp)
	}
	return nil, lastErr
}

// pause waits out the backoff, or the server's Retry-After hint when that is
// longer.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, cause error) error {
	delay := max(c.retry.backoff(attempt-1), hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", cause),
	)
	if c.metrics != nil {
		c.metrics.ClientRetryTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrPeerService.String(c.peer),
			telemetry.AttrHTTPMethod.String(req.Method),
		))
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// makeRewindable gives req a GetBody so every attempt can resend the body.
// Bodies built from bytes or strings readers already have one.
func makeRewindable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("buffering request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.Body, _ = req.GetBody()
	req.ContentLength = int64(len(buf))
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// discard drains resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable rejects errors caused by the caller's own context.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func shouldRetryStatus(method string, status int) bool {
	switch {
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return true
	case isIdempotent(method):
		return status >= http.StatusInternalServerError
	default:
		return false
	}
}

// retryAfter reads a Retry-After header in seconds or HTTP-date form, capped
// at limit. Missing or bad values yield zero.
func retryAfter(value string, limit time.Duration) time.Duration {
	if value == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(value); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		d = time.Until(at)
	}
	return min(max(d, 0), limit)
}
