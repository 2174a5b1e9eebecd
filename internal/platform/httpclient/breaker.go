package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// Readiness errors reported by HealthCheck, wrapped with the peer name.
// ErrDegraded matches ports.ErrDegraded.
var (
	ErrDegraded = fmt.Errorf("circuit breaker half-open: %w", ports.ErrDegraded)
	ErrFailing  = errors.New("failing (circuit breaker open)")
)

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A browser closing the tab says nothing about the records API.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// HealthCheck maps the breaker state to readiness without touching the
// network: closed is healthy, half-open wraps ErrDegraded and open wraps
// ErrFailing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w", c.peer, ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: %w", c.peer, ErrFailing)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
