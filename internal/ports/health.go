package ports

import (
	"context"
	"errors"
	"time"
)

// ErrDegraded marks a check failure that leaves the component usable, such
// as a circuit breaker letting trial requests through. Readiness reports it
// without failing.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports the state of one dependency, e.g. "records-api".
type HealthChecker interface {
	Name() string
	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// ComponentHealth is the outcome of one check.
type ComponentHealth struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Degraded reports whether the component failed its check but remains usable.
func (c ComponentHealth) Degraded() bool {
	return errors.Is(c.Err, ErrDegraded)
}

// HealthRegistry runs the registered checks for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per checker, sorted by name.
	CheckAll(ctx context.Context) []ComponentHealth
}
