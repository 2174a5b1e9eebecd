// Package health runs the readiness checks for the portal's dependencies,
// chiefly the faculty records API.
package health

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// DefaultCheckTimeout bounds each check when New is given no WithCheckTimeout.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets how long a single check may run.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently, each under its own timeout, and
// returns the results sorted by name. The lock is not held while checks run.
func (r *Registry) CheckAll(ctx context.Context) []ports.ComponentHealth {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make([]ports.ComponentHealth, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			start := time.Now()
			err := c.HealthCheck(checkCtx)
			results[i] = ports.ComponentHealth{Name: c.Name(), Err: err, Elapsed: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()

	slices.SortFunc(results, func(a, b ports.ComponentHealth) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}
