// Package appctx provides request-scoped context for orchestration services.
//
// A RequestContext pins the moment a request arrived, so that every date
// judgement made while serving it agrees on what "today" is, and memoizes
// downstream reads so a record fetched once is not fetched again:
//
//	rc := appctx.New(ctx, time.Now())
//	ctx = appctx.WithRequestContext(ctx, rc)
//
//	clock := appctx.Clock(ctx)
//	rec, err := appctx.GetOrFetch(rc, "research:42", fetchRecord)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type requestContextKey struct{}

// RequestContext is a request-scoped context wrapper carrying the request
// time and an in-memory read cache. Create a new instance for each request.
// It is safe for concurrent use by the goroutines serving that request.
type RequestContext struct {
	context.Context
	now time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping ctx and pinned to now.
func New(ctx context.Context, now time.Time) *RequestContext {
	return &RequestContext{
		Context: ctx,
		now:     now,
		cache:   make(map[string]cacheEntry),
	}
}

// Now returns the pinned request time.
func (rc *RequestContext) Now() time.Time {
	return rc.now
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// Now returns the request time stored in ctx. Outside a request (workers,
// tests, startup) it falls back to time.Now().
func Now(ctx context.Context) time.Time {
	if rc, ok := FromContext(ctx); ok {
		return rc.now
	}
	return time.Now()
}

// Clock returns a dates.Clock fixed at Now(ctx), so every check made with it
// agrees on the date even when the call spans midnight.
func Clock(ctx context.Context) dates.Clock {
	return dates.FixedClock(Now(ctx))
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Concurrent callers for a missing key may both fetch; the last result wins.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()

	return val, err
}

// Store replaces the cached value for key, so later reads in the same request
// see a write that was just made.
func (rc *RequestContext) Store(key string, value any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache[key] = cacheEntry{value: value}
}

// Forget drops the cached value for key.
func (rc *RequestContext) Forget(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.cache, key)
}
