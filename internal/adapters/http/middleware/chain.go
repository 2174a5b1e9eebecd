package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is outermost:
//
//	Chain(Recovery, RequestIDs, Logging)(h) == Recovery(RequestIDs(Logging(h)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackOptions configures Standard.
type StackOptions struct {
	Logger *slog.Logger
	// Metrics may be nil to skip HTTP server metrics.
	Metrics *telemetry.Metrics
	// Now pins the request clock; nil means time.Now.
	Now func() time.Time
	// RequestTimeout of zero disables the Timeout middleware.
	RequestTimeout time.Duration
}

// Standard returns the portal's inbound pipeline in package-doc order. Each
// stage relies on values placed in the context by the ones before it.
func Standard(opts StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		Recovery(opts.Logger),
		RequestIDs(),
		RequestTime(opts.Now),
		OpenTelemetry(opts.Metrics),
		Logging(opts.Logger),
	}
	if opts.RequestTimeout > 0 {
		stack = append(stack, Timeout(opts.RequestTimeout))
	}
	return stack
}
