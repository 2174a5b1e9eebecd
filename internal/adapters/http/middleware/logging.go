package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying request_id and
// correlation_id in the context, then logs the request at both ends.
// Completion is logged at WARN for 4xx and ERROR for 5xx. At DEBUG the
// redacted request headers are logged too.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ids := IDsFromContext(r.Context())
			reqLog := logger.With(
				slog.String("request_id", ids.Request),
				slog.String("correlation_id", ids.Correlation),
			)
			ctx := logging.WithLogger(r.Context(), reqLog)

			reqLog.LogAttrs(ctx, slog.LevelInfo, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLog.Enabled(ctx, slog.LevelDebug) {
				reqLog.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, rw.outcome(), "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
