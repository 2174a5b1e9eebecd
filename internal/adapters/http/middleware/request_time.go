package middleware

import (
	"net/http"
	"time"

	appctx "github.com/jsamuelsen11/faculty-portal/internal/app/context"
)

// RequestTime returns middleware that pins one clock reading to each request
// by storing a RequestContext in the request context. Every date check made
// while serving the request reads "today" from it via appctx.Clock(ctx), so a
// list rendered across midnight is judged against a single date.
//
// now defaults to time.Now when nil. Register after RequestIDs and before
// OpenTelemetry.
func RequestTime(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context(), now())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
