package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIDLen bounds client-supplied IDs.
	maxIDLen = 128
)

// IDs identify an inbound request. Request names this hop; Correlation
// follows a user action across the portal and the records API.
type IDs struct {
	Request     string
	Correlation string
}

type idsKey struct{}

// ContextWithIDs stores ids for IDsFromContext and for the records API
// client, which forwards them as headers.
func ContextWithIDs(ctx context.Context, ids IDs) context.Context {
	ctx = context.WithValue(ctx, idsKey{}, ids)
	ctx = httpclient.WithRequestID(ctx, ids.Request)
	return httpclient.WithCorrelationID(ctx, ids.Correlation)
}

// IDsFromContext returns the IDs stored by RequestIDs, or the zero value.
func IDsFromContext(ctx context.Context) IDs {
	ids, _ := ctx.Value(idsKey{}).(IDs)
	return ids
}

// RequestIDs reuses well-formed X-Request-ID and X-Correlation-ID headers.
// A missing request ID becomes a new UUID and a missing correlation ID
// becomes the request ID. Both are echoed on the response.
func RequestIDs() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ids := IDs{
				Request:     r.Header.Get(headerRequestID),
				Correlation: r.Header.Get(headerCorrelationID),
			}
			if !acceptableID(ids.Request) {
				ids.Request = uuid.NewString()
			}
			if !acceptableID(ids.Correlation) {
				ids.Correlation = ids.Request
			}

			w.Header().Set(headerRequestID, ids.Request)
			w.Header().Set(headerCorrelationID, ids.Correlation)
			next.ServeHTTP(w, r.WithContext(ContextWithIDs(r.Context(), ids)))
		})
	}
}

// acceptableID accepts non-empty printable ASCII up to maxIDLen bytes, which
// is safe to echo into headers and logs.
func acceptableID(id string) bool {
	if id == "" || len(id) > maxIDLen {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c < '!' || c > '~' {
			return false
		}
	}
	return true
}
