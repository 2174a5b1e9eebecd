package httpclient

import (
	"context"
	"net/http"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

type forwardKey struct{}

// forwarded holds the IDs copied onto every outbound request.
type forwarded struct {
	requestID     string
	correlationID string
}

func forwardedFrom(ctx context.Context) forwarded {
	f, _ := ctx.Value(forwardKey{}).(forwarded)
	return f
}

// WithRequestID marks ctx so outbound calls carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	f := forwardedFrom(ctx)
	f.requestID = id
	return context.WithValue(ctx, forwardKey{}, f)
}

// WithCorrelationID marks ctx so outbound calls carry X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	f := forwardedFrom(ctx)
	f.correlationID = id
	return context.WithValue(ctx, forwardKey{}, f)
}

func forwardIDs(ctx context.Context, h http.Header) {
	f := forwardedFrom(ctx)
	if f.requestID != "" {
		h.Set(headerRequestID, f.requestID)
	}
	if f.correlationID != "" {
		h.Set(headerCorrelationID, f.correlationID)
	}
}
