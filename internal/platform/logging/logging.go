// Package logging builds the portal's slog logger and carries request-scoped
// loggers through context.Context.
//
//	logger := logging.New(cfg.Log, os.Stderr, slog.String("service", "faculty-portal"))
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to fetch record",
//	    slog.String("operation", "GetRecord"),
//	    slog.String("record_kind", string(kind)),
//	    slog.String("record_id", id),
//	    slog.Any("error", err),
//	)
//
// Error logs name the operation and the entity, and pass the error itself
// with slog.Any so the chain survives.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
)

type contextKey struct{}

// New returns a JSON logger, or a text logger when cfg.Format is "text".
// Unknown levels fall back to info; debug adds source locations. Every record
// passes through the masq redactor, and base is attached to each entry.
func New(cfg config.LogConfig, w io.Writer, base ...slog.Attr) *slog.Logger {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	if len(base) > 0 {
		h = h.WithAttrs(base)
	}
	return slog.New(h)
}

// ParseLevel accepts debug, info, warn or error in any case, with slog's
// offset forms such as "warn+2". Anything else is info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With extends the context logger with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the stored logger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
