// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/handlers"
)

// MetricsEndpoint mounts a metrics exposition handler at Path.
type MetricsEndpoint struct {
	Path    string
	Handler http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. A nil metrics endpoint
// leaves /metrics unmounted.
func NewRouter(
	recordHandler *handlers.RecordHandler,
	dateHandler *handlers.DateHandler,
	healthHandler *handlers.HealthHandler,
	metrics *MetricsEndpoint,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	if metrics != nil && metrics.Handler != nil {
		r.Method(http.MethodGet, metrics.Path, metrics.Handler)
	}

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Per-faculty views.
		r.Get("/faculty/{facultyId}/dashboard", recordHandler.Dashboard)
		r.Get("/faculty/{facultyId}/{kind}", recordHandler.ListRecords)

		// Record CRUD, one route set for every kind.
		r.Post("/records/{kind}", recordHandler.CreateRecord)
		r.Get("/records/{kind}/{id}", recordHandler.GetRecord)
		r.Put("/records/{kind}/{id}", recordHandler.UpdateRecord)
		r.Delete("/records/{kind}/{id}", recordHandler.DeleteRecord)

		// Stateless date checks.
		r.Post("/dates/validate", dateHandler.Validate)
		r.Post("/dates/issues", dateHandler.Issues)
	})

	return r
}
