package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
	appctx "github.com/jsamuelsen11/faculty-portal/internal/app/context"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready: 503 when a dependency is down, 200
// otherwise, degraded ones included.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewReadinessResponse(h.registry.CheckAll(r.Context()), appctx.Now(r.Context()))

	code := http.StatusOK
	if resp.Status == dto.ReadinessNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
