package dto

import (
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// Readiness states.
const (
	ReadinessReady    = "ready"
	ReadinessDegraded = "degraded"
	ReadinessNotReady = "not_ready"
)

// Component states.
const (
	ComponentUp       = "up"
	ComponentDegraded = "degraded"
	ComponentDown     = "down"
)

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status    string                     `json:"status"`
	CheckedAt string                     `json:"checked_at"`
	Checks    map[string]ComponentStatus `json:"checks"`
}

// ComponentStatus is one dependency's entry in a ReadinessResponse.
type ComponentStatus struct {
	Status    string  `json:"status"`
	Error     string  `json:"error,omitempty"`
	LatencyMS float64 `json:"latency_ms"`
}

// NewReadinessResponse summarizes check results. Any down component makes
// the service not_ready; degraded components only downgrade it to degraded.
func NewReadinessResponse(results []ports.ComponentHealth, checkedAt time.Time) ReadinessResponse {
	resp := ReadinessResponse{
		Status:    ReadinessReady,
		CheckedAt: checkedAt.UTC().Format(time.RFC3339),
		Checks:    make(map[string]ComponentStatus, len(results)),
	}

	for _, c := range results {
		entry := ComponentStatus{Status: ComponentUp, LatencyMS: float64(c.Elapsed.Microseconds()) / 1000}
		switch {
		case c.Err == nil:
		case c.Degraded():
			entry.Status, entry.Error = ComponentDegraded, c.Err.Error()
			if resp.Status == ReadinessReady {
				resp.Status = ReadinessDegraded
			}
		default:
			entry.Status, entry.Error = ComponentDown, c.Err.Error()
			resp.Status = ReadinessNotReady
		}
		resp.Checks[c.Name] = entry
	}
	return resp
}
