package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// DateHandler exposes the date validator and issue detector over HTTP.
// A failing verdict is a 200 response with valid=false.
type DateHandler struct {
	svc ports.DateValidationService
}

// NewDateHandler creates a new DateHandler with the given service port.
func NewDateHandler(svc ports.DateValidationService) *DateHandler {
	return &DateHandler{svc: svc}
}

// Validate handles POST /api/v1/dates/validate.
func (h *DateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.DateCheckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	verdict, err := h.svc.Validate(r.Context(), req.ToCheck())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToVerdictResponse(verdict))
}

// Issues handles POST /api/v1/dates/issues.
func (h *DateHandler) Issues(w http.ResponseWriter, r *http.Request) {
	var req dto.IssuesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.svc.Issues(r.Context(), req.Record, req.Spec())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToIssueReportResponse(report))
}
