package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// RecordHandler handles HTTP requests for faculty records of every kind and
// the per-faculty date issue dashboard.
type RecordHandler struct {
	svc ports.RecordService
}

// NewRecordHandler creates a new RecordHandler with the given service port.
func NewRecordHandler(svc ports.RecordService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// ListRecords handles GET /api/v1/faculty/{facultyId}/{kind}.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	kind, _, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	facultyID, err := parseID(r, "facultyId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	recs, err := h.svc.ListRecords(r.Context(), kind, facultyID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecordListResponse(recs))
}

// CreateRecord handles POST /api/v1/records/{kind}.
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	kind, _, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateRecord(r.Context(), req.ToRecord(kind))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToRecordResponse(created))
}

// GetRecord handles GET /api/v1/records/{kind}/{id}.
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	kind, _, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetRecord(r.Context(), kind, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecordResponse(rec))
}

// UpdateRecord handles PUT /api/v1/records/{kind}/{id}. The body is merged
// onto the stored record and the result must pass the kind's date rule.
func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	kind, policy, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateRecord(r.Context(), kind, id, req.ToPatch(policy))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecordResponse(updated))
}

// DeleteRecord handles DELETE /api/v1/records/{kind}/{id}.
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	kind, _, err := parseKind(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), kind, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Dashboard handles GET /api/v1/faculty/{facultyId}/dashboard.
func (h *RecordHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	facultyID, err := parseID(r, "facultyId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.Dashboard(r.Context(), facultyID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(d))
}
