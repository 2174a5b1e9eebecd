package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/faculty-portal/internal/domain"
)

// problemJSON is the RFC 9457 media type.
const problemJSON = "application/problem+json"

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field. Location is "body.<field>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemStatuses is checked in order; the first sentinel err matches wins.
var problemStatuses = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusOf returns the HTTP status a portal error is reported with.
// Unrecognized errors are 500.
func StatusOf(err error) int {
	for _, p := range problemStatuses {
		if errors.Is(err, p.target) {
			return p.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem body for err. Internal errors keep
// their text out of the body.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.RequestURI(),
	}
	if status != http.StatusInternalServerError {
		resp.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
			resp.Errors = append(resp.Errors, ErrorDetail{
				Location: "body." + field,
				Message:  verr.Fields[field],
			})
		}
	}
	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "unhandled error", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", problemJSON)
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}
