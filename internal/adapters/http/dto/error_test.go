package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/faculty-portal/internal/domain"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{domain.NewValidationError("start_year", domain.MsgRequired), http.StatusBadRequest},
		{fmt.Errorf("patent 17: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("grant already linked: %w", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("records-api: %w", domain.ErrUnavailable), http.StatusBadGateway},
		{fmt.Errorf("listing awards: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("nil map write"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			if got := dto.StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse_ProblemFields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/faculty/f-9/awards/a-1?view=full", nil)
	got := dto.NewErrorResponse(r, fmt.Errorf("award a-1: %w", domain.ErrNotFound))

	want := dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "award a-1: not found",
		Instance: "/api/v1/faculty/f-9/awards/a-1?view=full",
	}
	if got.Type != want.Type || got.Title != want.Title || got.Status != want.Status ||
		got.Detail != want.Detail || got.Instance != want.Instance || got.Errors != nil {
		t.Errorf("NewErrorResponse() = %+v, want %+v", got, want)
	}
}

func TestNewErrorResponse_FieldErrorsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"end_date":   "must not be before start_date",
		"faculty_id": domain.MsgRequired,
		"amount":     "must be positive",
	}}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/faculty/f-9/grants", nil)

	got := dto.NewErrorResponse(r, fmt.Errorf("create grant: %w", verr))

	wantLocations := []string{"body.amount", "body.end_date", "body.faculty_id"}
	if len(got.Errors) != len(wantLocations) {
		t.Fatalf("Errors = %+v, want %d entries", got.Errors, len(wantLocations))
	}
	for i, loc := range wantLocations {
		if got.Errors[i].Location != loc {
			t.Errorf("Errors[%d].Location = %q, want %q", i, got.Errors[i].Location, loc)
		}
	}
	if got.Errors[2].Message != domain.MsgRequired {
		t.Errorf("faculty_id message = %q", got.Errors[2].Message)
	}
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/faculty/f-9/dashboard", nil)
	got := dto.NewErrorResponse(r, errors.New("dial tcp 10.0.0.7:5432: connection refused"))

	if got.Status != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", got.Status)
	}
	if got.Detail != "" {
		t.Errorf("Detail = %q, want empty for internal errors", got.Detail)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/v1/faculty/f-9/patents/p-3", nil)

	dto.WriteErrorResponse(rec, r, fmt.Errorf("patent p-3 was edited elsewhere: %w", domain.ErrConflict))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != rec.Code {
		t.Errorf("body status %d disagrees with response status %d", body.Status, rec.Code)
	}
	if !strings.Contains(body.Detail, "edited elsewhere") {
		t.Errorf("Detail = %q", body.Detail)
	}
}

func TestWriteErrorResponse_OmitsEmptyMembers(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dto.WriteErrorResponse(rec, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("boom"))

	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"detail", "errors"} {
		if _, ok := raw[key]; ok {
			t.Errorf("%q should be omitted, body = %s", key, rec.Body)
		}
	}
}
