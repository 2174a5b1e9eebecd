package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
)

const testFacultyID = "7"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validEvent() record.Annotated {
	return record.Annotated{
		Record: record.Record{
			ID:        "12",
			Kind:      record.KindEvent,
			FacultyID: testFacultyID,
			Title:     "Research Workshop",
			Fields: map[string]any{
				"EventOrganisedID": "12",
				"FacultyID":        testFacultyID,
				"Title":            "Research Workshop",
				"StartDate":        "2024-01-10",
				"EndDate":          "2024-01-12",
			},
		},
		Issues: dates.IssueReport{Issues: []dates.Issue{}},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
