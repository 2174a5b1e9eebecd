package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

func flaggedEvent() record.Annotated {
	return record.Annotated{
		Record: record.Record{
			ID:        "12",
			Kind:      record.KindEvent,
			FacultyID: "7",
			Title:     "Workshop",
			Fields:    map[string]any{"StartDate": "2099-01-01"},
		},
		Issues: dates.IssueReport{
			HasIssue: true,
			Issues: []dates.Issue{
				{Kind: dates.KindFutureDate, Field: "StartDate", Message: "Start date is in the future"},
			},
		},
	}
}

func TestToRecordResponse(t *testing.T) {
	t.Parallel()

	a := flaggedEvent()
	got := dto.ToRecordResponse(&a)

	if got.ID != "12" || got.Kind != "event" || got.FacultyID != "7" || got.Title != "Workshop" {
		t.Errorf("ToRecordResponse() = %+v", got)
	}
	if !got.DateIssues.HasIssue {
		t.Error("DateIssues.HasIssue = false, want true")
	}
	if len(got.DateIssues.Issues) != 1 || got.DateIssues.Issues[0] != "Start date is in the future" {
		t.Errorf("DateIssues.Issues = %v", got.DateIssues.Issues)
	}
	if len(got.DateIssues.Details) != 1 || got.DateIssues.Details[0].Kind != "future_date" {
		t.Errorf("DateIssues.Details = %+v", got.DateIssues.Details)
	}
}

func TestToRecordResponse_NilAttributesEncodeAsObject(t *testing.T) {
	t.Parallel()

	a := record.Annotated{Record: record.Record{ID: "1", Kind: record.KindAward}}
	data, err := json.Marshal(dto.ToRecordResponse(&a))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if _, ok := m["attributes"].(map[string]any); !ok {
		t.Errorf("attributes = %v, want object", m["attributes"])
	}
	issues, ok := m["date_issues"].(map[string]any)
	if !ok {
		t.Fatalf("date_issues = %v, want object", m["date_issues"])
	}
	if _, ok := issues["issues"].([]any); !ok {
		t.Errorf("date_issues.issues = %v, want array", issues["issues"])
	}
}

func TestToRecordListResponse(t *testing.T) {
	t.Parallel()

	clean := record.Annotated{Record: record.Record{ID: "13", Kind: record.KindEvent}}
	got := dto.ToRecordListResponse([]record.Annotated{flaggedEvent(), clean})

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if got.Flagged != 1 {
		t.Errorf("Flagged = %d, want 1", got.Flagged)
	}
	if got.Records[1].ID != "13" {
		t.Errorf("Records[1].ID = %q, want 13", got.Records[1].ID)
	}
}

func TestToRecordListResponse_Empty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToRecordListResponse(nil))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"records":[],"count":0,"flagged":0}` {
		t.Errorf("json = %s", data)
	}
}

func TestToVerdictResponse(t *testing.T) {
	t.Parallel()

	if got := dto.ToVerdictResponse(dates.Verdict{Valid: true}); got != (dto.VerdictResponse{Valid: true}) {
		t.Errorf("valid verdict = %+v", got)
	}

	failed := dates.Verdict{Kind: dates.KindInvalidOrdering, Subject: dates.SubjectRange}
	got := dto.ToVerdictResponse(failed)
	want := dto.VerdictResponse{
		Error:   "Start date must be before end date.",
		Kind:    "invalid_ordering",
		Subject: "date_range",
	}
	if got != want {
		t.Errorf("ToVerdictResponse() = %+v, want %+v", got, want)
	}
}

func TestToDashboardResponse(t *testing.T) {
	t.Parallel()

	d := &ports.Dashboard{
		FacultyID: "7",
		Kinds: []ports.KindSummary{
			{Kind: record.KindResearch, Total: 3, Flagged: 1},
			{Kind: record.KindEvent, Err: errors.New("records api unavailable")},
		},
		Warnings: []string{"1 research project(s) have future or invalid dates"},
	}
	got := dto.ToDashboardResponse(d)

	if got.FacultyID != "7" || len(got.Kinds) != 2 {
		t.Fatalf("ToDashboardResponse() = %+v", got)
	}
	if got.Kinds[0] != (dto.KindSummaryResponse{Kind: "research", Total: 3, Flagged: 1}) {
		t.Errorf("Kinds[0] = %+v", got.Kinds[0])
	}
	if got.Kinds[1].Error != "records api unavailable" {
		t.Errorf("Kinds[1].Error = %q", got.Kinds[1].Error)
	}
	if len(got.Warnings) != 1 {
		t.Errorf("Warnings = %v", got.Warnings)
	}
}

func TestToDashboardResponse_NoWarningsEncodesEmptyArray(t *testing.T) {
	t.Parallel()

	got := dto.ToDashboardResponse(&ports.Dashboard{FacultyID: "7"})
	if got.Warnings == nil {
		t.Error("Warnings = nil, want empty slice")
	}
}
