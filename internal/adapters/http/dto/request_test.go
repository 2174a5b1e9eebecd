package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/faculty-portal/internal/domain"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateRecordRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateRecordRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.CreateRecordRequest{
				FacultyID:  "7",
				Title:      "Workshop",
				Attributes: map[string]any{"StartDate": "2024-01-10"},
			},
		},
		{
			name: "empty attributes map passes",
			req: dto.CreateRecordRequest{
				FacultyID:  "7",
				Attributes: map[string]any{},
			},
		},
		{
			name:      "blank faculty id fails",
			req:       dto.CreateRecordRequest{FacultyID: "  ", Attributes: map[string]any{}},
			wantErr:   true,
			wantField: "faculty_id",
		},
		{
			name:      "missing attributes fails",
			req:       dto.CreateRecordRequest{FacultyID: "7"},
			wantErr:   true,
			wantField: "attributes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateRecordRequest_ToRecord(t *testing.T) {
	t.Parallel()

	req := dto.CreateRecordRequest{
		FacultyID:  " 7 ",
		Title:      " Workshop ",
		Attributes: map[string]any{"StartDate": "2024-01-10"},
	}
	rec := req.ToRecord(record.KindEvent)

	if rec.Kind != record.KindEvent {
		t.Errorf("Kind = %q, want %q", rec.Kind, record.KindEvent)
	}
	if rec.FacultyID != "7" || rec.Title != "Workshop" {
		t.Errorf("FacultyID, Title = %q, %q, want trimmed values", rec.FacultyID, rec.Title)
	}

	rec.Fields["EndDate"] = "2024-01-11"
	if _, ok := req.Attributes["EndDate"]; ok {
		t.Error("ToRecord shares the request attribute map")
	}
}

func TestUpdateRecordRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateRecordRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "title only passes",
			req:  dto.UpdateRecordRequest{Title: stringPtr("Renamed")},
		},
		{
			name: "attributes only passes",
			req:  dto.UpdateRecordRequest{Attributes: map[string]any{"EndDate": nil}},
		},
		{
			name:      "empty body fails",
			req:       dto.UpdateRecordRequest{},
			wantErr:   true,
			wantField: "attributes",
		},
		{
			name:      "blank title fails",
			req:       dto.UpdateRecordRequest{Title: stringPtr("   ")},
			wantErr:   true,
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateRecordRequest_ToPatch(t *testing.T) {
	t.Parallel()

	policy, err := record.PolicyFor(record.KindAward)
	if err != nil {
		t.Fatalf("PolicyFor() error = %v", err)
	}

	req := dto.UpdateRecordRequest{
		Title:      stringPtr(" Best Paper "),
		Attributes: map[string]any{"YearAwarded": "2019"},
	}
	patch := req.ToPatch(policy)

	if patch["AwardName"] != "Best Paper" {
		t.Errorf("patch[AwardName] = %v, want %q", patch["AwardName"], "Best Paper")
	}
	if patch["YearAwarded"] != "2019" {
		t.Errorf("patch[YearAwarded] = %v, want 2019", patch["YearAwarded"])
	}
}

func TestDateCheckRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.DateCheckRequest
		wantErr   bool
		wantField string
	}{
		{name: "date rule passes", req: dto.DateCheckRequest{Rule: "date", Date: "2020-01-01"}},
		{name: "missing value is left to the verdict", req: dto.DateCheckRequest{Rule: "year"}},
		{name: "range or ongoing passes", req: dto.DateCheckRequest{Rule: "range_or_ongoing", Start: "2020-01-01"}},
		{name: "missing rule fails", req: dto.DateCheckRequest{}, wantErr: true, wantField: "rule"},
		{name: "unknown rule fails", req: dto.DateCheckRequest{Rule: "weekday"}, wantErr: true, wantField: "rule"},
		{name: "negative min year fails", req: dto.DateCheckRequest{Rule: "year", MinYear: -1}, wantErr: true, wantField: "min_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestDateCheckRequest_ToCheck(t *testing.T) {
	t.Parallel()

	req := dto.DateCheckRequest{Rule: "range", Start: "2020-01-01", End: "2021-01-01", MinYear: 1950}
	got := req.ToCheck()

	want := ports.DateCheck{Rule: ports.RuleRange, Start: "2020-01-01", End: "2021-01-01", MinYear: 1950}
	if got != want {
		t.Errorf("ToCheck() = %+v, want %+v", got, want)
	}
}

func TestDateCheckRequest_YearForms(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`{"rule":"year","year":2024}`:    "2024",
		`{"rule":"year","year":"2024"}`:  "2024",
		`{"rule":"year","year":" 19x "}`: " 19x ",
		`{"rule":"year","year":1999.5}`:  "1999.5",
		`{"rule":"year","year":null}`:    "",
		`{"rule":"year"}`:                "",
	}
	for raw, want := range tests {
		var req dto.DateCheckRequest
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			t.Errorf("%s: Unmarshal() = %v", raw, err)
			continue
		}
		if got := req.ToCheck().Year; got != want {
			t.Errorf("%s: Year = %q, want %q", raw, got, want)
		}
	}

	for _, raw := range []string{`{"year":true}`, `{"year":[2024]}`, `{"year":{"y":2024}}`} {
		var req dto.DateCheckRequest
		if err := json.Unmarshal([]byte(raw), &req); err == nil {
			t.Errorf("%s: Unmarshal() = nil, want an error", raw)
		}
	}
}

func TestIssuesRequest_Validate(t *testing.T) {
	t.Parallel()

	rec := map[string]any{"StartDate": "2020-01-01"}

	tests := []struct {
		name      string
		req       dto.IssuesRequest
		wantErr   bool
		wantField string
	}{
		{name: "single field passes", req: dto.IssuesRequest{Record: rec, Single: "ActivityDate"}},
		{name: "range passes", req: dto.IssuesRequest{Record: rec, Start: "StartDate", End: "EndDate"}},
		{name: "missing record fails", req: dto.IssuesRequest{Single: "ActivityDate"}, wantErr: true, wantField: "record"},
		{name: "no fields fails", req: dto.IssuesRequest{Record: rec}, wantErr: true, wantField: "single"},
		{name: "both shapes fail", req: dto.IssuesRequest{Record: rec, Single: "A", Start: "B", End: "C"}, wantErr: true, wantField: "single"},
		{name: "start without end fails", req: dto.IssuesRequest{Record: rec, Start: "StartDate"}, wantErr: true, wantField: "end"},
		{name: "end without start fails", req: dto.IssuesRequest{Record: rec, End: "EndDate"}, wantErr: true, wantField: "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestIssuesRequest_Spec(t *testing.T) {
	t.Parallel()

	single := dto.IssuesRequest{Single: "ActivityDate"}
	if name, ok := single.Spec().Single(); !ok || name != "ActivityDate" {
		t.Errorf("Spec().Single() = %q, %v, want ActivityDate, true", name, ok)
	}

	rng := dto.IssuesRequest{Start: "StartDate", End: "EndDate"}
	start, end, ok := rng.Spec().Range()
	if !ok || start != "StartDate" || end != "EndDate" {
		t.Errorf("Spec().Range() = %q, %q, %v", start, end, ok)
	}
}
