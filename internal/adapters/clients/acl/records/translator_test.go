package records

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
)

func mustPolicy(t *testing.T, k record.Kind) record.Policy {
	t.Helper()
	p, err := record.PolicyFor(k)
	if err != nil {
		t.Fatalf("PolicyFor(%q) error = %v", k, err)
	}
	return p
}

func TestToDomainRecord_FieldMapping(t *testing.T) {
	t.Parallel()

	dto := RecordDTO{
		"ProjectID":     json.Number("17"),
		"FacultyID":     json.Number("4"),
		"Title":         "Soil microbiome survey",
		"StartDate":     "2023-01-10T00:00:00.000Z",
		"EndDate":       nil,
		"FundingAgency": "DST",
	}

	got := ToDomainRecord(mustPolicy(t, record.KindResearch), dto)

	if got.Kind != record.KindResearch {
		t.Errorf("Kind = %q, want %q", got.Kind, record.KindResearch)
	}
	if got.ID != "17" {
		t.Errorf("ID = %q, want %q", got.ID, "17")
	}
	if got.FacultyID != "4" {
		t.Errorf("FacultyID = %q, want %q", got.FacultyID, "4")
	}
	if got.Title != "Soil microbiome survey" {
		t.Errorf("Title = %q, want %q", got.Title, "Soil microbiome survey")
	}
	if got.AttrString("StartDate") != "2023-01-10T00:00:00.000Z" {
		t.Errorf("StartDate = %q, want stored timestamp kept", got.AttrString("StartDate"))
	}
	if got.AttrString("FundingAgency") != "DST" {
		t.Errorf("FundingAgency = %q, want %q", got.AttrString("FundingAgency"), "DST")
	}
}

func TestToDomainRecord_DoesNotAliasDTO(t *testing.T) {
	t.Parallel()

	dto := RecordDTO{"AwardID": json.Number("1"), "AwardName": "Best paper"}
	got := ToDomainRecord(mustPolicy(t, record.KindAward), dto)

	got.Fields["AwardName"] = "changed"
	if dto["AwardName"] != "Best paper" {
		t.Errorf("dto[AwardName] = %v, want original value", dto["AwardName"])
	}
}

func TestToDomainRecord_TitleFieldPerKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind record.Kind
		dto  RecordDTO
		want string
	}{
		{record.KindAward, RecordDTO{"AwardName": "Young scientist"}, "Young scientist"},
		{record.KindTeaching, RecordDTO{"OrganizationName": "IIT Madras"}, "IIT Madras"},
		{record.KindOutreach, RecordDTO{"ActivityTitle": "School visit"}, "School visit"},
		{record.KindPublication, RecordDTO{"Title": "On dates"}, "On dates"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			got := ToDomainRecord(mustPolicy(t, tt.kind), tt.dto)
			if got.Title != tt.want {
				t.Errorf("Title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestToDomainRecordList(t *testing.T) {
	t.Parallel()

	got := ToDomainRecordList(mustPolicy(t, record.KindEvent), []RecordDTO{
		{"EventOrganisedID": json.Number("1")},
		{"EventOrganisedID": json.Number("2")},
	})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("IDs = %q, %q, want 1, 2", got[0].ID, got[1].ID)
	}
}

func TestToDomainRecordList_Empty(t *testing.T) {
	t.Parallel()

	got := ToDomainRecordList(mustPolicy(t, record.KindEvent), nil)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestToWriteRequest_RangeKind(t *testing.T) {
	t.Parallel()

	rec := &record.Record{
		ID:        "17",
		Kind:      record.KindResearch,
		FacultyID: "4",
		Title:     "Renamed survey",
		Fields: map[string]any{
			"ProjectID": "17",
			"FacultyID": "4",
			"Title":     "Soil microbiome survey",
			"StartDate": "2023-01-10T00:00:00.000Z",
			"EndDate":   "",
			"Budget":    json.Number("50000"),
		},
	}

	got := ToWriteRequest(mustPolicy(t, record.KindResearch), rec, BodyStyle{})

	if _, ok := got["ProjectID"]; ok {
		t.Error("body carries ProjectID, want it dropped")
	}
	if _, ok := got["FacultyID"]; ok {
		t.Error("body carries FacultyID, want it dropped")
	}
	if got["Title"] != "Renamed survey" {
		t.Errorf("Title = %v, want record title", got["Title"])
	}
	if got["StartDate"] != "2023-01-10" {
		t.Errorf("StartDate = %v, want %q", got["StartDate"], "2023-01-10")
	}
	if v, ok := got["EndDate"]; !ok || v != nil {
		t.Errorf("EndDate = %v (present %v), want explicit null", v, ok)
	}
	if got["Budget"] != json.Number("50000") {
		t.Errorf("Budget = %v, want 50000", got["Budget"])
	}
	if rec.Fields["EndDate"] != "" {
		t.Error("ToWriteRequest modified the record's attributes")
	}
}

func TestToWriteRequest_FacultyKey(t *testing.T) {
	t.Parallel()

	rec := &record.Record{
		Kind:      record.KindAward,
		FacultyID: "4",
		Fields:    map[string]any{"AwardName": "Best paper", "YearAwarded": "2021"},
	}

	got := ToWriteRequest(mustPolicy(t, record.KindAward), rec, BodyStyle{FacultyKey: "facultyId"})

	if got["facultyId"] != "4" {
		t.Errorf("facultyId = %v, want %q", got["facultyId"], "4")
	}
	if got["YearAwarded"] != "2021" {
		t.Errorf("YearAwarded = %v, want %q", got["YearAwarded"], "2021")
	}
}

func TestToWriteRequest_CamelCase(t *testing.T) {
	t.Parallel()

	rec := &record.Record{
		Kind:      record.KindPublication,
		FacultyID: "4",
		Title:     "On dates",
		Fields: map[string]any{
			"PublicationYear": "2019-01-01T00:00:00.000Z",
			"TypeID":          "journal",
		},
	}

	got := ToWriteRequest(mustPolicy(t, record.KindPublication), rec,
		BodyStyle{FacultyKey: "facultyId", CamelCase: true})

	want := map[string]any{
		"title":           "On dates",
		"publicationYear": "2019-01-01",
		"typeID":          "journal",
		"facultyId":       "4",
	}
	if len(got) != len(want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"2024-06-15", "2024-06-15"},
		{"2024-06-15T18:30:00.000Z", "2024-06-15"},
		{"2024", "2024"},
		{"June 2024", "June 2024"},
	}

	for _, tt := range tests {
		if got := dateOnly(tt.in); got != tt.want {
			t.Errorf("dateOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
