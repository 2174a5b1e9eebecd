package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/faculty-portal/internal/domain"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
)

// CreateRecordRequest represents the JSON body for creating a faculty record.
// Attributes use the records API's names (StartDate, YearAwarded, ...).
type CreateRecordRequest struct {
	FacultyID  string         `json:"faculty_id"`
	Title      string         `json:"title"`
	Attributes map[string]any `json:"attributes"`
}

// Validate checks that required fields are present. Date rules are applied
// by the service, which knows the record kind.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateRecordRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.FacultyID) == "" {
		fields["faculty_id"] = msgRequired
	}
	if r.Attributes == nil {
		fields["attributes"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToRecord maps the request onto a domain record of kind k.
func (r *CreateRecordRequest) ToRecord(k record.Kind) *record.Record {
	attrs := make(map[string]any, len(r.Attributes))
	for name, v := range r.Attributes {
		attrs[name] = v
	}
	return &record.Record{
		Kind:      k,
		FacultyID: strings.TrimSpace(r.FacultyID),
		Title:     strings.TrimSpace(r.Title),
		Fields:    attrs,
	}
}

// UpdateRecordRequest represents the JSON body for updating a record.
// Attributes present in the body replace the stored ones; a null attribute
// clears it. Absent attributes are left unchanged.
type UpdateRecordRequest struct {
	Title      *string        `json:"title,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Validate checks that the body changes something and that a provided title
// is not blank. Returns a *domain.ValidationError if any checks fail.
func (r *UpdateRecordRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Title == nil && len(r.Attributes) == 0 {
		fields["attributes"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch flattens the request into an attribute patch for kind's policy.
// A title is written to the kind's title attribute.
func (r *UpdateRecordRequest) ToPatch(p record.Policy) map[string]any {
	patch := make(map[string]any, len(r.Attributes)+1)
	for name, v := range r.Attributes {
		patch[name] = v
	}
	if r.Title != nil {
		patch[p.TitleField] = strings.TrimSpace(*r.Title)
	}
	return patch
}

// DateCheckRequest represents the JSON body of POST /api/v1/dates/validate.
type DateCheckRequest struct {
	Rule    string    `json:"rule"`
	Date    string    `json:"date,omitempty"`
	Year    YearValue `json:"year,omitempty"`
	Start   string    `json:"start,omitempty"`
	End     string    `json:"end,omitempty"`
	MinYear int       `json:"min_year,omitempty"`
}

// Validate checks the rule name and minimum year. Missing dates are not an
// error here: they produce a failing verdict.
func (r *DateCheckRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(r.Rule) == "":
		fields["rule"] = msgRequired
	case !ports.DateRule(r.Rule).IsValid():
		fields["rule"] = fmt.Sprintf("invalid: %q", r.Rule)
	}
	if r.MinYear < 0 {
		fields["min_year"] = fmt.Sprintf("must not be negative, got %d", r.MinYear)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToCheck maps the request onto a service DateCheck.
func (r *DateCheckRequest) ToCheck() ports.DateCheck {
	return ports.DateCheck{
		Rule:    ports.DateRule(r.Rule),
		Date:    r.Date,
		Year:    string(r.Year),
		Start:   r.Start,
		End:     r.End,
		MinYear: r.MinYear,
	}
}

// YearValue is a year as sent by a form: a JSON number or a numeric string.
// Either way it is kept as text so the validator reports malformed input.
type YearValue string

var errYearType = errors.New("year must be a number or a string")

// UnmarshalJSON accepts a number, a string or null.
func (y *YearValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v.(type) {
	case nil, string, json.Number:
		*y = YearValue(record.FormText(v))
		return nil
	default:
		return errYearType
	}
}

// IssuesRequest represents the JSON body of POST /api/v1/dates/issues. Name
// either a single date field, or a start and end field.
type IssuesRequest struct {
	Record map[string]any `json:"record"`
	Single string         `json:"single,omitempty"`
	Start  string         `json:"start,omitempty"`
	End    string         `json:"end,omitempty"`
}

// Validate checks that a record is present and exactly one field shape is
// named. Returns a *domain.ValidationError if any checks fail.
func (r *IssuesRequest) Validate() error {
	fields := make(map[string]string)

	if r.Record == nil {
		fields["record"] = msgRequired
	}

	hasRange := r.Start != "" || r.End != ""
	switch {
	case r.Single != "" && hasRange:
		fields["single"] = "must not be combined with start/end"
	case r.Single == "" && !hasRange:
		fields["single"] = "single or start and end is required"
	case hasRange && r.Start == "":
		fields["start"] = msgRequired
	case hasRange && r.End == "":
		fields["end"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Spec returns the detector field spec the request names.
func (r *IssuesRequest) Spec() dates.FieldSpec {
	if r.Single != "" {
		return dates.SingleField(r.Single)
	}
	return dates.RangeFields(r.Start, r.End)
}
