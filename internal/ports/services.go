package ports

import (
	"context"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
)

// RecordService defines the service port for faculty record operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Writes are gated by the kind's date rule; reads are annotated with advisory
// date issues but never rejected.
type RecordService interface {
	// ListRecords returns a faculty member's records of one kind, each
	// annotated with its date issues.
	ListRecords(ctx context.Context, kind record.Kind, facultyID string) ([]record.Annotated, error)

	// GetRecord returns a single annotated record.
	// Returns domain.ErrNotFound if the record does not exist.
	GetRecord(ctx context.Context, kind record.Kind, id string) (*record.Annotated, error)

	// CreateRecord validates and creates a record.
	// Returns domain.ErrValidation without contacting the records API when
	// the record fails its date rule.
	CreateRecord(ctx context.Context, rec *record.Record) (*record.Annotated, error)

	// UpdateRecord overlays patch onto the stored record, validates the
	// result and replaces it.
	// Returns domain.ErrNotFound if the record does not exist.
	// Returns domain.ErrValidation if the merged record fails its date rule.
	UpdateRecord(ctx context.Context, kind record.Kind, id string, patch map[string]any) (*record.Annotated, error)

	// DeleteRecord deletes a record.
	// Returns domain.ErrNotFound if the record does not exist.
	DeleteRecord(ctx context.Context, kind record.Kind, id string) error

	// Dashboard summarizes date issues across every record kind of a faculty
	// member. Uses partial success semantics: a kind whose records could not
	// be fetched is reported in its summary and does not fail the dashboard.
	Dashboard(ctx context.Context, facultyID string) (*Dashboard, error)
}

// KindSummary holds the dashboard figures for one record kind.
type KindSummary struct {
	Kind    record.Kind
	Total   int
	Flagged int
	Err     error
}

// Dashboard holds the per-kind summaries and the warning sentences to show.
type Dashboard struct {
	FacultyID string
	Kinds     []KindSummary
	Warnings  []string
}

// DateRule selects which validator a DateCheck runs.
type DateRule string

const (
	RuleDate           DateRule = "date"
	RuleYear           DateRule = "year"
	RuleRange          DateRule = "range"
	RuleRangeOrOngoing DateRule = "range_or_ongoing"
)

// IsValid returns true if the rule is one of the defined constants.
func (r DateRule) IsValid() bool {
	switch r {
	case RuleDate, RuleYear, RuleRange, RuleRangeOrOngoing:
		return true
	default:
		return false
	}
}

// DateCheck is a single ad hoc validation request. Only the values the rule
// reads need to be set. A zero MinYear means the configured default.
type DateCheck struct {
	Rule    DateRule
	Date    string
	Year    string
	Start   string
	End     string
	MinYear int
}

// DateValidationService exposes the date core without a record around it.
// Implemented by the application layer; called by inbound adapters.
type DateValidationService interface {
	// Validate runs the rule named by check. A failing verdict is a normal
	// result, not an error.
	// Returns domain.ErrValidation if the rule is unknown.
	Validate(ctx context.Context, check DateCheck) (dates.Verdict, error)

	// Issues inspects an arbitrary attribute map.
	// Returns domain.ErrValidation if spec names no fields.
	Issues(ctx context.Context, rec map[string]any, spec dates.FieldSpec) (dates.IssueReport, error)
}
