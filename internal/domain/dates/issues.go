package dates

import (
	"fmt"
	"time"
)

type specShape uint8

const (
	shapeNone specShape = iota
	shapeSingle
	shapeRange
)

// FieldSpec names the record attributes that hold dates. Build one with
// SingleField or RangeFields; the zero value checks nothing.
type FieldSpec struct {
	shape  specShape
	single string
	start  string
	end    string
}

// SingleField describes a record with one date attribute.
func SingleField(name string) FieldSpec {
	return FieldSpec{shape: shapeSingle, single: name}
}

// RangeFields describes a record with a start and an end date attribute.
func RangeFields(start, end string) FieldSpec {
	return FieldSpec{shape: shapeRange, start: start, end: end}
}

// IsZero reports whether f names no fields.
func (f FieldSpec) IsZero() bool {
	return f.shape == shapeNone
}

// Single returns the single-date attribute name, if this is a single spec.
func (f FieldSpec) Single() (string, bool) {
	return f.single, f.shape == shapeSingle
}

// Range returns the start and end attribute names, if this is a range spec.
func (f FieldSpec) Range() (start, end string, ok bool) {
	return f.start, f.end, f.shape == shapeRange
}

// Issue is one advisory finding on a stored record.
type Issue struct {
	Kind    Kind
	Field   string
	Message string
}

// IssueReport lists the findings for one record in the order they were
// checked: single date, start, end, then range ordering.
type IssueReport struct {
	HasIssue bool
	Issues   []Issue
}

// Messages returns the issue descriptions in order.
func (r IssueReport) Messages() []string {
	out := make([]string, 0, len(r.Issues))
	for _, is := range r.Issues {
		out = append(out, is.Message)
	}
	return out
}

func (r *IssueReport) add(kind Kind, field, msg string) {
	r.Issues = append(r.Issues, Issue{Kind: kind, Field: field, Message: msg})
	r.HasIssue = true
}

// Detector flags date problems in records that were already persisted. It
// never rejects or modifies a record, and it never fails: values that do not
// parse are treated as absent.
type Detector struct {
	clock Clock
	loc   *time.Location
}

// NewDetector creates a Detector that reads "today" from clock. A nil clock
// falls back to SystemClock. WithMinYear has no effect on a Detector.
func NewDetector(clock Clock, opts ...Option) *Detector {
	if clock == nil {
		clock = SystemClock()
	}
	s := newSettings(opts)
	return &Detector{clock: clock, loc: s.loc}
}

// WithClock returns a copy of d that reads "today" from clock.
func (d *Detector) WithClock(clock Clock) *Detector {
	cp := *d
	if clock != nil {
		cp.clock = clock
	}
	return &cp
}

// GetDateIssues inspects the attributes of rec named by spec.
func (d *Detector) GetDateIssues(rec map[string]any, spec FieldSpec) IssueReport {
	report := IssueReport{Issues: []Issue{}}
	today := Today(d.clock, d.loc)

	if name, ok := spec.Single(); ok {
		if date, ok := d.dateAt(rec, name); ok && date.After(today) {
			report.add(KindFutureDate, name, fmt.Sprintf("%s is in the future", name))
		}
		return report
	}

	startName, endName, ok := spec.Range()
	if !ok {
		return report
	}

	start, hasStart := d.dateAt(rec, startName)
	end, hasEnd := d.dateAt(rec, endName)

	if hasStart && start.After(today) {
		report.add(KindFutureDate, startName, "Start date is in the future")
	}
	if hasEnd && end.After(today) {
		report.add(KindFutureDate, endName, "End date is in the future")
	}
	if hasStart && hasEnd && end.Before(start) {
		report.add(KindInvalidOrdering, endName, "End date is before start date")
	}

	return report
}

// dateAt reads and normalizes a date attribute. Strings and time values are
// understood; anything else, including an unparsable string, is absent.
func (d *Detector) dateAt(rec map[string]any, name string) (time.Time, bool) {
	if name == "" {
		return time.Time{}, false
	}

	switch v := rec[name].(type) {
	case string:
		date, err := Normalize(v, d.loc)
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return midnight(v, d.loc), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return midnight(*v, d.loc), true
	default:
		return time.Time{}, false
	}
}
