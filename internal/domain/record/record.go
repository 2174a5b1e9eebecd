// Package record models the faculty records whose dates are checked: awards,
// publications, events, research projects, teaching experience and outreach
// activities. A Record keeps the remote attributes as an open map so that the
// date core can read them by name; a Policy fixes, per kind, which of those
// attributes carry dates and which rule guards them.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
)

// Record is one faculty record as stored by the records API.
type Record struct {
	ID        string
	Kind      Kind
	FacultyID string
	Title     string
	Fields    map[string]any
}

// Attr returns the raw attribute value, or nil when absent.
func (r *Record) Attr(name string) any {
	if r == nil || r.Fields == nil {
		return nil
	}
	return r.Fields[name]
}

// AttrString returns the attribute as form text. Absent and null attributes
// are empty; JSON numbers are printed without a fraction when whole.
func (r *Record) AttrString(name string) string {
	return FormText(r.Attr(name))
}

// Clone returns a copy of r whose attribute map can be modified freely.
func (r *Record) Clone() *Record {
	cp := *r
	cp.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		cp.Fields[k] = v
	}
	return &cp
}

// Merge overlays patch attributes onto r. A nil value in patch clears the
// attribute, which is how an ongoing range drops its end date.
func (r *Record) Merge(patch map[string]any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		r.Fields[k] = v
	}
}

// Annotated pairs a stored record with the advisory date issues found on it.
type Annotated struct {
	Record
	Issues dates.IssueReport
}

// FormText renders an attribute value the way a form field would hold it.
func FormText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
