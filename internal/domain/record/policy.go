package record

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/faculty-portal/internal/domain"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
)

// FacultyField is the attribute linking every record to its faculty member.
const FacultyField = "FacultyID"

type dateRule uint8

const (
	ruleYear dateRule = iota + 1
	ruleSingle
	ruleRange
)

// Policy describes how one record kind is stored remotely and which date
// rule guards it.
type Policy struct {
	Kind       Kind
	BasePath   string
	IDField    string
	TitleField string

	rule      dateRule
	dateField string
	endField  string
	warning   string
}

var policies = map[Kind]Policy{
	KindAward: {
		Kind: KindAward, BasePath: "/faculty/awards", IDField: "AwardID", TitleField: "AwardName",
		rule: ruleYear, dateField: "YearAwarded",
		warning: "award(s) have unrealistic years",
	},
	KindPublication: {
		Kind: KindPublication, BasePath: "/publications", IDField: "PublicationID", TitleField: "Title",
		rule: ruleYear, dateField: "PublicationYear",
		warning: "publication(s) have unrealistic years",
	},
	KindEvent: {
		Kind: KindEvent, BasePath: "/faculty/events", IDField: "EventOrganisedID", TitleField: "Title",
		rule: ruleRange, dateField: "StartDate", endField: "EndDate",
		warning: "event(s) have future or invalid dates",
	},
	KindResearch: {
		Kind: KindResearch, BasePath: "/faculty/research", IDField: "ProjectID", TitleField: "Title",
		rule: ruleRange, dateField: "StartDate", endField: "EndDate",
		warning: "research project(s) have future or invalid dates",
	},
	KindTeaching: {
		Kind: KindTeaching, BasePath: "/faculty/teaching", IDField: "ExperienceID", TitleField: "OrganizationName",
		rule: ruleRange, dateField: "StartDate", endField: "EndDate",
		warning: "teaching record(s) have future or invalid dates",
	},
	KindOutreach: {
		Kind: KindOutreach, BasePath: "/faculty/outreach", IDField: "ActivityID", TitleField: "ActivityTitle",
		rule: ruleSingle, dateField: "ActivityDate",
		warning: "outreach activity(ies) have future dates",
	},
}

// PolicyFor returns the policy of kind k.
func PolicyFor(k Kind) (Policy, error) {
	p, ok := policies[k]
	if !ok {
		return Policy{}, fmt.Errorf("%w: unknown record kind %q", domain.ErrNotFound, k)
	}
	return p, nil
}

// DateFields returns the attribute names the policy reads dates from.
func (p Policy) DateFields() []string {
	if p.rule == ruleRange {
		return []string{p.dateField, p.endField}
	}
	return []string{p.dateField}
}

// Spec returns the detector field spec for range and single-date kinds. Year
// kinds return the zero spec.
func (p Policy) Spec() dates.FieldSpec {
	switch p.rule {
	case ruleRange:
		return dates.RangeFields(p.dateField, p.endField)
	case ruleSingle:
		return dates.SingleField(p.dateField)
	default:
		return dates.FieldSpec{}
	}
}

// Warning renders the dashboard sentence for n flagged records.
func (p Policy) Warning(n int) string {
	return fmt.Sprintf("%d %s", n, p.warning)
}

// Check runs the submission date rule against rec and returns the first
// failing verdict. Range kinds must first have a realistic start date; the
// range itself may then be ongoing.
func (p Policy) Check(v *dates.Validator, rec *Record) dates.Verdict {
	switch p.rule {
	case ruleYear:
		return v.IsRealisticYear(rec.AttrString(p.dateField))
	case ruleSingle:
		return v.IsRealisticDate(rec.AttrString(p.dateField))
	default:
		start := rec.AttrString(p.dateField)
		if verdict := v.IsRealisticDate(start); !verdict.Valid {
			return verdict
		}
		return v.IsStartBeforeEndOrOngoing(start, rec.AttrString(p.endField))
	}
}

// Validate gates a submission. It returns a *domain.ValidationError when the
// title is blank or the date rule fails, or nil.
func (p Policy) Validate(v *dates.Validator, rec *Record) error {
	fields := make(map[string]string)

	if strings.TrimSpace(rec.Title) == "" && strings.TrimSpace(rec.AttrString(p.TitleField)) == "" {
		fields["title"] = domain.MsgRequired
	}
	if verdict := p.Check(v, rec); !verdict.Valid {
		fields[p.FieldKey(verdict)] = verdict.Message()
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Inspect reports advisory issues on a stored record. Year kinds surface a
// failed year verdict as a single issue; other kinds go through the detector.
func (p Policy) Inspect(d *dates.Detector, v *dates.Validator, rec *Record) dates.IssueReport {
	if p.rule != ruleYear {
		return d.GetDateIssues(rec.Fields, p.Spec())
	}

	report := dates.IssueReport{Issues: []dates.Issue{}}
	if verdict := v.IsRealisticYear(rec.AttrString(p.dateField)); !verdict.Valid {
		report.HasIssue = true
		report.Issues = append(report.Issues, dates.Issue{
			Kind:    verdict.Kind,
			Field:   p.dateField,
			Message: verdict.Message(),
		})
	}
	return report
}

// FieldKey names the ValidationError field for a failed verdict. On range
// kinds a plain date verdict concerns the start date, and range-level
// failures are reported against the end date.
func (p Policy) FieldKey(v dates.Verdict) string {
	switch {
	case p.rule == ruleRange && v.Subject == dates.SubjectDate:
		return dates.SubjectStart.String()
	case v.Subject == dates.SubjectRange:
		return dates.SubjectEnd.String()
	default:
		return v.Subject.String()
	}
}
