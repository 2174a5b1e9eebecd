package records

import (
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
)

// ToDomainRecord converts a downstream record object into a domain Record of
// the policy's kind. The ID, owner and title are lifted out of the attribute
// map but also remain in it.
func ToDomainRecord(p record.Policy, dto RecordDTO) record.Record {
	rec := record.Record{
		Kind:   p.Kind,
		Fields: maps.Clone(map[string]any(dto)),
	}
	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	rec.ID = rec.AttrString(p.IDField)
	rec.FacultyID = rec.AttrString(record.FacultyField)
	rec.Title = rec.AttrString(p.TitleField)
	return rec
}

// ToDomainRecordList converts a downstream list response.
func ToDomainRecordList(p record.Policy, dtos []RecordDTO) []record.Record {
	out := make([]record.Record, len(dtos))
	for i, dto := range dtos {
		out[i] = ToDomainRecord(p, dto)
	}
	return out
}

// ToWriteRequest builds the create/update body for rec.
//
// The ID and owner attributes are dropped (they travel in the URL or under
// style.FacultyKey). Date attributes are sent as plain YYYY-MM-DD; a blank
// date is sent as null, which is how an ongoing range is stored.
func ToWriteRequest(p record.Policy, rec *record.Record, style BodyStyle) WriteRequestDTO {
	body := make(map[string]any, len(rec.Fields)+2)
	for k, v := range rec.Fields {
		if k == p.IDField || k == record.FacultyField {
			continue
		}
		body[k] = v
	}

	if strings.TrimSpace(rec.Title) != "" {
		body[p.TitleField] = rec.Title
	}

	for _, field := range p.DateFields() {
		s, ok := body[field].(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(s) == "" {
			body[field] = nil
		} else {
			body[field] = dateOnly(s)
		}
	}

	if style.FacultyKey != "" && rec.FacultyID != "" {
		body[style.FacultyKey] = rec.FacultyID
	}

	if !style.CamelCase {
		return body
	}
	camel := make(WriteRequestDTO, len(body))
	for k, v := range body {
		camel[lowerFirst(k)] = v
	}
	return camel
}

// dateOnly trims a stored timestamp ("2024-03-01T00:00:00.000Z") to its
// calendar date. Other values are returned unchanged.
func dateOnly(s string) string {
	if d, _, ok := strings.Cut(s, "T"); ok && len(d) == len("2006-01-02") {
		return d
	}
	return s
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
