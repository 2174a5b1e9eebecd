// Package records translates between the records API's JSON objects and
// domain records.
package records

// RecordDTO is one record object as the records API sends it. Reads carry
// PascalCase attribute names (AwardID, StartDate, FacultyID); numbers arrive
// as json.Number when decoded by the ACL requester.
type RecordDTO map[string]any

// WriteRequestDTO is the body of a create or update call.
type WriteRequestDTO map[string]any

// BodyStyle captures how a record kind's write endpoints expect the body.
type BodyStyle struct {
	// FacultyKey, when set, names the body attribute that carries the
	// owning faculty ID ("facultyId").
	FacultyKey string
	// CamelCase lowers the first letter of every attribute name
	// (PublicationYear -> publicationYear).
	CamelCase bool
}
