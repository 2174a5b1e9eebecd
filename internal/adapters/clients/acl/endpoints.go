package acl

import (
	"net/url"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/clients/acl/records"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
)

const facultyBodyKey = "facultyId"

// endpoint is the remote path layout of one record kind. Paths are
// relative to the client base URL.
type endpoint struct {
	policy record.Policy

	// list and single override the usual {base}/{facultyID} and
	// {base}/single/{id} layouts.
	list   string
	single string
	// createUnderFaculty posts to {base}/{facultyID} instead of {base}.
	createUnderFaculty bool
	style              records.BodyStyle
}

var endpoints = map[record.Kind]endpoint{
	record.KindAward:    {style: records.BodyStyle{FacultyKey: facultyBodyKey}},
	record.KindEvent:    {style: records.BodyStyle{FacultyKey: facultyBodyKey}},
	record.KindOutreach: {style: records.BodyStyle{FacultyKey: facultyBodyKey}},
	record.KindResearch: {createUnderFaculty: true},
	record.KindTeaching: {createUnderFaculty: true},
	record.KindPublication: {
		list:   "/publications/faculty",
		single: "/publications",
		style:  records.BodyStyle{FacultyKey: facultyBodyKey, CamelCase: true},
	},
}

// endpointFor returns the layout of kind k. Unknown kinds wrap
// domain.ErrNotFound.
func endpointFor(k record.Kind) (endpoint, error) {
	p, err := record.PolicyFor(k)
	if err != nil {
		return endpoint{}, err
	}
	e := endpoints[k]
	e.policy = p
	if e.list == "" {
		e.list = p.BasePath
	}
	if e.single == "" {
		e.single = p.BasePath + "/single"
	}
	return e, nil
}

func (e endpoint) listPath(facultyID string) string {
	return e.list + "/" + url.PathEscape(facultyID)
}

func (e endpoint) singlePath(id string) string {
	return e.single + "/" + url.PathEscape(id)
}

func (e endpoint) createPath(facultyID string) string {
	if e.createUnderFaculty {
		return e.policy.BasePath + "/" + url.PathEscape(facultyID)
	}
	return e.policy.BasePath
}

func (e endpoint) itemPath(id string) string {
	return e.policy.BasePath + "/" + url.PathEscape(id)
}
