// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// RecordResponse represents a single faculty record in HTTP responses.
// DateIssues is advisory: a stored record is returned even when flagged.
type RecordResponse struct {
	ID         string              `json:"id"`
	Kind       string              `json:"kind"`
	FacultyID  string              `json:"faculty_id"`
	Title      string              `json:"title"`
	Attributes map[string]any      `json:"attributes"`
	DateIssues IssueReportResponse `json:"date_issues"`
}

// RecordListResponse represents the records of one kind in HTTP responses.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
	Flagged int              `json:"flagged"`
}

// ToRecordResponse converts an annotated domain record to an HTTP response DTO.
func ToRecordResponse(a *record.Annotated) RecordResponse {
	attrs := a.Fields
	if attrs == nil {
		attrs = map[string]any{}
	}
	return RecordResponse{
		ID:         a.ID,
		Kind:       a.Kind.String(),
		FacultyID:  a.FacultyID,
		Title:      a.Title,
		Attributes: attrs,
		DateIssues: ToIssueReportResponse(a.Issues),
	}
}

// ToRecordListResponse converts annotated domain records to an HTTP list
// response DTO.
func ToRecordListResponse(recs []record.Annotated) RecordListResponse {
	items := make([]RecordResponse, len(recs))
	flagged := 0
	for i := range recs {
		items[i] = ToRecordResponse(&recs[i])
		if recs[i].Issues.HasIssue {
			flagged++
		}
	}
	return RecordListResponse{
		Records: items,
		Count:   len(items),
		Flagged: flagged,
	}
}

// IssueDetail is one date issue with its machine-readable kind.
type IssueDetail struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// IssueReportResponse represents a date issue report. Issues carries the
// display sentences; Details the same findings with their kind and field.
type IssueReportResponse struct {
	HasIssue bool          `json:"has_issue"`
	Issues   []string      `json:"issues"`
	Details  []IssueDetail `json:"details"`
}

// ToIssueReportResponse converts a detector report to an HTTP response DTO.
func ToIssueReportResponse(r dates.IssueReport) IssueReportResponse {
	details := make([]IssueDetail, len(r.Issues))
	for i, is := range r.Issues {
		details[i] = IssueDetail{
			Kind:    is.Kind.String(),
			Field:   is.Field,
			Message: is.Message,
		}
	}
	return IssueReportResponse{
		HasIssue: r.HasIssue,
		Issues:   r.Messages(),
		Details:  details,
	}
}

// VerdictResponse represents the outcome of an ad hoc date check.
type VerdictResponse struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// ToVerdictResponse converts a validator verdict to an HTTP response DTO.
func ToVerdictResponse(v dates.Verdict) VerdictResponse {
	if v.Valid {
		return VerdictResponse{Valid: true}
	}
	return VerdictResponse{
		Error:   v.Message(),
		Kind:    v.Kind.String(),
		Subject: v.Subject.String(),
	}
}

// KindSummaryResponse represents the dashboard figures for one record kind.
type KindSummaryResponse struct {
	Kind    string `json:"kind"`
	Total   int    `json:"total"`
	Flagged int    `json:"flagged"`
	Error   string `json:"error,omitempty"`
}

// DashboardResponse represents a faculty member's date issue dashboard.
type DashboardResponse struct {
	FacultyID string                `json:"faculty_id"`
	Kinds     []KindSummaryResponse `json:"kinds"`
	Warnings  []string              `json:"warnings"`
}

// ToDashboardResponse converts a ports.Dashboard to an HTTP response DTO.
// Per-kind fetch failures are reported as an error string on that kind.
func ToDashboardResponse(d *ports.Dashboard) DashboardResponse {
	kinds := make([]KindSummaryResponse, len(d.Kinds))
	for i, k := range d.Kinds {
		kinds[i] = KindSummaryResponse{
			Kind:    k.Kind.String(),
			Total:   k.Total,
			Flagged: k.Flagged,
		}
		if k.Err != nil {
			kinds[i].Error = k.Err.Error()
		}
	}

	warnings := d.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return DashboardResponse{
		FacultyID: d.FacultyID,
		Kinds:     kinds,
		Warnings:  warnings,
	}
}
