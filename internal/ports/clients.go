package ports

import (
	"context"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
)

// RecordClient defines the client port for the downstream records API.
// Implemented by the ACL adapter; called by the application layer.
// Every record kind is served by the same five endpoints under the kind's
// base path; the ACL resolves paths and ID attributes from record.Policy.
type RecordClient interface {
	// ListRecords returns the records of one kind owned by a faculty member.
	ListRecords(ctx context.Context, kind record.Kind, facultyID string) ([]record.Record, error)

	// GetRecord returns a single record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	GetRecord(ctx context.Context, kind record.Kind, id string) (*record.Record, error)

	// CreateRecord creates a record and returns it with server-assigned fields.
	CreateRecord(ctx context.Context, rec *record.Record) (*record.Record, error)

	// UpdateRecord replaces an existing record and returns the stored result.
	// Returns domain.ErrNotFound if the record does not exist.
	UpdateRecord(ctx context.Context, id string, rec *record.Record) (*record.Record, error)

	// DeleteRecord deletes a record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	DeleteRecord(ctx context.Context, kind record.Kind, id string) error
}
