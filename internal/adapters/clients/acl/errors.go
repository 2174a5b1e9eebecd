// Package acl implements the Anti-Corruption Layer between the remote faculty
// records API and the domain. Record translation lives in the acl/records
// subpackage; the per-kind endpoint table, the client and shared error
// mapping live here.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/faculty-portal/internal/domain"
)

// errorBodyLimit caps how much of a failed response is decoded.
const errorBodyLimit = 64 << 10

// remoteError is the union of the records API's failure bodies: problem
// details ("detail", "errors[].location") from the newer endpoints and
// {"message": ..., "errors": [{"field": ...}]} from the legacy ones.
type remoteError struct {
	Detail  string            `json:"detail"`
	Message string            `json:"message"`
	Errors  []remoteFieldFail `json:"errors"`
}

type remoteFieldFail struct {
	Location string `json:"location"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// name is the field the failure refers to, without the "body." prefix.
func (f remoteFieldFail) name() string {
	if f.Field != "" {
		return f.Field
	}
	return strings.TrimPrefix(f.Location, "body.")
}

// statusSentinels maps records API statuses onto domain errors. 5xx is
// handled separately.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// TranslateHTTPError converts a non-2xx records API response into a domain
// error. Field-level failures on a 400 or 422 come back as a
// *domain.ValidationError; anything else wraps the matching sentinel with the
// remote's message, falling back to the status text.
func TranslateHTTPError(resp *http.Response) error {
	body := decodeRemoteError(resp)

	sentinel, known := statusSentinels[resp.StatusCode]
	if !known && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, known = domain.ErrUnavailable, true
	}

	if sentinel == domain.ErrValidation && len(body.Errors) > 0 {
		verr := &domain.ValidationError{Fields: make(map[string]string, len(body.Errors))}
		for _, f := range body.Errors {
			verr.Fields[f.name()] = f.Message
		}
		return verr
	}

	msg := cmp.Or(body.Detail, body.Message, http.StatusText(resp.StatusCode))
	if !known {
		return fmt.Errorf("records API answered %d: %s", resp.StatusCode, msg)
	}
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// decodeRemoteError reads a JSON failure body. Non-JSON or unreadable bodies
// yield the zero value.
func decodeRemoteError(resp *http.Response) remoteError {
	var body remoteError
	if resp.Body == nil {
		return body
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return body
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, errorBodyLimit)).Decode(&body); err != nil {
		return remoteError{}
	}
	return body
}
