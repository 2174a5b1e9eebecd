package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/httpclient"
)

// Requester speaks JSON to the records API: it encodes the outbound body,
// sends it through the resilient client, turns non-2xx answers into domain
// errors and decodes the rest.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client. A nil logger discards.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do calls method on path, relative to the client's base URL. in is sent as
// JSON for POST and PUT; out, when non-nil, receives the decoded 2xx body.
// Numbers decode as json.Number so record IDs keep their exact text. An
// empty or 204 body leaves out untouched.
func (r *Requester) Do(ctx context.Context, method, path string, in, out any) error {
	req, err := r.build(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "closing records API body", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode/100 != 2:
		// Also covers retries exhausted on a retryable status, where the
		// last response comes back next to err.
		r.logger.WarnContext(ctx, "records API refused request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "records API unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

func (r *Requester) build(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader = http.NoBody
	switch method {
	case http.MethodGet, http.MethodDelete:
		if in != nil {
			return nil, fmt.Errorf("%s %s takes no request body", method, path)
		}
	case http.MethodPost, http.MethodPut:
		if in != nil {
			raw, err := json.Marshal(in)
			if err != nil {
				return nil, fmt.Errorf("encoding %s %s: %w", method, path, err)
			}
			body = bytes.NewReader(raw)
		}
	default:
		return nil, fmt.Errorf("unsupported HTTP method %s", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != http.NoBody {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
