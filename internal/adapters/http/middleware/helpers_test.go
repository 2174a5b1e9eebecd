package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/platform/config"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/httpclient"
)

// capture returns a debug-level JSON logger and the buffer it writes to.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// records decodes every JSON log line in buf.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("log line %q: %v", sc.Text(), err)
		}
		out = append(out, rec)
	}
	return out
}

// find returns the first log record with msg, failing the test if none.
func find(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	for _, rec := range records(t, buf) {
		if rec["msg"] == msg {
			return rec
		}
	}
	t.Fatalf("no %q record in:\n%s", msg, buf)
	return nil
}

// newRecordsClient is a single-attempt records API client for baseURL.
func newRecordsClient(baseURL string) *httpclient.Client {
	return httpclient.New(&config.ClientConfig{
		BaseURL:        baseURL,
		Timeout:        5 * time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, "records-api", nil, discardLogger())
}
