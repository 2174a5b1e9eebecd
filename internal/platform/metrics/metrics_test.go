package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveVerdict(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.ObserveVerdict("research", "future_date")
	m.ObserveVerdict("research", "future_date")
	m.ObserveVerdict("award", "none")

	if got := testutil.ToFloat64(m.Verdicts.WithLabelValues("research", "future_date")); got != 2 {
		t.Errorf("research/future_date = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Verdicts.WithLabelValues("award", "none")); got != 1 {
		t.Errorf("award/none = %v, want 1", got)
	}
}

func TestObserveIssues(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.ObserveIssues("event", []string{"future_date", "invalid_ordering"})
	m.ObserveIssues("event", nil)

	if got := testutil.ToFloat64(m.FlaggedRecords.WithLabelValues("event")); got != 1 {
		t.Errorf("flagged events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Issues.WithLabelValues("event", "invalid_ordering")); got != 1 {
		t.Errorf("invalid_ordering issues = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()
	var m *Metrics

	m.ObserveVerdict("award", "none")
	m.ObserveIssues("award", []string{"out_of_range"})
	m.ObserveDashboardFailure("award")
	m.ObserveDashboard(0.1)
}

func TestHandler(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	m := New(reg)
	m.ObserveDashboardFailure("teaching")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `faculty_portal_dashboard_fetch_failures_total{record_kind="teaching"} 1`) {
		t.Errorf("body missing dashboard failure counter:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("body missing Go runtime collector")
	}
}
