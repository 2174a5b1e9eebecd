// Package metrics holds the Prometheus collectors for date checking and
// serves them on the /metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors for validation and issue detection.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Verdicts          *prometheus.CounterVec
	Issues            *prometheus.CounterVec
	FlaggedRecords    *prometheus.CounterVec
	DashboardFailures *prometheus.CounterVec
	DashboardLatency  prometheus.Histogram
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers and returns the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Verdicts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "faculty_portal_date_verdicts_total",
			Help: "Date validation verdicts, labeled by record kind and verdict kind",
		}, []string{"record_kind", "verdict_kind"}),
		Issues: f.NewCounterVec(prometheus.CounterOpts{
			Name: "faculty_portal_date_issues_total",
			Help: "Advisory date issues found on stored records, labeled by record kind and issue kind",
		}, []string{"record_kind", "issue_kind"}),
		FlaggedRecords: f.NewCounterVec(prometheus.CounterOpts{
			Name: "faculty_portal_flagged_records_total",
			Help: "Stored records with at least one date issue, labeled by record kind",
		}, []string{"record_kind"}),
		DashboardFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "faculty_portal_dashboard_fetch_failures_total",
			Help: "Record kinds that could not be fetched while building a dashboard",
		}, []string{"record_kind"}),
		DashboardLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "faculty_portal_dashboard_latency_seconds",
			Help:    "Time to build a faculty dashboard in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveVerdict counts one validation outcome.
func (m *Metrics) ObserveVerdict(recordKind, verdictKind string) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(recordKind, verdictKind).Inc()
}

// ObserveIssues counts the issue kinds found on one stored record.
func (m *Metrics) ObserveIssues(recordKind string, issueKinds []string) {
	if m == nil || len(issueKinds) == 0 {
		return
	}
	m.FlaggedRecords.WithLabelValues(recordKind).Inc()
	for _, k := range issueKinds {
		m.Issues.WithLabelValues(recordKind, k).Inc()
	}
}

// ObserveDashboardFailure counts a record kind missing from a dashboard.
func (m *Metrics) ObserveDashboardFailure(recordKind string) {
	if m == nil {
		return
	}
	m.DashboardFailures.WithLabelValues(recordKind).Inc()
}

// ObserveDashboard records how long a dashboard took to build.
func (m *Metrics) ObserveDashboard(seconds float64) {
	if m == nil {
		return
	}
	m.DashboardLatency.Observe(seconds)
}

// Handler serves the collectors registered on g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
