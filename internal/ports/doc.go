// Package ports holds the seams of the faculty portal. Handlers call the
// record and date services declared here; the services reach the records API
// through the client ports, and readiness collects HealthCheckers.
package ports
