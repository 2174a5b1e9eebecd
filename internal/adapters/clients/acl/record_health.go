package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name the underlying
// [httpclient.Client] reports in traces and metrics.
func (c *RecordClient) Name() string {
	return c.req.client.Name()
}

// HealthCheck reports the records API's availability from the circuit
// breaker state. No network call is made.
//
// This reports downstream status, not service readiness: the date endpoints
// keep working while the records API is down.
func (c *RecordClient) HealthCheck(ctx context.Context) error {
	return c.req.client.HealthCheck(ctx)
}
