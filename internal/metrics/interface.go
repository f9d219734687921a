package metrics

import "time"

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	ObserveCall(operation string, duration time.Duration, err error)
	IncHTTPRequests(route string, status int)
	SetStartupTime(duration float64)
}
