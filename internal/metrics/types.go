package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	SOAPCalls          *prometheus.CounterVec
	SOAPCallDuration   *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	StartupTimeSeconds prometheus.Gauge
}

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)
