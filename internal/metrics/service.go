package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SOAPCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ligadb_soap_calls_total",
			Help: "The total number of remote operations called, by outcome.",
		}, []string{"operation", "outcome"}),
		SOAPCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ligadb_soap_call_duration_seconds",
			Help:    "The round trip duration of remote operations.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ligadb_http_requests_total",
			Help: "The total number of gateway requests served, by route and status code.",
		}, []string{"route", "code"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ligadb_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SOAPCalls,
		s.SOAPCallDuration,
		s.HTTPRequests,
		s.StartupTimeSeconds,
	)

	return s
}

// ObserveCall records one remote operation. It satisfies soap.Observer.
func (s *Service) ObserveCall(operation string, duration time.Duration, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	s.SOAPCalls.WithLabelValues(operation, outcome).Inc()
	s.SOAPCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (s *Service) IncHTTPRequests(route string, status int) {
	s.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
