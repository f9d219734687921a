package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mauv0809/ligadb/internal/config"
	"github.com/mauv0809/ligadb/internal/metrics"
	"github.com/mauv0809/ligadb/sportsdata"
)

type Server struct {
	Sportsdata     sportsdata.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *mux.Router
	handler        http.Handler
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
