package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ObserveCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.ObserveCall("GetAvailLeagues", 120*time.Millisecond, nil)
	svc.ObserveCall("GetAvailLeagues", 80*time.Millisecond, nil)
	svc.ObserveCall("GetGoalsByMatch", time.Second, errors.New("connection reset"))

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.SOAPCalls.WithLabelValues("GetAvailLeagues", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.SOAPCalls.WithLabelValues("GetAvailLeagues", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SOAPCalls.WithLabelValues("GetGoalsByMatch", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(svc.SOAPCallDuration))
}

func TestService_HTTPRequestsAndStartup(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncHTTPRequests("/leagues", http.StatusOK)
	svc.IncHTTPRequests("/leagues", http.StatusBadGateway)
	svc.SetStartupTime(1.5)

	assert.Equal(t, 1.0, testutil.ToFloat64(svc.HTTPRequests.WithLabelValues("/leagues", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.HTTPRequests.WithLabelValues("/leagues", "502")))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
}

func TestNewMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.ObserveCall("GetAvailSports", 10*time.Millisecond, nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	NewMetricsHandler(reg).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `ligadb_soap_calls_total{operation="GetAvailSports",outcome="success"} 1`)
}
