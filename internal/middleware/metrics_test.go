package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/metrics-test/{order_number}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "order_number") == "000000" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"status":"Pending"}`))
	})

	for _, target := range []string{"/metrics-test/123456", "/metrics-test/654321", "/metrics-test/000000"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	route := "/metrics-test/{order_number}"
	assert.Equal(t, 2.0, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, route, "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, route, "4xx")))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpInFlight))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusCreated))
	assert.Equal(t, "4xx", statusClass(http.StatusConflict))
	assert.Equal(t, "5xx", statusClass(http.StatusBadGateway))
}
