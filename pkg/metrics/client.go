package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics records request, refresh, and normalization outcomes for the
// API client.
type ClientMetrics struct {
	duration       *prometheus.HistogramVec
	refreshSuccess prometheus.Counter
	refreshFailure prometheus.Counter
	passthrough    *prometheus.CounterVec
}

// NewClientMetrics registers the client metrics on the provided registerer.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	if reg == nil {
		return &ClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
	refreshSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "api_token_refresh_success",
		Help: "Successful access token refreshes.",
	})
	refreshFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "api_token_refresh_failure",
		Help: "Failed access token refreshes.",
	})
	passthrough := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_response_shape_passthrough",
		Help: "Responses whose envelope shape matched no known variant.",
	}, []string{"endpoint"})
	reg.MustRegister(duration, refreshSuccess, refreshFailure, passthrough)
	return &ClientMetrics{
		duration:       duration,
		refreshSuccess: refreshSuccess,
		refreshFailure: refreshFailure,
		passthrough:    passthrough,
	}
}

// ObserveRequest records the duration for a completed request.
func (c *ClientMetrics) ObserveRequest(method, status string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(method), normalizeLabel(status)).Observe(duration.Seconds())
}

// IncRefreshSuccess increments the refresh success counter.
func (c *ClientMetrics) IncRefreshSuccess() {
	if c == nil || c.refreshSuccess == nil {
		return
	}
	c.refreshSuccess.Inc()
}

// IncRefreshFailure increments the refresh failure counter.
func (c *ClientMetrics) IncRefreshFailure() {
	if c == nil || c.refreshFailure == nil {
		return
	}
	c.refreshFailure.Inc()
}

// IncShapePassthrough counts an unrecognized envelope shape for the endpoint.
func (c *ClientMetrics) IncShapePassthrough(endpoint string) {
	if c == nil || c.passthrough == nil {
		return
	}
	c.passthrough.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
