// Package metrics provides Prometheus metrics for the classification
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Business metrics.
	classificationsComputed *prometheus.CounterVec
	classificationErrors    *prometheus.CounterVec
	classificationLatency   *prometheus.HistogramVec

	// Registry state.
	roundsRegistered prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics.
	systemMemoryBytes prometheus.Gauge
	systemGoroutines  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "clicker",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	m.classificationsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "classifications_computed_total",
		Help:      "Classification queries served, by operation.",
	}, []string{"operation"})

	m.classificationErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "classification_errors_total",
		Help:      "Classification queries rejected, by error kind.",
	}, []string{"kind"})

	m.classificationLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "classification_duration_ms",
		Help:      "Classification query duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.roundsRegistered = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "rounds_registered",
		Help:      "Rounds available in the registry.",
	})

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Heap bytes currently allocated.",
	})

	m.systemGoroutines = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Goroutines currently running.",
	})

	m.registry.MustRegister(
		m.classificationsComputed,
		m.classificationErrors,
		m.classificationLatency,
		m.roundsRegistered,
		m.httpRequests,
		m.httpRequestDuration,
		m.systemMemoryBytes,
		m.systemGoroutines,
	)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

// SetEnabled toggles recording on the global manager. Metrics stay
// registered either way; disabled recorders drop observations.
func SetEnabled(enabled bool) {
	globalManager.enabled = enabled
}

// RecordClassification counts one served classification query.
func RecordClassification(operation string) {
	if !globalManager.enabled {
		return
	}
	globalManager.classificationsComputed.WithLabelValues(operation).Inc()
}

// RecordClassificationError counts one rejected classification query.
func RecordClassificationError(kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.classificationErrors.WithLabelValues(kind).Inc()
}

// ObserveClassificationDuration records a query duration in ms.
func ObserveClassificationDuration(operation string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.classificationLatency.WithLabelValues(operation).Observe(durationMs)
}

// UpdateRoundsRegistered sets the registry size gauge.
func UpdateRoundsRegistered(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.roundsRegistered.Set(float64(n))
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryBytes.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutines.Set(float64(n))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in ms.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}
