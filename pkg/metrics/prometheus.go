// Package metrics provides Prometheus metrics for the lineup reconciler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Match outcome labels.
const (
	MatchMatched     = "matched"
	MatchAmbiguous   = "ambiguous"
	MatchUnmatched   = "unmatched"
	MatchUnsupported = "unsupported"
)

// Run outcome labels.
const (
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// Breaker state gauge values.
const (
	BreakerClosed   = 0
	BreakerHalfOpen = 1
	BreakerOpen     = 2
)

// Manager owns every collector for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Reconciliation
	matchOutcomes     *prometheus.CounterVec
	missingIdentities prometheus.Counter
	advisories        *prometheus.CounterVec
	availablePool     prometheus.Gauge
	catalogSize       prometheus.Gauge
	runs              *prometheus.CounterVec
	runDuration       prometheus.Histogram

	// Upstream
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	breakerState     *prometheus.GaugeVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineup",
		subsystem:        "reconciler",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.matchOutcomes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "match_outcomes_total",
			Help:      "Identity-to-ranking match attempts by position and outcome",
		},
		[]string{"position", "outcome"},
	)

	m.missingIdentities = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "missing_identities_total",
		Help:      "Roster identifiers absent from the identity catalog",
	})

	m.advisories = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "advisories_total",
			Help:      "Advisories emitted by kind",
		},
		[]string{"kind"},
	)

	m.availablePool = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "available_pool_size",
		Help:      "Players in the most recent available pool",
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Identities in the most recently loaded catalog",
	})

	m.runs = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "runs_total",
			Help:      "Analysis runs by outcome",
		},
		[]string{"outcome"},
	)

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "End-to-end analysis run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.upstreamRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upstream_requests_total",
			Help:      "Upstream requests by source and status",
		},
		[]string{"source", "status"},
	)

	m.upstreamLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upstream_latency_milliseconds",
			Help:      "Upstream request latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"source"},
	)

	m.breakerState = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upstream_breaker_state",
			Help:      "Circuit breaker state per source (0 closed, 1 half-open, 2 open)",
		},
		[]string{"source"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordMatch counts one match attempt.
func (m *Manager) RecordMatch(position, outcome string) {
	if m.enabled {
		m.matchOutcomes.WithLabelValues(position, outcome).Inc()
	}
}

// RecordMissingIdentity counts one roster identifier missing from the catalog.
func (m *Manager) RecordMissingIdentity() {
	if m.enabled {
		m.missingIdentities.Inc()
	}
}

// RecordAdvisory counts one emitted advisory.
func (m *Manager) RecordAdvisory(kind string) {
	if m.enabled {
		m.advisories.WithLabelValues(kind).Inc()
	}
}

// UpdateAvailablePool sets the available pool size.
func (m *Manager) UpdateAvailablePool(size int) {
	if m.enabled {
		m.availablePool.Set(float64(size))
	}
}

// UpdateCatalogSize sets the catalog size.
func (m *Manager) UpdateCatalogSize(size int) {
	if m.enabled {
		m.catalogSize.Set(float64(size))
	}
}

// RecordRun counts one run and observes its duration.
func (m *Manager) RecordRun(outcome string, durationMs float64) {
	if m.enabled {
		m.runs.WithLabelValues(outcome).Inc()
		m.runDuration.Observe(durationMs)
	}
}

// RecordUpstreamRequest counts one upstream call and observes its latency.
func (m *Manager) RecordUpstreamRequest(source, status string, latencyMs float64) {
	if m.enabled {
		m.upstreamRequests.WithLabelValues(source, status).Inc()
		m.upstreamLatency.WithLabelValues(source).Observe(latencyMs)
	}
}

// UpdateBreakerState sets the breaker gauge for source.
func (m *Manager) UpdateBreakerState(source string, state int) error {
	switch state {
	case BreakerClosed, BreakerHalfOpen, BreakerOpen:
	default:
		return ErrUnknownBreakerState
	}
	if m.enabled {
		m.breakerState.WithLabelValues(source).Set(float64(state))
	}
	return nil
}

// RecordHTTPRequest counts one HTTP request and observes its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordMatch counts one match attempt on the global manager.
func RecordMatch(position, outcome string) { globalManager.RecordMatch(position, outcome) }

// RecordMissingIdentity counts a missing identity on the global manager.
func RecordMissingIdentity() { globalManager.RecordMissingIdentity() }

// RecordAdvisory counts an advisory on the global manager.
func RecordAdvisory(kind string) { globalManager.RecordAdvisory(kind) }

// UpdateAvailablePool sets the pool size on the global manager.
func UpdateAvailablePool(size int) { globalManager.UpdateAvailablePool(size) }

// UpdateCatalogSize sets the catalog size on the global manager.
func UpdateCatalogSize(size int) { globalManager.UpdateCatalogSize(size) }

// RecordRun records a run on the global manager.
func RecordRun(outcome string, durationMs float64) { globalManager.RecordRun(outcome, durationMs) }

// RecordUpstreamRequest records an upstream call on the global manager.
func RecordUpstreamRequest(source, status string, latencyMs float64) {
	globalManager.RecordUpstreamRequest(source, status, latencyMs)
}

// UpdateBreakerState sets the breaker gauge on the global manager.
func UpdateBreakerState(source string, state int) error {
	return globalManager.UpdateBreakerState(source, state)
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
