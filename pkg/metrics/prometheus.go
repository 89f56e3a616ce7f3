// Package metrics provides Prometheus metrics for the ascent service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics: one counter per analytical operation.
	extractions     prometheus.Counter
	recommendations prometheus.Counter
	gapAnalyses     prometheus.Counter
	resumesScored   prometheus.Counter

	// Faults surfaced to callers, by operation.
	validationFaults *prometheus.CounterVec

	// Snapshot metrics: reference-data reload health.
	snapshotReloads        prometheus.Counter
	snapshotReloadFailures prometheus.Counter
	snapshotReloadDuration prometheus.Histogram
	snapshotPostings       prometheus.Gauge
	snapshotSkills         prometheus.Gauge

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System performance metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ascent",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
		}
	}
	gaugeOpts := func(name, help string) prometheus.GaugeOpts {
		return prometheus.GaugeOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
		}
	}
	histoOpts := func(name, help string) prometheus.HistogramOpts {
		return prometheus.HistogramOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
			Buckets: m.histogramBuckets,
		}
	}

	m.extractions = prometheus.NewCounter(factory("extractions_total", "Skill extractions performed."))
	m.recommendations = prometheus.NewCounter(factory("recommendations_total", "Recommendation rankings served."))
	m.gapAnalyses = prometheus.NewCounter(factory("gap_analyses_total", "Skill-gap analyses performed."))
	m.resumesScored = prometheus.NewCounter(factory("resumes_scored_total", "Resumes scored against the rubric."))

	m.validationFaults = prometheus.NewCounterVec(
		factory("validation_faults_total", "Validation faults surfaced to callers."),
		[]string{"operation"},
	)

	m.snapshotReloads = prometheus.NewCounter(factory("snapshot_reloads_total", "Successful reference-data reloads."))
	m.snapshotReloadFailures = prometheus.NewCounter(factory("snapshot_reload_failures_total", "Failed reference-data reloads."))
	m.snapshotReloadDuration = prometheus.NewHistogram(histoOpts("snapshot_reload_seconds", "Reference-data reload duration."))
	m.snapshotPostings = prometheus.NewGauge(gaugeOpts("snapshot_postings", "Job postings in the current snapshot."))
	m.snapshotSkills = prometheus.NewGauge(gaugeOpts("snapshot_skills", "Canonical skills in the current snapshot."))

	m.httpRequests = prometheus.NewCounterVec(
		factory("http_requests_total", "HTTP requests by endpoint, method and status."),
		[]string{"endpoint", "method", "status"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		histoOpts("http_request_duration_ms", "HTTP request duration in milliseconds."),
		[]string{"endpoint", "method"},
	)

	m.systemMemoryUsage = prometheus.NewGauge(gaugeOpts("system_memory_bytes", "Allocated heap bytes."))
	m.systemGoroutineCount = prometheus.NewGauge(gaugeOpts("system_goroutines", "Live goroutines."))
	m.systemGCPauseTime = prometheus.NewHistogram(histoOpts("system_gc_pause_ms", "Average GC pause in milliseconds."))

	if !m.enabled {
		return
	}
	m.registry.MustRegister(
		m.extractions, m.recommendations, m.gapAnalyses, m.resumesScored,
		m.validationFaults,
		m.snapshotReloads, m.snapshotReloadFailures, m.snapshotReloadDuration,
		m.snapshotPostings, m.snapshotSkills,
		m.httpRequests, m.httpRequestDuration,
		m.systemMemoryUsage, m.systemGoroutineCount, m.systemGCPauseTime,
	)
}

// GetRegistry returns the registry backing the global manager, for the
// /healthz metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
